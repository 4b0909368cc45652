package content

var quizzes = []Quiz{
	{
		ID:       1,
		LessonID: 1,
		Title:    "Quiz: What is a Disaster?",
		Questions: []Question{
			{
				Question: "What is a disaster?",
				Options:  []string{"Normal event", "Sudden harmful event", "Fun activity", "Never happens"},
				Answer:   1,
			},
			{
				Question: "Which one is a natural disaster?",
				Options:  []string{"Fire", "Earthquake", "Road accident", "Building collapse"},
				Answer:   1,
			},
		},
	},
	{
		ID:       2,
		LessonID: 2,
		Title:    "Quiz: Earthquake Safety",
		Questions: []Question{
			{
				Question: "What should you do during an earthquake?",
				Options:  []string{"Run", "Drop, Cover, Hold", "Use lift", "Shout"},
				Answer:   1,
			},
		},
	},
}
