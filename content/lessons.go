package content

var lessons = []Lesson{
	{
		ID:    1,
		Title: "What is a Disaster?",
		Goal:  "Learn what disasters are and why we should know about them",
		Content: []Section{
			{
				Heading: "1. What is a Disaster?",
				Points: []string{
					"A disaster is something sudden and harmful.",
					"It can hurt people, damage schools or homes, and stop normal life.",
				},
			},
			{
				Heading: "2. Kinds of Disasters",
				Points: []string{
					"Natural → earthquake, flood, cyclone, heatwave.",
					"Man-made → fire, road accident, building collapse.",
					"Health → pandemic (like COVID-19), spread of diseases, unsafe food or water.",
				},
			},
			{
				Heading: "3. Why Do We Learn This?",
				Points: []string{
					"To stay safe and not panic.",
					"To know what to do when something happens.",
					"To help friends and family in need.",
				},
			},
			{
				Heading: "4. Real Story",
				Points: []string{
					"In Japan, students practice earthquake safety in school.",
					"When a real earthquake and tsunami came in 2011, they remembered their training and moved to safe places. Many children survived because they had practiced.",
				},
			},
			{
				Heading: "5. Key Message",
				Points: []string{
					"If we learn + if we practice → we stay safe.",
				},
			},
		},
	},
	{
		ID:    2,
		Title: "Earthquake Safety",
		Goal:  "Learn what to do during and after an earthquake to stay safe.",
		Content: []Section{
			{
				Heading: "1. What is an Earthquake?",
				Points: []string{
					"The ground shakes because rocks under the earth move.",
					"It can happen suddenly, without warning.",
					"Buildings, walls, and objects may fall.",
				},
			},
			{
				Heading: "2. What To Do During an Earthquake?",
				Points: []string{
					"Remember: Drop – Cover – Hold",
					"Drop → Get down on your knees quickly.",
					"Cover → Hide under a strong desk or table. Protect your head and neck with hands.",
					"Hold → Hold the desk/table legs until shaking stops.",
					"Don’t run, don’t push, don’t use lifts/elevators.",
				},
			},
			{
				Heading: "3. If You Are Outside",
				Points: []string{
					"Go to an open area (ground, playground).",
					"Stay away from trees, poles, or buildings.",
				},
			},
			{
				Heading: "4. After the Shaking Stops",
				Points: []string{
					"Wait for teacher’s instructions.",
					"Walk calmly to the assembly ground.",
					"Stay together, don’t panic.",
					"Help classmates if someone is hurt.",
				},
			},
			{
				Heading: "5. Key Message",
				Points: []string{
					"Stay Calm → Drop → Cover → Hold → Evacuate Safely",
				},
			},
		},
		Poster: "/assets/earthquake.jpg",
		Video:  "/videos/earthquakemp4.mp4",
	},
	{
		ID:    3,
		Title: "Flood Safety",
		Goal:  "Learn how to stay safe if your school or area faces floods.",
		Content: []Section{
			{
				Heading: "1. What is a Flood?",
				Points: []string{
					"Floods happen when there is too much rain or rivers overflow.",
					"Water covers the land, roads, and sometimes enters homes and schools.",
				},
			},
			{
				Heading: "2. What To Do During a Flood?",
				Points: []string{
					"Go Higher → Move to upstairs floors or higher ground.",
					"Stay Dry → Do not walk or play in flood water.",
					"Stay With Teachers → Always listen to your teacher and move together.",
					"Avoid Electricity → Don’t touch wires, switches, or plugs.",
					"School as Shelter → Sometimes the school building is the safest place.",
				},
			},
			{
				Heading: "3. After the Flood",
				Points: []string{
					"Do not drink tap water unless teachers say it’s safe.",
					"Wash hands before eating.",
					"Be careful of insects, snakes, or sharp objects in water.",
					"Stay calm and wait for help.",
				},
			},
			{
				Heading: "4. Key Message",
				Points: []string{
					"Go Up → Stay Dry → Listen to Teachers → Stay Together → Be Safe",
				},
			},
		},
		Poster: "/assets/flood.jpg",
		Video:  "/videos/flood.mp4",
	},
	{
		ID:    4,
		Title: "Fire Safety",
		Goal:  "Learn what to do if there is a fire in school or at home.",
		Content: []Section{
			{
				Heading: "1. What is a Fire Emergency?",
				Points: []string{
					"Fire can start from electric wires, labs, kitchens, or careless use of matches/candles.",
					"Smoke is dangerous — it makes it hard to breathe.",
				},
			},
			{
				Heading: "2. What To Do During Fire?",
				Points: []string{
					"Shout “Fire!” → Inform teacher or adults quickly.",
					"Don’t Panic, Don’t Run → Move calmly.",
					"Use Nearest Exit → Walk quickly to the school ground.",
					"Crawl Low in Smoke → If there is smoke, bend down and cover your nose/mouth.",
					"Stop, Drop, Roll → If clothes catch fire: Stop moving, Drop to the ground, Roll to put out flames.",
				},
			},
			{
				Heading: "3. What NOT To Do",
				Points: []string{
					"Don’t use lifts/elevators.",
					"Don’t go back inside for books or things.",
					"Don’t push or rush.",
				},
			},
			{
				Heading: "4. After the Fire",
				Points: []string{
					"Wait with classmates in assembly ground.",
					"Teacher will take attendance.",
					"Follow instructions of firefighters.",
				},
			},
			{
				Heading: "5. Key Message",
				Points: []string{
					"Shout → Exit → Stay Low → Stop, Drop, Roll → Stay Safe",
				},
			},
		},
		Poster: "/assets/fire.jpg",
		Video:  "/videos/firedrill.mp4",
	},
	{
		ID:    5,
		Title: "Heatwave Safety",
		Goal:  "Learn how to protect yourself during very hot weather.",
		Content: []Section{
			{
				Heading: "1. What is a Heatwave?",
				Points: []string{
					"A heatwave is when the temperature is extremely high for many days.",
					"It can cause dehydration, heat exhaustion, or heatstroke.",
				},
			},
			{
				Heading: "2. How to Stay Safe?",
				Points: []string{
					"Drink Water Often → Keep sipping water, even if not thirsty.",
					"Wear Light Clothes → Cotton clothes, light colors.",
					"Stay Indoors → Avoid playing outside in strong sun (12–4 PM).",
					"Use Shade → Sit under trees, use caps or umbrellas.",
					"Eat Light Food → Fresh fruits, juices, avoid junk food.",
				},
			},
			{
				Heading: "3. Warning Signs of Heatstroke",
				Points: []string{
					"Dizziness or fainting.",
					"Headache and tiredness.",
					"Very hot, dry skin.",
					"If this happens, tell teacher immediately and rest in a cool place.",
				},
			},
			{
				Heading: "4. Key Message",
				Points: []string{
					"Drink Water → Stay Cool → Avoid Sun → Help Friends",
				},
			},
		},
	},
	{
		ID:    6,
		Title: "Pandemic Safety",
		Goal:  "Learn how to stay safe during a disease outbreak like COVID-19, flu, or dengue.",
		Content: []Section{
			{
				Heading: "1. What is a Pandemic?",
				Points: []string{
					"A pandemic is when a disease spreads to many people, across cities or countries.",
					"Example: COVID-19 pandemic in 2020.",
				},
			},
			{
				Heading: "2. How to Stay Safe?",
				Points: []string{
					"Wash Hands → Use soap or sanitizer often.",
					"Wear Mask (if told) → Cover nose and mouth properly.",
					"Keep Distance → Don’t crowd or push in groups.",
					"Stay Home if Sick → Inform teacher/parents if you feel unwell.",
					"Clean Surroundings → Don’t allow water to collect (mosquitoes spread dengue).",
				},
			},
			{
				Heading: "3. During School Time",
				Points: []string{
					"Follow school safety rules.",
					"Sit with space between friends if required.",
					"Don’t share bottles, food, or handkerchiefs.",
				},
			},
			{
				Heading: "4. After School",
				Points: []string{
					"Tell parents if you have cough, fever, or breathing problems.",
					"Rest, eat healthy, and avoid spreading illness to others.",
				},
			},
			{
				Heading: "5. Key Message",
				Points: []string{
					"Wash → Mask → Distance → Stay Clean → Stay Healthy",
				},
			},
		},
	},
	{
		ID:    7,
		Title: "Lab & Chemical Safety",
		Goal:  "Learn how to stay safe while working in science labs.",
		Content: []Section{
			{
				Heading: "1. Why Lab Safety Matters",
				Points: []string{
					"Labs have chemicals, burners, and glass items.",
					"Carelessness can cause burns, cuts, or fire accidents.",
				},
			},
			{
				Heading: "2. Safety Rules in the Lab",
				Points: []string{
					"Wear Safety Gear → Use lab coat, gloves, and goggles.",
					"Handle Chemicals Carefully → Don’t taste, smell, or touch with bare hands.",
					"Use Burners Safely → Light burners only with teacher’s permission.",
					"No Running / Playing → Labs are not playgrounds.",
					"Label Bottles → Always check the name before using a chemical.",
				},
			},
			{
				Heading: "3. If an Accident Happens",
				Points: []string{
					"If chemical spills on skin → Wash with plenty of water, inform teacher.",
					"If clothes catch fire → Stop, Drop, Roll.",
					"If glass breaks → Don’t touch with hands, call teacher.",
					"Report any accident immediately to teacher.",
				},
			},
			{
				Heading: "4. After Lab Work",
				Points: []string{
					"Clean your table and wash hands properly.",
					"Put chemicals back in their correct place.",
				},
			},
			{
				Heading: "5. Key Message",
				Points: []string{
					"Be Careful → Follow Rules → Ask Teacher → Stay Safe",
				},
			},
		},
	},
}
