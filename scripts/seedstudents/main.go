package main

import (
	"errors"
	"log"

	"disasterprep/config"
	"disasterprep/database"
	"disasterprep/models"
	"disasterprep/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeds the initial student accounts. Existing names are left untouched, so
// the script is safe to run repeatedly.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	students := []struct {
		Name             string
		Password         string
		GuardianContacts []string
	}{
		{
			Name:             "alice",
			Password:         "student123",
			GuardianContacts: []string{"+12345678901", "+10987654321"},
		},
		{
			Name:             "bob",
			Password:         "student456",
			GuardianContacts: []string{"+19876543210"},
		},
	}

	db := database.Database.Db

	for _, s := range students {
		err := db.Where("name = ?", s.Name).First(&models.Student{}).Error
		if err == nil {
			log.Printf("Student %s already exists, skipping.", s.Name)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check for student %s: %v", s.Name, err)
		}

		passwordHash, err := utils.HashPassword(s.Password)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", s.Name, err)
		}

		student := models.Student{
			Name:             s.Name,
			PasswordHash:     passwordHash,
			GuardianContacts: datatypes.NewJSONSlice(s.GuardianContacts),
			Progress:         datatypes.NewJSONType(models.NewProgress()),
		}

		if err := db.Create(&student).Error; err != nil {
			log.Fatalf("Failed to add student %s: %v", s.Name, err)
		}
		log.Printf("Added student %s", s.Name)
	}
}
