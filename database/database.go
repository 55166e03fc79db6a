package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ashoksiva-09/expleoVhiInternaltracker/config"
	"github.com/ashoksiva-09/expleoVhiInternaltracker/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(
		&models.Resource{},
		&models.ResourceColumn{},
		&models.ResourceData{},
		&models.TimesheetEntry{},
		&models.Leave{},
		&models.Training{},
		&models.Learning{},
		&models.Certification{},
		&models.CamStatus{},
		&models.BoldMind{},
		&models.Holiday{},
		&models.User{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	seed()
}

// seed inserts the initial roster and the published holiday calendar.
// Inserts ignore conflicts so restarts are no-ops and rows edited since
// are left alone.
func seed() {
	if len(seedResources) > 0 {
		if err := DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&seedResources).Error; err != nil {
			log.Printf("[seed] resources: %v", err)
		}
	}
	if len(seedHolidays) > 0 {
		if err := DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&seedHolidays).Error; err != nil {
			log.Printf("[seed] holidays: %v", err)
		}
	}
}
