package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/college/skillbridge/internal/models"
)

// Connect opens the postgres connection and verifies it.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the full schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.College{},
		&models.User{},
		&models.RefreshToken{},
		&models.Skill{},
		&models.Student{},
		&models.StudentSkill{},
		&models.StudentBatchHistory{},
		&models.Syllabus{},
		&models.SyllabusTopic{},
		&models.Batch{},
		&models.BatchTrainer{},
		&models.BatchCompanyMapping{},
		&models.Trainer{},
		&models.Company{},
		&models.CompanyHiringProcess{},
		&models.TrainerFeedback{},
		&models.StudentFeedback{},
	)
}
