package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/college/skillbridge/internal/auth"
	"github.com/college/skillbridge/internal/config"
	"github.com/college/skillbridge/internal/logger"
	"github.com/college/skillbridge/internal/models"
)

// SeedFirstAdmin creates the bootstrap admin account if no admin exists yet.
// Without it a fresh deployment has no way to log in.
func SeedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		logger.Warn("admin seed credentials not configured, skipping bootstrap admin")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if !auth.ValidatePassword(cfg.Seed.AdminPassword) {
		return errors.New("seed admin password does not meet the password policy")
	}

	hash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         "Administrator",
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.With("email", cfg.Seed.AdminEmail).Info("bootstrap admin created")
	return nil
}

// SeedDemoData loads a small demo dataset for local development. It is a
// no-op when batches already exist.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Batch{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hiring := models.HiringTypeBoth
	companies := []models.Company{
		{Name: "Acme Cloud", Domain: "go, kubernetes, docker", HiringType: &hiring},
		{Name: "DataWeave", Domain: "python, sql, spark"},
	}
	for i := range companies {
		if err := db.Create(&companies[i]).Error; err != nil {
			return err
		}
	}

	syllabus := models.Syllabus{
		Title: "Backend Engineering Track",
		Topics: []models.SyllabusTopic{
			{Name: "Go", Technologies: "go, gin, gorm"},
			{Name: "Databases", Technologies: "postgresql, sql"},
			{Name: "Containers", Technologies: "docker, kubernetes"},
		},
	}
	if err := db.Create(&syllabus).Error; err != nil {
		return err
	}

	batch := models.Batch{
		Name:          "Backend Bootcamp",
		Description:   "Server-side engineering from fundamentals to deployment",
		DurationWeeks: 12,
		Status:        models.BatchStatusActive,
		SyllabusID:    &syllabus.ID,
	}
	if err := db.Create(&batch).Error; err != nil {
		return err
	}

	for i := range companies {
		link := models.BatchCompanyMapping{BatchID: batch.ID, CompanyID: companies[i].ID}
		if err := db.Create(&link).Error; err != nil {
			return err
		}
	}

	logger.Info("demo data seeded")
	return nil
}
