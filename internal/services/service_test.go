package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/college/skillbridge/internal/auth"
	"github.com/college/skillbridge/internal/database"
	"github.com/college/skillbridge/internal/models"
	"github.com/college/skillbridge/internal/repositories"
)

// setupTestDB opens a per-test in-memory database with the full schema.
// The shared-cache DSN keeps the schema visible across pooled connections.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestAuthService(t *testing.T, db *gorm.DB) AuthService {
	t.Helper()
	return NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewStudentRepository(db),
		repositories.NewTrainerRepository(db),
		repositories.NewCollegeRepository(db),
		auth.NewTokenIssuer("test-secret", time.Hour),
		7*24*time.Hour,
		NewLoginAttemptTracker(5, time.Minute),
	)
}

func createTestStudent(t *testing.T, db *gorm.DB, name string, skills map[string]models.ProficiencyLevel) *models.Student {
	t.Helper()

	repo := repositories.NewStudentRepository(db)
	student := &models.Student{
		Name:           name,
		Email:          strings.ToLower(name) + "@college.edu",
		PasswordHash:   "x",
		RegisterNumber: "RN-" + name,
		Department:     "CSE",
		Year:           3,
	}
	require.NoError(t, repo.Create(student))

	for skillName, level := range skills {
		skill, err := repo.FindOrCreateSkill(skillName)
		require.NoError(t, err)
		require.NoError(t, repo.UpsertStudentSkill(student.ID, skill.ID, level))
	}
	return student
}

// createTestBatch builds a batch with a syllabus whose topics carry the given
// technologies strings, keyed by topic name.
func createTestBatch(t *testing.T, db *gorm.DB, name string, status models.BatchStatus, topics map[string]string) *models.Batch {
	t.Helper()

	syllabus := &models.Syllabus{Title: name + " syllabus"}
	for topicName, technologies := range topics {
		syllabus.Topics = append(syllabus.Topics, models.SyllabusTopic{
			Name:         topicName,
			Technologies: technologies,
		})
	}
	require.NoError(t, db.Create(syllabus).Error)

	batch := &models.Batch{
		Name:          name,
		DurationWeeks: 10,
		Status:        status,
		SyllabusID:    &syllabus.ID,
	}
	require.NoError(t, db.Create(batch).Error)
	return batch
}

func mapCompanyToBatch(t *testing.T, db *gorm.DB, batchID string, company *models.Company) {
	t.Helper()
	require.NoError(t, db.Create(company).Error)
	require.NoError(t, db.Create(&models.BatchCompanyMapping{
		BatchID:   batchID,
		CompanyID: company.ID,
	}).Error)
}
