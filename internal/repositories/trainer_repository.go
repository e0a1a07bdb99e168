package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/college/skillbridge/internal/models"
)

var (
	ErrTrainerNotFound    = errors.New("trainer not found")
	ErrDuplicateTeacherID = errors.New("teacher id already exists")
)

type TrainerRepository interface {
	FindByID(id string) (*models.Trainer, error)
	FindByEmail(email string) (*models.Trainer, error)
	FindAll(collegeID string) ([]models.Trainer, error)
	FindBatches(trainerID string) ([]models.BatchTrainer, error)
	Create(trainer *models.Trainer) error
	Update(trainer *models.Trainer) error
	Delete(id string) error
}

type trainerRepository struct {
	db *gorm.DB
}

func NewTrainerRepository(db *gorm.DB) TrainerRepository {
	return &trainerRepository{db: db}
}

func (r *trainerRepository) FindByID(id string) (*models.Trainer, error) {
	var trainer models.Trainer
	if err := r.db.First(&trainer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *trainerRepository) FindByEmail(email string) (*models.Trainer, error) {
	var trainer models.Trainer
	err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&trainer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *trainerRepository) FindAll(collegeID string) ([]models.Trainer, error) {
	var trainers []models.Trainer
	query := r.db.Order("name")
	if collegeID != "" {
		query = query.Where("college_id = ?", collegeID)
	}
	if err := query.Find(&trainers).Error; err != nil {
		return nil, err
	}
	return trainers, nil
}

func (r *trainerRepository) FindBatches(trainerID string) ([]models.BatchTrainer, error) {
	var links []models.BatchTrainer
	err := r.db.Where("trainer_id = ?", trainerID).Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (r *trainerRepository) Create(trainer *models.Trainer) error {
	trainer.Email = strings.ToLower(strings.TrimSpace(trainer.Email))
	if err := r.db.Create(trainer).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateTeacherID
		}
		return err
	}
	return nil
}

func (r *trainerRepository) Update(trainer *models.Trainer) error {
	return r.db.Save(trainer).Error
}

func (r *trainerRepository) Delete(id string) error {
	result := r.db.Delete(&models.Trainer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTrainerNotFound
	}
	return nil
}
