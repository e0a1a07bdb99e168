package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/college/skillbridge/internal/models"
)

var (
	ErrBatchNotFound    = errors.New("batch not found")
	ErrSyllabusNotFound = errors.New("syllabus not found")
)

type BatchRepository interface {
	FindByID(id string) (*models.Batch, error)
	FindByIDWithDetails(id string) (*models.Batch, error)
	FindAll() ([]models.Batch, error)
	// FindByStatusIn returns batches in any of the given lifecycle states,
	// fully loaded for scoring, in a stable creation order.
	FindByStatusIn(statuses []models.BatchStatus) ([]models.Batch, error)
	Create(batch *models.Batch) error
	Update(batch *models.Batch) error
	Delete(id string) error

	CreateSyllabus(syllabus *models.Syllabus) error
	FindSyllabusByID(id string) (*models.Syllabus, error)

	AssignTrainer(link *models.BatchTrainer) error
	MapCompany(link *models.BatchCompanyMapping) error
}

type batchRepository struct {
	db *gorm.DB
}

func NewBatchRepository(db *gorm.DB) BatchRepository {
	return &batchRepository{db: db}
}

func (r *batchRepository) FindByID(id string) (*models.Batch, error) {
	var batch models.Batch
	if err := r.db.First(&batch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}
	return &batch, nil
}

func (r *batchRepository) FindByIDWithDetails(id string) (*models.Batch, error) {
	var batch models.Batch
	err := r.db.
		Preload("Syllabus.Topics").
		Preload("CompanyMappings.Company").
		Preload("Trainers.Trainer").
		First(&batch, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}
	return &batch, nil
}

func (r *batchRepository) FindAll() ([]models.Batch, error) {
	var batches []models.Batch
	err := r.db.Preload("Syllabus").Order("created_at").Find(&batches).Error
	if err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *batchRepository) FindByStatusIn(statuses []models.BatchStatus) ([]models.Batch, error) {
	var batches []models.Batch
	err := r.db.
		Preload("Syllabus.Topics").
		Preload("CompanyMappings.Company").
		Preload("Trainers.Trainer").
		Where("status IN ?", statuses).
		Order("created_at").
		Find(&batches).Error
	if err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *batchRepository) Create(batch *models.Batch) error {
	return r.db.Create(batch).Error
}

func (r *batchRepository) Update(batch *models.Batch) error {
	return r.db.Save(batch).Error
}

func (r *batchRepository) Delete(id string) error {
	result := r.db.Delete(&models.Batch{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBatchNotFound
	}
	return nil
}

func (r *batchRepository) CreateSyllabus(syllabus *models.Syllabus) error {
	return r.db.Create(syllabus).Error
}

func (r *batchRepository) FindSyllabusByID(id string) (*models.Syllabus, error) {
	var syllabus models.Syllabus
	err := r.db.Preload("Topics").First(&syllabus, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSyllabusNotFound
		}
		return nil, err
	}
	return &syllabus, nil
}

func (r *batchRepository) AssignTrainer(link *models.BatchTrainer) error {
	return r.db.Create(link).Error
}

func (r *batchRepository) MapCompany(link *models.BatchCompanyMapping) error {
	return r.db.Create(link).Error
}
