package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/college/skillbridge/internal/models"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyRepository interface {
	FindByID(id string) (*models.Company, error)
	FindByIDWithProcesses(id string) (*models.Company, error)
	FindAll() ([]models.Company, error)
	FindHiring() ([]models.Company, error)
	FindByDomainLike(domain string) ([]models.Company, error)
	Create(company *models.Company) error
	Update(company *models.Company) error
	Delete(id string) error

	AddHiringProcessStep(step *models.CompanyHiringProcess) error
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) FindByID(id string) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindByIDWithProcesses(id string) (*models.Company, error) {
	var company models.Company
	err := r.db.
		Preload("HiringProcesses", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order")
		}).
		First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindAll() ([]models.Company, error) {
	var companies []models.Company
	if err := r.db.Order("name").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// FindHiring returns companies with any hiring type set.
func (r *companyRepository) FindHiring() ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Where("hiring_type IS NOT NULL").Order("name").Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

// FindByDomainLike matches companies whose domain mentions the given term,
// case-insensitively.
func (r *companyRepository) FindByDomainLike(domain string) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.
		Where("LOWER(domain) LIKE ?", "%"+strings.ToLower(domain)+"%").
		Order("name").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *companyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

func (r *companyRepository) Update(company *models.Company) error {
	return r.db.Save(company).Error
}

func (r *companyRepository) Delete(id string) error {
	result := r.db.Delete(&models.Company{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func (r *companyRepository) AddHiringProcessStep(step *models.CompanyHiringProcess) error {
	return r.db.Create(step).Error
}
