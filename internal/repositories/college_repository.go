package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/college/skillbridge/internal/models"
)

var ErrCollegeNotFound = errors.New("college not found")

type CollegeRepository interface {
	FindByID(id string) (*models.College, error)
	FindByDomain(domain string) (*models.College, error)
	FindOrCreateByDomain(domain, name string) (*models.College, error)
	FindAll() ([]models.College, error)
	Create(college *models.College) error
	Update(college *models.College) error
}

type collegeRepository struct {
	db *gorm.DB
}

func NewCollegeRepository(db *gorm.DB) CollegeRepository {
	return &collegeRepository{db: db}
}

func (r *collegeRepository) FindByID(id string) (*models.College, error) {
	var college models.College
	if err := r.db.First(&college, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollegeNotFound
		}
		return nil, err
	}
	return &college, nil
}

func (r *collegeRepository) FindByDomain(domain string) (*models.College, error) {
	var college models.College
	err := r.db.Where("domain = ?", strings.ToLower(domain)).First(&college).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollegeNotFound
		}
		return nil, err
	}
	return &college, nil
}

// FindOrCreateByDomain returns the college registered under the domain,
// creating a stub record when none exists yet.
func (r *collegeRepository) FindOrCreateByDomain(domain, name string) (*models.College, error) {
	domain = strings.ToLower(domain)
	college, err := r.FindByDomain(domain)
	if err == nil {
		return college, nil
	}
	if !errors.Is(err, ErrCollegeNotFound) {
		return nil, err
	}

	college = &models.College{Name: name, Domain: domain}
	if err := r.db.Create(college).Error; err != nil {
		if isUniqueViolation(err) {
			return r.FindByDomain(domain)
		}
		return nil, err
	}
	return college, nil
}

func (r *collegeRepository) FindAll() ([]models.College, error) {
	var colleges []models.College
	if err := r.db.Order("name").Find(&colleges).Error; err != nil {
		return nil, err
	}
	return colleges, nil
}

func (r *collegeRepository) Create(college *models.College) error {
	college.Domain = strings.ToLower(college.Domain)
	return r.db.Create(college).Error
}

func (r *collegeRepository) Update(college *models.College) error {
	return r.db.Save(college).Error
}
