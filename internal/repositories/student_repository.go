package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/college/skillbridge/internal/models"
)

var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrSkillNotFound     = errors.New("skill not found")
	ErrDuplicateRegister = errors.New("register number already exists")
)

type StudentRepository interface {
	FindByID(id string) (*models.Student, error)
	FindByIDWithDetails(id string) (*models.Student, error)
	FindByEmail(email string) (*models.Student, error)
	FindAll(collegeID string) ([]models.Student, error)
	FindBySkillName(skillName string) ([]models.Student, error)
	Create(student *models.Student) error
	Update(student *models.Student) error
	Delete(id string) error

	FindOrCreateSkill(name string) (*models.Skill, error)
	UpsertStudentSkill(studentID, skillID string, level models.ProficiencyLevel) error

	AddBatchHistory(entry *models.StudentBatchHistory) error
	FindBatchHistory(studentID string) ([]models.StudentBatchHistory, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) FindByID(id string) (*models.Student, error) {
	var student models.Student
	if err := r.db.First(&student, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

// FindByIDWithDetails loads the student together with everything the
// recommendation scorer needs: skills with their names, and batch history
// with each batch's syllabus topics.
func (r *studentRepository) FindByIDWithDetails(id string) (*models.Student, error) {
	var student models.Student
	err := r.db.
		Preload("Skills.Skill").
		Preload("BatchHistory.Batch.Syllabus.Topics").
		First(&student, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByEmail(email string) (*models.Student, error) {
	var student models.Student
	err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindAll(collegeID string) ([]models.Student, error) {
	var students []models.Student
	query := r.db.Preload("Skills.Skill").Order("name")
	if collegeID != "" {
		query = query.Where("college_id = ?", collegeID)
	}
	if err := query.Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) FindBySkillName(skillName string) ([]models.Student, error) {
	var students []models.Student
	err := r.db.
		Joins("JOIN student_skills ON student_skills.student_id = students.id").
		Joins("JOIN skills ON skills.id = student_skills.skill_id").
		Where("LOWER(skills.name) = ?", strings.ToLower(skillName)).
		Preload("Skills.Skill").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) Create(student *models.Student) error {
	student.Email = strings.ToLower(strings.TrimSpace(student.Email))
	if err := r.db.Create(student).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateRegister
		}
		return err
	}
	return nil
}

func (r *studentRepository) Update(student *models.Student) error {
	return r.db.Save(student).Error
}

func (r *studentRepository) Delete(id string) error {
	result := r.db.Delete(&models.Student{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStudentNotFound
	}
	return nil
}

func (r *studentRepository) FindOrCreateSkill(name string) (*models.Skill, error) {
	name = strings.TrimSpace(name)
	var skill models.Skill
	err := r.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&skill).Error
	if err == nil {
		return &skill, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	skill = models.Skill{Name: name}
	if err := r.db.Create(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// UpsertStudentSkill records a proficiency level, overwriting a previous
// level for the same skill instead of duplicating the link row.
func (r *studentRepository) UpsertStudentSkill(studentID, skillID string, level models.ProficiencyLevel) error {
	var existing models.StudentSkill
	err := r.db.Where("student_id = ? AND skill_id = ?", studentID, skillID).First(&existing).Error
	if err == nil {
		existing.Level = level
		return r.db.Save(&existing).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(&models.StudentSkill{
		StudentID: studentID,
		SkillID:   skillID,
		Level:     level,
	}).Error
}

func (r *studentRepository) AddBatchHistory(entry *models.StudentBatchHistory) error {
	return r.db.Create(entry).Error
}

func (r *studentRepository) FindBatchHistory(studentID string) ([]models.StudentBatchHistory, error) {
	var history []models.StudentBatchHistory
	err := r.db.
		Preload("Batch.Syllabus.Topics").
		Where("student_id = ?", studentID).
		Order("created_at").
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}
