package services

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/college/skillbridge/internal/auth"
	"github.com/college/skillbridge/internal/models"
	"github.com/college/skillbridge/internal/repositories"
	"github.com/college/skillbridge/internal/services/dto"
	"github.com/college/skillbridge/pkg/apperrors"
)

type StudentService interface {
	GetStudent(id string) (*dto.StudentResponse, error)
	ListStudents(collegeID string) ([]dto.StudentResponse, error)
	FindBySkill(skillName string) ([]dto.StudentResponse, error)
	CreateStudent(req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	AddSkills(studentID string, req *dto.AddSkillRequest) error
	AssignBatch(studentID, batchID string) error
	AssignBestFitBatch(studentID string) (*dto.BatchRecommendation, error)
	GetBatchHistory(studentID string) ([]dto.BatchHistoryEntry, error)
}

type StudentServiceImpl struct {
	studentRepo     repositories.StudentRepository
	batchRepo       repositories.BatchRepository
	recommendations RecommendationService
}

func NewStudentService(
	studentRepo repositories.StudentRepository,
	batchRepo repositories.BatchRepository,
	recommendations RecommendationService,
) StudentService {
	return &StudentServiceImpl{
		studentRepo:     studentRepo,
		batchRepo:       batchRepo,
		recommendations: recommendations,
	}
}

func (s *StudentServiceImpl) GetStudent(id string) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.FindByIDWithDetails(id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrNotFound(err, "student not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return toStudentResponse(student), nil
}

func (s *StudentServiceImpl) ListStudents(collegeID string) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.FindAll(collegeID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, *toStudentResponse(&students[i]))
	}
	return out, nil
}

func (s *StudentServiceImpl) FindBySkill(skillName string) ([]dto.StudentResponse, error) {
	students, err := s.studentRepo.FindBySkillName(skillName)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, *toStudentResponse(&students[i]))
	}
	return out, nil
}

func (s *StudentServiceImpl) CreateStudent(req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if !auth.ValidatePassword(req.Password) {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	student := &models.Student{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   hash,
		RegisterNumber: req.RegisterNumber,
		Department:     req.Department,
		Year:           req.Year,
		PhoneNumber:    req.PhoneNumber,
		CGPA:           req.CGPA,
		GithubLink:     req.GithubLink,
	}
	if err := s.studentRepo.Create(student); err != nil {
		if errors.Is(err, repositories.ErrDuplicateRegister) {
			return nil, apperrors.ErrRegisterNumberAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	for _, skill := range req.Skills {
		if err := s.attachSkill(student.ID, skill); err != nil {
			return nil, err
		}
	}

	return s.GetStudent(student.ID)
}

func (s *StudentServiceImpl) AddSkills(studentID string, req *dto.AddSkillRequest) error {
	if _, err := s.studentRepo.FindByID(studentID); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrNotFound(err, "student not found")
		}
		return apperrors.InternalError(err)
	}

	for _, skill := range req.Skills {
		if err := s.attachSkill(studentID, skill); err != nil {
			return err
		}
	}

	// Skill changes shift the scoring inputs.
	s.recommendations.InvalidateStudent(studentID)
	return nil
}

func (s *StudentServiceImpl) attachSkill(studentID string, input dto.SkillInput) error {
	skill, err := s.studentRepo.FindOrCreateSkill(input.Name)
	if err != nil {
		return apperrors.InternalError(err)
	}
	level := models.ProficiencyLevel(strings.ToUpper(input.Level))
	if err := s.studentRepo.UpsertStudentSkill(studentID, skill.ID, level); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// AssignBatch enrolls the student into a batch and records it in their
// history, so future recommendations treat its topics as already known.
func (s *StudentServiceImpl) AssignBatch(studentID, batchID string) error {
	if _, err := s.studentRepo.FindByID(studentID); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrNotFound(err, "student not found")
		}
		return apperrors.InternalError(err)
	}

	batch, err := s.batchRepo.FindByID(batchID)
	if err != nil {
		if errors.Is(err, repositories.ErrBatchNotFound) {
			return apperrors.ErrNotFound(err, "batch not found")
		}
		return apperrors.InternalError(err)
	}

	history, err := s.studentRepo.FindBatchHistory(studentID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	for _, entry := range history {
		if entry.BatchID == batchID {
			return apperrors.ErrConflict(nil, "STUDENT", "student is already enrolled in this batch")
		}
	}

	now := time.Now()
	entry := &models.StudentBatchHistory{
		StudentID: studentID,
		BatchID:   batchID,
		StartDate: &now,
		Status:    batch.Status,
	}
	if err := s.studentRepo.AddBatchHistory(entry); err != nil {
		return apperrors.InternalError(err)
	}

	s.recommendations.InvalidateStudent(studentID)
	return nil
}

// AssignBestFitBatch enrolls the student into their highest-scoring eligible
// batch, skipping batches they are already enrolled in.
func (s *StudentServiceImpl) AssignBestFitBatch(studentID string) (*dto.BatchRecommendation, error) {
	recs, err := s.recommendations.RecommendBatches(studentID)
	if err != nil {
		return nil, err
	}

	for i := range recs {
		err := s.AssignBatch(studentID, recs[i].BatchID)
		if err == nil {
			return &recs[i], nil
		}
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeConflict {
			continue
		}
		return nil, err
	}

	return nil, apperrors.New(
		apperrors.CodeNotFound, "recommendation",
		"No suitable batch found for this student", http.StatusNotFound)
}

func (s *StudentServiceImpl) GetBatchHistory(studentID string) ([]dto.BatchHistoryEntry, error) {
	if _, err := s.studentRepo.FindByID(studentID); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrNotFound(err, "student not found")
		}
		return nil, apperrors.InternalError(err)
	}

	history, err := s.studentRepo.FindBatchHistory(studentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.BatchHistoryEntry, 0, len(history))
	for _, entry := range history {
		item := dto.BatchHistoryEntry{
			BatchID:   entry.BatchID,
			BatchName: entry.Batch.Name,
			Status:    string(entry.Status),
		}
		if entry.StartDate != nil {
			item.StartDate = entry.StartDate.Format("2006-01-02")
		}
		if entry.EndDate != nil {
			item.EndDate = entry.EndDate.Format("2006-01-02")
		}
		out = append(out, item)
	}
	return out, nil
}

func toStudentResponse(student *models.Student) *dto.StudentResponse {
	resp := &dto.StudentResponse{
		ID:             student.ID,
		Name:           student.Name,
		Email:          student.Email,
		RegisterNumber: student.RegisterNumber,
		Department:     student.Department,
		Year:           student.Year,
		CGPA:           student.CGPA,
	}
	for _, link := range student.Skills {
		resp.Skills = append(resp.Skills, dto.SkillResponse{
			Name:  link.Skill.Name,
			Level: string(link.Level),
		})
	}
	return resp
}
