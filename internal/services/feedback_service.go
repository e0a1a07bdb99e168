package services

import (
	"errors"

	"github.com/college/skillbridge/internal/models"
	"github.com/college/skillbridge/internal/repositories"
	"github.com/college/skillbridge/internal/services/dto"
	"github.com/college/skillbridge/pkg/apperrors"
)

type FeedbackService interface {
	LeaveTrainerFeedback(trainerID string, req *dto.FeedbackRequest) error
	LeaveStudentFeedback(studentID string, req *dto.FeedbackRequest) error
	GetStudentFeedback(studentID string) ([]models.TrainerFeedback, error)
	GetTrainerFeedback(trainerID string) ([]models.StudentFeedback, error)
	GetTrainerRating(trainerID string) (float64, error)
	GetTopRatedTrainers(limit int) ([]repositories.TrainerRating, error)
	GetBatchSummary(batchID string) (*repositories.BatchFeedbackSummary, error)
}

type FeedbackServiceImpl struct {
	feedbackRepo repositories.FeedbackRepository
	studentRepo  repositories.StudentRepository
	trainerRepo  repositories.TrainerRepository
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepository,
	studentRepo repositories.StudentRepository,
	trainerRepo repositories.TrainerRepository,
) FeedbackService {
	return &FeedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		studentRepo:  studentRepo,
		trainerRepo:  trainerRepo,
	}
}

// LeaveTrainerFeedback records feedback a trainer gives about a student.
func (s *FeedbackServiceImpl) LeaveTrainerFeedback(trainerID string, req *dto.FeedbackRequest) error {
	if _, err := s.studentRepo.FindByID(req.StudentID); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrNotFound(err, "student not found")
		}
		return apperrors.InternalError(err)
	}

	fb := &models.TrainerFeedback{
		TrainerID: trainerID,
		StudentID: req.StudentID,
		BatchID:   req.BatchID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.feedbackRepo.CreateTrainerFeedback(fb); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// LeaveStudentFeedback records feedback a student gives about a trainer.
func (s *FeedbackServiceImpl) LeaveStudentFeedback(studentID string, req *dto.FeedbackRequest) error {
	if _, err := s.trainerRepo.FindByID(req.TrainerID); err != nil {
		if errors.Is(err, repositories.ErrTrainerNotFound) {
			return apperrors.ErrNotFound(err, "trainer not found")
		}
		return apperrors.InternalError(err)
	}

	fb := &models.StudentFeedback{
		StudentID: studentID,
		TrainerID: req.TrainerID,
		BatchID:   req.BatchID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.feedbackRepo.CreateStudentFeedback(fb); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *FeedbackServiceImpl) GetStudentFeedback(studentID string) ([]models.TrainerFeedback, error) {
	feedback, err := s.feedbackRepo.FindTrainerFeedbackForStudent(studentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return feedback, nil
}

func (s *FeedbackServiceImpl) GetTrainerFeedback(trainerID string) ([]models.StudentFeedback, error) {
	feedback, err := s.feedbackRepo.FindStudentFeedbackForTrainer(trainerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return feedback, nil
}

func (s *FeedbackServiceImpl) GetTopRatedTrainers(limit int) ([]repositories.TrainerRating, error) {
	ratings, err := s.feedbackRepo.TopRatedTrainers(limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return ratings, nil
}

func (s *FeedbackServiceImpl) GetBatchSummary(batchID string) (*repositories.BatchFeedbackSummary, error) {
	summary, err := s.feedbackRepo.SummarizeBatch(batchID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return summary, nil
}

func (s *FeedbackServiceImpl) GetTrainerRating(trainerID string) (float64, error) {
	if _, err := s.trainerRepo.FindByID(trainerID); err != nil {
		if errors.Is(err, repositories.ErrTrainerNotFound) {
			return 0, apperrors.ErrNotFound(err, "trainer not found")
		}
		return 0, apperrors.InternalError(err)
	}
	avg, err := s.feedbackRepo.AverageTrainerRating(trainerID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return avg, nil
}
