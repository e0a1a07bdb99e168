package services

import (
	"errors"

	"github.com/college/skillbridge/internal/auth"
	"github.com/college/skillbridge/internal/models"
	"github.com/college/skillbridge/internal/repositories"
	"github.com/college/skillbridge/internal/services/dto"
	"github.com/college/skillbridge/pkg/apperrors"
)

type TrainerService interface {
	GetTrainer(id string) (*models.Trainer, error)
	ListTrainers(collegeID string) ([]models.Trainer, error)
	CreateTrainer(req *dto.CreateTrainerRequest) (*models.Trainer, error)
	GetTrainerBatches(trainerID string) ([]models.BatchTrainer, error)
	DeleteTrainer(id string) error
}

type TrainerServiceImpl struct {
	trainerRepo repositories.TrainerRepository
}

func NewTrainerService(trainerRepo repositories.TrainerRepository) TrainerService {
	return &TrainerServiceImpl{trainerRepo: trainerRepo}
}

func (s *TrainerServiceImpl) GetTrainer(id string) (*models.Trainer, error) {
	trainer, err := s.trainerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTrainerNotFound) {
			return nil, apperrors.ErrNotFound(err, "trainer not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return trainer, nil
}

func (s *TrainerServiceImpl) ListTrainers(collegeID string) ([]models.Trainer, error) {
	trainers, err := s.trainerRepo.FindAll(collegeID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return trainers, nil
}

func (s *TrainerServiceImpl) CreateTrainer(req *dto.CreateTrainerRequest) (*models.Trainer, error) {
	if !auth.ValidatePassword(req.Password) {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	trainer := &models.Trainer{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   hash,
		TeacherID:      req.TeacherID,
		Specialization: req.Specialization,
		Department:     req.Department,
		PhoneNumber:    req.PhoneNumber,
		Bio:            req.Bio,
	}
	if err := s.trainerRepo.Create(trainer); err != nil {
		if errors.Is(err, repositories.ErrDuplicateTeacherID) {
			return nil, apperrors.ErrTeacherIDAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return trainer, nil
}

func (s *TrainerServiceImpl) GetTrainerBatches(trainerID string) ([]models.BatchTrainer, error) {
	if _, err := s.trainerRepo.FindByID(trainerID); err != nil {
		if errors.Is(err, repositories.ErrTrainerNotFound) {
			return nil, apperrors.ErrNotFound(err, "trainer not found")
		}
		return nil, apperrors.InternalError(err)
	}
	links, err := s.trainerRepo.FindBatches(trainerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return links, nil
}

func (s *TrainerServiceImpl) DeleteTrainer(id string) error {
	if err := s.trainerRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrTrainerNotFound) {
			return apperrors.ErrNotFound(err, "trainer not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
