package services

import (
	"errors"
	"strings"

	"github.com/college/skillbridge/internal/models"
	"github.com/college/skillbridge/internal/repositories"
	"github.com/college/skillbridge/internal/services/dto"
	"github.com/college/skillbridge/pkg/apperrors"
)

type BatchService interface {
	GetBatch(id string) (*models.Batch, error)
	ListBatches() ([]models.Batch, error)
	ListBatchesByStatus(status string) ([]models.Batch, error)
	CreateBatch(req *dto.CreateBatchRequest) (*models.Batch, error)
	UpdateStatus(id string, req *dto.UpdateBatchStatusRequest) (*models.Batch, error)
	AssignTrainer(batchID string, req *dto.AssignTrainerRequest) error
	MapCompany(batchID string, req *dto.MapCompanyRequest) error
	DeleteBatch(id string) error
}

type BatchServiceImpl struct {
	batchRepo   repositories.BatchRepository
	trainerRepo repositories.TrainerRepository
	companyRepo repositories.CompanyRepository
}

func NewBatchService(
	batchRepo repositories.BatchRepository,
	trainerRepo repositories.TrainerRepository,
	companyRepo repositories.CompanyRepository,
) BatchService {
	return &BatchServiceImpl{
		batchRepo:   batchRepo,
		trainerRepo: trainerRepo,
		companyRepo: companyRepo,
	}
}

func (s *BatchServiceImpl) GetBatch(id string) (*models.Batch, error) {
	batch, err := s.batchRepo.FindByIDWithDetails(id)
	if err != nil {
		if errors.Is(err, repositories.ErrBatchNotFound) {
			return nil, apperrors.ErrNotFound(err, "batch not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return batch, nil
}

func (s *BatchServiceImpl) ListBatches() ([]models.Batch, error) {
	batches, err := s.batchRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return batches, nil
}

func (s *BatchServiceImpl) ListBatchesByStatus(status string) ([]models.Batch, error) {
	parsed := models.BatchStatus(strings.ToUpper(status))
	if !models.ValidBatchStatus(parsed) {
		return nil, apperrors.NewBadRequestError("Unknown batch status: " + status)
	}
	batches, err := s.batchRepo.FindByStatusIn([]models.BatchStatus{parsed})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return batches, nil
}

func (s *BatchServiceImpl) CreateBatch(req *dto.CreateBatchRequest) (*models.Batch, error) {
	batch := &models.Batch{
		Name:          req.Name,
		Description:   req.Description,
		DurationWeeks: req.DurationWeeks,
		Status:        models.BatchStatus(strings.ToUpper(req.Status)),
	}

	if req.Syllabus != nil {
		syllabus := &models.Syllabus{
			Title:       req.Syllabus.Title,
			Description: req.Syllabus.Description,
		}
		for _, topic := range req.Syllabus.Topics {
			syllabus.Topics = append(syllabus.Topics, models.SyllabusTopic{
				Name:         topic.Name,
				Description:  topic.Description,
				Technologies: topic.Technologies,
			})
		}
		if err := s.batchRepo.CreateSyllabus(syllabus); err != nil {
			return nil, apperrors.InternalError(err)
		}
		batch.SyllabusID = &syllabus.ID
	}

	if err := s.batchRepo.Create(batch); err != nil {
		return nil, apperrors.InternalError(err)
	}

	for _, trainerID := range req.TrainerIDs {
		if err := s.AssignTrainer(batch.ID, &dto.AssignTrainerRequest{TrainerID: trainerID}); err != nil {
			return nil, err
		}
	}
	for _, companyID := range req.CompanyIDs {
		if err := s.MapCompany(batch.ID, &dto.MapCompanyRequest{CompanyID: companyID}); err != nil {
			return nil, err
		}
	}

	return s.batchRepo.FindByIDWithDetails(batch.ID)
}

func (s *BatchServiceImpl) UpdateStatus(id string, req *dto.UpdateBatchStatusRequest) (*models.Batch, error) {
	batch, err := s.batchRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrBatchNotFound) {
			return nil, apperrors.ErrNotFound(err, "batch not found")
		}
		return nil, apperrors.InternalError(err)
	}

	batch.Status = models.BatchStatus(strings.ToUpper(req.Status))
	if err := s.batchRepo.Update(batch); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return batch, nil
}

func (s *BatchServiceImpl) AssignTrainer(batchID string, req *dto.AssignTrainerRequest) error {
	if _, err := s.batchRepo.FindByID(batchID); err != nil {
		if errors.Is(err, repositories.ErrBatchNotFound) {
			return apperrors.ErrNotFound(err, "batch not found")
		}
		return apperrors.InternalError(err)
	}
	if _, err := s.trainerRepo.FindByID(req.TrainerID); err != nil {
		if errors.Is(err, repositories.ErrTrainerNotFound) {
			return apperrors.ErrNotFound(err, "trainer not found")
		}
		return apperrors.InternalError(err)
	}

	link := &models.BatchTrainer{
		BatchID:         batchID,
		TrainerID:       req.TrainerID,
		RoleDescription: req.RoleDescription,
	}
	if err := s.batchRepo.AssignTrainer(link); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *BatchServiceImpl) MapCompany(batchID string, req *dto.MapCompanyRequest) error {
	if _, err := s.batchRepo.FindByID(batchID); err != nil {
		if errors.Is(err, repositories.ErrBatchNotFound) {
			return apperrors.ErrNotFound(err, "batch not found")
		}
		return apperrors.InternalError(err)
	}
	if _, err := s.companyRepo.FindByID(req.CompanyID); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return apperrors.ErrNotFound(err, "company not found")
		}
		return apperrors.InternalError(err)
	}

	link := &models.BatchCompanyMapping{
		BatchID:   batchID,
		CompanyID: req.CompanyID,
	}
	if err := s.batchRepo.MapCompany(link); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *BatchServiceImpl) DeleteBatch(id string) error {
	if err := s.batchRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrBatchNotFound) {
			return apperrors.ErrNotFound(err, "batch not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
