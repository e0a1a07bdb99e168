package services

import (
	"errors"
	"strings"

	"github.com/college/skillbridge/internal/models"
	"github.com/college/skillbridge/internal/repositories"
	"github.com/college/skillbridge/internal/services/dto"
	"github.com/college/skillbridge/pkg/apperrors"
)

type CompanyService interface {
	GetCompany(id string) (*models.Company, error)
	ListCompanies() ([]models.Company, error)
	ListHiringCompanies() ([]models.Company, error)
	FindByDomain(domain string) ([]models.Company, error)
	CreateCompany(req *dto.CreateCompanyRequest) (*models.Company, error)
	DeleteCompany(id string) error
}

type CompanyServiceImpl struct {
	companyRepo repositories.CompanyRepository
}

func NewCompanyService(companyRepo repositories.CompanyRepository) CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo}
}

func (s *CompanyServiceImpl) GetCompany(id string) (*models.Company, error) {
	company, err := s.companyRepo.FindByIDWithProcesses(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err, "company not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *CompanyServiceImpl) ListCompanies() ([]models.Company, error) {
	companies, err := s.companyRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return companies, nil
}

func (s *CompanyServiceImpl) ListHiringCompanies() ([]models.Company, error) {
	companies, err := s.companyRepo.FindHiring()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return companies, nil
}

func (s *CompanyServiceImpl) FindByDomain(domain string) ([]models.Company, error) {
	companies, err := s.companyRepo.FindByDomainLike(domain)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return companies, nil
}

func (s *CompanyServiceImpl) CreateCompany(req *dto.CreateCompanyRequest) (*models.Company, error) {
	company := &models.Company{
		Name:   req.Name,
		Domain: req.Domain,
		Notes:  req.Notes,
	}
	if req.HiringType != "" {
		hiringType := models.HiringType(strings.ToUpper(req.HiringType))
		company.HiringType = &hiringType
	}
	for _, step := range req.Processes {
		company.HiringProcesses = append(company.HiringProcesses, models.CompanyHiringProcess{
			StepOrder:   step.StepOrder,
			Title:       step.Title,
			Description: step.Description,
		})
	}

	if err := s.companyRepo.Create(company); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *CompanyServiceImpl) DeleteCompany(id string) error {
	if err := s.companyRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return apperrors.ErrNotFound(err, "company not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
