package services

import (
	"errors"
	"strings"
	"time"

	"github.com/college/skillbridge/internal/auth"
	"github.com/college/skillbridge/internal/logger"
	"github.com/college/skillbridge/internal/models"
	"github.com/college/skillbridge/internal/repositories"
	"github.com/college/skillbridge/internal/services/dto"
	"github.com/college/skillbridge/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(refreshToken string) (*dto.RefreshResponse, error)
	Logout(refreshToken string) error
	GetCurrentUser(email string) (*dto.UserResponse, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	studentRepo repositories.StudentRepository
	trainerRepo repositories.TrainerRepository
	collegeRepo repositories.CollegeRepository
	issuer      *auth.TokenIssuer
	refreshTTL  time.Duration
	attempts    *LoginAttemptTracker
}

func NewAuthService(
	userRepo repositories.UserRepository,
	studentRepo repositories.StudentRepository,
	trainerRepo repositories.TrainerRepository,
	collegeRepo repositories.CollegeRepository,
	issuer *auth.TokenIssuer,
	refreshTTL time.Duration,
	attempts *LoginAttemptTracker,
) AuthService {
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &AuthServiceImpl{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		trainerRepo: trainerRepo,
		collegeRepo: collegeRepo,
		issuer:      issuer,
		refreshTTL:  refreshTTL,
		attempts:    attempts,
	}
}

func (s *AuthServiceImpl) AccessTTL() time.Duration  { return s.issuer.TTL() }
func (s *AuthServiceImpl) RefreshTTL() time.Duration { return s.refreshTTL }

// Register creates the account and signs the caller in: the response carries
// the same token pair and profile shape as Login.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	role := models.Role(strings.ToUpper(req.Role))
	if !models.ValidRole(role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	if !auth.ValidatePassword(req.Password) {
		return nil, apperrors.ErrWeakPassword
	}

	college, err := s.resolveCollege(req)
	if err != nil {
		return nil, err
	}

	if role == models.RoleAdmin && college != nil {
		count, err := s.userRepo.CountByRoleAndCollege(models.RoleAdmin, college.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if count > 0 {
			return nil, apperrors.ErrCollegeAdminExists
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if college != nil {
		user.CollegeID = &college.ID
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.createRoleProfile(user, req); err != nil {
		// The credential row is useless without its profile.
		if delErr := s.userRepo.Delete(user.ID); delErr != nil {
			logger.WithError(delErr).Error("failed to roll back user after profile creation failure")
		}
		return nil, err
	}

	logger.With("email", user.Email, "role", string(role)).Info("account registered")

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		TokenPair: *pair,
		User:      *toUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) resolveCollege(req *dto.RegisterRequest) (*models.College, error) {
	if req.CollegeDomain == "" {
		return nil, nil
	}
	name := req.CollegeName
	if name == "" {
		name = req.CollegeDomain
	}
	college, err := s.collegeRepo.FindOrCreateByDomain(req.CollegeDomain, name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return college, nil
}

func (s *AuthServiceImpl) createRoleProfile(user *models.User, req *dto.RegisterRequest) error {
	switch user.Role {
	case models.RoleStudent:
		student := &models.Student{
			Name:           req.Name,
			Email:          user.Email,
			PasswordHash:   user.PasswordHash,
			RegisterNumber: req.RegisterNumber,
			Department:     req.Department,
			Year:           req.Year,
			CollegeID:      user.CollegeID,
		}
		if err := s.studentRepo.Create(student); err != nil {
			if errors.Is(err, repositories.ErrDuplicateRegister) {
				return apperrors.ErrRegisterNumberAlreadyExists
			}
			return apperrors.InternalError(err)
		}
	case models.RoleTrainer:
		trainer := &models.Trainer{
			Name:           req.Name,
			Email:          user.Email,
			PasswordHash:   user.PasswordHash,
			TeacherID:      req.TeacherID,
			Specialization: req.Specialization,
			CollegeID:      user.CollegeID,
		}
		if err := s.trainerRepo.Create(trainer); err != nil {
			if errors.Is(err, repositories.ErrDuplicateTeacherID) {
				return apperrors.ErrTeacherIDAlreadyExists
			}
			return apperrors.InternalError(err)
		}
	}
	return nil
}

// Login authenticates and mints a token pair. Unknown email and wrong
// password produce the same error so the response cannot be used to probe
// which addresses have accounts.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.attempts != nil && s.attempts.IsBlocked(req.Email) {
		return nil, apperrors.ErrTooManyLoginAttempts
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.recordFailure(req.Email)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.recordFailure(req.Email)
		return nil, apperrors.ErrInvalidCredentials
	}

	if s.attempts != nil {
		s.attempts.Reset(req.Email)
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	logger.With("email", user.Email).Info("login succeeded")

	return &dto.LoginResponse{
		TokenPair: *pair,
		User:      *toUserResponse(user),
	}, nil
}

// Refresh rotates the refresh token: the presented token is retired and a new
// pair is issued in its place. An expired token is removed from the ledger
// before the caller is rejected.
func (s *AuthServiceImpl) Refresh(refreshToken string) (*dto.RefreshResponse, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrInvalidToken
	}

	record, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	if time.Now().After(record.ExpiresAt) {
		if delErr := s.userRepo.DeleteRefreshToken(record.Token); delErr != nil {
			logger.WithError(delErr).Warn("failed to purge expired refresh token")
		}
		return nil, apperrors.ErrRefreshTokenExpired
	}

	user, err := s.userRepo.FindByID(record.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{TokenPair: *pair}, nil
}

// Logout retires the presented refresh token. Unknown tokens are not an
// error; logging out twice is fine.
func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) GetCurrentUser(email string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return toUserResponse(user), nil
}

func (s *AuthServiceImpl) issueTokenPair(user *models.User) (*dto.TokenPair, error) {
	access, err := s.issuer.Issue(user.Email, []string{string(user.Role)})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Rotation keeps at most one live refresh token per user.
	if _, err := s.userRepo.ReplaceRefreshToken(user.ID, refresh, time.Now().Add(s.refreshTTL)); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthServiceImpl) recordFailure(email string) {
	if s.attempts != nil {
		s.attempts.RecordFailure(email)
	}
}

func toUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CollegeID: user.CollegeID,
	}
}
