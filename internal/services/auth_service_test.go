package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/college/skillbridge/internal/auth"
	"github.com/college/skillbridge/internal/models"
	"github.com/college/skillbridge/internal/repositories"
	"github.com/college/skillbridge/internal/services/dto"
	"github.com/college/skillbridge/pkg/apperrors"
)

func registerStudent(t *testing.T, svc AuthService, email string) *dto.UserResponse {
	t.Helper()
	resp, err := svc.Register(&dto.RegisterRequest{
		Name:           "Test Student",
		Email:          email,
		Password:       "Passw0rd!",
		Role:           "STUDENT",
		RegisterNumber: "RN-" + email,
		Department:     "CSE",
		Year:           3,
	})
	require.NoError(t, err)
	return &resp.User
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db)

	user := registerStudent(t, svc, "alice@college.edu")
	assert.Equal(t, "alice@college.edu", user.Email)
	assert.Equal(t, "STUDENT", user.Role)

	resp, err := svc.Login(&dto.LoginRequest{Email: "alice@college.edu", Password: "Passw0rd!"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestRegisterIssuesTokenPair(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db)

	resp, err := svc.Register(&dto.RegisterRequest{
		Name:           "Fresh Signup",
		Email:          "fresh@college.edu",
		Password:       "Passw0rd!",
		Role:           "STUDENT",
		RegisterNumber: "RN-fresh",
		Department:     "CSE",
		Year:           2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "fresh@college.edu", resp.User.Email)

	// The session minted at registration is immediately usable.
	_, err = svc.Refresh(resp.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshUnknownTokenRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db)

	_, err := svc.Refresh("not-a-ledgered-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRegisterLowercasesEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db)

	user := registerStudent(t, svc, "Bob@College.EDU")
	assert.Equal(t, "bob@college.edu", user.Email)

	// Login works regardless of the casing the caller presents.
	_, err := svc.Login(&dto.LoginRequest{Email: "BOB@college.edu", Password: "Passw0rd!"})
	require.NoError(t, err)
}

func TestRegisterDuplicateEmailIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db)

	registerStudent(t, svc, "carol@college.edu")

	_, err := svc.Register(&dto.RegisterRequest{
		Name:           "Carol Again",
		Email:          "CAROL@college.edu",
		Password:       "Passw0rd!",
		Role:           "STUDENT",
		RegisterNumber: "RN-other",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db)

	_, err := svc.Register(&dto.RegisterRequest{
		Name:     "Weak",
		Email:    "weak@college.edu",
		Password: "short",
		Role:     "STUDENT",
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db)

	_, err := svc.Register(&dto.RegisterRequest{
		Name:     "Nobody",
		Email:    "nobody@college.edu",
		Password: "Passw0rd!",
		Role:     "SUPERUSER",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestRegisterSecondCollegeAdminRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db)

	_, err := svc.Register(&dto.RegisterRequest{
		Name:          "First Admin",
		Email:         "admin1@college.edu",
		Password:      "Passw0rd!",
		Role:          "ADMIN",
		CollegeDomain: "college.edu",
		CollegeName:   "Test College",
	})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{
		Name:          "Second Admin",
		Email:         "admin2@college.edu",
		Password:      "Passw0rd!",
		Role:          "ADMIN",
		CollegeDomain: "college.edu",
	})
	assert.ErrorIs(t, err, apperrors.ErrCollegeAdminExists)
}

func TestLoginUnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db)

	registerStudent(t, svc, "dave@college.edu")

	_, errUnknown := svc.Login(&dto.LoginRequest{Email: "ghost@college.edu", Password: "Passw0rd!"})
	_, errWrongPw := svc.Login(&dto.LoginRequest{Email: "dave@college.edu", Password: "Wrong0ne!"})

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestLoginThrottleBlocksAfterRepeatedFailures(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewStudentRepository(db),
		repositories.NewTrainerRepository(db),
		repositories.NewCollegeRepository(db),
		auth.NewTokenIssuer("test-secret", time.Hour),
		7*24*time.Hour,
		NewLoginAttemptTracker(3, time.Minute),
	)

	registerStudent(t, svc, "eve@college.edu")

	for i := 0; i < 3; i++ {
		_, err := svc.Login(&dto.LoginRequest{Email: "eve@college.edu", Password: "Wrong0ne!"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	// Even the correct password is rejected while blocked.
	_, err := svc.Login(&dto.LoginRequest{Email: "eve@college.edu", Password: "Passw0rd!"})
	assert.ErrorIs(t, err, apperrors.ErrTooManyLoginAttempts)
}

func TestLoginKeepsSingleActiveRefreshToken(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db)

	registerStudent(t, svc, "frank@college.edu")

	first, err := svc.Login(&dto.LoginRequest{Email: "frank@college.edu", Password: "Passw0rd!"})
	require.NoError(t, err)
	second, err := svc.Login(&dto.LoginRequest{Email: "frank@college.edu", Password: "Passw0rd!"})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.RefreshToken{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// The first token was replaced by the second login.
	_, err = svc.Refresh(first.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = svc.Refresh(second.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db)

	registerStudent(t, svc, "grace@college.edu")
	login, err := svc.Login(&dto.LoginRequest{Email: "grace@college.edu", Password: "Passw0rd!"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The presented token is retired by the rotation.
	_, err = svc.Refresh(login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefreshExpiredTokenIsPurged(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db)

	registerStudent(t, svc, "henry@college.edu")
	login, err := svc.Login(&dto.LoginRequest{Email: "henry@college.edu", Password: "Passw0rd!"})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.RefreshToken{}).
		Where("token = ?", login.RefreshToken).
		Update("expires_at", time.Now().Add(-time.Hour)).Error)

	_, err = svc.Refresh(login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrRefreshTokenExpired)

	var count int64
	require.NoError(t, db.Model(&models.RefreshToken{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestLogoutIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db)

	registerStudent(t, svc, "iris@college.edu")
	login, err := svc.Login(&dto.LoginRequest{Email: "iris@college.edu", Password: "Passw0rd!"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(login.RefreshToken))
	require.NoError(t, svc.Logout(login.RefreshToken))
	require.NoError(t, svc.Logout(""))

	_, err = svc.Refresh(login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestGetCurrentUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(t, db)

	registered := registerStudent(t, svc, "judy@college.edu")

	user, err := svc.GetCurrentUser("judy@college.edu")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = svc.GetCurrentUser("missing@college.edu")
	require.Error(t, err)
}
