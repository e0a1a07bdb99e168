package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/college/skillbridge/internal/app"
	"github.com/college/skillbridge/internal/config"
	"github.com/college/skillbridge/internal/database"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	secure := true
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTTLHours = 24
	cfg.JWT.RefreshTTLHours = 168
	cfg.Cookies = config.CookieConfig{
		AccessName:  "SB_ACCESS",
		RefreshName: "SB_REFRESH",
		Secure:      &secure,
		SameSite:    "Strict",
	}
	cfg.Recommendation = config.RecommendationConfig{
		EligibleStatuses: []string{"ACTIVE"},
		Limit:            5,
		CacheTTLMinutes:  5,
	}
	cfg.LoginThrottle = config.LoginThrottleConfig{MaxAttempts: 5, BlockMinutes: 30}

	return app.SetupRouter(cfg, db)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, router *gin.Engine, email string) []*http.Cookie {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"name":            "Test User",
		"email":           email,
		"password":        "Passw0rd!",
		"role":            "STUDENT",
		"register_number": "RN-" + email,
		"department":      "CSE",
		"year":            3,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    email,
		"password": "Passw0rd!",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	return rec.Result().Cookies()
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestRegisterSetsAuthCookiesAndStripsBodyTokens(t *testing.T) {
	router := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"name":            "New User",
		"email":           "newuser@college.edu",
		"password":        "Passw0rd!",
		"role":            "STUDENT",
		"register_number": "RN-new",
		"department":      "CSE",
		"year":            1,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	cookies := rec.Result().Cookies()
	access := findCookie(cookies, "SB_ACCESS")
	refresh := findCookie(cookies, "SB_REFRESH")
	require.NotNil(t, access, "register must set the access cookie")
	require.NotNil(t, refresh, "register must set the refresh cookie")
	for _, c := range []*http.Cookie{access, refresh} {
		assert.True(t, c.HttpOnly)
		assert.NotEmpty(t, c.Value)
		assert.Positive(t, c.MaxAge)
	}

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "access_token")
	assert.NotContains(t, body, "refresh_token")
	assert.Contains(t, body, "user")

	// The fresh session works without a separate login.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", nil, cookies)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRoleRegisterEndpointsSetAuthCookies(t *testing.T) {
	router := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/trainer/register", gin.H{
		"name":       "New Trainer",
		"email":      "trainer@college.edu",
		"password":   "Passw0rd!",
		"teacher_id": "T-42",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.NotNil(t, findCookie(cookies, "SB_ACCESS"))
	require.NotNil(t, findCookie(cookies, "SB_REFRESH"))

	rec = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "TRAINER", body["role"])
}

func TestLoginSetsAuthCookiesAndStripsBodyTokens(t *testing.T) {
	router := setupTestRouter(t)
	cookies := registerAndLogin(t, router, "alice@college.edu")

	access := findCookie(cookies, "SB_ACCESS")
	refresh := findCookie(cookies, "SB_REFRESH")
	require.NotNil(t, access)
	require.NotNil(t, refresh)

	for _, c := range []*http.Cookie{access, refresh} {
		assert.True(t, c.HttpOnly, "%s must be HttpOnly", c.Name)
		assert.True(t, c.Secure, "%s must be Secure", c.Name)
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
		assert.NotEmpty(t, c.Value)
		assert.Positive(t, c.MaxAge)
	}
	assert.Equal(t, 24*3600, access.MaxAge)
	assert.Equal(t, 168*3600, refresh.MaxAge)
}

func TestLoginResponseBodyHasNoTokens(t *testing.T) {
	router := setupTestRouter(t)
	registerAndLogin(t, router, "bob@college.edu")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "bob@college.edu",
		"password": "Passw0rd!",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "access_token")
	assert.NotContains(t, body, "refresh_token")
	assert.Contains(t, body, "user")
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := setupTestRouter(t)
	registerAndLogin(t, router, "carol@college.edu")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "carol@college.edu",
		"password": "Wrong0ne!",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshRotatesCookies(t *testing.T) {
	router := setupTestRouter(t)
	cookies := registerAndLogin(t, router, "dave@college.edu")
	oldRefresh := findCookie(cookies, "SB_REFRESH")
	require.NotNil(t, oldRefresh)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/refresh", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	newCookies := rec.Result().Cookies()
	newRefresh := findCookie(newCookies, "SB_REFRESH")
	require.NotNil(t, newRefresh)
	assert.NotEqual(t, oldRefresh.Value, newRefresh.Value)
	require.NotNil(t, findCookie(newCookies, "SB_ACCESS"))

	// The old refresh cookie was retired by the rotation.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/refresh", nil, []*http.Cookie{oldRefresh})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshIgnoresBodyToken(t *testing.T) {
	router := setupTestRouter(t)
	cookies := registerAndLogin(t, router, "erin@college.edu")
	refresh := findCookie(cookies, "SB_REFRESH")
	require.NotNil(t, refresh)

	// A valid token in the body is not accepted without the cookie.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/refresh", gin.H{
		"refresh_token": refresh.Value,
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshWithoutCookie(t *testing.T) {
	router := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/refresh", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutClearsCookiesAndIsIdempotent(t *testing.T) {
	router := setupTestRouter(t)
	cookies := registerAndLogin(t, router, "fred@college.edu")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	cleared := rec.Result().Cookies()
	for _, name := range []string{"SB_ACCESS", "SB_REFRESH"} {
		c := findCookie(cleared, name)
		require.NotNil(t, c, "logout must clear %s", name)
		assert.Empty(t, c.Value)
		assert.Negative(t, c.MaxAge)
	}

	// Second logout with the same (now dead) cookies still succeeds.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", nil, cookies)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The refresh token no longer works.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/refresh", nil, cookies)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeRequiresAuth(t *testing.T) {
	router := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeReturnsCurrentUser(t *testing.T) {
	router := setupTestRouter(t)
	cookies := registerAndLogin(t, router, "gina@college.edu")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "gina@college.edu", body["email"])
	assert.Equal(t, "STUDENT", body["role"])
}

func TestMeAcceptsBearerHeader(t *testing.T) {
	router := setupTestRouter(t)
	cookies := registerAndLogin(t, router, "hugo@college.edu")
	access := findCookie(cookies, "SB_ACCESS")
	require.NotNil(t, access)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+access.Value)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRegisterValidation(t *testing.T) {
	router := setupTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"name":     "No Email",
		"password": "Passw0rd!",
		"role":     "STUDENT",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"name":     "Bad Role",
		"email":    "badrole@college.edu",
		"password": "Passw0rd!",
		"role":     "WIZARD",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDuplicateRegistrationConflict(t *testing.T) {
	router := setupTestRouter(t)
	registerAndLogin(t, router, "iris@college.edu")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"name":            "Iris Again",
		"email":           "IRIS@college.edu",
		"password":        "Passw0rd!",
		"role":            "STUDENT",
		"register_number": "RN-other",
	}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestProtectedRoutesRequireRole(t *testing.T) {
	router := setupTestRouter(t)
	cookies := registerAndLogin(t, router, "judy@college.edu")

	// A student cannot create batches.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/batches", gin.H{
		"name":           "Forbidden Batch",
		"duration_weeks": 8,
		"status":         "ACTIVE",
	}, cookies)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Unauthenticated requests never reach the handler.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/batches", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
