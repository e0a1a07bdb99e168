package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAdmin(t *testing.T, router *gin.Engine, email string) []*http.Cookie {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"name":     "Admin",
		"email":    email,
		"password": "Passw0rd!",
		"role":     "ADMIN",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    email,
		"password": "Passw0rd!",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return rec.Result().Cookies()
}

func TestStudentRecommendationFlow(t *testing.T) {
	router := setupTestRouter(t)
	admin := registerAdmin(t, router, "admin@college.edu")

	// Admin creates a company and a batch with a syllabus.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/companies", gin.H{
		"name":        "GoCorp",
		"domain":      "go, cloud",
		"hiring_type": "BOTH",
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var company map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &company))

	rec = doJSON(t, router, http.MethodPost, "/api/v1/batches", gin.H{
		"name":           "Backend Bootcamp",
		"duration_weeks": 12,
		"status":         "ACTIVE",
		"company_ids":    []string{company["id"].(string)},
		"syllabus": gin.H{
			"title": "Backend Track",
			"topics": []gin.H{
				{"name": "Go", "technologies": "go, gin"},
				{"name": "Databases", "technologies": "postgresql, sql"},
			},
		},
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var batch map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &batch))

	// Admin creates a student with a matching skill.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/students", gin.H{
		"name":            "Sam Student",
		"email":           "sam@college.edu",
		"password":        "Passw0rd!",
		"register_number": "RN-1001",
		"department":      "CSE",
		"year":            3,
		"skills": []gin.H{
			{"name": "go", "level": "ADVANCED"},
		},
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var student map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &student))
	studentID := student["id"].(string)

	// Recommendations rank the batch with reasons attached.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/students/"+studentID+"/recommend-batches", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var recs []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "Backend Bootcamp", recs[0]["batch_name"])
	assert.Positive(t, recs[0]["total_score"].(float64))
	assert.NotEmpty(t, recs[0]["match_reasons"])

	// Enrolling the student updates their history.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/students/"+studentID+"/batches", gin.H{
		"batch_id": batch["id"].(string),
	}, admin)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/students/"+studentID+"/batches", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var history []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "Backend Bootcamp", history[0]["batch_name"])

	// Double enrollment is rejected.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/students/"+studentID+"/batches", gin.H{
		"batch_id": batch["id"].(string),
	}, admin)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStudentSkillSearch(t *testing.T) {
	router := setupTestRouter(t)
	admin := registerAdmin(t, router, "admin2@college.edu")

	for _, s := range []gin.H{
		{"name": "Gopher", "email": "gopher@college.edu", "register_number": "RN-1", "skills": []gin.H{{"name": "go", "level": "ADVANCED"}}},
		{"name": "Snake", "email": "snake@college.edu", "register_number": "RN-2", "skills": []gin.H{{"name": "python", "level": "BEGINNER"}}},
	} {
		s["password"] = "Passw0rd!"
		s["department"] = "CSE"
		s["year"] = 2
		rec := doJSON(t, router, http.MethodPost, "/api/v1/students", s, admin)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doJSON(t, router, http.MethodGet, "/api/v1/students?skill=go", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)

	var students []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &students))
	require.Len(t, students, 1)
	assert.Equal(t, "Gopher", students[0]["name"])
}
