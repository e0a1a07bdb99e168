package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/college/skillbridge/internal/services"
	"github.com/college/skillbridge/internal/services/dto"
)

type StudentHandler struct {
	*BaseHandler
	studentService  services.StudentService
	recommendations services.RecommendationService
}

func NewStudentHandler(
	base *BaseHandler,
	studentService services.StudentService,
	recommendations services.RecommendationService,
) *StudentHandler {
	return &StudentHandler{
		BaseHandler:     base,
		studentService:  studentService,
		recommendations: recommendations,
	}
}

func (h *StudentHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc, requireStaff gin.HandlerFunc) {
	students := rg.Group("/students")
	students.Use(authRequired)
	{
		students.GET("", h.List)
		students.GET("/:id", h.Get)
		students.POST("", requireStaff, h.Create)
		students.POST("/:id/skills", h.AddSkills)
		students.POST("/:id/batches", requireStaff, h.AssignBatch)
		students.POST("/:id/batches/best-fit", requireStaff, h.AssignBestFit)
		students.GET("/:id/batches", h.BatchHistory)
		students.GET("/:id/recommend-batches", h.Recommendations)
	}
}

func (h *StudentHandler) List(c *gin.Context) {
	if skill := c.Query("skill"); skill != "" {
		students, err := h.studentService.FindBySkill(skill)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, students)
		return
	}

	students, err := h.studentService.ListStudents(c.Query("college_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.studentService.GetStudent(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	student, err := h.studentService.CreateStudent(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, student)
}

func (h *StudentHandler) AddSkills(c *gin.Context) {
	var req dto.AddSkillRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.studentService.AddSkills(c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skills updated"})
}

func (h *StudentHandler) AssignBatch(c *gin.Context) {
	var req dto.AssignBatchRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.studentService.AssignBatch(c.Param("id"), req.BatchID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Batch assigned"})
}

// AssignBestFit enrolls the student into their top-scoring batch and returns
// the chosen recommendation.
func (h *StudentHandler) AssignBestFit(c *gin.Context) {
	rec, err := h.studentService.AssignBestFitBatch(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *StudentHandler) BatchHistory(c *gin.Context) {
	history, err := h.studentService.GetBatchHistory(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// Recommendations returns the scored batch list for a student, best first.
func (h *StudentHandler) Recommendations(c *gin.Context) {
	recs, err := h.recommendations.RecommendBatches(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recs)
}
