package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/college/skillbridge/internal/services"
	"github.com/college/skillbridge/internal/services/dto"
)

type FeedbackHandler struct {
	*BaseHandler
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(base *BaseHandler, feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		BaseHandler:     base,
		feedbackService: feedbackService,
	}
}

func (h *FeedbackHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc, requireTrainer, requireStudent gin.HandlerFunc) {
	feedback := rg.Group("/feedback")
	feedback.Use(authRequired)
	{
		feedback.POST("/trainers/:id", requireTrainer, h.LeaveTrainerFeedback)
		feedback.POST("/students/:id", requireStudent, h.LeaveStudentFeedback)
		feedback.GET("/students/:id", h.StudentFeedback)
		feedback.GET("/trainers/:id", h.TrainerFeedback)
		feedback.GET("/top-trainers", h.TopTrainers)
		feedback.GET("/batches/:id", h.BatchSummary)
	}
}

// LeaveTrainerFeedback lets the trainer in the path leave feedback about a
// student named in the body.
func (h *FeedbackHandler) LeaveTrainerFeedback(c *gin.Context) {
	var req dto.FeedbackRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.feedbackService.LeaveTrainerFeedback(c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Feedback recorded"})
}

// LeaveStudentFeedback lets the student in the path leave feedback about a
// trainer named in the body.
func (h *FeedbackHandler) LeaveStudentFeedback(c *gin.Context) {
	var req dto.FeedbackRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.feedbackService.LeaveStudentFeedback(c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Feedback recorded"})
}

func (h *FeedbackHandler) TopTrainers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	ratings, err := h.feedbackService.GetTopRatedTrainers(limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

func (h *FeedbackHandler) BatchSummary(c *gin.Context) {
	summary, err := h.feedbackService.GetBatchSummary(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *FeedbackHandler) StudentFeedback(c *gin.Context) {
	feedback, err := h.feedbackService.GetStudentFeedback(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

func (h *FeedbackHandler) TrainerFeedback(c *gin.Context) {
	feedback, err := h.feedbackService.GetTrainerFeedback(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}
