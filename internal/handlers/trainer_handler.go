package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/college/skillbridge/internal/services"
	"github.com/college/skillbridge/internal/services/dto"
)

type TrainerHandler struct {
	*BaseHandler
	trainerService  services.TrainerService
	feedbackService services.FeedbackService
}

func NewTrainerHandler(
	base *BaseHandler,
	trainerService services.TrainerService,
	feedbackService services.FeedbackService,
) *TrainerHandler {
	return &TrainerHandler{
		BaseHandler:     base,
		trainerService:  trainerService,
		feedbackService: feedbackService,
	}
}

func (h *TrainerHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc, requireAdmin gin.HandlerFunc) {
	trainers := rg.Group("/trainers")
	trainers.Use(authRequired)
	{
		trainers.GET("", h.List)
		trainers.GET("/:id", h.Get)
		trainers.POST("", requireAdmin, h.Create)
		trainers.GET("/:id/batches", h.Batches)
		trainers.GET("/:id/rating", h.Rating)
		trainers.DELETE("/:id", requireAdmin, h.Delete)
	}
}

func (h *TrainerHandler) List(c *gin.Context) {
	trainers, err := h.trainerService.ListTrainers(c.Query("college_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainers)
}

func (h *TrainerHandler) Get(c *gin.Context) {
	trainer, err := h.trainerService.GetTrainer(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainer)
}

func (h *TrainerHandler) Create(c *gin.Context) {
	var req dto.CreateTrainerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	trainer, err := h.trainerService.CreateTrainer(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trainer)
}

func (h *TrainerHandler) Batches(c *gin.Context) {
	batches, err := h.trainerService.GetTrainerBatches(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, batches)
}

func (h *TrainerHandler) Rating(c *gin.Context) {
	rating, err := h.feedbackService.GetTrainerRating(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trainer_id": c.Param("id"), "average_rating": rating})
}

func (h *TrainerHandler) Delete(c *gin.Context) {
	if err := h.trainerService.DeleteTrainer(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trainer deleted"})
}
