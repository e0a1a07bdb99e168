package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/college/skillbridge/internal/services"
	"github.com/college/skillbridge/internal/services/dto"
)

type BatchHandler struct {
	*BaseHandler
	batchService services.BatchService
}

func NewBatchHandler(base *BaseHandler, batchService services.BatchService) *BatchHandler {
	return &BatchHandler{
		BaseHandler:  base,
		batchService: batchService,
	}
}

func (h *BatchHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc, requireAdmin gin.HandlerFunc) {
	batches := rg.Group("/batches")
	batches.Use(authRequired)
	{
		batches.GET("", h.List)
		batches.GET("/:id", h.Get)
		batches.POST("", requireAdmin, h.Create)
		batches.PATCH("/:id/status", requireAdmin, h.UpdateStatus)
		batches.POST("/:id/trainers", requireAdmin, h.AssignTrainer)
		batches.POST("/:id/companies", requireAdmin, h.MapCompany)
		batches.DELETE("/:id", requireAdmin, h.Delete)
	}
}

func (h *BatchHandler) List(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		batches, err := h.batchService.ListBatchesByStatus(status)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, batches)
		return
	}

	batches, err := h.batchService.ListBatches()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, batches)
}

func (h *BatchHandler) Get(c *gin.Context) {
	batch, err := h.batchService.GetBatch(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, batch)
}

func (h *BatchHandler) Create(c *gin.Context) {
	var req dto.CreateBatchRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	batch, err := h.batchService.CreateBatch(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, batch)
}

func (h *BatchHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateBatchStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	batch, err := h.batchService.UpdateStatus(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, batch)
}

func (h *BatchHandler) AssignTrainer(c *gin.Context) {
	var req dto.AssignTrainerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.batchService.AssignTrainer(c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Trainer assigned"})
}

func (h *BatchHandler) MapCompany(c *gin.Context) {
	var req dto.MapCompanyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.batchService.MapCompany(c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Company mapped"})
}

func (h *BatchHandler) Delete(c *gin.Context) {
	if err := h.batchService.DeleteBatch(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Batch deleted"})
}
