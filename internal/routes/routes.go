package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/college/skillbridge/internal/handlers"
	"github.com/college/skillbridge/internal/models"
)

// AppHandlers groups every HTTP handler the router mounts.
type AppHandlers struct {
	Auth     *handlers.AuthHandler
	Student  *handlers.StudentHandler
	Batch    *handlers.BatchHandler
	Company  *handlers.CompanyHandler
	Trainer  *handlers.TrainerHandler
	Feedback *handlers.FeedbackHandler
}

// Middlewares carries the auth building blocks the route groups compose.
type Middlewares struct {
	AuthRequired   gin.HandlerFunc
	RequireAdmin   gin.HandlerFunc
	RequireStaff   gin.HandlerFunc
	RequireTrainer gin.HandlerFunc
	RequireStudent gin.HandlerFunc
}

func NewMiddlewares(authRequired gin.HandlerFunc, requireRoles func(...models.Role) gin.HandlerFunc) Middlewares {
	return Middlewares{
		AuthRequired:   authRequired,
		RequireAdmin:   requireRoles(models.RoleAdmin),
		RequireStaff:   requireRoles(models.RoleAdmin, models.RoleTrainer),
		RequireTrainer: requireRoles(models.RoleTrainer),
		RequireStudent: requireRoles(models.RoleStudent),
	}
}

func RegisterRoutes(router *gin.Engine, h *AppHandlers, mw Middlewares) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		h.Auth.RegisterRoutes(api, mw.AuthRequired)
		h.Student.RegisterRoutes(api, mw.AuthRequired, mw.RequireStaff)
		h.Batch.RegisterRoutes(api, mw.AuthRequired, mw.RequireAdmin)
		h.Company.RegisterRoutes(api, mw.AuthRequired, mw.RequireAdmin)
		h.Trainer.RegisterRoutes(api, mw.AuthRequired, mw.RequireAdmin)
		h.Feedback.RegisterRoutes(api, mw.AuthRequired, mw.RequireTrainer, mw.RequireStudent)
	}
}
