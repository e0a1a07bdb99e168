package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/college/skillbridge/internal/services"
	"github.com/college/skillbridge/internal/services/dto"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc, requireAdmin gin.HandlerFunc) {
	companies := rg.Group("/companies")
	companies.Use(authRequired)
	{
		companies.GET("", h.List)
		companies.GET("/:id", h.Get)
		companies.POST("", requireAdmin, h.Create)
		companies.DELETE("/:id", requireAdmin, h.Delete)
	}
}

func (h *CompanyHandler) List(c *gin.Context) {
	if domain := c.Query("domain"); domain != "" {
		companies, err := h.companyService.FindByDomain(domain)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, companies)
		return
	}

	if c.Query("hiring") == "true" {
		companies, err := h.companyService.ListHiringCompanies()
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, companies)
		return
	}

	companies, err := h.companyService.ListCompanies()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.companyService.GetCompany(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	company, err := h.companyService.CreateCompany(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.companyService.DeleteCompany(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted"})
}
