package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"alphadash/internal/models"
	"alphadash/internal/repository"
	"alphadash/internal/service"
)

type ProjectHandler struct {
	Repo  repository.Repository
	Query *service.ProjectQueryService
}

// projectRequest is the validated write payload; the core only ever sees a
// models.Project built from it.
type projectRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Ticker    string `json:"ticker" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Side      string `json:"side" binding:"required,oneof=BUY SELL"`

	TotalShares *decimal.Decimal `json:"total_shares"`
	TotalAmount *decimal.Decimal `json:"total_amount"`

	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`

	PriceLimit         *decimal.Decimal `json:"price_limit"`
	PerformanceFeeRate *decimal.Decimal `json:"performance_fee_rate"`
	FixedFeeRate       *decimal.Decimal `json:"fixed_fee_rate"`

	BusinessDays     *int `json:"business_days"`
	EarliestDayCount *int `json:"earliest_day_count"`
	ExcludedDays     *int `json:"excluded_days"`

	Note    *string `json:"note"`
	Contact string  `json:"contact" binding:"required"`
}

func (r projectRequest) toModel() models.Project {
	projectID := strings.TrimSpace(r.ProjectID)
	return models.Project{
		ProjectID:          &projectID,
		Ticker:             strings.TrimSpace(r.Ticker),
		Name:               r.Name,
		Side:               r.Side,
		TotalShares:        r.TotalShares,
		TotalAmount:        r.TotalAmount,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		PriceLimit:         r.PriceLimit,
		PerformanceFeeRate: r.PerformanceFeeRate,
		FixedFeeRate:       r.FixedFeeRate,
		BusinessDays:       r.BusinessDays,
		EarliestDayCount:   r.EarliestDayCount,
		ExcludedDays:       r.ExcludedDays,
		Note:               r.Note,
		Contact:            r.Contact,
	}
}

func (h *ProjectHandler) Register(r *gin.Engine) {
	group := r.Group("/api/projects")
	group.GET("", h.list)
	group.POST("", h.create)
	group.GET("/:projectID", h.detail)
	group.PUT("/:projectID", h.update)
	group.DELETE("/:projectID", h.remove)
}

// @Summary List projects with execution progress
// @Tags projects
// @Success 200 {object} handler.apiResponse
// @Router /api/projects [get]
func (h *ProjectHandler) list(c *gin.Context) {
	if h.Query == nil {
		Error(c, http.StatusInternalServerError, "query service unavailable", nil)
		return
	}
	items, err := h.Query.ListProjectsWithProgress(c.Request.Context())
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}

// @Summary Project detail with enriched execution series and terminal summary
// @Tags projects
// @Param projectID path string true "parent order identifier"
// @Success 200 {object} handler.apiResponse
// @Router /api/projects/{projectID} [get]
func (h *ProjectHandler) detail(c *gin.Context) {
	if h.Query == nil {
		Error(c, http.StatusInternalServerError, "query service unavailable", nil)
		return
	}
	projectID := strings.TrimSpace(c.Param("projectID"))
	if projectID == "" {
		Error(c, http.StatusBadRequest, "invalid project id", nil)
		return
	}
	item, err := h.Query.ProjectDetail(c.Request.Context(), projectID)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "project not found", nil)
		return
	}
	Ok(c, item, nil)
}

// @Summary Create a project
// @Tags projects
// @Success 200 {object} handler.apiResponse
// @Router /api/projects [post]
func (h *ProjectHandler) create(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	existing, err := h.Repo.GetProjectByProjectID(c.Request.Context(), req.ProjectID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if existing != nil {
		Error(c, http.StatusConflict, "project id already exists", nil)
		return
	}
	item := req.toModel()
	if err := h.Repo.InsertProject(c.Request.Context(), &item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}

// @Summary Replace a project definition
// @Tags projects
// @Param projectID path string true "parent order identifier"
// @Success 200 {object} handler.apiResponse
// @Router /api/projects/{projectID} [put]
func (h *ProjectHandler) update(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	projectID := strings.TrimSpace(c.Param("projectID"))
	if projectID == "" {
		Error(c, http.StatusBadRequest, "invalid project id", nil)
		return
	}
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	existing, err := h.Repo.GetProjectByProjectID(c.Request.Context(), projectID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if existing == nil {
		Error(c, http.StatusNotFound, "project not found", nil)
		return
	}
	item := req.toModel()
	item.ID = existing.ID
	item.CreatedAt = existing.CreatedAt
	if err := h.Repo.UpdateProject(c.Request.Context(), &item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}

// @Summary Delete a project
// @Tags projects
// @Param projectID path string true "parent order identifier"
// @Success 200 {object} handler.apiResponse
// @Router /api/projects/{projectID} [delete]
func (h *ProjectHandler) remove(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	projectID := strings.TrimSpace(c.Param("projectID"))
	if projectID == "" {
		Error(c, http.StatusBadRequest, "invalid project id", nil)
		return
	}
	deleted, err := h.Repo.DeleteProjectByProjectID(c.Request.Context(), projectID)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if deleted == 0 {
		Error(c, http.StatusNotFound, "project not found", nil)
		return
	}
	Ok(c, map[string]any{"project_id": projectID, "deleted": deleted}, nil)
}
