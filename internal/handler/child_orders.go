package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"alphadash/internal/models"
	"alphadash/internal/repository"
)

type ChildOrderHandler struct {
	Repo repository.Repository
}

// childOrderRequest carries a full record; updates replace every field, there
// are no partial patches.
type childOrderRequest struct {
	ParentOrderID string           `json:"parent_order_id" binding:"required"`
	TradeDate     string           `json:"trade_date" binding:"required"`
	ExecQty       *decimal.Decimal `json:"exec_qty" binding:"required"`
	AvgPx         *decimal.Decimal `json:"avg_px" binding:"required"`
	VwapPx        *decimal.Decimal `json:"vwap_px" binding:"required"`
}

func (h *ChildOrderHandler) Register(r *gin.Engine) {
	group := r.Group("/api/child-orders")
	group.GET("", h.list)
	group.POST("", h.create)
	group.PUT("/:id", h.update)
	group.DELETE("/:id", h.remove)
}

// @Summary List child order records
// @Tags child-orders
// @Param parent_order_id query string false "filter by parent order"
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {object} handler.apiResponse
// @Router /api/child-orders [get]
func (h *ChildOrderHandler) list(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	params := repository.ListChildOrdersParams{
		ParentOrderID: strQueryPtr(c, "parent_order_id"),
		Limit:         intQuery(c, "limit", 100),
		Offset:        intQuery(c, "offset", 0),
	}
	items, err := h.Repo.ListChildOrders(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	total, err := h.Repo.CountChildOrders(c.Request.Context(), params)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, paginationMeta(params.Limit, params.Offset, total))
}

// @Summary Append a child order record
// @Tags child-orders
// @Success 200 {object} handler.apiResponse
// @Router /api/child-orders [post]
func (h *ChildOrderHandler) create(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	var req childOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	item := models.ChildOrder{
		ParentOrderID: strings.TrimSpace(req.ParentOrderID),
		TradeDate:     strings.TrimSpace(req.TradeDate),
		ExecQty:       req.ExecQty,
		AvgPx:         req.AvgPx,
		VwapPx:        req.VwapPx,
	}
	if err := h.Repo.InsertChildOrder(c.Request.Context(), &item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}

// @Summary Replace a child order record
// @Tags child-orders
// @Param id path int true "row id"
// @Success 200 {object} handler.apiResponse
// @Router /api/child-orders/{id} [put]
func (h *ChildOrderHandler) update(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var req childOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	existing, err := h.Repo.GetChildOrderByID(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if existing == nil {
		Error(c, http.StatusNotFound, "child order not found", nil)
		return
	}
	item := models.ChildOrder{
		ID:            existing.ID,
		ParentOrderID: strings.TrimSpace(req.ParentOrderID),
		TradeDate:     strings.TrimSpace(req.TradeDate),
		ExecQty:       req.ExecQty,
		AvgPx:         req.AvgPx,
		VwapPx:        req.VwapPx,
		CreatedAt:     existing.CreatedAt,
	}
	if err := h.Repo.UpdateChildOrder(c.Request.Context(), &item); err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, item, nil)
}

// @Summary Delete a child order record
// @Tags child-orders
// @Param id path int true "row id"
// @Success 200 {object} handler.apiResponse
// @Router /api/child-orders/{id} [delete]
func (h *ChildOrderHandler) remove(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}
	deleted, err := h.Repo.DeleteChildOrder(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	if deleted == 0 {
		Error(c, http.StatusNotFound, "child order not found", nil)
		return
	}
	Ok(c, map[string]any{"id": id, "deleted": deleted}, nil)
}
