package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"alphadash/internal/client/refdata"
	"alphadash/internal/repository"
)

type MarketDataHandler struct {
	Repo   repository.Repository
	Client *refdata.Client
}

func (h *MarketDataHandler) Register(r *gin.Engine) {
	r.GET("/api/market-price", h.marketPrice)
	r.GET("/api/monitoring/snapshots", h.snapshots)
}

// @Summary Live reference-data lookup for a ticker
// @Tags market-data
// @Param ticker query string true "ticker symbol"
// @Success 200 {object} handler.apiResponse
// @Router /api/market-price [get]
func (h *MarketDataHandler) marketPrice(c *gin.Context) {
	if h.Client == nil {
		Error(c, http.StatusServiceUnavailable, "refdata client unavailable", nil)
		return
	}
	ticker := strings.TrimSpace(c.Query("ticker"))
	if ticker == "" {
		Error(c, http.StatusBadRequest, "ticker query parameter is required", nil)
		return
	}
	quote, err := h.Client.ReferenceData(c.Request.Context(), ticker)
	if err != nil {
		var secErr *refdata.SecurityError
		if errors.As(err, &secErr) {
			Error(c, http.StatusNotFound, secErr.Message, nil)
			return
		}
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, quote, nil)
}

// @Summary Stored daily market snapshots
// @Tags market-data
// @Param ticker query string false "filter by ticker"
// @Param limit query int false "page size"
// @Success 200 {object} handler.apiResponse
// @Router /api/monitoring/snapshots [get]
func (h *MarketDataHandler) snapshots(c *gin.Context) {
	if h.Repo == nil {
		Error(c, http.StatusInternalServerError, "repo unavailable", nil)
		return
	}
	items, err := h.Repo.ListMarketSnapshots(c.Request.Context(), repository.ListMarketSnapshotsParams{
		Ticker: strQueryPtr(c, "ticker"),
		Limit:  intQuery(c, "limit", 100),
		Offset: intQuery(c, "offset", 0),
	})
	if err != nil {
		Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}
	Ok(c, items, nil)
}
