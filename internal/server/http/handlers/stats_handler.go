package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/wasul/internal/server/http/dto"
)

// StatsHandler serves aggregate counters and health.
type StatsHandler struct {
	stats  StatsFacade
	health HealthFacade
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(stats StatsFacade, health HealthFacade) *StatsHandler {
	return &StatsHandler{stats: stats, health: health}
}

// Stats handles GET /stats.
func (h *StatsHandler) Stats(c *gin.Context) {
	st, err := h.stats.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Stats not available")
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalAddresses:       st.TotalAddresses,
		VerifiedAddresses:    st.VerifiedAddresses,
		SuccessfulDeliveries: st.SuccessfulDeliveries,
		ActivePartners:       st.ActivePartners,
		TotalLookups:         st.TotalLookups,
		RevenueEstimate:      st.RevenueEstimate,
		Currency:             h.stats.Pricing().Currency,
		InvoicesIssued:       st.InvoicesIssued,
		InvoicesPaid:         st.InvoicesPaid,
	})
}

// Health handles GET /health.
func (h *StatsHandler) Health(c *gin.Context) {
	if err := h.health.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Detail: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
