package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/wasul/internal/server/http/views"
)

// PageHandler renders the read-only HTML pages.
type PageHandler struct {
	facade DashboardFacade
}

// NewPageHandler constructs PageHandler.
func NewPageHandler(facade DashboardFacade) *PageHandler {
	return &PageHandler{facade: facade}
}

// Overview handles GET /.
func (h *PageHandler) Overview(c *gin.Context) {
	st, err := h.facade.Stats(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	pricing := h.facade.Pricing()
	c.HTML(http.StatusOK, views.OverviewTemplate, views.OverviewPage{
		Stats:    st,
		Currency: pricing.Currency,
		Rate:     pricing.Rate,
	})
}

// Dashboard handles GET /admin.
func (h *PageHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	addresses, err := h.facade.RecentAddresses(ctx)
	if err != nil {
		h.renderError(c, err)
		return
	}
	partners, err := h.facade.PartnerUsage(ctx)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, views.DashboardTemplate, views.DashboardPage{
		Addresses: addresses,
		Partners:  partners,
		Currency:  h.facade.Pricing().Currency,
	})
}

// Invoices handles GET /admin/invoices.
func (h *PageHandler) Invoices(c *gin.Context) {
	invoices, err := h.facade.Invoices(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, views.InvoicesTemplate, views.InvoicesPage{Invoices: invoices})
}

func (h *PageHandler) renderError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, "Error: %s", err.Error())
}
