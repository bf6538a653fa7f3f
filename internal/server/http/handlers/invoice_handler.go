package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/wasul/internal/domain/model"
	"github.com/polkiloo/wasul/internal/server/http/dto"
)

const pdfContentType = "application/pdf"

// InvoiceHandler serves invoice generation, download and payment tracking.
type InvoiceHandler struct {
	facade InvoiceFacade
}

// NewInvoiceHandler constructs InvoiceHandler.
func NewInvoiceHandler(facade InvoiceFacade) *InvoiceHandler {
	return &InvoiceHandler{facade: facade}
}

// Generate handles GET /api/generate-invoice/:partner_id.
func (h *InvoiceHandler) Generate(c *gin.Context) {
	partnerID, ok := parseID(c, "partner_id")
	if !ok {
		return
	}

	invoice, document, err := h.facade.GenerateInvoice(c.Request.Context(), partnerID)
	if err != nil {
		respondError(c, err, "Partner not found")
		return
	}

	writePDF(c, invoice.Number, document)
}

// Download handles GET /api/invoice-download/:number.
func (h *InvoiceHandler) Download(c *gin.Context) {
	invoice, document, err := h.facade.DownloadInvoice(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, err, "Invoice not found")
		return
	}

	writePDF(c, invoice.Number, document)
}

// MarkPaid handles POST /api/invoice/:id/mark-paid.
// Form submissions from the invoices page are redirected back to it.
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	invoice, err := h.facade.MarkInvoicePaid(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Invoice not found")
		return
	}

	if c.ContentType() == "application/x-www-form-urlencoded" {
		c.Redirect(http.StatusSeeOther, "/admin/invoices")
		return
	}
	c.JSON(http.StatusOK, toInvoiceResponse(*invoice))
}

// List handles GET /api/invoices.
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.facade.Invoices(c.Request.Context())
	if err != nil {
		respondError(c, err, "Invoice not found")
		return
	}

	resp := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		resp = append(resp, toInvoiceResponse(inv))
	}
	c.JSON(http.StatusOK, resp)
}

func writePDF(c *gin.Context, number string, document []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, number))
	c.Data(http.StatusOK, pdfContentType, document)
}

func toInvoiceResponse(inv model.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:                 inv.ID,
		InvoiceNumber:      inv.Number,
		PartnerID:          inv.PartnerID,
		PartnerName:        inv.PartnerName,
		KeySnapshot:        inv.KeySnapshot,
		BillingPeriod:      inv.BillingPeriod,
		Lookups:            inv.Lookups,
		VerifiedDeliveries: inv.VerifiedDeliveries,
		Rate:               inv.Rate,
		Currency:           inv.Currency,
		Subtotal:           inv.Subtotal,
		Tax:                inv.Tax,
		Total:              inv.Total,
		CreatedAt:          inv.CreatedAt,
		Status:             string(inv.Status),
		PaidAt:             inv.PaidAt,
	}
}
