package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/wasul/internal/server/http/dto"
)

// PartnerHandler serves API key issuance.
type PartnerHandler struct {
	facade PartnerFacade
}

// NewPartnerHandler constructs PartnerHandler.
func NewPartnerHandler(facade PartnerFacade) *PartnerHandler {
	return &PartnerHandler{facade: facade}
}

// RequestKey handles POST /api/request-key.
func (h *PartnerHandler) RequestKey(c *gin.Context) {
	var req dto.RequestKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	partner, err := h.facade.IssueKey(c.Request.Context(), req.PartnerName)
	if err != nil {
		respondError(c, err, "Partner not found")
		return
	}

	c.JSON(http.StatusOK, dto.RequestKeyResponse{
		Success:     true,
		PartnerName: partner.PartnerName,
		APIKey:      partner.Key,
		Message:     "API key generated. Keep this secure!",
	})
}
