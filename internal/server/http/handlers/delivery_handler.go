package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/wasul/internal/server/http/dto"
	"github.com/polkiloo/wasul/internal/usecase"
)

// DeliveryHandler serves delivery verification.
type DeliveryHandler struct {
	facade DeliveryFacade
}

// NewDeliveryHandler constructs DeliveryHandler.
func NewDeliveryHandler(facade DeliveryFacade) *DeliveryHandler {
	return &DeliveryHandler{facade: facade}
}

// Verify handles POST /api/verify-delivery.
func (h *DeliveryHandler) Verify(c *gin.Context) {
	var req dto.VerifyDeliveryRequest
	// an empty body still reaches the credential check
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "Invalid request body")
		return
	}

	_, err := h.facade.VerifyDelivery(c.Request.Context(), usecase.VerifyInput{
		APIKey:      APIKey(c),
		AddressCode: req.AddressCode,
		Success:     req.Success,
		Feedback:    req.Feedback,
	})
	if err != nil {
		respondError(c, err, "Address not found")
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Delivery verification recorded"})
}
