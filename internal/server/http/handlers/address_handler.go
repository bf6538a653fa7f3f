package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/wasul/internal/domain/model"
	"github.com/polkiloo/wasul/internal/server/http/dto"
	"github.com/polkiloo/wasul/internal/usecase"
)

const registeredMessage = "Address registered successfully! Use this code when ordering."

// AddressHandler serves registration and lookup endpoints.
type AddressHandler struct {
	facade AddressFacade
}

// NewAddressHandler constructs AddressHandler.
func NewAddressHandler(facade AddressFacade) *AddressHandler {
	return &AddressHandler{facade: facade}
}

// Register handles POST /api/register-address.
func (h *AddressHandler) Register(c *gin.Context) {
	var req dto.RegisterAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: phone, latitude and longitude are required")
		return
	}

	address, err := h.facade.RegisterAddress(c.Request.Context(), usecase.RegisterInput{
		Phone:         req.Phone,
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
		POBox:         req.POBox,
		Area:          req.Area,
		City:          req.City,
		DeliveryNotes: req.DeliveryNotes,
	})
	if err != nil {
		respondError(c, err, "Address not found")
		return
	}

	c.JSON(http.StatusOK, dto.RegisterAddressResponse{
		Success:        true,
		AddressCode:    address.Code,
		Message:        registeredMessage,
		GoogleMapsLink: address.MapLink(),
	})
}

// Lookup handles GET /api/lookup.
func (h *AddressHandler) Lookup(c *gin.Context) {
	address, err := h.facade.LookupAddress(c.Request.Context(), usecase.LookupInput{
		APIKey: APIKey(c),
		Phone:  c.Query("phone"),
		Code:   c.Query("address_code"),
	})
	if err != nil {
		respondError(c, err, "Address not found")
		return
	}

	c.JSON(http.StatusOK, toAddressResponse(*address))
}

func toAddressResponse(a model.Address) dto.AddressResponse {
	return dto.AddressResponse{
		AddressCode:          a.Code,
		Phone:                a.Phone,
		Latitude:             a.Latitude,
		Longitude:            a.Longitude,
		POBox:                a.POBox,
		Area:                 a.Area,
		City:                 a.City,
		DeliveryNotes:        a.DeliveryNotes,
		GoogleMapsLink:       a.MapLink(),
		Verified:             a.Verified,
		SuccessfulDeliveries: a.SuccessfulDeliveries,
	}
}
