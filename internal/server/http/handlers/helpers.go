package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/wasul/internal/domain/errors"
	"github.com/polkiloo/wasul/internal/server/http/dto"
)

const apiKeyParam = "X-API-Key"

var details = map[error]string{
	domainErrors.ErrInvalidAPIKey:    "Invalid or inactive API key",
	domainErrors.ErrMissingLookupKey: "Must provide either phone or address_code",
}

// APIKey returns the partner credential from the query string, falling back to the header.
func APIKey(c *gin.Context) string {
	if key, ok := c.GetQuery(apiKeyParam); ok {
		return key
	}
	return c.GetHeader(apiKeyParam)
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Invalid " + param})
		return 0, false
	}
	return id, true
}

func badRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: detail})
}

// respondError maps domain errors onto status codes; notFound is the 404 detail.
func respondError(c *gin.Context, err error, notFound string) {
	var duplicate *domainErrors.DuplicatePhoneError
	switch {
	case errors.As(err, &duplicate):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: duplicate.Error(), AddressCode: duplicate.Code})
	case errors.Is(err, domainErrors.ErrInvalidAPIKey):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: detail(err)})
	case domainErrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: detail(err)})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: notFound})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: err.Error()})
	}
}

func detail(err error) string {
	for sentinel, text := range details {
		if errors.Is(err, sentinel) {
			return text
		}
	}
	return err.Error()
}
