package model

import (
	"strconv"
	"time"
)

// VerificationThreshold is the number of successful deliveries that marks an address verified.
const VerificationThreshold = 2

// Address is a registered, GPS-pinned location owned by a phone number.
type Address struct {
	ID                   int64
	Code                 string
	Phone                string
	Latitude             float64
	Longitude            float64
	POBox                *string
	Area                 *string
	City                 string
	DeliveryNotes        *string
	CreatedAt            time.Time
	Verified             bool
	SuccessfulDeliveries int
}

// MapLink returns a Google Maps URL pointing at the address coordinates.
func (a Address) MapLink() string {
	return MapLink(a.Latitude, a.Longitude)
}

// MapLink renders a Google Maps URL for the given coordinates.
func MapLink(lat, lng float64) string {
	return "https://www.google.com/maps?q=" +
		strconv.FormatFloat(lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(lng, 'f', -1, 64)
}

// ValidCoordinates reports whether latitude and longitude are within range.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
