package dto

// RegisterAddressRequest describes address registration payload.
type RegisterAddressRequest struct {
	Phone         string   `json:"phone"`
	Latitude      *float64 `json:"latitude" binding:"required"`
	Longitude     *float64 `json:"longitude" binding:"required"`
	POBox         *string  `json:"po_box"`
	Area          *string  `json:"area"`
	City          string   `json:"city"`
	DeliveryNotes *string  `json:"delivery_notes"`
}

// RegisterAddressResponse is returned after successful registration.
type RegisterAddressResponse struct {
	Success        bool   `json:"success"`
	AddressCode    string `json:"address_code"`
	Message        string `json:"message"`
	GoogleMapsLink string `json:"google_maps_link"`
}

// AddressResponse is the full lookup projection of an address.
type AddressResponse struct {
	AddressCode          string  `json:"address_code"`
	Phone                string  `json:"phone"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	POBox                *string `json:"po_box"`
	Area                 *string `json:"area"`
	City                 string  `json:"city"`
	DeliveryNotes        *string `json:"delivery_notes"`
	GoogleMapsLink       string  `json:"google_maps_link"`
	Verified             bool    `json:"verified"`
	SuccessfulDeliveries int     `json:"successful_deliveries"`
}
