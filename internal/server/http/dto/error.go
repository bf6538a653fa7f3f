package dto

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Detail      string `json:"detail"`
	AddressCode string `json:"address_code,omitempty"`
}
