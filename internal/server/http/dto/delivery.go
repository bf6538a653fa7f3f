package dto

// VerifyDeliveryRequest reports the outcome of a delivery.
type VerifyDeliveryRequest struct {
	AddressCode string  `json:"address_code"`
	Success     *bool   `json:"success"`
	Feedback    *string `json:"feedback"`
}

// SuccessResponse is a generic acknowledgement.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
