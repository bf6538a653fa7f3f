package dto

// RequestKeyRequest asks for a partner API key.
type RequestKeyRequest struct {
	PartnerName string `json:"partner_name"`
}

// RequestKeyResponse carries a freshly issued key.
type RequestKeyResponse struct {
	Success     bool   `json:"success"`
	PartnerName string `json:"partner_name"`
	APIKey      string `json:"api_key"`
	Message     string `json:"message"`
}
