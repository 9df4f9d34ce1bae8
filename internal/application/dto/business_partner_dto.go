package dto

// CreateBusinessPartnerRequest payload tipado de creación de socio.
type CreateBusinessPartnerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type"` // customer | supplier
}

// UpdateBusinessPartnerRequest payload de actualización.
type UpdateBusinessPartnerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Type  *string `json:"type"`
}
