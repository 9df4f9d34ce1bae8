package dto

// CreateCompanyRequest payload tipado de creación de empresa.
type CreateCompanyRequest struct {
	Name string `json:"name"`
}

// UpdateCompanyRequest payload de actualización; todos los campos opcionales.
type UpdateCompanyRequest struct {
	Name *string `json:"name"`
}
