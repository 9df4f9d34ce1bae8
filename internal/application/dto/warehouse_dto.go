package dto

// CreateWarehouseRequest payload tipado de creación de bodega.
type CreateWarehouseRequest struct {
	Name        string `json:"name"`
	SupportType string `json:"supportType"` // solid | liquid | mixed
}

// UpdateWarehouseRequest payload de actualización.
type UpdateWarehouseRequest struct {
	Name        *string `json:"name"`
	SupportType *string `json:"supportType"`
}
