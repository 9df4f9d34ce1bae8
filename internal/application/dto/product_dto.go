package dto

import "github.com/shopspring/decimal"

// CreateProductRequest payload tipado de creación de producto.
type CreateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Type  string          `json:"type"` // solid | liquid
}

// UpdateProductRequest payload de actualización.
type UpdateProductRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
	Type  *string          `json:"type"`
}
