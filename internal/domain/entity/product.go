package entity

import "github.com/shopspring/decimal"

// Tipos de producto (determinan en qué bodegas puede almacenarse).
const (
	ProductSolid  = "solid"
	ProductLiquid = "liquid"
)

// Product representa un producto comercializable por la empresa.
type Product struct {
	Base
	CompanyID string          `json:"companyId"`
	Name      string          `json:"name"`  // único por empresa
	Price     decimal.Decimal `json:"price"` // decimal positivo
	Type      string          `json:"type"`  // solid | liquid
}

// OwnerCompany implementa CompanyOwned.
func (p *Product) OwnerCompany() string { return p.CompanyID }
