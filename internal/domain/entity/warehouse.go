package entity

// Tipos de soporte de una bodega (qué clase de producto puede almacenar).
const (
	SupportSolid  = "solid"
	SupportLiquid = "liquid"
	SupportMixed  = "mixed"
)

// Warehouse representa una bodega donde se almacena inventario.
type Warehouse struct {
	Base
	CompanyID   string `json:"companyId"`
	Name        string `json:"name"` // único por empresa
	SupportType string `json:"supportType"`
}

// OwnerCompany implementa CompanyOwned.
func (w *Warehouse) OwnerCompany() string { return w.CompanyID }
