package entity

// Tipos de orden. delivery aumenta el stock de bodega de sus productos,
// shipment lo disminuye.
const (
	OrderShipment = "shipment"
	OrderDelivery = "delivery"
)

// Order representa una orden de entrada o salida de mercancía.
type Order struct {
	Base
	CompanyID         string `json:"companyId"`
	WarehouseID       string `json:"warehouseId"`
	BusinessPartnerID string `json:"businessPartnerId"`
	OrderNumber       string `json:"orderNumber"` // único por empresa
	Type              string `json:"type"`        // shipment | delivery
}

// OwnerCompany implementa CompanyOwned.
func (o *Order) OwnerCompany() string { return o.CompanyID }
