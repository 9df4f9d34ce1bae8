package entity

// OrderItem representa una línea de una orden: producto y cantidad.
// No tiene company_id propio: su tenant es el de la orden padre, que la
// capa de persistencia resuelve con un join y deja en OrderCompanyID.
type OrderItem struct {
	Base
	OrderID        string `json:"orderId"`
	ProductID      string `json:"productId"`
	Quantity       int    `json:"quantity"` // entero positivo
	OrderCompanyID string `json:"-"`        // derivado, no es columna propia
}

// OwnerCompany implementa CompanyOwned a través de la orden padre.
func (i *OrderItem) OwnerCompany() string { return i.OrderCompanyID }
