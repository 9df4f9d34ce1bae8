package dto

// CreateOrderRequest payload tipado de creación de orden.
type CreateOrderRequest struct {
	WarehouseID       string `json:"warehouseId"`
	BusinessPartnerID string `json:"businessPartnerId"`
	OrderNumber       string `json:"orderNumber"`
	Type              string `json:"type"` // shipment | delivery
}

// UpdateOrderRequest payload de actualización.
type UpdateOrderRequest struct {
	WarehouseID       *string `json:"warehouseId"`
	BusinessPartnerID *string `json:"businessPartnerId"`
	OrderNumber       *string `json:"orderNumber"`
	Type              *string `json:"type"`
}

// CreateOrderItemRequest payload tipado de creación de línea de orden.
type CreateOrderItemRequest struct {
	OrderID   string `json:"orderId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateOrderItemRequest payload de actualización de línea.
type UpdateOrderItemRequest struct {
	ProductID *string `json:"productId"`
	Quantity  *int    `json:"quantity"`
}
