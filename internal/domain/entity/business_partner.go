package entity

// Tipos de socio de negocio.
const (
	PartnerCustomer = "customer"
	PartnerSupplier = "supplier"
)

// BusinessPartner representa un cliente o proveedor de la empresa.
type BusinessPartner struct {
	Base
	CompanyID string `json:"companyId"`
	Name      string `json:"name"`  // único por empresa
	Email     string `json:"email"` // único por empresa
	Type      string `json:"type"`  // customer | supplier
}

// OwnerCompany implementa CompanyOwned.
func (p *BusinessPartner) OwnerCompany() string { return p.CompanyID }
