package entity

// Company representa una organización/tenant del sistema: la unidad de
// aislamiento de datos. No tiene company_id propio — es la raíz.
type Company struct {
	Base
	Name string `json:"name"` // único global
}
