package dto

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token firmado más la vista pública del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterRequest alta de un usuario dentro de la empresa del llamador.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // por defecto viewer
}

// RegisterOwnerRequest bootstrap atómico de empresa + primer owner.
type RegisterOwnerRequest struct {
	CompanyName string `json:"companyName"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// RegisterOwnerResponse empresa creada y proyección segura del usuario.
type RegisterOwnerResponse struct {
	Company *entity.Company `json:"company"`
	User    UserResponse    `json:"user"`
}

// UserResponse vista pública de un usuario: nunca incluye el password,
// ni en claro ni hasheado.
type UserResponse struct {
	ID        string      `json:"id"`
	CompanyID string      `json:"companyId"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// NewUserResponse proyecta la entidad a su vista pública.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
