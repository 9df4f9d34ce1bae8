package dto

// UpdateUserRequest payload de actualización de usuario; el password,
// si viene, se vuelve a hashear antes de persistir.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}
