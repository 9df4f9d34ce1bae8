package usecase

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/scope"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UserUseCase lectura, actualización y borrado de usuarios. El alta va
// por el caso de uso de auth (hash + unicidad de email).
type UserUseCase struct {
	scoped *scope.Repo[*entity.User]
	repo   repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{scoped: scope.New[*entity.User]("User", repo), repo: repo}
}

// ListAll lista los usuarios de la empresa del llamador.
func (uc *UserUseCase) ListAll(callerCompanyID string) ([]dto.UserResponse, error) {
	users, err := uc.scoped.ListAll(callerCompanyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario (de la misma empresa) por id.
func (uc *UserUseCase) GetByID(id, callerCompanyID string) (*dto.UserResponse, error) {
	user, err := uc.scoped.GetByID(id, callerCompanyID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Update modifica username/email/password/rol. Un password nuevo se
// vuelve a hashear; un email nuevo se chequea contra la unicidad global.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest, actingUserID, callerCompanyID string) (*dto.UserResponse, error) {
	user, err := uc.scoped.GetByID(id, callerCompanyID)
	if err != nil {
		return nil, err
	}
	if in.Email != nil && *in.Email != user.Email {
		existing, err := uc.repo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("email ya registrado: %w", domain.ErrConflict)
		}
		user.Email = *in.Email
	}
	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Role != nil {
		role := entity.Role(*in.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("rol %q: %w", *in.Role, domain.ErrInvalidInput)
		}
		user.Role = role
	}
	user.ModifiedBy = actingUserID
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Delete marca el borrado lógico del usuario.
func (uc *UserUseCase) Delete(id, callerCompanyID string) error {
	return uc.scoped.DeleteByID(id, callerCompanyID)
}
