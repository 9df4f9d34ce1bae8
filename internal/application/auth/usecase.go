package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: login, registro, bootstrap de
// empresa + owner y verificación de token.
type UseCase struct {
	userRepo repository.UserRepository
	tx       TxRunner
	jwtCfg   JWTConfig
}

// New construye el caso de uso de auth. Los repos de empresa y usuario
// del bootstrap llegan atados a la transacción vía el TxRunner.
func New(userRepo repository.UserRepository, tx TxRunner, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, tx: tx, jwtCfg: jwtCfg}
}

// Login verifica email/password y emite un JWT con sujeto, email, rol y
// empresa. Credenciales incorrectas responden siempre ErrUnauthorized,
// sin distinguir email inexistente de password mal.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("credenciales inválidas: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("credenciales inválidas: %w", domain.ErrUnauthorized)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.CompanyID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// Register crea un usuario en la empresa del llamador. El email es único
// global; el password se hashea de forma irreversible antes de persistir.
func (uc *UseCase) Register(in dto.RegisterRequest, actingCompanyID, actingUserID string) (*dto.UserResponse, error) {
	role := entity.Role(in.Role)
	if in.Role == "" {
		role = entity.RoleViewer
	}
	if !role.Valid() {
		return nil, fmt.Errorf("rol %q: %w", in.Role, domain.ErrInvalidInput)
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email ya registrado: %w", domain.ErrConflict)
	}
	user, err := newUser(actingCompanyID, in.Username, in.Email, in.Password, role, actingUserID)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// RegisterOwner crea la empresa y su primer usuario owner de forma
// atómica. Cualquier fallo (nombre de empresa o email duplicado) deja la
// base sin estado parcial.
func (uc *UseCase) RegisterOwner(ctx context.Context, in dto.RegisterOwnerRequest) (*dto.RegisterOwnerResponse, error) {
	var resp dto.RegisterOwnerResponse
	err := uc.tx.Run(ctx, func(companyRepo repository.CompanyRepository, userRepo repository.UserRepository) error {
		existingCompany, err := companyRepo.GetByName(in.CompanyName)
		if err != nil {
			return err
		}
		if existingCompany != nil {
			return fmt.Errorf("empresa ya registrada: %w", domain.ErrConflict)
		}
		existingUser, err := userRepo.GetByEmail(in.Email)
		if err != nil {
			return err
		}
		if existingUser != nil {
			return fmt.Errorf("email ya registrado: %w", domain.ErrConflict)
		}

		now := time.Now()
		company := &entity.Company{
			Base: entity.Base{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
			Name: in.CompanyName,
		}
		if err := companyRepo.Create(company); err != nil {
			return err
		}

		user, err := newUser(company.ID, in.Username, in.Email, in.Password, entity.RoleOwner, "")
		if err != nil {
			return err
		}
		if err := userRepo.Create(user); err != nil {
			return err
		}

		// La empresa queda estampada por su primer owner.
		if err := companyRepo.SetModifiedBy(company.ID, user.ID); err != nil {
			return err
		}
		company.ModifiedBy = user.ID

		resp = dto.RegisterOwnerResponse{Company: company, User: dto.NewUserResponse(user)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyToken valida firma y expiración y resuelve el sujeto contra la
// base, cubriendo el caso de un usuario borrado o con rol cambiado
// después de emitido el token. Cualquier fallo es ErrUnauthorized.
func (uc *UseCase) VerifyToken(token string) (*entity.User, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", domain.ErrUnauthorized)
	}
	user, err := uc.userRepo.GetByID(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", domain.ErrUnauthorized)
	}
	return user, nil
}

// newUser arma la entidad con el password ya hasheado. Si no hay actor
// (bootstrap, auto-registro) la fila queda estampada por sí misma.
func newUser(companyID, username, email, password string, role entity.Role, actingUserID string) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	id := uuid.New().String()
	modifiedBy := actingUserID
	if modifiedBy == "" {
		modifiedBy = id
	}
	return &entity.User{
		Base:         entity.Base{ID: id, ModifiedBy: modifiedBy, CreatedAt: now, UpdatedAt: now},
		CompanyID:    companyID,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}, nil
}
