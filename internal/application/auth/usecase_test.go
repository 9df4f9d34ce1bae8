package auth_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email && u.DeletedAt == nil {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok || u.DeletedAt != nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) List(companyID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		if u.DeletedAt == nil && (companyID == "" || u.CompanyID == companyID) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) SoftDelete(id string) error {
	delete(r.byID, id)
	return nil
}

type fakeCompanyRepo struct {
	byID map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byID: map[string]*entity.Company{}}
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) GetByName(name string) (*entity.Company, error) {
	for _, c := range r.byID {
		if c.Name == name && c.DeletedAt == nil {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.byID[id]
	if !ok || c.DeletedAt != nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (r *fakeCompanyRepo) SetModifiedBy(id, userID string) error {
	c, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.ModifiedBy = userID
	return nil
}

func (r *fakeCompanyRepo) List(companyID string) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.byID {
		if c.DeletedAt == nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) SoftDelete(id string) error {
	delete(r.byID, id)
	return nil
}

// fakeTxRunner imita la semántica todo-o-nada de la transacción: toma
// una copia del estado antes de fn y la restaura si fn falla.
type fakeTxRunner struct {
	companies *fakeCompanyRepo
	users     *fakeUserRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(repository.CompanyRepository, repository.UserRepository) error) error {
	companiesBefore := make(map[string]*entity.Company, len(t.companies.byID))
	for k, v := range t.companies.byID {
		companiesBefore[k] = v
	}
	usersBefore := make(map[string]*entity.User, len(t.users.byID))
	for k, v := range t.users.byID {
		usersBefore[k] = v
	}
	if err := fn(t.companies, t.users); err != nil {
		t.companies.byID = companiesBefore
		t.users.byID = usersBefore
		return err
	}
	return nil
}

func newTestUseCase() (*auth.UseCase, *fakeUserRepo, *fakeCompanyRepo) {
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	tx := &fakeTxRunner{companies: companies, users: users}
	uc := auth.New(users, tx, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "almacen-api-test",
	})
	return uc, users, companies
}

func seedUser(t *testing.T, users *fakeUserRepo, email, password string, role entity.Role) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		Base:         entity.Base{ID: "user-" + email},
		CompanyID:    "company-1",
		Username:     email,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, users.Create(u))
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, users, _ := newTestUseCase()
	seedUser(t, users, "ana@acme.test", "secreto123", entity.RoleOperator)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@acme.test", Password: "secreto123"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@acme.test", out.User.Email)
	assert.Equal(t, entity.RoleOperator, out.User.Role)
}

func TestLogin_PasswordIncorrecto_Unauthorized(t *testing.T) {
	uc, users, _ := newTestUseCase()
	seedUser(t, users, "ana@acme.test", "secreto123", entity.RoleOperator)

	_, err := uc.Login(dto.LoginRequest{Email: "ana@acme.test", Password: "otro"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente_Unauthorized(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@acme.test", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"email inexistente y password incorrecto deben ser indistinguibles")
}

// El password, plano o hasheado, jamás aparece en la respuesta serializada.
func TestLogin_PasswordNoSeFiltra(t *testing.T) {
	uc, users, _ := newTestUseCase()
	u := seedUser(t, users, "ana@acme.test", "secreto123", entity.RoleOwner)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@acme.test", Password: "secreto123"})
	require.NoError(t, err)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secreto123")
	assert.NotContains(t, string(raw), u.PasswordHash)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_RolPorDefectoViewer(t *testing.T) {
	uc, _, _ := newTestUseCase()

	out, err := uc.Register(dto.RegisterRequest{
		Username: "benito",
		Email:    "benito@acme.test",
		Password: "secreto123",
	}, "company-1", "actor-1")
	require.NoError(t, err)

	assert.Equal(t, entity.RoleViewer, out.Role)
	assert.Equal(t, "company-1", out.CompanyID)
}

func TestRegister_RolInvalido_InvalidInput(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Register(dto.RegisterRequest{
		Username: "benito",
		Email:    "benito@acme.test",
		Password: "secreto123",
		Role:     "superadmin",
	}, "company-1", "actor-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado_Conflict(t *testing.T) {
	uc, users, _ := newTestUseCase()
	seedUser(t, users, "ana@acme.test", "secreto123", entity.RoleViewer)

	_, err := uc.Register(dto.RegisterRequest{
		Username: "ana2",
		Email:    "ana@acme.test",
		Password: "secreto123",
	}, "company-2", "actor-1")
	assert.ErrorIs(t, err, domain.ErrConflict,
		"el email de usuario es único global, no por empresa")
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterOwner — bootstrap atómico empresa + owner
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterOwner_CreaEmpresaYOwner(t *testing.T) {
	uc, users, companies := newTestUseCase()

	out, err := uc.RegisterOwner(context.Background(), dto.RegisterOwnerRequest{
		CompanyName: "Acme",
		Username:    "ana",
		Email:       "ana@acme.test",
		Password:    "secreto123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme", out.Company.Name)
	assert.Equal(t, entity.RoleOwner, out.User.Role)
	assert.Equal(t, out.Company.ID, out.User.CompanyID)
	// La empresa queda estampada por su primer owner.
	assert.Equal(t, out.User.ID, out.Company.ModifiedBy)

	assert.Len(t, companies.byID, 1)
	assert.Len(t, users.byID, 1)
}

func TestRegisterOwner_EmpresaDuplicada_NadaPersistido(t *testing.T) {
	uc, users, companies := newTestUseCase()

	_, err := uc.RegisterOwner(context.Background(), dto.RegisterOwnerRequest{
		CompanyName: "Acme", Username: "ana", Email: "ana@acme.test", Password: "secreto123",
	})
	require.NoError(t, err)

	_, err = uc.RegisterOwner(context.Background(), dto.RegisterOwnerRequest{
		CompanyName: "Acme", Username: "benito", Email: "benito@otra.test", Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Ni empresa duplicada ni usuario huérfano.
	assert.Len(t, companies.byID, 1)
	assert.Len(t, users.byID, 1)
}

func TestRegisterOwner_EmailDuplicado_NadaPersistido(t *testing.T) {
	uc, users, companies := newTestUseCase()
	seedUser(t, users, "ana@acme.test", "secreto123", entity.RoleOwner)

	_, err := uc.RegisterOwner(context.Background(), dto.RegisterOwnerRequest{
		CompanyName: "OtraEmpresa", Username: "ana", Email: "ana@acme.test", Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// No queda empresa huérfana sin usuario.
	assert.Len(t, companies.byID, 0)
	assert.Len(t, users.byID, 1)
}

func TestRegisterOwner_PasswordNoSeFiltra(t *testing.T) {
	uc, _, _ := newTestUseCase()

	out, err := uc.RegisterOwner(context.Background(), dto.RegisterOwnerRequest{
		CompanyName: "Acme", Username: "ana", Email: "ana@acme.test", Password: "secreto123",
	})
	require.NoError(t, err)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secreto123")
	assert.NotContains(t, string(raw), "password")
}

// ──────────────────────────────────────────────────────────────────────────────
// VerifyToken
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyToken_ResuelveUsuarioVivo(t *testing.T) {
	uc, users, _ := newTestUseCase()
	u := seedUser(t, users, "ana@acme.test", "secreto123", entity.RoleOwner)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@acme.test", Password: "secreto123"})
	require.NoError(t, err)

	got, err := uc.VerifyToken(out.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestVerifyToken_UsuarioBorrado_Unauthorized(t *testing.T) {
	uc, users, _ := newTestUseCase()
	u := seedUser(t, users, "ana@acme.test", "secreto123", entity.RoleOwner)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@acme.test", Password: "secreto123"})
	require.NoError(t, err)

	require.NoError(t, users.SoftDelete(u.ID))

	_, err = uc.VerifyToken(out.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"un token válido de un usuario borrado no debe autenticar")
}

func TestVerifyToken_TokenBasura_Unauthorized(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.VerifyToken("no.es.jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
