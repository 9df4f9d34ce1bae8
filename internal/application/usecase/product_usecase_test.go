package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByCompanyAndName(companyID, name string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.CompanyID == companyID && p.Name == name && p.DeletedAt == nil {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok || p.DeletedAt != nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) List(companyID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.DeletedAt == nil && (companyID == "" || p.CompanyID == companyID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) SoftDelete(id string) error {
	delete(r.byID, id)
	return nil
}

func createReq(name, price string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:  name,
		Price: decimal.RequireFromString(price),
		Type:  entity.ProductSolid,
	}
}

func TestProductCreate_NombreDuplicadoMismaEmpresa_Conflict(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create("company-1", createReq("Tornillos", "1.50"), "actor-1")
	require.NoError(t, err)

	_, err = uc.Create("company-1", createReq("Tornillos", "2.00"), "actor-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProductCreate_MismoNombreOtraEmpresa_OK(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create("company-1", createReq("Tornillos", "1.50"), "actor-1")
	require.NoError(t, err)

	out, err := uc.Create("company-2", createReq("Tornillos", "2.00"), "actor-2")
	require.NoError(t, err,
		"la unicidad del nombre es por empresa, no global")
	assert.Equal(t, "company-2", out.CompanyID)
}

func TestProductCreate_PrecioNoPositivo_InvalidInput(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create("company-1", createReq("Gratis", "0"), "actor-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("company-1", createReq("Negativo", "-3.10"), "actor-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_TipoInvalido_InvalidInput(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	in := createReq("Gas", "9.99")
	in.Type = "gaseous"
	_, err := uc.Create("company-1", in, "actor-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_PrecioYActor(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	created, err := uc.Create("company-1", createReq("Tornillos", "1.50"), "actor-1")
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("2.75")
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: &newPrice}, "actor-2", "company-1")
	require.NoError(t, err)

	assert.True(t, out.Price.Equal(newPrice))
	assert.Equal(t, "actor-2", out.ModifiedBy)
	assert.Equal(t, "Tornillos", out.Name, "los campos no enviados no cambian")
}

func TestProductUpdate_OtraEmpresa_Forbidden(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	created, err := uc.Create("company-1", createReq("Tornillos", "1.50"), "actor-1")
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("2.75")
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Price: &newPrice}, "actor-2", "company-2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProductDelete_LuegoGet_NotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	created, err := uc.Create("company-1", createReq("Tornillos", "1.50"), "actor-1")
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID, "company-1"))

	_, err = uc.GetByID(created.ID, "company-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
