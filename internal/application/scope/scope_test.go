package scope_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/scope"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del Store (suficiente para ejercitar el alcance de tenant)
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore[T entity.Record] struct {
	rows map[string]T
	gone map[string]bool // ids con borrado lógico
}

func newFakeStore[T entity.Record](rows ...T) *fakeStore[T] {
	s := &fakeStore[T]{rows: map[string]T{}, gone: map[string]bool{}}
	for _, r := range rows {
		s.rows[r.RecordID()] = r
	}
	return s
}

func (s *fakeStore[T]) List(companyID string) ([]T, error) {
	var out []T
	for id, r := range s.rows {
		if s.gone[id] {
			continue
		}
		if companyID != "" {
			if owned, ok := any(r).(entity.CompanyOwned); ok && owned.OwnerCompany() != companyID {
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *fakeStore[T]) GetByID(id string) (T, error) {
	var zero T
	r, ok := s.rows[id]
	if !ok || s.gone[id] {
		return zero, domain.ErrNotFound
	}
	return r, nil
}

func (s *fakeStore[T]) SoftDelete(id string) error {
	s.gone[id] = true
	return nil
}

func warehouse(id, companyID, name string) *entity.Warehouse {
	now := time.Now()
	return &entity.Warehouse{
		Base:        entity.Base{ID: id, CreatedAt: now, UpdatedAt: now},
		CompanyID:   companyID,
		Name:        name,
		SupportType: entity.SupportMixed,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento de tenant
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_MismaEmpresa_Devuelve(t *testing.T) {
	repo := scope.New[*entity.Warehouse]("Warehouse", newFakeStore(
		warehouse("w1", "empresa-a", "Central"),
	))

	got, err := repo.GetByID("w1", "empresa-a")
	require.NoError(t, err)
	assert.Equal(t, "Central", got.Name)
}

func TestGetByID_OtraEmpresa_Forbidden(t *testing.T) {
	repo := scope.New[*entity.Warehouse]("Warehouse", newFakeStore(
		warehouse("w1", "empresa-a", "Central"),
	))

	_, err := repo.GetByID("w1", "empresa-b")
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"el acceso cruzado entre empresas solo se ve como forbidden")
}

func TestGetByID_SinEmpresaEnLlamada_NoChequea(t *testing.T) {
	repo := scope.New[*entity.Warehouse]("Warehouse", newFakeStore(
		warehouse("w1", "empresa-a", "Central"),
	))

	_, err := repo.GetByID("w1", "")
	assert.NoError(t, err, "sin companyID del llamador no hay chequeo de tenant")
}

func TestGetByID_EntidadSinCompany_NoChequea(t *testing.T) {
	now := time.Now()
	c := &entity.Company{Base: entity.Base{ID: "c1", CreatedAt: now, UpdatedAt: now}, Name: "Acme"}
	repo := scope.New[*entity.Company]("Company", newFakeStore(c))

	// Company no implementa CompanyOwned: cualquier empresa puede leerla.
	got, err := repo.GetByID("c1", "empresa-b")
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
}

func TestGetByID_Inexistente_NotFound(t *testing.T) {
	repo := scope.New[*entity.Warehouse]("Warehouse", newFakeStore[*entity.Warehouse]())

	_, err := repo.GetByID("nope", "empresa-a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado lógico
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteByID_LuegoGet_NotFound(t *testing.T) {
	store := newFakeStore(warehouse("w1", "empresa-a", "Central"))
	repo := scope.New[*entity.Warehouse]("Warehouse", store)

	require.NoError(t, repo.DeleteByID("w1", "empresa-a"))

	_, err := repo.GetByID("w1", "empresa-a")
	assert.ErrorIs(t, err, domain.ErrNotFound, "la fila borrada debe verse como inexistente")

	// Re-borrar también es NotFound.
	assert.ErrorIs(t, repo.DeleteByID("w1", "empresa-a"), domain.ErrNotFound)
}

func TestDeleteByID_OtraEmpresa_ForbiddenYNoToca(t *testing.T) {
	store := newFakeStore(warehouse("w1", "empresa-a", "Central"))
	repo := scope.New[*entity.Warehouse]("Warehouse", store)

	assert.ErrorIs(t, repo.DeleteByID("w1", "empresa-b"), domain.ErrForbidden)

	// La fila sigue viva para su dueño.
	_, err := repo.GetByID("w1", "empresa-a")
	assert.NoError(t, err)
}

func TestListAll_ExcluyeBorradasYOtrasEmpresas(t *testing.T) {
	store := newFakeStore(
		warehouse("w1", "empresa-a", "Central"),
		warehouse("w2", "empresa-a", "Norte"),
		warehouse("w3", "empresa-b", "Ajena"),
	)
	repo := scope.New[*entity.Warehouse]("Warehouse", store)
	require.NoError(t, repo.DeleteByID("w2", "empresa-a"))

	rows, err := repo.ListAll("empresa-a")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Central", rows[0].Name)
}

func TestListAll_Vacia_NotFound(t *testing.T) {
	repo := scope.New[*entity.Warehouse]("Warehouse", newFakeStore[*entity.Warehouse]())

	// Lista vacía es NotFound, no colección vacía.
	_, err := repo.ListAll("empresa-a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
