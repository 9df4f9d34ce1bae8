package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/pkg/config"
)

// Tests de integración contra un PostgreSQL real con el esquema cargado.
// Se omiten si TEST_DATABASE_URL no está definido. Cada test siembra su
// propia empresa y consulta filtrando por ella, así los datos de otros
// tests (o de otras corridas) no interfieren.

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido; se omiten los tests de integración")
	}
	pool, err := postgres.NewPool(context.Background(), config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func newBase() entity.Base {
	now := time.Now()
	return entity.Base{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now}
}

// reportFixture siembra el grafo mínimo de un escenario de reporte.
type reportFixture struct {
	t    *testing.T
	pool *pgxpool.Pool

	company  *entity.Company
	orderSeq int
}

func newReportFixture(t *testing.T, pool *pgxpool.Pool) *reportFixture {
	t.Helper()
	company := &entity.Company{
		Base: newBase(),
		// Nombre único global: cada corrida usa una empresa propia.
		Name: "Empresa Test " + uuid.New().String(),
	}
	require.NoError(t, postgres.NewCompanyRepository(pool).Create(company))
	return &reportFixture{t: t, pool: pool, company: company}
}

func (f *reportFixture) warehouse(name string) *entity.Warehouse {
	f.t.Helper()
	w := &entity.Warehouse{
		Base:        newBase(),
		CompanyID:   f.company.ID,
		Name:        name,
		SupportType: entity.SupportMixed,
	}
	require.NoError(f.t, postgres.NewWarehouseRepository(f.pool).Create(w))
	return w
}

func (f *reportFixture) product(name, price string) *entity.Product {
	f.t.Helper()
	p := &entity.Product{
		Base:      newBase(),
		CompanyID: f.company.ID,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Type:      entity.ProductSolid,
	}
	require.NoError(f.t, postgres.NewProductRepository(f.pool).Create(p))
	return p
}

func (f *reportFixture) customer(name string) *entity.BusinessPartner {
	f.t.Helper()
	bp := &entity.BusinessPartner{
		Base:      newBase(),
		CompanyID: f.company.ID,
		Name:      name,
		Email:     name + "@clientes.test",
		Type:      entity.PartnerCustomer,
	}
	require.NoError(f.t, postgres.NewBusinessPartnerRepository(f.pool).Create(bp))
	return bp
}

// order crea una orden del tipo dado con una línea por cada (producto, cantidad).
func (f *reportFixture) order(orderType string, w *entity.Warehouse, bp *entity.BusinessPartner, lines map[*entity.Product]int) *entity.Order {
	f.t.Helper()
	f.orderSeq++
	o := &entity.Order{
		Base:              newBase(),
		CompanyID:         f.company.ID,
		WarehouseID:       w.ID,
		BusinessPartnerID: bp.ID,
		OrderNumber:       fmt.Sprintf("ORD-%03d", f.orderSeq),
		Type:              orderType,
	}
	require.NoError(f.t, postgres.NewOrderRepository(f.pool).Create(o))
	items := postgres.NewOrderItemRepository(f.pool)
	for p, qty := range lines {
		item := &entity.OrderItem{
			Base:      newBase(),
			OrderID:   o.ID,
			ProductID: p.ID,
			Quantity:  qty,
		}
		require.NoError(f.t, items.Create(item))
	}
	return o
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock actual: Σ delivery − Σ shipment por par (bodega, producto)
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: delivery de 10 y shipment de 4 del mismo producto en la
// misma bodega dejan stock actual 6.
func TestReportIntegracion_StockActual_DeliveryMenosShipment(t *testing.T) {
	pool := testPool(t)
	f := newReportFixture(t, pool)
	ctx := context.Background()

	w := f.warehouse("Central")
	p := f.product("Tornillos", "1.50")
	bp := f.customer("cliente-stock")

	f.order(entity.OrderDelivery, w, bp, map[*entity.Product]int{p: 10})
	f.order(entity.OrderShipment, w, bp, map[*entity.Product]int{p: 4})

	got, err := postgres.NewReportRepository(pool).GetProductWithHighestStock(ctx, f.company.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "Central", got.Warehouse)
	assert.Equal(t, "Tornillos", got.ProductName)
	assert.Equal(t, int64(6), got.CurrentStock)
}

// Un producto solo embarcado tiene stock negativo y queda descartado;
// si nada tiene stock positivo el reporte no devuelve fila.
func TestReportIntegracion_StockNoPositivo_SinFila(t *testing.T) {
	pool := testPool(t)
	f := newReportFixture(t, pool)
	ctx := context.Background()

	w := f.warehouse("Central")
	p := f.product("Tuercas", "0.80")
	bp := f.customer("cliente-negativo")

	f.order(entity.OrderShipment, w, bp, map[*entity.Product]int{p: 5})

	got, err := postgres.NewReportRepository(pool).GetProductWithHighestStock(ctx, f.company.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "stock negativo no debe producir fila")
}

// El orden es nombre de bodega asc y luego stock desc: gana la primera
// bodega alfabéticamente aunque otra tenga más stock.
func TestReportIntegracion_Stock_OrdenaBodegaAscStockDesc(t *testing.T) {
	pool := testPool(t)
	f := newReportFixture(t, pool)
	ctx := context.Background()

	alfa := f.warehouse("Alfa")
	zeta := f.warehouse("Zeta")
	poco := f.product("Clavos", "0.30")
	mucho := f.product("Arandelas", "0.10")
	menos := f.product("Pernos", "2.00")
	bp := f.customer("cliente-orden")

	f.order(entity.OrderDelivery, alfa, bp, map[*entity.Product]int{poco: 6, menos: 2})
	f.order(entity.OrderDelivery, zeta, bp, map[*entity.Product]int{mucho: 50})

	got, err := postgres.NewReportRepository(pool).GetProductWithHighestStock(ctx, f.company.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "Alfa", got.Warehouse, "la bodega alfabéticamente primera gana aunque Zeta tenga más stock")
	assert.Equal(t, "Clavos", got.ProductName, "dentro de la bodega gana el mayor stock")
	assert.Equal(t, int64(6), got.CurrentStock)
}

// Una empresa con borrado lógico desaparece del reporte de stock.
func TestReportIntegracion_Stock_EmpresaBorrada_SinFila(t *testing.T) {
	pool := testPool(t)
	f := newReportFixture(t, pool)
	ctx := context.Background()

	w := f.warehouse("Central")
	p := f.product("Tornillos", "1.50")
	bp := f.customer("cliente-borrado")
	f.order(entity.OrderDelivery, w, bp, map[*entity.Product]int{p: 10})

	require.NoError(t, postgres.NewCompanyRepository(pool).SoftDelete(f.company.ID))

	got, err := postgres.NewReportRepository(pool).GetProductWithHighestStock(ctx, f.company.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Producto más vendido: solo cuentan las órdenes shipment
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: P1 embarcado con cantidad 5 y P2 solo en deliveries con
// cantidad 100 — gana P1, porque las delivery no son ventas.
func TestReportIntegracion_BestSeller_ExcluyeDeliveries(t *testing.T) {
	pool := testPool(t)
	f := newReportFixture(t, pool)
	ctx := context.Background()

	w := f.warehouse("Central")
	vendido := f.product("Vendido", "9.99")
	recibido := f.product("Recibido", "1.00")
	bp := f.customer("cliente-ventas")

	f.order(entity.OrderShipment, w, bp, map[*entity.Product]int{vendido: 5})
	f.order(entity.OrderDelivery, w, bp, map[*entity.Product]int{recibido: 100})

	got, err := postgres.NewReportRepository(pool).GetBestSellingProduct(ctx, f.company.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "Vendido", got.ProductName)
	assert.Equal(t, int64(5), got.TotalQuantity)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, f.company.Name, got.CompanyName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cliente con más órdenes: cuenta órdenes shipment distintas
// ──────────────────────────────────────────────────────────────────────────────

func TestReportIntegracion_TopCustomer_CuentaOrdenesShipment(t *testing.T) {
	pool := testPool(t)
	f := newReportFixture(t, pool)
	ctx := context.Background()

	w := f.warehouse("Central")
	p := f.product("Tornillos", "1.50")
	frecuente := f.customer("frecuente")
	esporadico := f.customer("esporadico")

	f.order(entity.OrderShipment, w, frecuente, map[*entity.Product]int{p: 3})
	f.order(entity.OrderShipment, w, frecuente, map[*entity.Product]int{p: 4})
	// Muchas deliveries no convierten a esporadico en el top: no son ventas.
	f.order(entity.OrderShipment, w, esporadico, map[*entity.Product]int{p: 1})
	f.order(entity.OrderDelivery, w, esporadico, map[*entity.Product]int{p: 50})
	f.order(entity.OrderDelivery, w, esporadico, map[*entity.Product]int{p: 50})

	got, err := postgres.NewReportRepository(pool).GetCustomerWithMostOrders(ctx, f.company.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "frecuente", got.CustomerName)
	assert.Equal(t, f.company.Name, got.CompanyName)
	assert.Equal(t, 2, got.OrderCount)
	assert.Equal(t, int64(7), got.TotalQuantity)
}

// Empresa sin órdenes: las tres agregaciones devuelven nil, nil.
func TestReportIntegracion_EmpresaSinDatos_NilNil(t *testing.T) {
	pool := testPool(t)
	f := newReportFixture(t, pool)
	ctx := context.Background()
	reports := postgres.NewReportRepository(pool)

	top, err := reports.GetCustomerWithMostOrders(ctx, f.company.ID)
	require.NoError(t, err)
	assert.Nil(t, top)

	best, err := reports.GetBestSellingProduct(ctx, f.company.ID)
	require.NoError(t, err)
	assert.Nil(t, best)

	stock, err := reports.GetProductWithHighestStock(ctx, f.company.ID)
	require.NoError(t, err)
	assert.Nil(t, stock)
}
