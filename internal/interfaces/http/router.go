package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.UseCase
	CompanyUC         *usecase.CompanyUseCase
	UserUC            *usecase.UserUseCase
	BusinessPartnerUC *usecase.BusinessPartnerUseCase
	WarehouseUC       *usecase.WarehouseUseCase
	ProductUC         *usecase.ProductUseCase
	OrderUC           *usecase.OrderUseCase
	OrderItemUC       *usecase.OrderItemUseCase
	InvoiceUC         *usecase.InvoiceUseCase
	ReportUC          *usecase.ReportUseCase
	JWTSecret         string
}

// Router registra las rutas de la API. Todo lo que no sea login o el
// bootstrap de empresa exige Bearer Token; la escritura exige operator
// u owner y el borrado solo owner.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	read := RequireRole(authz.ReadRoles...)
	write := RequireRole(authz.WriteRoles...)
	del := RequireRole(authz.DeleteRoles...)

	// Auth (público salvo /register, que crea usuarios dentro de la
	// empresa del llamador)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register-owner", authHandler.RegisterOwner)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), write, authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", read, companyHandler.List)
	companies.Get("/:id", read, companyHandler.GetByID)
	companies.Post("/", write, companyHandler.Create)
	companies.Put("/:id", write, companyHandler.Update)
	companies.Delete("/:id", del, companyHandler.Delete)

	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", read, userHandler.List)
	users.Get("/:id", read, userHandler.GetByID)
	users.Put("/:id", write, userHandler.Update)
	users.Delete("/:id", del, userHandler.Delete)

	reportHandler := NewReportHandler(deps.ReportUC)

	partners := protected.Group("/business-partners")
	partnerHandler := NewBusinessPartnerHandler(deps.BusinessPartnerUC)
	partners.Get("/top-customer", read, reportHandler.TopCustomer)
	partners.Get("/", read, partnerHandler.List)
	partners.Get("/:id", read, partnerHandler.GetByID)
	partners.Post("/", write, partnerHandler.Create)
	partners.Put("/:id", write, partnerHandler.Update)
	partners.Delete("/:id", del, partnerHandler.Delete)

	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/highest-stock", read, reportHandler.HighestStock)
	warehouses.Get("/", read, warehouseHandler.List)
	warehouses.Get("/:id", read, warehouseHandler.GetByID)
	warehouses.Post("/", write, warehouseHandler.Create)
	warehouses.Put("/:id", write, warehouseHandler.Update)
	warehouses.Delete("/:id", del, warehouseHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/best-selling", read, reportHandler.BestSellingProduct)
	products.Get("/", read, productHandler.List)
	products.Get("/:id", read, productHandler.GetByID)
	products.Post("/", write, productHandler.Create)
	products.Put("/:id", write, productHandler.Update)
	products.Delete("/:id", del, productHandler.Delete)

	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", read, orderHandler.List)
	orders.Get("/:id", read, orderHandler.GetByID)
	orders.Post("/", write, orderHandler.Create)
	orders.Put("/:id", write, orderHandler.Update)
	orders.Delete("/:id", del, orderHandler.Delete)

	orderItems := protected.Group("/order-items")
	orderItemHandler := NewOrderItemHandler(deps.OrderItemUC)
	orderItems.Get("/", read, orderItemHandler.List)
	orderItems.Get("/:id", read, orderItemHandler.GetByID)
	orderItems.Post("/", write, orderItemHandler.Create)
	orderItems.Put("/:id", write, orderItemHandler.Update)
	orderItems.Delete("/:id", del, orderItemHandler.Delete)

	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", read, invoiceHandler.List)
	invoices.Get("/:id", read, invoiceHandler.GetByID)
	invoices.Post("/", write, invoiceHandler.Create)
	invoices.Put("/:id", write, invoiceHandler.Update)
	invoices.Delete("/:id", del, invoiceHandler.Delete)
}
