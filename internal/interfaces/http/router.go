package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-empleados-api/internal/application/auth"
	"github.com/jhoicas/portal-empleados-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmployeeUC *usecase.EmployeeUseCase
	OrderUC    *usecase.OrderUseCase
	AuthUC     *auth.AuthUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth + inspección de tokens
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/jwt/decode", authHandler.DecodeToken)

	// Employees
	employees := api.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.GetAll)
	employees.Get("/:name", employeeHandler.GetByName)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Orders
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.GetAll)
	orders.Get("/customer/:customerId", orderHandler.ListByCustomer)
	orders.Get("/status/:status", orderHandler.ListByStatus)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/", orderHandler.Create)
	orders.Put("/:id", orderHandler.Update)
	orders.Patch("/:id/cancel", orderHandler.Cancel)
	orders.Delete("/:id", orderHandler.Delete)
}
