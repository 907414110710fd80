package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-empleados-api/internal/application/dto"
	"github.com/jhoicas/portal-empleados-api/internal/application/usecase"
	"github.com/jhoicas/portal-empleados-api/internal/domain/entity"
)

// OrderHandler maneja las peticiones HTTP para Order.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// GetAll godoc
// @Summary      Listar órdenes
// @Tags         orders
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) GetAll(c *fiber.Ctx) error {
	out, err := h.uc.GetAll()
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden por ID
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListByCustomer godoc
// @Summary      Listar órdenes de un cliente
// @Tags         orders
// @Produce      json
// @Param        customerId  path  string  true  "ID del cliente"
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders/customer/{customerId} [get]
func (h *OrderHandler) ListByCustomer(c *fiber.Ctx) error {
	out, err := h.uc.ListByCustomer(c.Params("customerId"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListByStatus godoc
// @Summary      Listar órdenes por estado
// @Tags         orders
// @Produce      json
// @Param        status  path  string  true  "Estado de la orden"  Enums(Pending, Processing, Shipped, Delivered, Cancelled, Refunded)
// @Success      200  {array}   dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders/status/{status} [get]
func (h *OrderHandler) ListByStatus(c *fiber.Ctx) error {
	out, err := h.uc.ListByStatus(entity.OrderStatus(c.Params("status")))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear orden
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.AddOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body.")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar orden (parcial: solo los campos enviados)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body.")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar orden (prohibido si ya fue entregada)
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/cancel [patch]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar orden
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.DeleteOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteOrderResponse{Message: "Order deleted successfully", OrderID: id})
}
