package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/portal-empleados-api/internal/domain/entity"
)

// AddOrderRequest entrada para crear una orden. Los totales no se reciben:
// son derivados y se calculan siempre en el servidor.
type AddOrderRequest struct {
	CustomerID      string               `json:"customerId"`
	CustomerName    string               `json:"customerName"`
	ShippingAddress entity.Address       `json:"shippingAddress"`
	BillingAddress  entity.Address       `json:"billingAddress"`
	Items           []entity.OrderItem   `json:"items"`
	PaymentMethod   entity.PaymentMethod `json:"paymentMethod"`
	Notes           string               `json:"notes"`
	Tags            []string             `json:"tags"`
}

// UpdateOrderRequest actualización parcial: todo campo es opcional y un campo
// ausente (nil) no se toca. Punteros explícitos en lugar de sentinelas para
// distinguir "no enviado" de "enviado vacío".
type UpdateOrderRequest struct {
	Status          *entity.OrderStatus   `json:"status"`
	ShippingAddress *entity.Address       `json:"shippingAddress"`
	BillingAddress  *entity.Address       `json:"billingAddress"`
	Items           *[]entity.OrderItem   `json:"items"`
	PaymentStatus   *entity.PaymentStatus `json:"paymentStatus"`
	Notes           *string               `json:"notes"`
	Tags            *[]string             `json:"tags"`
	TrackingNumber  *string               `json:"trackingNumber"`
	ShippedDate     *time.Time            `json:"shippedDate"`
	DeliveredDate   *time.Time            `json:"deliveredDate"`
}

// OrderResponse salida de una orden completa.
type OrderResponse struct {
	ID              string              `json:"orderId"`
	OrderNumber     string              `json:"orderNumber"`
	OrderDate       time.Time           `json:"orderDate"`
	CustomerID      string              `json:"customerId"`
	CustomerName    string              `json:"customerName"`
	Status          entity.OrderStatus  `json:"status"`
	ShippingAddress entity.Address      `json:"shippingAddress"`
	BillingAddress  entity.Address      `json:"billingAddress"`
	Items           []entity.OrderItem  `json:"items"`
	Payment         entity.PaymentInfo  `json:"payment"`
	SubTotal        decimal.Decimal     `json:"subTotal"`
	Tax             decimal.Decimal     `json:"tax"`
	ShippingCost    decimal.Decimal     `json:"shippingCost"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	Notes           string              `json:"notes,omitempty"`
	Tags            []string            `json:"tags"`
	ShippedDate     *time.Time          `json:"shippedDate,omitempty"`
	DeliveredDate   *time.Time          `json:"deliveredDate,omitempty"`
	TrackingNumber  string              `json:"trackingNumber,omitempty"`
}

// DeleteOrderResponse confirmación de borrado de una orden.
type DeleteOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}
