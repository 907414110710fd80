package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado del ciclo de vida de una orden.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
	StatusRefunded   OrderStatus = "Refunded"
)

// Valid reporta si el valor es un estado conocido.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// PaymentMethod método de pago declarado al crear la orden.
type PaymentMethod string

const (
	MethodCreditCard     PaymentMethod = "CreditCard"
	MethodDebitCard      PaymentMethod = "DebitCard"
	MethodPayPal         PaymentMethod = "PayPal"
	MethodBankTransfer   PaymentMethod = "BankTransfer"
	MethodCashOnDelivery PaymentMethod = "CashOnDelivery"
)

// PaymentStatus estado del sub-registro de pago.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "Pending"
	PaymentAuthorized PaymentStatus = "Authorized"
	PaymentCaptured   PaymentStatus = "Captured"
	PaymentFailed     PaymentStatus = "Failed"
	PaymentRefunded   PaymentStatus = "Refunded"
)

// Valid reporta si el valor es un estado de pago conocido.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentAuthorized, PaymentCaptured, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Address dirección embebida (envío o facturación).
type Address struct {
	Street          string `json:"street"`
	City            string `json:"city"`
	State           string `json:"state"`
	PostalCode      string `json:"postalCode"`
	Country         string `json:"country"`
	ApartmentNumber string `json:"apartmentNumber,omitempty"`
}

// OrderItem línea de la orden. TotalPrice es derivado
// (unitPrice*quantity - discount) y se recalcula siempre que cambian los items.
type OrderItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	ProductSku  string          `json:"productSku,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Discount    decimal.Decimal `json:"discount"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	Attributes  []string        `json:"attributes,omitempty"` // ej. ["Size: Large", "Color: Blue"]
}

// PaymentInfo sub-registro de pago. PaymentDate se estampa una sola vez
// cuando el estado pasa a Captured.
type PaymentInfo struct {
	Method        PaymentMethod `json:"method"`
	TransactionID string        `json:"transactionId,omitempty"`
	PaymentDate   *time.Time    `json:"paymentDate,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Last4Digits   string        `json:"last4Digits,omitempty"`
}

// Order orden de compra. SubTotal/Tax/TotalAmount son derivados de Items y
// nunca deben quedar desfasados respecto a ellos. OrderNumber es una etiqueta
// legible para humanos, no una clave de identidad (la identidad es ID).
type Order struct {
	ID              string
	OrderNumber     string
	OrderDate       time.Time
	CustomerID      string
	CustomerName    string
	Status          OrderStatus
	ShippingAddress Address
	BillingAddress  Address
	Items           []OrderItem
	Payment         PaymentInfo
	SubTotal        decimal.Decimal
	Tax             decimal.Decimal
	ShippingCost    decimal.Decimal
	TotalAmount     decimal.Decimal
	Notes           string
	Tags            []string
	ShippedDate     *time.Time
	DeliveredDate   *time.Time
	TrackingNumber  string
}
