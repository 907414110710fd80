package usecase

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-empleados-api/internal/application/dto"
	"github.com/jhoicas/portal-empleados-api/internal/domain"
	"github.com/jhoicas/portal-empleados-api/internal/domain/entity"
	"github.com/jhoicas/portal-empleados-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// newOrderUC fija el reloj para que las fechas estampadas sean deterministas.
func newOrderUC(ts time.Time) *OrderUseCase {
	uc := NewOrderUseCase(memory.NewOrderRepository())
	uc.now = func() time.Time { return ts }
	return uc
}

func sampleOrderRequest() dto.AddOrderRequest {
	return dto.AddOrderRequest{
		CustomerID:   "cust-1",
		CustomerName: "Ana García",
		ShippingAddress: entity.Address{
			Street: "Calle 10 #5-23", City: "Bogotá", State: "Cundinamarca",
			PostalCode: "110111", Country: "CO",
		},
		BillingAddress: entity.Address{
			Street: "Calle 10 #5-23", City: "Bogotá", State: "Cundinamarca",
			PostalCode: "110111", Country: "CO",
		},
		Items: []entity.OrderItem{{
			ProductID:   "prod-1",
			ProductName: "Teclado",
			Quantity:    2,
			UnitPrice:   dec("10.00"),
			Discount:    dec("1.00"),
		}},
		PaymentMethod: entity.MethodCreditCard,
	}
}

func statusPtr(s entity.OrderStatus) *entity.OrderStatus { return &s }

func paymentPtr(s entity.PaymentStatus) *entity.PaymentStatus { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderUseCase_Create_EstadoInicialYTotales(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	uc := newOrderUC(ts)

	out, err := uc.Create(sampleOrderRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPending, out.Status)
	assert.Equal(t, entity.PaymentPending, out.Payment.PaymentStatus)
	assert.Nil(t, out.Payment.PaymentDate)
	assert.Equal(t, ts, out.OrderDate)

	// 10*2 - 1 = 19; impuesto 1.90; envío 15; total 35.90
	assert.True(t, out.SubTotal.Equal(dec("19")), "subtotal: %s", out.SubTotal)
	assert.True(t, out.Tax.Equal(dec("1.90")), "tax: %s", out.Tax)
	assert.True(t, out.ShippingCost.Equal(dec("15.00")))
	assert.True(t, out.TotalAmount.Equal(dec("35.90")), "total: %s", out.TotalAmount)
	assert.True(t, out.Items[0].TotalPrice.Equal(dec("19")))

	assert.NotNil(t, out.Tags, "tags nunca debe serializar como null")
}

func TestOrderUseCase_Create_FormatoNumeroDeOrden(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	uc := newOrderUC(ts)

	out, err := uc.Create(sampleOrderRequest())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ORD-20240315-[0-9A-F]{8}$`), out.OrderNumber)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderUseCase_Update_CamposAusentesNoSeTocan(t *testing.T) {
	uc := newOrderUC(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	created, err := uc.Create(sampleOrderRequest())
	require.NoError(t, err)

	notes := "entregar en portería"
	out, err := uc.Update(created.ID, dto.UpdateOrderRequest{Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, notes, out.Notes)
	assert.Equal(t, created.Status, out.Status, "status no enviado queda intacto")
	assert.Equal(t, created.ShippingAddress, out.ShippingAddress)
	assert.True(t, created.TotalAmount.Equal(out.TotalAmount))
	assert.Equal(t, created.OrderNumber, out.OrderNumber)
}

func TestOrderUseCase_Update_ReemplazarItemsRecalculaTotales(t *testing.T) {
	uc := newOrderUC(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))
	created, err := uc.Create(sampleOrderRequest())
	require.NoError(t, err)

	items := []entity.OrderItem{{
		ProductID: "prod-2", ProductName: "Mouse",
		Quantity: 1, UnitPrice: dec("50.00"), Discount: dec("0"),
	}}
	out, err := uc.Update(created.ID, dto.UpdateOrderRequest{Items: &items})
	require.NoError(t, err)

	assert.True(t, out.SubTotal.Equal(dec("50")), "subtotal: %s", out.SubTotal)
	assert.True(t, out.Tax.Equal(dec("5")), "tax: %s", out.Tax)
	assert.True(t, out.TotalAmount.Equal(dec("70")), "total: %s", out.TotalAmount)
	assert.True(t, out.Items[0].TotalPrice.Equal(dec("50")))
}

func TestOrderUseCase_Update_EstadoInvalido(t *testing.T) {
	uc := newOrderUC(time.Now().UTC())
	created, err := uc.Create(sampleOrderRequest())
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateOrderRequest{Status: statusPtr("Bogus")})

	var bad *domain.BadRequestError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "Invalid order status 'Bogus'.", bad.Message)
}

func TestOrderUseCase_Update_IDInexistenteEsNotFound(t *testing.T) {
	uc := newOrderUC(time.Now().UTC())

	_, err := uc.Update("no-existe", dto.UpdateOrderRequest{})

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Order with ID no-existe not found.", nf.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estampado de fechas: write-once
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderUseCase_Update_ShippedEstampaUnaSolaVez(t *testing.T) {
	first := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	uc := newOrderUC(first)
	created, err := uc.Create(sampleOrderRequest())
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateOrderRequest{Status: statusPtr(entity.StatusShipped)})
	require.NoError(t, err)
	require.NotNil(t, out.ShippedDate)
	assert.Equal(t, first, *out.ShippedDate)

	// Segundo paso por Shipped con el reloj adelantado: la fecha no se mueve.
	uc.now = func() time.Time { return first.Add(48 * time.Hour) }
	out, err = uc.Update(created.ID, dto.UpdateOrderRequest{Status: statusPtr(entity.StatusShipped)})
	require.NoError(t, err)
	require.NotNil(t, out.ShippedDate)
	assert.Equal(t, first, *out.ShippedDate)
}

func TestOrderUseCase_Update_DeliveredEstampaFecha(t *testing.T) {
	ts := time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)
	uc := newOrderUC(ts)
	created, err := uc.Create(sampleOrderRequest())
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateOrderRequest{Status: statusPtr(entity.StatusDelivered)})
	require.NoError(t, err)
	require.NotNil(t, out.DeliveredDate)
	assert.Equal(t, ts, *out.DeliveredDate)
	assert.Nil(t, out.ShippedDate, "pasar directo a Delivered no estampa Shipped")
}

// Re-capturar un pago ya capturado conserva la fecha original del primer
// Captured en vez de refrescarla.
func TestOrderUseCase_Update_RecapturaNoRefrescaFecha(t *testing.T) {
	first := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	uc := newOrderUC(first)
	created, err := uc.Create(sampleOrderRequest())
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateOrderRequest{PaymentStatus: paymentPtr(entity.PaymentCaptured)})
	require.NoError(t, err)
	require.NotNil(t, out.Payment.PaymentDate)
	assert.Equal(t, first, *out.Payment.PaymentDate)

	uc.now = func() time.Time { return first.Add(72 * time.Hour) }
	out, err = uc.Update(created.ID, dto.UpdateOrderRequest{PaymentStatus: paymentPtr(entity.PaymentCaptured)})
	require.NoError(t, err)
	require.NotNil(t, out.Payment.PaymentDate)
	assert.Equal(t, first, *out.Payment.PaymentDate)
}

func TestOrderUseCase_Update_PaymentStatusInvalido(t *testing.T) {
	uc := newOrderUC(time.Now().UTC())
	created, err := uc.Create(sampleOrderRequest())
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateOrderRequest{PaymentStatus: paymentPtr("Bogus")})

	var bad *domain.BadRequestError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "Invalid payment status 'Bogus'.", bad.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancel
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderUseCase_Cancel_DesdeEstadosNoEntregados(t *testing.T) {
	for _, from := range []entity.OrderStatus{
		entity.StatusPending, entity.StatusProcessing, entity.StatusShipped,
	} {
		t.Run(string(from), func(t *testing.T) {
			uc := newOrderUC(time.Now().UTC())
			created, err := uc.Create(sampleOrderRequest())
			require.NoError(t, err)
			_, err = uc.Update(created.ID, dto.UpdateOrderRequest{Status: statusPtr(from)})
			require.NoError(t, err)

			out, err := uc.Cancel(created.ID)
			require.NoError(t, err)
			assert.Equal(t, entity.StatusCancelled, out.Status)
		})
	}
}

func TestOrderUseCase_Cancel_EntregadaEsRechazada(t *testing.T) {
	uc := newOrderUC(time.Now().UTC())
	created, err := uc.Create(sampleOrderRequest())
	require.NoError(t, err)
	_, err = uc.Update(created.ID, dto.UpdateOrderRequest{Status: statusPtr(entity.StatusDelivered)})
	require.NoError(t, err)

	_, err = uc.Cancel(created.ID)

	var bad *domain.BadRequestError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "Cannot cancel a delivered order.", bad.Message)

	// El estado sigue siendo Delivered.
	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, out.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados y Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderUseCase_ListByStatus_EstadoInvalido(t *testing.T) {
	uc := newOrderUC(time.Now().UTC())

	_, err := uc.ListByStatus("Bogus")

	var bad *domain.BadRequestError
	require.ErrorAs(t, err, &bad)
}

func TestOrderUseCase_ListByCustomer_FiltraPorCliente(t *testing.T) {
	uc := newOrderUC(time.Now().UTC())
	_, err := uc.Create(sampleOrderRequest())
	require.NoError(t, err)

	other := sampleOrderRequest()
	other.CustomerID = "cust-2"
	_, err = uc.Create(other)
	require.NoError(t, err)

	list, err := uc.ListByCustomer("cust-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "cust-1", list[0].CustomerID)
}

func TestOrderUseCase_Delete_IDInexistenteEsNotFound(t *testing.T) {
	uc := newOrderUC(time.Now().UTC())

	err := uc.Delete("no-existe")

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestOrderUseCase_Delete_EliminaLaOrden(t *testing.T) {
	uc := newOrderUC(time.Now().UTC())
	created, err := uc.Create(sampleOrderRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	_, err = uc.GetByID(created.ID)
	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
}
