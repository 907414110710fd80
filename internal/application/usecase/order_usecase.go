package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/portal-empleados-api/internal/application/dto"
	"github.com/jhoicas/portal-empleados-api/internal/domain"
	"github.com/jhoicas/portal-empleados-api/internal/domain/entity"
	"github.com/jhoicas/portal-empleados-api/internal/domain/pricing"
	"github.com/jhoicas/portal-empleados-api/internal/domain/repository"
)

// OrderUseCase cálculo de montos derivados y ciclo de vida de las órdenes.
type OrderUseCase struct {
	repo repository.OrderRepository
	now  func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Create crea la orden en estado Pending con los totales calculados desde los
// items. El número de orden es una etiqueta legible, no una clave de identidad.
func (uc *OrderUseCase) Create(in dto.AddOrderRequest) (*dto.OrderResponse, error) {
	now := uc.now()
	items := in.Items
	totals := pricing.ComputeTotals(items, pricing.ShippingCost)

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	order := &entity.Order{
		ID:              uuid.New().String(),
		OrderNumber:     generateOrderNumber(now),
		OrderDate:       now,
		CustomerID:      in.CustomerID,
		CustomerName:    in.CustomerName,
		Status:          entity.StatusPending,
		ShippingAddress: in.ShippingAddress,
		BillingAddress:  in.BillingAddress,
		Items:           items,
		Payment: entity.PaymentInfo{
			Method:        in.PaymentMethod,
			PaymentStatus: entity.PaymentPending,
		},
		SubTotal:     totals.SubTotal,
		Tax:          totals.Tax,
		ShippingCost: totals.ShippingCost,
		TotalAmount:  totals.Total,
		Notes:        in.Notes,
		Tags:         tags,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden por ID; 404 si no existe.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.getOrder(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetAll lista todas las órdenes.
func (uc *OrderUseCase) GetAll() ([]dto.OrderResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListByCustomer lista las órdenes de un cliente, más recientes primero.
func (uc *OrderUseCase) ListByCustomer(customerID string) ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListByStatus lista las órdenes en un estado dado, más recientes primero.
func (uc *OrderUseCase) ListByStatus(status entity.OrderStatus) ([]dto.OrderResponse, error) {
	if !status.Valid() {
		return nil, &domain.BadRequestError{Message: fmt.Sprintf("Invalid order status '%s'.", status)}
	}
	list, err := uc.repo.ListByStatus(status)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// Update actualización parcial: solo toca los grupos de campos presentes en
// la petición. Reemplazar items recalcula los agregados; los cambios de estado
// estampan fechas una sola vez (idempotente: repetir el mismo estado no
// sobreescribe una fecha ya puesta).
func (uc *OrderUseCase) Update(id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.getOrder(id)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		status := *in.Status
		if !status.Valid() {
			return nil, &domain.BadRequestError{Message: fmt.Sprintf("Invalid order status '%s'.", status)}
		}
		order.Status = status
		now := uc.now()
		if status == entity.StatusShipped && order.ShippedDate == nil {
			order.ShippedDate = &now
		} else if status == entity.StatusDelivered && order.DeliveredDate == nil {
			order.DeliveredDate = &now
		}
	}

	if in.ShippingAddress != nil {
		order.ShippingAddress = *in.ShippingAddress
	}
	if in.BillingAddress != nil {
		order.BillingAddress = *in.BillingAddress
	}

	if in.Items != nil {
		order.Items = *in.Items
		totals := pricing.ComputeTotals(order.Items, order.ShippingCost)
		order.SubTotal = totals.SubTotal
		order.Tax = totals.Tax
		order.TotalAmount = totals.Total
	}

	if in.PaymentStatus != nil {
		status := *in.PaymentStatus
		if !status.Valid() {
			return nil, &domain.BadRequestError{Message: fmt.Sprintf("Invalid payment status '%s'.", status)}
		}
		order.Payment.PaymentStatus = status
		// Write-once: re-capturar una orden ya capturada conserva la fecha original.
		if status == entity.PaymentCaptured && order.Payment.PaymentDate == nil {
			now := uc.now()
			order.Payment.PaymentDate = &now
		}
	}

	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	if in.Tags != nil {
		order.Tags = *in.Tags
	}
	if in.TrackingNumber != nil {
		order.TrackingNumber = *in.TrackingNumber
	}
	if in.ShippedDate != nil {
		order.ShippedDate = in.ShippedDate
	}
	if in.DeliveredDate != nil {
		order.DeliveredDate = in.DeliveredDate
	}

	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Cancel transiciona a Cancelled. Regla de negocio: una orden entregada ya no
// se puede cancelar; cualquier otro estado sí.
func (uc *OrderUseCase) Cancel(id string) (*dto.OrderResponse, error) {
	order, err := uc.getOrder(id)
	if err != nil {
		return nil, err
	}
	if order.Status == entity.StatusDelivered {
		return nil, &domain.BadRequestError{Message: "Cannot cancel a delivered order."}
	}
	order.Status = entity.StatusCancelled
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina una orden por ID; 404 si no existe.
func (uc *OrderUseCase) Delete(id string) error {
	order, err := uc.getOrder(id)
	if err != nil {
		return err
	}
	return uc.repo.Delete(order.ID)
}

func (uc *OrderUseCase) getOrder(id string) (*entity.Order, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("Order with ID %s not found.", id)}
	}
	return order, nil
}

// generateOrderNumber compone la etiqueta ORD-YYYYMMDD-XXXXXXXX con un sufijo
// aleatorio. Sin chequeo de colisión: no es autoritativa para unicidad.
func generateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.New().String()[:8])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		OrderDate:       o.OrderDate,
		CustomerID:      o.CustomerID,
		CustomerName:    o.CustomerName,
		Status:          o.Status,
		ShippingAddress: o.ShippingAddress,
		BillingAddress:  o.BillingAddress,
		Items:           o.Items,
		Payment:         o.Payment,
		SubTotal:        o.SubTotal,
		Tax:             o.Tax,
		ShippingCost:    o.ShippingCost,
		TotalAmount:     o.TotalAmount,
		Notes:           o.Notes,
		Tags:            o.Tags,
		ShippedDate:     o.ShippedDate,
		DeliveredDate:   o.DeliveredDate,
		TrackingNumber:  o.TrackingNumber,
	}
}

func toOrderResponses(list []*entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out
}
