package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/portal-empleados-api/internal/domain/entity"
	"github.com/jhoicas/portal-empleados-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL. Las partes
// embebidas del documento (direcciones, items, pago) van en columnas JSONB;
// los montos en NUMERIC vía el codec de shopspring/decimal.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `
	id, order_number, order_date, customer_id, customer_name, status,
	shipping_address, billing_address, items, payment,
	sub_total, tax, shipping_cost, total_amount,
	notes, tags, shipped_date, delivered_date, tracking_number`

// Create persiste una nueva orden.
func (r *OrderRepo) Create(o *entity.Order) error {
	shipping, billing, items, payment, err := marshalParts(o)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err = r.q.Exec(context.Background(), query,
		o.ID, o.OrderNumber, o.OrderDate, o.CustomerID, o.CustomerName, string(o.Status),
		shipping, billing, items, payment,
		o.SubTotal, o.Tax, o.ShippingCost, o.TotalAmount,
		o.Notes, o.Tags, o.ShippedDate, o.DeliveredDate, o.TrackingNumber,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// GetAll lista todas las órdenes.
func (r *OrderRepo) GetAll() ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	return r.list(query)
}

// ListByCustomer lista las órdenes de un cliente, más recientes primero.
func (r *OrderRepo) ListByCustomer(customerID string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY order_date DESC`
	return r.list(query, customerID)
}

// ListByStatus lista las órdenes en un estado, más recientes primero.
func (r *OrderRepo) ListByStatus(status entity.OrderStatus) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 ORDER BY order_date DESC`
	return r.list(query, string(status))
}

// Update reescribe la orden completa (documento único, last-write-wins).
func (r *OrderRepo) Update(o *entity.Order) error {
	shipping, billing, items, payment, err := marshalParts(o)
	if err != nil {
		return err
	}
	query := `
		UPDATE orders SET
			order_number = $2, order_date = $3, customer_id = $4, customer_name = $5, status = $6,
			shipping_address = $7, billing_address = $8, items = $9, payment = $10,
			sub_total = $11, tax = $12, shipping_cost = $13, total_amount = $14,
			notes = $15, tags = $16, shipped_date = $17, delivered_date = $18, tracking_number = $19
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		o.ID, o.OrderNumber, o.OrderDate, o.CustomerID, o.CustomerName, string(o.Status),
		shipping, billing, items, payment,
		o.SubTotal, o.Tax, o.ShippingCost, o.TotalAmount,
		o.Notes, o.Tags, o.ShippedDate, o.DeliveredDate, o.TrackingNumber,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina una orden por ID.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func marshalParts(o *entity.Order) (shipping, billing, items, payment []byte, err error) {
	if shipping, err = json.Marshal(o.ShippingAddress); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal shipping address: %w", err)
	}
	if billing, err = json.Marshal(o.BillingAddress); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal billing address: %w", err)
	}
	if items, err = json.Marshal(o.Items); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal items: %w", err)
	}
	if payment, err = json.Marshal(o.Payment); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal payment: %w", err)
	}
	return shipping, billing, items, payment, nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var (
		o                                  entity.Order
		status                             string
		shipping, billing, items, payment []byte
	)
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.OrderDate, &o.CustomerID, &o.CustomerName, &status,
		&shipping, &billing, &items, &payment,
		&o.SubTotal, &o.Tax, &o.ShippingCost, &o.TotalAmount,
		&o.Notes, &o.Tags, &o.ShippedDate, &o.DeliveredDate, &o.TrackingNumber,
	)
	if err != nil {
		return nil, err
	}
	o.Status = entity.OrderStatus(status)
	if err := json.Unmarshal(shipping, &o.ShippingAddress); err != nil {
		return nil, fmt.Errorf("unmarshal shipping address: %w", err)
	}
	if err := json.Unmarshal(billing, &o.BillingAddress); err != nil {
		return nil, fmt.Errorf("unmarshal billing address: %w", err)
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	if err := json.Unmarshal(payment, &o.Payment); err != nil {
		return nil, fmt.Errorf("unmarshal payment: %w", err)
	}
	return &o, nil
}
