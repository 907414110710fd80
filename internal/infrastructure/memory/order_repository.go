package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/portal-empleados-api/internal/domain/entity"
	"github.com/jhoicas/portal-empleados-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo store de órdenes en memoria.
type OrderRepo struct {
	mu     sync.RWMutex
	orders map[string]entity.Order
}

// NewOrderRepository construye el store vacío.
func NewOrderRepository() *OrderRepo {
	return &OrderRepo{orders: make(map[string]entity.Order)}
}

// Create persiste una nueva orden.
func (r *OrderRepo) Create(o *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = *o
	return nil
}

// GetByID obtiene una orden por ID; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if o, ok := r.orders[id]; ok {
		out := o
		return &out, nil
	}
	return nil, nil
}

// GetAll lista todas las órdenes.
func (r *OrderRepo) GetAll() ([]*entity.Order, error) {
	return r.filter(func(entity.Order) bool { return true }), nil
}

// ListByCustomer lista las órdenes de un cliente, más recientes primero.
func (r *OrderRepo) ListByCustomer(customerID string) ([]*entity.Order, error) {
	return r.filter(func(o entity.Order) bool { return o.CustomerID == customerID }), nil
}

// ListByStatus lista las órdenes en un estado, más recientes primero.
func (r *OrderRepo) ListByStatus(status entity.OrderStatus) ([]*entity.Order, error) {
	return r.filter(func(o entity.Order) bool { return o.Status == status }), nil
}

// Update reescribe una orden existente.
func (r *OrderRepo) Update(o *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; ok {
		r.orders[o.ID] = *o
	}
	return nil
}

// Delete elimina una orden por ID.
func (r *OrderRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

func (r *OrderRepo) filter(match func(entity.Order) bool) []*entity.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Order
	for _, o := range r.orders {
		if match(o) {
			out := o
			list = append(list, &out)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].OrderDate.After(list[j].OrderDate) })
	return list
}
