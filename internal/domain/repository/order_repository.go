package repository

import "github.com/jhoicas/portal-empleados-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
// Los listados por cliente y por estado vienen ordenados por fecha de orden
// descendente. GetByID devuelve (nil, nil) si la orden no existe.
type OrderRepository interface {
	Create(o *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	GetAll() ([]*entity.Order, error)
	ListByCustomer(customerID string) ([]*entity.Order, error)
	ListByStatus(status entity.OrderStatus) ([]*entity.Order, error)
	Update(o *entity.Order) error
	Delete(id string) error
}
