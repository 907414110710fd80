package repository

import "github.com/jhoicas/portal-empleados-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// Los métodos Get/Find devuelven (nil, nil) cuando el registro no existe;
// decidir si eso es un 404 es responsabilidad de capas superiores.
// El trío ExistsBy* es el puerto de consulta del motor de validación
// (match exacto; excludeID excluye al registro en edición).
type EmployeeRepository interface {
	Create(e *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	FindByName(name string) ([]*entity.Employee, error) // case-insensitive
	FindByEmail(email string) (*entity.Employee, error) // case-insensitive
	GetAll() ([]*entity.Employee, error)
	Update(e *entity.Employee) error
	Delete(id string) error

	ExistsByName(name, excludeID string) (bool, error)
	ExistsByEmail(email, excludeID string) (bool, error)
	ExistsByPhone(phone, excludeID string) (bool, error)
}
