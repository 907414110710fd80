// Package memory adaptadores de persistencia en memoria, protegidos por
// mutex. Se usan cuando no hay base de datos configurada (desarrollo) y como
// colaborador en los tests de casos de uso y handlers.
package memory

import (
	"strings"
	"sync"

	"github.com/jhoicas/portal-empleados-api/internal/domain"
	"github.com/jhoicas/portal-empleados-api/internal/domain/entity"
	"github.com/jhoicas/portal-empleados-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo store de empleados en memoria. Reproduce las mismas garantías
// que el adaptador de PostgreSQL, incluida la detección de duplicados al
// confirmar el write.
type EmployeeRepo struct {
	mu        sync.RWMutex
	employees map[string]entity.Employee
}

// NewEmployeeRepository construye el store vacío.
func NewEmployeeRepository() *EmployeeRepo {
	return &EmployeeRepo{employees: make(map[string]entity.Employee)}
}

// Create persiste un nuevo empleado; DuplicateError si name/email/phone ya
// existen en otro registro.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if dup := r.duplicateOf(e); dup != nil {
		return dup
	}
	r.employees[e.ID] = *e
	return nil
}

// GetByID obtiene un empleado por ID; (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.employees[id]; ok {
		out := e
		return &out, nil
	}
	return nil, nil
}

// FindByName busca empleados por nombre, case-insensitive.
func (r *EmployeeRepo) FindByName(name string) ([]*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Employee
	for _, e := range r.employees {
		if strings.EqualFold(e.Name, name) {
			out := e
			list = append(list, &out)
		}
	}
	return list, nil
}

// FindByEmail busca un empleado por email, case-insensitive.
func (r *EmployeeRepo) FindByEmail(email string) (*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.employees {
		if strings.EqualFold(e.Email, email) {
			out := e
			return &out, nil
		}
	}
	return nil, nil
}

// GetAll lista todos los empleados.
func (r *EmployeeRepo) GetAll() ([]*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out := e
		list = append(list, &out)
	}
	return list, nil
}

// Update reescribe un empleado existente.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[e.ID]; !ok {
		return nil // el caso de uso ya resolvió el not-found
	}
	if dup := r.duplicateOf(e); dup != nil {
		return dup
	}
	r.employees[e.ID] = *e
	return nil
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.employees, id)
	return nil
}

// ExistsByName chequeo exacto y case-sensitive, excluyendo excludeID.
func (r *EmployeeRepo) ExistsByName(name, excludeID string) (bool, error) {
	return r.exists(func(e entity.Employee) bool { return e.Name == name }, excludeID), nil
}

// ExistsByEmail chequeo exacto, excluyendo excludeID.
func (r *EmployeeRepo) ExistsByEmail(email, excludeID string) (bool, error) {
	return r.exists(func(e entity.Employee) bool { return e.Email == email }, excludeID), nil
}

// ExistsByPhone chequeo entre teléfonos no vacíos, excluyendo excludeID.
func (r *EmployeeRepo) ExistsByPhone(phone, excludeID string) (bool, error) {
	return r.exists(func(e entity.Employee) bool { return e.Phone != "" && e.Phone == phone }, excludeID), nil
}

func (r *EmployeeRepo) exists(match func(entity.Employee) bool, excludeID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.employees {
		if e.ID != excludeID && match(e) {
			return true
		}
	}
	return false
}

// duplicateOf equivalente al índice único del store SQL. Llamar con el lock
// de escritura tomado.
func (r *EmployeeRepo) duplicateOf(e *entity.Employee) *domain.DuplicateError {
	for _, other := range r.employees {
		if other.ID == e.ID {
			continue
		}
		switch {
		case other.Name == e.Name:
			return &domain.DuplicateError{Field: "name"}
		case other.Email == e.Email:
			return &domain.DuplicateError{Field: "email"}
		case e.Phone != "" && other.Phone == e.Phone:
			return &domain.DuplicateError{Field: "phone"}
		}
	}
	return nil
}
