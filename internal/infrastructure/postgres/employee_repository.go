package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/portal-empleados-api/internal/domain/entity"
	"github.com/jhoicas/portal-empleados-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL.
// La tabla employees lleva índices únicos en name, email y phone (parcial,
// WHERE phone <> ''): son el respaldo de la unicidad frente a la carrera
// check-then-act del pre-check de validación.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO employees (id, name, email, phone, salary)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, e.ID, e.Name, e.Email, e.Phone, e.Salary)
	if err != nil {
		if dup := duplicateFieldError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID; (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	query := `SELECT id, name, email, phone, salary FROM employees WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get employee")
}

// FindByName busca empleados por nombre, case-insensitive.
func (r *EmployeeRepo) FindByName(name string) ([]*entity.Employee, error) {
	query := `SELECT id, name, email, phone, salary FROM employees WHERE LOWER(name) = LOWER($1)`
	rows, err := r.q.Query(context.Background(), query, name)
	if err != nil {
		return nil, fmt.Errorf("find employees by name: %w", err)
	}
	defer rows.Close()
	return scanAll(rows)
}

// FindByEmail busca un empleado por email, case-insensitive; (nil, nil) si no existe.
func (r *EmployeeRepo) FindByEmail(email string) (*entity.Employee, error) {
	query := `SELECT id, name, email, phone, salary FROM employees WHERE LOWER(email) = LOWER($1)`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "find employee by email")
}

// GetAll lista todos los empleados.
func (r *EmployeeRepo) GetAll() ([]*entity.Employee, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name, email, phone, salary FROM employees`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	return scanAll(rows)
}

// Update actualiza un empleado.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	query := `UPDATE employees SET name = $2, email = $3, phone = $4, salary = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, e.ID, e.Name, e.Email, e.Phone, e.Salary)
	if err != nil {
		if dup := duplicateFieldError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

// ExistsByName chequeo de unicidad exacto y case-sensitive, excluyendo al
// registro en edición.
func (r *EmployeeRepo) ExistsByName(name, excludeID string) (bool, error) {
	return r.exists(`SELECT 1 FROM employees WHERE name = $1 AND id <> $2`, name, excludeID)
}

// ExistsByEmail chequeo de unicidad exacto, excluyendo al registro en edición.
func (r *EmployeeRepo) ExistsByEmail(email, excludeID string) (bool, error) {
	return r.exists(`SELECT 1 FROM employees WHERE email = $1 AND id <> $2`, email, excludeID)
}

// ExistsByPhone chequeo de unicidad entre teléfonos no vacíos.
func (r *EmployeeRepo) ExistsByPhone(phone, excludeID string) (bool, error) {
	return r.exists(`SELECT 1 FROM employees WHERE phone = $1 AND phone <> '' AND id <> $2`, phone, excludeID)
}

func (r *EmployeeRepo) exists(query, value, excludeID string) (bool, error) {
	var one int
	err := r.q.QueryRow(context.Background(), query, value, excludeID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exists employee: %w", err)
	}
	return true, nil
}

func (r *EmployeeRepo) scanOne(row pgx.Row, op string) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Salary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &e, nil
}

func scanAll(rows pgx.Rows) ([]*entity.Employee, error) {
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Salary); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
