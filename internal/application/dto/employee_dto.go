package dto

import "github.com/shopspring/decimal"

// AddEmployeeRequest entrada para crear un empleado. Salary en puntero para
// distinguir "no enviado" de cero (cero es inválido, ausente es otro código).
type AddEmployeeRequest struct {
	Name   string           `json:"name"`
	Email  string           `json:"email"`
	Phone  string           `json:"phone"`
	Salary *decimal.Decimal `json:"salary"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado. Mismos campos y
// reglas que el alta; la unicidad excluye al propio registro.
type UpdateEmployeeRequest struct {
	Name   string           `json:"name"`
	Email  string           `json:"email"`
	Phone  string           `json:"phone"`
	Salary *decimal.Decimal `json:"salary"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID     string          `json:"employeeId"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Phone  string          `json:"phone,omitempty"`
	Salary decimal.Decimal `json:"salary"`
}
