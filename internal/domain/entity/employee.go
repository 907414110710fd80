package entity

import "github.com/shopspring/decimal"

// Employee registro de empleado del back office. El ID se asigna al crear y
// es inmutable. Name, Email y Phone (si no está vacío) son únicos entre todos
// los empleados; la unicidad se valida antes de escribir y además la refuerza
// el store con índices únicos.
type Employee struct {
	ID     string
	Name   string
	Email  string
	Phone  string // opcional a nivel de entidad
	Salary decimal.Decimal
}
