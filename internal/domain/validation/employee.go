// Package validation contiene las reglas de campo para Employee y el catálogo
// de códigos de error. Cada validador es una función pura sobre el valor
// candidato; solo los chequeos de unicidad consultan el store a través de
// EmployeeLookup. Por campo gana la primera regla que falla: un campo vacío
// nunca se reporta además como "formato inválido".
package validation

import (
	"regexp"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/portal-empleados-api/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// EmployeeLookup puerto de consulta para los chequeos de unicidad.
// excludeID es el ID del registro en edición, que no debe chocar consigo
// mismo (vacío al crear). El match es exacto y case-sensitive.
type EmployeeLookup interface {
	ExistsByName(name, excludeID string) (bool, error)
	ExistsByEmail(email, excludeID string) (bool, error)
	ExistsByPhone(phone, excludeID string) (bool, error)
}

// Employee agrupa los validadores de campo sobre un lookup concreto.
type Employee struct {
	lookup EmployeeLookup
}

// NewEmployee construye el validador con su puerto de consulta.
func NewEmployee(lookup EmployeeLookup) *Employee {
	return &Employee{lookup: lookup}
}

// Candidate valores candidatos de un alta o edición de empleado.
// Salary en puntero para distinguir "ausente" de cero.
type Candidate struct {
	Name   string
	Email  string
	Phone  string
	Salary *decimal.Decimal
}

func detail(element, code, value string) *domain.ErrorDetail {
	return &domain.ErrorDetail{
		Element:  element,
		Code:     code,
		Message:  MessageFor(code),
		Value:    value,
		Location: "body",
	}
}

// Name valida el nombre: requerido, 3-50 caracteres, único.
// Los límites cuentan caracteres (runas), no bytes: "Ana García" son 10.
// El error devuelto en segunda posición es fallo de I/O del lookup, no de validación.
func (v *Employee) Name(name, excludeID string) (*domain.ErrorDetail, error) {
	if name == "" {
		return detail("name", CodeNameRequired, name), nil
	}
	length := utf8.RuneCountInString(name)
	if length < 3 {
		return detail("name", CodeNameTooShort, name), nil
	}
	if length > 50 {
		return detail("name", CodeNameTooLong, name), nil
	}
	exists, err := v.lookup.ExistsByName(name, excludeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return detail("name", CodeNameExists, name), nil
	}
	return nil, nil
}

// Email valida el email: requerido, sintaxis local@dominio.tld, único.
func (v *Employee) Email(email, excludeID string) (*domain.ErrorDetail, error) {
	if email == "" {
		return detail("email", CodeEmailRequired, email), nil
	}
	if !emailPattern.MatchString(email) {
		return detail("email", CodeEmailInvalid, email), nil
	}
	exists, err := v.lookup.ExistsByEmail(email, excludeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return detail("email", CodeEmailExists, email), nil
	}
	return nil, nil
}

// Phone valida el teléfono: requerido en estos DTOs, exactamente 10 dígitos,
// único entre los teléfonos no vacíos.
func (v *Employee) Phone(phone, excludeID string) (*domain.ErrorDetail, error) {
	if phone == "" {
		return detail("phone", CodePhoneRequired, phone), nil
	}
	if !phonePattern.MatchString(phone) {
		return detail("phone", CodePhoneInvalid, phone), nil
	}
	exists, err := v.lookup.ExistsByPhone(phone, excludeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return detail("phone", CodePhoneExists, phone), nil
	}
	return nil, nil
}

// Salary valida el salario: requerido (nil = ausente), estrictamente positivo.
func (v *Employee) Salary(salary *decimal.Decimal) *domain.ErrorDetail {
	if salary == nil {
		return detail("salary", CodeSalaryRequired, "")
	}
	if !salary.IsPositive() {
		return detail("salary", CodeSalaryPositive, salary.String())
	}
	return nil
}

// All corre los cuatro validadores incondicionalmente (no corta en el primer
// campo que falla) y devuelve todos los detalles acumulados, máximo uno por
// campo, en orden name, email, phone, salary.
func (v *Employee) All(in Candidate, excludeID string) ([]domain.ErrorDetail, error) {
	var details []domain.ErrorDetail

	d, err := v.Name(in.Name, excludeID)
	if err != nil {
		return nil, err
	}
	if d != nil {
		details = append(details, *d)
	}

	d, err = v.Email(in.Email, excludeID)
	if err != nil {
		return nil, err
	}
	if d != nil {
		details = append(details, *d)
	}

	d, err = v.Phone(in.Phone, excludeID)
	if err != nil {
		return nil, err
	}
	if d != nil {
		details = append(details, *d)
	}

	if d := v.Salary(in.Salary); d != nil {
		details = append(details, *d)
	}

	return details, nil
}
