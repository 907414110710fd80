package domain

import "fmt"

// ErrorDetail describe una violación de regla sobre un campo concreto.
// Code es estable entre versiones: los clientes pueden matchear por código
// en lugar del texto del mensaje.
type ErrorDetail struct {
	Element  string `json:"element"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Value    string `json:"value"`
	Location string `json:"location"`
}

// NotFoundError el identificador o criterio no resuelve a ningún recurso.
// La capa HTTP lo traduce a 404 con solo el mensaje.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFoundError construye el error estándar "recurso con ID no encontrado".
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("%s with ID '%s' was not found.", resource, id)}
}

// ValidationError una o más reglas de campo violadas. Siempre lleva la lista
// completa de detalles para que el cliente corrija todo en un solo round trip.
type ValidationError struct {
	Details []ErrorDetail
}

func (e *ValidationError) Error() string { return "Validation failed." }

// BadRequestError precondición de negocio violada a nivel de operación
// (ej. cancelar una orden entregada). Distinto de ValidationError: 400 con
// solo el mensaje, sin lista de campos.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }

// DuplicateError violación de constraint único detectada por el store al
// confirmar un write. Field indica el campo afectado (name, email, phone);
// el caso de uso lo convierte en el ValidationError equivalente al pre-check.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string { return fmt.Sprintf("valor duplicado en campo %s", e.Field) }
