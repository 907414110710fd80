package dto

import "github.com/jhoicas/portal-empleados-api/internal/domain"

// ErrorResponse sobre uniforme de error HTTP: mensaje resumen + lista
// ordenada de violaciones de campo (vacía salvo en fallos de validación).
type ErrorResponse struct {
	Message string               `json:"message"`
	Errors  []domain.ErrorDetail `json:"errors"`
}
