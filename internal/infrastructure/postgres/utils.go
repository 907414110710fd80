package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/portal-empleados-api/internal/domain"
)

// duplicateFieldError traduce una violación de constraint único (23505) al
// DuplicateError de dominio con el campo afectado, derivado del nombre del
// índice (employees_name_key, employees_email_key, employees_phone_key).
// Devuelve nil si el error no es una violación de unicidad.
func duplicateFieldError(err error) *domain.DuplicateError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" { // unique_violation
		return nil
	}
	for _, field := range []string{"name", "email", "phone"} {
		if strings.Contains(pgErr.ConstraintName, field) {
			return &domain.DuplicateError{Field: field}
		}
	}
	return &domain.DuplicateError{Field: pgErr.ConstraintName}
}
