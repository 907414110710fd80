package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-empleados-api/internal/application/dto"
	"github.com/jhoicas/portal-empleados-api/internal/domain"
	"github.com/jhoicas/portal-empleados-api/pkg/logger"
)

// ErrorHandler frontera de traducción de errores: única autoridad de status
// codes de toda la API. Los handlers y casos de uso solo devuelven errores de
// dominio; aquí se mapean al sobre uniforme:
//
//	NotFoundError   -> 404, solo mensaje
//	ValidationError -> 400, mensaje + lista completa de detalles
//	BadRequestError -> 400, solo mensaje
//	*fiber.Error    -> su código, solo mensaje
//	cualquier otro  -> 500 genérico; la causa se loggea, nunca se expone
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var (
			notFound   *domain.NotFoundError
			validation *domain.ValidationError
			badRequest *domain.BadRequestError
			fiberErr   *fiber.Error
		)
		switch {
		case errors.As(err, &notFound):
			log.Warn().Str("path", c.Path()).Msg("recurso no encontrado: " + notFound.Message)
			return sendError(c, fiber.StatusNotFound, notFound.Message, nil)

		case errors.As(err, &validation):
			log.Warn().Str("path", c.Path()).Int("violations", len(validation.Details)).Msg("validación fallida")
			return sendError(c, fiber.StatusBadRequest, "Validation failed.", validation.Details)

		case errors.As(err, &badRequest):
			log.Warn().Str("path", c.Path()).Msg("bad request: " + badRequest.Message)
			return sendError(c, fiber.StatusBadRequest, badRequest.Message, nil)

		case errors.As(err, &fiberErr):
			return sendError(c, fiberErr.Code, fiberErr.Message, nil)

		default:
			log.Error().Err(err).Str("path", c.Path()).Msg("error inesperado")
			return sendError(c, fiber.StatusInternalServerError, "Something went wrong. Please try again later.", nil)
		}
	}
}

func sendError(c *fiber.Ctx, status int, message string, details []domain.ErrorDetail) error {
	if details == nil {
		details = []domain.ErrorDetail{}
	}
	return c.Status(status).JSON(dto.ErrorResponse{Message: message, Errors: details})
}
