package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/portal-empleados-api/internal/application/auth"
	"github.com/jhoicas/portal-empleados-api/internal/application/dto"
	pkgjwt "github.com/jhoicas/portal-empleados-api/pkg/jwt"
)

// AuthHandler maneja login y la inspección de tokens. El login conserva su
// forma histórica de respuesta {success, message, ...}, al margen del sobre
// de error estándar del resto de la API.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Login (sin verificación de credenciales)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  dto.LoginResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body.")
	}
	if errs := auth.ValidateRequest(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"errors":  errs,
		})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return err
	}
	if out == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.LoginResponse{
			Success: false,
			Message: "Invalid email or password.",
		})
	}
	return c.JSON(out)
}

// DecodeToken godoc
// @Summary      Decodificar un JWT sin verificar la firma
// @Tags         jwt
// @Produce      json
// @Param        token  query  string  true  "Token JWT"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/jwt/decode [get]
func (h *AuthHandler) DecodeToken(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Token is required.")
	}
	claims, err := pkgjwt.Decode(token)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid token.")
	}
	return c.JSON(claims)
}
