// Package auth caso de uso de login del portal. El endpoint histórico no
// verifica credenciales: valida la forma de la petición, busca el empleado
// por email y emite un token con sus datos básicos.
package auth

import (
	"regexp"
	"strings"

	"github.com/jhoicas/portal-empleados-api/internal/application/dto"
	"github.com/jhoicas/portal-empleados-api/internal/domain/repository"
	"github.com/jhoicas/portal-empleados-api/pkg/jwt"
)

// El login admite un rango de emails algo más amplio que el validador de
// empleados (%+ en la parte local), herencia del comportamiento original.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// JWTConfig configuración para la generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login contra el directorio de empleados.
type AuthUseCase struct {
	repo   repository.EmployeeRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(repo repository.EmployeeRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{repo: repo, jwtCfg: jwtCfg}
}

// ValidateRequest chequeos sintácticos de email y password. Devuelve la lista
// completa de mensajes (el endpoint de login conserva su forma histórica de
// lista de strings, separada del catálogo de códigos de empleados).
func ValidateRequest(in dto.LoginRequest) []string {
	var errs []string

	switch {
	case in.Email == "":
		errs = append(errs, "Email is required.")
	case strings.TrimSpace(in.Email) == "":
		errs = append(errs, "Email cannot be empty or contain only whitespace.")
	case strings.Contains(in.Email, " "):
		errs = append(errs, "Email cannot contain spaces.")
	case !emailPattern.MatchString(in.Email):
		errs = append(errs, "Email format is invalid. Please provide a valid email address.")
	case len(in.Email) > 255:
		errs = append(errs, "Email cannot exceed 255 characters.")
	}

	switch {
	case in.Password == "":
		errs = append(errs, "Password is required.")
	case strings.TrimSpace(in.Password) == "":
		errs = append(errs, "Password cannot be empty or contain only whitespace.")
	case len(in.Password) < 6:
		errs = append(errs, "Password must be at least 6 characters long.")
	case len(in.Password) > 100:
		errs = append(errs, "Password cannot exceed 100 characters.")
	case strings.HasPrefix(in.Password, " ") || strings.HasSuffix(in.Password, " "):
		errs = append(errs, "Password cannot start or end with spaces.")
	}

	return errs
}

// Login busca el empleado por email (case-insensitive) y emite el token.
// Devuelve (nil, nil) si el email no corresponde a ningún empleado; el
// handler lo traduce a 401. No hay verificación de password (no se almacenan
// credenciales).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	employee, err := uc.repo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, employee.ID, employee.Email, employee.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		Data: &dto.LoginUserData{
			Email: employee.Email,
			Name:  employee.Name,
		},
		Token: token,
	}, nil
}
