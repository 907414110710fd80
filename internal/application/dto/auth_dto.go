package dto

// LoginRequest credenciales de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUserData datos mínimos del usuario autenticado.
type LoginUserData struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse respuesta de login. El endpoint conserva su forma histórica
// {success, message, ...} en lugar del sobre de error estándar.
type LoginResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    *LoginUserData `json:"data,omitempty"`
	Token   string         `json:"token,omitempty"`
}
