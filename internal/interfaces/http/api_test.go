package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/portal-empleados-api/internal/application/auth"
	"github.com/jhoicas/portal-empleados-api/internal/application/dto"
	"github.com/jhoicas/portal-empleados-api/internal/application/usecase"
	"github.com/jhoicas/portal-empleados-api/internal/infrastructure/memory"
	apihttp "github.com/jhoicas/portal-empleados-api/internal/interfaces/http"
	"github.com/jhoicas/portal-empleados-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// App de prueba: stack completo sobre los adaptadores en memoria.
// ──────────────────────────────────────────────────────────────────────────────

func newTestApp() *fiber.App {
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	employeeRepo := memory.NewEmployeeRepository()
	deps := apihttp.RouterDeps{
		EmployeeUC: usecase.NewEmployeeUseCase(employeeRepo),
		OrderUC:    usecase.NewOrderUseCase(memory.NewOrderRepository()),
		AuthUC: auth.NewAuthUseCase(employeeRepo, auth.JWTConfig{
			Secret: "test-secret", ExpMinutes: 60, Issuer: "portal-empleados-test",
		}),
	}

	app := fiber.New(fiber.Config{ErrorHandler: apihttp.ErrorHandler(log)})
	apihttp.Router(app, deps)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*nethttp.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decodeErrorResponse(t *testing.T, raw []byte) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func validEmployeeBody() fiber.Map {
	return fiber.Map{
		"name":   "Ana García",
		"email":  "ana@acme.com",
		"phone":  "3001234567",
		"salary": 2500,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Employees
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_CrearEmpleado_201(t *testing.T) {
	app := newTestApp()

	resp, raw := doJSON(t, app, nethttp.MethodPost, "/api/employees/", validEmployeeBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.NotEmpty(t, out["employeeId"], "el ID sale bajo la clave employeeId")
	assert.Equal(t, "Ana García", out["name"])
}

// El rechazo de validación viaja en el sobre uniforme: message fijo y la lista
// completa de detalles por campo.
func TestAPI_CrearEmpleadoVacio_400ConDetalles(t *testing.T) {
	app := newTestApp()

	resp, raw := doJSON(t, app, nethttp.MethodPost, "/api/employees/", fiber.Map{})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	out := decodeErrorResponse(t, raw)
	assert.Equal(t, "Validation failed.", out.Message)
	require.Len(t, out.Errors, 4)
	for _, d := range out.Errors {
		assert.NotEmpty(t, d.Element)
		assert.NotEmpty(t, d.Code)
		assert.NotEmpty(t, d.Message)
		assert.Equal(t, "body", d.Location)
	}
}

func TestAPI_BuscarEmpleadoInexistente_404(t *testing.T) {
	app := newTestApp()

	resp, raw := doJSON(t, app, nethttp.MethodGet, "/api/employees/Nadie", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	out := decodeErrorResponse(t, raw)
	assert.Equal(t, "No employee found with name 'Nadie'", out.Message)
	assert.NotNil(t, out.Errors, "errors siempre es lista, nunca null")
	assert.Empty(t, out.Errors)
}

func TestAPI_BodyInvalido_400(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(nethttp.MethodPost, "/api/employees/", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := decodeErrorResponse(t, raw)
	assert.Equal(t, "Invalid request body.", out.Message)
}

func TestAPI_EmpleadoDuplicado_400ConCodigo(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, nethttp.MethodPost, "/api/employees/", validEmployeeBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, raw := doJSON(t, app, nethttp.MethodPost, "/api/employees/", validEmployeeBody())
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	out := decodeErrorResponse(t, raw)
	require.NotEmpty(t, out.Errors)
	codes := make([]string, 0, len(out.Errors))
	for _, d := range out.Errors {
		codes = append(codes, d.Code)
	}
	assert.Contains(t, codes, "E14012", "name duplicado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Orders
// ──────────────────────────────────────────────────────────────────────────────

func validOrderBody() fiber.Map {
	return fiber.Map{
		"customerId":   "cust-1",
		"customerName": "Ana García",
		"shippingAddress": fiber.Map{
			"street": "Calle 10 #5-23", "city": "Bogotá", "state": "Cundinamarca",
			"postalCode": "110111", "country": "CO",
		},
		"billingAddress": fiber.Map{
			"street": "Calle 10 #5-23", "city": "Bogotá", "state": "Cundinamarca",
			"postalCode": "110111", "country": "CO",
		},
		"items": []fiber.Map{{
			"productId": "prod-1", "productName": "Teclado",
			"quantity": 2, "unitPrice": "10.00", "discount": "1.00",
		}},
		"paymentMethod": "CreditCard",
	}
}

func createOrder(t *testing.T, app *fiber.App) map[string]any {
	t.Helper()
	resp, raw := doJSON(t, app, nethttp.MethodPost, "/api/orders/", validOrderBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestAPI_CrearOrden_201ConTotales(t *testing.T) {
	app := newTestApp()

	out := createOrder(t, app)
	assert.Equal(t, "Pending", out["status"])
	assert.Equal(t, "19", out["subTotal"])
	assert.Equal(t, "1.9", out["tax"])
	assert.Equal(t, "15", out["shippingCost"])
	assert.Equal(t, "35.9", out["totalAmount"])
	assert.NotEmpty(t, out["orderNumber"])
}

func TestAPI_CancelarOrdenEntregada_400(t *testing.T) {
	app := newTestApp()
	created := createOrder(t, app)
	id := created["orderId"].(string)

	resp, _ := doJSON(t, app, nethttp.MethodPut, "/api/orders/"+id, fiber.Map{"status": "Delivered"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, raw := doJSON(t, app, nethttp.MethodPatch, "/api/orders/"+id+"/cancel", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decodeErrorResponse(t, raw)
	assert.Equal(t, "Cannot cancel a delivered order.", out.Message)
}

func TestAPI_EstadoDesconocidoEnRuta_400(t *testing.T) {
	app := newTestApp()

	resp, raw := doJSON(t, app, nethttp.MethodGet, "/api/orders/status/Bogus", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decodeErrorResponse(t, raw)
	assert.Equal(t, "Invalid order status 'Bogus'.", out.Message)
}

func TestAPI_EliminarOrden_ConfirmacionYLuego404(t *testing.T) {
	app := newTestApp()
	created := createOrder(t, app)
	id := created["orderId"].(string)

	resp, raw := doJSON(t, app, nethttp.MethodDelete, "/api/orders/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var del dto.DeleteOrderResponse
	require.NoError(t, json.Unmarshal(raw, &del))
	assert.Equal(t, "Order deleted successfully", del.Message)
	assert.Equal(t, id, del.OrderID)

	resp, raw = doJSON(t, app, nethttp.MethodGet, "/api/orders/"+id, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	out := decodeErrorResponse(t, raw)
	assert.Equal(t, "Order with ID "+id+" not found.", out.Message)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_Login_EmpleadoExistenteRecibeToken(t *testing.T) {
	app := newTestApp()
	resp, _ := doJSON(t, app, nethttp.MethodPost, "/api/employees/", validEmployeeBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, raw := doJSON(t, app, nethttp.MethodPost, "/api/auth/login", fiber.Map{
		"email": "ana@acme.com", "password": "cualquiera",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.Token)
	require.NotNil(t, out.Data)
	assert.Equal(t, "ana@acme.com", out.Data.Email)
}

func TestAPI_Login_EmailDesconocido_401(t *testing.T) {
	app := newTestApp()

	resp, raw := doJSON(t, app, nethttp.MethodPost, "/api/auth/login", fiber.Map{
		"email": "nadie@acme.com", "password": "cualquiera",
	})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.False(t, out.Success)
	assert.Equal(t, "Invalid email or password.", out.Message)
}

func TestAPI_Login_PeticionMalFormada_400ConLista(t *testing.T) {
	app := newTestApp()

	resp, raw := doJSON(t, app, nethttp.MethodPost, "/api/auth/login", fiber.Map{
		"email": "sin-arroba", "password": "123",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out struct {
		Success bool     `json:"success"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.False(t, out.Success)
	assert.Len(t, out.Errors, 2)
}
