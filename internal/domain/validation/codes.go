package validation

// Códigos de error estables del catálogo. Los clientes matchean por código,
// no por texto: no renumerar ni reutilizar códigos entre versiones.
const (
	CodePhoneRequired = "E14001"
	CodePhoneInvalid  = "E14002"
	CodePhoneExists   = "E14003"

	CodeNameRequired = "E14004"
	CodeNameTooShort = "E14005"
	CodeNameTooLong  = "E14006"
	CodeNameExists   = "E14012"

	CodeEmailRequired = "E14007"
	CodeEmailInvalid  = "E14008"
	CodeEmailExists   = "E14009"

	CodeSalaryRequired = "E14010"
	CodeSalaryPositive = "E14011"
)

// messages catálogo inmutable código -> mensaje. Solo lectura después de la
// inicialización, compartible sin sincronización.
var messages = map[string]string{
	CodePhoneRequired: "phone is required.",
	CodePhoneInvalid:  "phone is not valid.",
	CodePhoneExists:   "Phone is already exits.",

	CodeNameRequired: "name is required.",
	CodeNameTooShort: "name must be at least 3 characters long.",
	CodeNameTooLong:  "name must not exceed 50 characters.",
	CodeNameExists:   "Name is already exits.",

	CodeEmailRequired: "email is required.",
	CodeEmailInvalid:  "email is not valid.",
	CodeEmailExists:   "Email is already exits.",

	CodeSalaryRequired: "salary is required.",
	CodeSalaryPositive: "salary must be greater than 0.",
}

// MessageFor devuelve el mensaje fijo para un código conocido, o un fallback
// genérico para códigos no reconocidos.
func MessageFor(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return "Unknown error."
}
