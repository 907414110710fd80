package usecase

import (
	"errors"

	"github.com/google/uuid"

	"github.com/jhoicas/portal-empleados-api/internal/application/dto"
	"github.com/jhoicas/portal-empleados-api/internal/domain"
	"github.com/jhoicas/portal-empleados-api/internal/domain/entity"
	"github.com/jhoicas/portal-empleados-api/internal/domain/repository"
	"github.com/jhoicas/portal-empleados-api/internal/domain/validation"
)

// EmployeeUseCase orquesta validación + persistencia para los empleados.
// Una operación falla completa o escribe completa: nunca hay writes parciales
// y el rechazo lleva todos los detalles de campo acumulados.
type EmployeeUseCase struct {
	repo      repository.EmployeeRepository
	validator *validation.Employee
}

// NewEmployeeUseCase construye el caso de uso. El repositorio hace también de
// puerto de unicidad para el validador.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, validator: validation.NewEmployee(repo)}
}

// Create valida los cuatro campos contra exclusión vacía y persiste con un ID
// recién generado. Si el store detecta un duplicado que el pre-check no vio
// (carrera check-then-act), el conflicto vuelve como el mismo código
// already-exists que habría producido el validador.
func (uc *EmployeeUseCase) Create(in dto.AddEmployeeRequest) (*dto.EmployeeResponse, error) {
	details, err := uc.validator.All(validation.Candidate{
		Name:   in.Name,
		Email:  in.Email,
		Phone:  in.Phone,
		Salary: in.Salary,
	}, "")
	if err != nil {
		return nil, err
	}
	if len(details) > 0 {
		return nil, &domain.ValidationError{Details: details}
	}

	employee := &entity.Employee{
		ID:     uuid.New().String(),
		Name:   in.Name,
		Email:  in.Email,
		Phone:  in.Phone,
		Salary: *in.Salary,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, duplicateToValidation(err, in.Name, in.Email, in.Phone)
	}
	return toEmployeeResponse(employee), nil
}

// Update busca el registro (404 si no existe, nunca confundido con fallo de
// validación), valida excluyendo su propio ID de los chequeos de unicidad y
// aplica todos los campos atómicamente.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.NewNotFoundError("Employee", id)
	}

	details, err := uc.validator.All(validation.Candidate{
		Name:   in.Name,
		Email:  in.Email,
		Phone:  in.Phone,
		Salary: in.Salary,
	}, id)
	if err != nil {
		return nil, err
	}
	if len(details) > 0 {
		return nil, &domain.ValidationError{Details: details}
	}

	employee.Name = in.Name
	employee.Email = in.Email
	employee.Phone = in.Phone
	employee.Salary = *in.Salary
	if err := uc.repo.Update(employee); err != nil {
		return nil, duplicateToValidation(err, in.Name, in.Email, in.Phone)
	}
	return toEmployeeResponse(employee), nil
}

// Delete elimina por ID y devuelve el registro eliminado para que el caller
// pueda hacer echo de él.
func (uc *EmployeeUseCase) Delete(id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.NewNotFoundError("Employee", id)
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByName busca por nombre (case-insensitive). Un resultado vacío es 404
// con el mensaje histórico del endpoint.
func (uc *EmployeeUseCase) GetByName(name string) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, &domain.NotFoundError{Message: "No employee found with name '" + name + "'"}
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEmployeeResponse(e))
	}
	return out, nil
}

// GetAll lista todos los empleados.
func (uc *EmployeeUseCase) GetAll() ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEmployeeResponse(e))
	}
	return out, nil
}

// duplicateToValidation convierte una violación de índice único del store en
// el ValidationError equivalente al pre-check (segunda línea de defensa de la
// unicidad; ver DuplicateError).
func duplicateToValidation(err error, name, email, phone string) error {
	var dup *domain.DuplicateError
	if !errors.As(err, &dup) {
		return err
	}
	var code, value string
	switch dup.Field {
	case "name":
		code, value = validation.CodeNameExists, name
	case "email":
		code, value = validation.CodeEmailExists, email
	case "phone":
		code, value = validation.CodePhoneExists, phone
	default:
		return err
	}
	return &domain.ValidationError{Details: []domain.ErrorDetail{{
		Element:  dup.Field,
		Code:     code,
		Message:  validation.MessageFor(code),
		Value:    value,
		Location: "body",
	}}}
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:     e.ID,
		Name:   e.Name,
		Email:  e.Email,
		Phone:  e.Phone,
		Salary: e.Salary,
	}
}
