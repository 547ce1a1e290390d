package models

import "fmt"

// CustomerNotFoundError indica que la cuenta buscada no existe
type CustomerNotFoundError struct {
	Identifier string
	ByEmail    bool
}

// Error implementa la interfaz error
func (e *CustomerNotFoundError) Error() string {
	if e.Identifier == "" {
		return "Customer not found"
	}
	if e.ByEmail {
		return fmt.Sprintf("Customer with email %s not found", e.Identifier)
	}
	return fmt.Sprintf("Customer with id %s not found", e.Identifier)
}

// NewCustomerNotFound crea un error de cuenta no encontrada por ID
func NewCustomerNotFound(id string) error {
	return &CustomerNotFoundError{Identifier: id}
}

// NewCustomerNotFoundByEmail crea un error de cuenta no encontrada por email
func NewCustomerNotFoundByEmail(email string) error {
	return &CustomerNotFoundError{Identifier: email, ByEmail: true}
}

// EmailAlreadyExistsError indica que otro cliente ya registró el email
type EmailAlreadyExistsError struct {
	Email string
}

// Error implementa la interfaz error
func (e *EmailAlreadyExistsError) Error() string {
	return fmt.Sprintf("Customer with email %s already exists", e.Email)
}

// NewEmailAlreadyExists crea un error de email duplicado
func NewEmailAlreadyExists(email string) error {
	return &EmailAlreadyExistsError{Email: email}
}

// ValidationError indica que el request no cumple las reglas de negocio
type ValidationError struct {
	Message string
}

// Error implementa la interfaz error
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError crea un error de validación
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// ErrorDetail representa un detalle específico del error
type ErrorDetail struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// ErrorResponse representa la respuesta de error estandarizada
type ErrorResponse struct {
	Error   string        `json:"error"`
	Message string        `json:"message,omitempty"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// NewErrorResponse crea una nueva respuesta de error
func NewErrorResponse(errorText, message string) ErrorResponse {
	return ErrorResponse{
		Error:   errorText,
		Message: message,
	}
}

// NewValidationErrorResponse crea una respuesta de validación con detalles
func NewValidationErrorResponse(message string, details []ErrorDetail) ErrorResponse {
	return ErrorResponse{
		Error:   "Validation error",
		Message: message,
		Details: details,
	}
}
