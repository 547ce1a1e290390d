package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hypernova-labs/accounts-service/internal/database"
	"github.com/hypernova-labs/accounts-service/internal/models"
	"github.com/sirupsen/logrus"
)

// emailPattern exige local@dominio con al menos un punto en el dominio
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CustomerService maneja la lógica de negocio para Customer
type CustomerService struct {
	store  database.CustomerStore
	logger *logrus.Logger
}

// NewCustomerService crea una nueva instancia del servicio
func NewCustomerService(store database.CustomerStore, logger *logrus.Logger) *CustomerService {
	return &CustomerService{
		store:  store,
		logger: logger,
	}
}

// Create valida y crea una nueva cuenta. El ID y la fecha de creación se
// asignan aquí. La verificación de email por búsqueda previa no es atómica
// frente a creaciones concurrentes; la restricción UNIQUE de la tabla es el
// respaldo real.
func (s *CustomerService) Create(req *models.CreateCustomerRequest) (*models.Customer, error) {
	if strings.TrimSpace(req.FirstName) == "" ||
		strings.TrimSpace(req.LastName) == "" ||
		strings.TrimSpace(req.Email) == "" {
		return nil, models.NewValidationError("First name, last name, and email are required")
	}

	if !emailPattern.MatchString(req.Email) {
		return nil, models.NewValidationError("Invalid email format")
	}

	// Verificar si el email ya está registrado
	existing, err := s.store.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewEmailAlreadyExists(req.Email)
	}

	customer := &models.Customer{
		AccountID:   uuid.New().String(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		DateCreated: time.Now().UTC(),
	}

	created, err := s.store.Create(customer)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"account_id": created.AccountID,
		"email":      created.Email,
	}).Info("Customer created successfully")

	return created, nil
}

// GetAll obtiene todas las cuentas, de la más reciente a la más antigua
func (s *CustomerService) GetAll() ([]models.Customer, error) {
	return s.store.FindAll()
}

// GetByID obtiene una cuenta por ID
func (s *CustomerService) GetByID(id string) (*models.Customer, error) {
	customer, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, models.NewCustomerNotFound(id)
	}
	return customer, nil
}

// GetByEmail obtiene una cuenta por email
func (s *CustomerService) GetByEmail(email string) (*models.Customer, error) {
	customer, err := s.store.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, models.NewCustomerNotFoundByEmail(email)
	}
	return customer, nil
}

// GetByCountry obtiene las cuentas de un país; una lista vacía no es un error
func (s *CustomerService) GetByCountry(country string) ([]models.Customer, error) {
	return s.store.FindByCountry(country)
}

// Update aplica una actualización parcial. Si el request incluye email se
// valida el formato y la unicidad; actualizar al propio email actual de la
// cuenta no es un conflicto.
func (s *CustomerService) Update(id string, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	existing, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, models.NewCustomerNotFound(id)
	}

	if req.Email != nil {
		if !emailPattern.MatchString(*req.Email) {
			return nil, models.NewValidationError("Invalid email format")
		}

		owner, err := s.store.FindByEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if owner != nil && owner.AccountID != id {
			return nil, models.NewEmailAlreadyExists(*req.Email)
		}
	}

	updated, err := s.store.Update(id, req)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"account_id": updated.AccountID,
		"email":      updated.Email,
	}).Info("Customer updated successfully")

	return updated, nil
}

// Delete elimina una cuenta. La existencia se verifica antes de borrar para
// que ambas capas coincidan en el caso no-encontrado.
func (s *CustomerService) Delete(id string) error {
	existing, err := s.store.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return models.NewCustomerNotFound(id)
	}

	if err := s.store.Delete(id); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"account_id": id,
	}).Info("Customer deleted successfully")

	return nil
}
