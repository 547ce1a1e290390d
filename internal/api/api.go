package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/accounts-service/internal/models"
	"github.com/sirupsen/logrus"
)

// CustomerOperations define las operaciones de negocio que expone la API
type CustomerOperations interface {
	Create(req *models.CreateCustomerRequest) (*models.Customer, error)
	GetAll() ([]models.Customer, error)
	GetByID(id string) (*models.Customer, error)
	GetByEmail(email string) (*models.Customer, error)
	GetByCountry(country string) ([]models.Customer, error)
	Update(id string, req *models.UpdateCustomerRequest) (*models.Customer, error)
	Delete(id string) error
}

// API maneja todos los endpoints de la API
type API struct {
	customers   CustomerOperations
	logger      *logrus.Logger
	development bool
}

// NewAPI crea una nueva instancia de la API. En modo development los errores
// internos exponen el mensaje original en la respuesta.
func NewAPI(customers CustomerOperations, logger *logrus.Logger, development bool) *API {
	return &API{
		customers:   customers,
		logger:      logger,
		development: development,
	}
}

// GetAllCustomers obtiene todas las cuentas
func (api *API) GetAllCustomers(c *gin.Context) {
	customers, err := api.customers.GetAll()
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customersToResponse(customers))
}

// GetCustomersByCountry obtiene las cuentas de un país
func (api *API) GetCustomersByCountry(c *gin.Context) {
	country := c.Param("country")

	customers, err := api.customers.GetByCountry(country)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customersToResponse(customers))
}

// GetCustomerByEmail obtiene una cuenta por email
func (api *API) GetCustomerByEmail(c *gin.Context) {
	email := c.Param("email")

	customer, err := api.customers.GetByEmail(email)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// GetCustomerByID obtiene una cuenta por ID
func (api *API) GetCustomerByID(c *gin.Context) {
	id := c.Param("id")

	customer, err := api.customers.GetByID(id)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// CreateCustomer crea una nueva cuenta
func (api *API) CreateCustomer(c *gin.Context) {
	var req models.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding create customer request")
		c.JSON(http.StatusBadRequest, models.NewValidationErrorResponse("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	customer, err := api.customers.Create(&req)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer aplica una actualización parcial sobre una cuenta
func (api *API) UpdateCustomer(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding update customer request")
		c.JSON(http.StatusBadRequest, models.NewValidationErrorResponse("Invalid request format", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	customer, err := api.customers.Update(id, &req)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer elimina una cuenta
func (api *API) DeleteCustomer(c *gin.Context) {
	id := c.Param("id")

	if err := api.customers.Delete(id); err != nil {
		api.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondError mapea errores de dominio a códigos HTTP. Los errores no
// tipados se registran y se responden de forma genérica, salvo en modo
// development donde se expone el mensaje original.
func (api *API) respondError(c *gin.Context, err error) {
	var notFound *models.CustomerNotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, models.NewErrorResponse("Customer not found", notFound.Error()))
		return
	}

	var emailExists *models.EmailAlreadyExistsError
	if errors.As(err, &emailExists) {
		c.JSON(http.StatusConflict, models.NewErrorResponse("Email already exists", emailExists.Error()))
		return
	}

	var validation *models.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse("Validation error", validation.Error()))
		return
	}

	api.logger.WithError(err).Error("Unexpected error handling request")

	message := "An unexpected error occurred"
	if api.development {
		message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, models.NewErrorResponse("Internal server error", message))
}

// customersToResponse garantiza que una lista vacía serialice como [] y no
// como null
func customersToResponse(customers []models.Customer) []models.Customer {
	if customers == nil {
		return []models.Customer{}
	}
	return customers
}
