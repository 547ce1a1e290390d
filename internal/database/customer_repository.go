package database

import (
	"database/sql"
	"fmt"

	"github.com/hypernova-labs/accounts-service/internal/models"
	"github.com/sirupsen/logrus"
)

// CustomerStore define el contrato de persistencia que consume la capa de
// servicios. Las búsquedas retornan (nil, nil) cuando la cuenta no existe.
type CustomerStore interface {
	FindAll() ([]models.Customer, error)
	FindByID(id string) (*models.Customer, error)
	FindByEmail(email string) (*models.Customer, error)
	FindByCountry(country string) ([]models.Customer, error)
	Create(customer *models.Customer) (*models.Customer, error)
	Update(id string, req *models.UpdateCustomerRequest) (*models.Customer, error)
	Delete(id string) error
}

// CustomerRepository maneja las operaciones de base de datos para Customer.
// Tabla customers: account_id (PK), email con restricción UNIQUE e índice
// secundario sobre country. La restricción UNIQUE es la garantía real de
// unicidad de email frente a escrituras concurrentes.
type CustomerRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewCustomerRepository crea una nueva instancia del repositorio
func NewCustomerRepository(db *DB, logger *logrus.Logger) *CustomerRepository {
	return &CustomerRepository{
		db:     db,
		logger: logger,
	}
}

// FindAll obtiene todas las cuentas, de la más reciente a la más antigua
func (r *CustomerRepository) FindAll() ([]models.Customer, error) {
	query := `
		SELECT account_id, first_name, last_name, email, phone_number,
			   address, city, state, country, date_created
		FROM customers
		ORDER BY date_created DESC
	`

	rows, err := r.db.QueryWithTimeout(query)
	if err != nil {
		return nil, fmt.Errorf("error querying customers: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// FindByID obtiene una cuenta por ID; retorna (nil, nil) si no existe
func (r *CustomerRepository) FindByID(id string) (*models.Customer, error) {
	query := `
		SELECT account_id, first_name, last_name, email, phone_number,
			   address, city, state, country, date_created
		FROM customers
		WHERE account_id = $1
	`

	var customer models.Customer
	err := r.db.QueryRowWithTimeout(query, id).Scan(
		&customer.AccountID, &customer.FirstName, &customer.LastName, &customer.Email,
		&customer.PhoneNumber, &customer.Address, &customer.City, &customer.State,
		&customer.Country, &customer.DateCreated,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying customer: %w", err)
	}

	return &customer, nil
}

// FindByEmail obtiene una cuenta por email; retorna (nil, nil) si no existe
func (r *CustomerRepository) FindByEmail(email string) (*models.Customer, error) {
	query := `
		SELECT account_id, first_name, last_name, email, phone_number,
			   address, city, state, country, date_created
		FROM customers
		WHERE email = $1
	`

	var customer models.Customer
	err := r.db.QueryRowWithTimeout(query, email).Scan(
		&customer.AccountID, &customer.FirstName, &customer.LastName, &customer.Email,
		&customer.PhoneNumber, &customer.Address, &customer.City, &customer.State,
		&customer.Country, &customer.DateCreated,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying customer: %w", err)
	}

	return &customer, nil
}

// FindByCountry obtiene las cuentas de un país, de la más reciente a la más
// antigua. Una lista vacía no es un error.
func (r *CustomerRepository) FindByCountry(country string) ([]models.Customer, error) {
	query := `
		SELECT account_id, first_name, last_name, email, phone_number,
			   address, city, state, country, date_created
		FROM customers
		WHERE country = $1
		ORDER BY date_created DESC
	`

	rows, err := r.db.QueryWithTimeout(query, country)
	if err != nil {
		return nil, fmt.Errorf("error querying customers: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows)
}

// Create persiste una nueva cuenta. El ID y la fecha de creación vienen
// asignados por el servicio, no por el repositorio.
func (r *CustomerRepository) Create(customer *models.Customer) (*models.Customer, error) {
	query := `
		INSERT INTO customers (
			account_id, first_name, last_name, email, phone_number,
			address, city, state, country, date_created
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
	`

	_, err := r.db.ExecWithTimeout(query,
		customer.AccountID, customer.FirstName, customer.LastName, customer.Email,
		customer.PhoneNumber, customer.Address, customer.City, customer.State,
		customer.Country, customer.DateCreated,
	)

	if err != nil {
		return nil, fmt.Errorf("error creating customer: %w", err)
	}

	return customer, nil
}

// Update aplica una actualización parcial: carga la fila existente, copia
// solo los campos presentes en el request y persiste el resultado.
func (r *CustomerRepository) Update(id string, req *models.UpdateCustomerRequest) (*models.Customer, error) {
	existing, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, models.NewCustomerNotFound(id)
	}

	if req.FirstName != nil {
		existing.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		existing.LastName = *req.LastName
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		existing.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		existing.Address = req.Address
	}
	if req.City != nil {
		existing.City = req.City
	}
	if req.State != nil {
		existing.State = req.State
	}
	if req.Country != nil {
		existing.Country = req.Country
	}

	query := `
		UPDATE customers
		SET first_name = $1, last_name = $2, email = $3, phone_number = $4,
			address = $5, city = $6, state = $7, country = $8
		WHERE account_id = $9
	`

	_, err = r.db.ExecWithTimeout(query,
		existing.FirstName, existing.LastName, existing.Email, existing.PhoneNumber,
		existing.Address, existing.City, existing.State, existing.Country, id,
	)

	if err != nil {
		return nil, fmt.Errorf("error updating customer: %w", err)
	}

	return existing, nil
}

// Delete elimina una cuenta de forma definitiva
func (r *CustomerRepository) Delete(id string) error {
	query := `
		DELETE FROM customers
		WHERE account_id = $1
	`

	result, err := r.db.ExecWithTimeout(query, id)
	if err != nil {
		return fmt.Errorf("error deleting customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.NewCustomerNotFound(id)
	}

	return nil
}

// scanCustomers recorre el result set y mapea cada fila al modelo de dominio
func scanCustomers(rows *sql.Rows) ([]models.Customer, error) {
	var customers []models.Customer
	for rows.Next() {
		var customer models.Customer
		err := rows.Scan(
			&customer.AccountID, &customer.FirstName, &customer.LastName, &customer.Email,
			&customer.PhoneNumber, &customer.Address, &customer.City, &customer.State,
			&customer.Country, &customer.DateCreated,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning customer: %w", err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}
