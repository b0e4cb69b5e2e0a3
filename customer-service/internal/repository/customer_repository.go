package repository

import (
	"database/sql"
	"fmt"

	"github.com/harborbank/bank-services/shared/models"
)

// CustomerWriteRepository handles all state-mutating operations for customers.
// It operates exclusively against the PostgreSQL write store (source of truth).
type CustomerWriteRepository struct {
	db *sql.DB
}

func NewCustomerWriteRepository(db *sql.DB) *CustomerWriteRepository {
	return &CustomerWriteRepository{db: db}
}

// Create inserts the customer and fills in the store-assigned ID.
func (r *CustomerWriteRepository) Create(customer *models.Customer) error {
	query := `
		INSERT INTO customers (name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(query,
		customer.Name, customer.Email, customer.CreatedAt, customer.UpdatedAt,
	).Scan(&customer.ID)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}
