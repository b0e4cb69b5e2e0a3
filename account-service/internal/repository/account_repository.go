package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harborbank/bank-services/shared/models"
	"github.com/lib/pq"
)

// Postgres error code for unique_violation.
const uniqueViolationCode = "23505"

// AccountWriteRepository handles all state-mutating operations for accounts.
// It operates exclusively against the PostgreSQL write store (source of truth).
type AccountWriteRepository struct {
	db *sql.DB
}

func NewAccountWriteRepository(db *sql.DB) *AccountWriteRepository {
	return &AccountWriteRepository{db: db}
}

// Create inserts the account and fills in the store-assigned ID. A concurrent
// insert for the same (client_id, type) pair trips the compound unique index
// and is reported as *DuplicateAccountTypeError: the constraint, not the
// pre-check in the command service, is what actually holds the invariant.
func (r *AccountWriteRepository) Create(account *models.Account) error {
	query := `
		INSERT INTO accounts (client_id, type, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(query,
		account.ClientID, account.Type, account.Balance,
		account.CreatedAt, account.UpdatedAt,
	).Scan(&account.ID)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
		return &DuplicateAccountTypeError{ClientID: account.ClientID, Type: account.Type}
	}
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// ExistsByClientIDAndType reports whether the customer already holds an
// account of the given type.
func (r *AccountWriteRepository) ExistsByClientIDAndType(clientID int64, accountType models.AccountType) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM accounts WHERE client_id = $1 AND type = $2)`
	var exists bool
	if err := r.db.QueryRow(query, clientID, accountType).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return exists, nil
}
