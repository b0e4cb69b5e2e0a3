package repository

import (
	"fmt"

	"github.com/harborbank/bank-services/shared/models"
)

// AccountNotFoundError signals that no account record exists for the ID.
type AccountNotFoundError struct {
	ID int64
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("Account not found with ID: %d", e.ID)
}

// DuplicateAccountTypeError signals a violation of the one-account-per-type
// invariant. It is produced both by the application-level pre-check and by the
// storage-level unique constraint, which is the authoritative enforcement.
type DuplicateAccountTypeError struct {
	ClientID int64
	Type     models.AccountType
}

func (e *DuplicateAccountTypeError) Error() string {
	return fmt.Sprintf("Client %d already has a %s account.", e.ClientID, e.Type)
}
