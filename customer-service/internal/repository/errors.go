package repository

import "fmt"

// CustomerNotFoundError signals that no customer record exists for the ID.
type CustomerNotFoundError struct {
	ID int64
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("Customer not found with ID: %d", e.ID)
}
