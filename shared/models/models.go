package models

import "time"

// AccountType is the closed set of account categories. A customer may hold at
// most one account of each type.
type AccountType string

const (
	AccountTypeChecking AccountType = "CHECKING"
	AccountTypeSavings  AccountType = "SAVINGS"
)

// Valid reports whether t is a member of the enumeration.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings:
		return true
	}
	return false
}

type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdTimestamp"`
	UpdatedAt time.Time `json:"updatedTimestamp"`
}

type Account struct {
	ID        int64       `json:"id"`
	Balance   float64     `json:"balance"`
	Type      AccountType `json:"type"`
	ClientID  int64       `json:"clientId"`
	CreatedAt time.Time   `json:"createdTimestamp"`
	UpdatedAt time.Time   `json:"updatedTimestamp"`
}
