package cqrs

import "github.com/harborbank/bank-services/shared/models"

type CreateCustomerCommand struct {
	Name  string
	Email string
}

type CreateAccountCommand struct {
	Balance  float64
	Type     models.AccountType
	ClientID int64
}
