package query

import (
	"context"

	"github.com/harborbank/bank-services/account-service/internal/repository"
	"github.com/harborbank/bank-services/shared/cqrs"
	"github.com/harborbank/bank-services/shared/models"
)

type AccountQueryService struct {
	readRepo *repository.AccountReadRepository
}

func NewAccountQueryService(readRepo *repository.AccountReadRepository) *AccountQueryService {
	return &AccountQueryService{readRepo: readRepo}
}

// GetAccount is a pure local lookup; it never calls the customer directory.
func (s *AccountQueryService) GetAccount(ctx context.Context, q cqrs.GetAccountQuery) (*models.Account, error) {
	return s.readRepo.GetByID(ctx, q.AccountID)
}

func (s *AccountQueryService) ListAccountsByCustomer(ctx context.Context, q cqrs.ListAccountsByCustomerQuery) ([]models.Account, error) {
	return s.readRepo.ListByClientID(ctx, q.CustomerID)
}
