package query

import (
	"context"

	"github.com/harborbank/bank-services/customer-service/internal/repository"
	"github.com/harborbank/bank-services/shared/cqrs"
	"github.com/harborbank/bank-services/shared/models"
)

type CustomerQueryService struct {
	readRepo *repository.CustomerReadRepository
}

func NewCustomerQueryService(readRepo *repository.CustomerReadRepository) *CustomerQueryService {
	return &CustomerQueryService{readRepo: readRepo}
}

func (s *CustomerQueryService) GetCustomer(ctx context.Context, q cqrs.GetCustomerQuery) (*models.Customer, error) {
	return s.readRepo.GetByID(ctx, q.CustomerID)
}

func (s *CustomerQueryService) ListCustomers(ctx context.Context, _ cqrs.ListCustomersQuery) ([]models.Customer, error) {
	return s.readRepo.ListAll(ctx)
}
