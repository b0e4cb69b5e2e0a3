package command

import (
	"context"
	"log"
	"time"

	"github.com/harborbank/bank-services/customer-service/internal/repository"
	"github.com/harborbank/bank-services/shared/cqrs"
	"github.com/harborbank/bank-services/shared/events"
	"github.com/harborbank/bank-services/shared/models"
)

// CustomerCommandService writes customer state to PostgreSQL and keeps the
// Redis read model up to date.
type CustomerCommandService struct {
	writeRepo *repository.CustomerWriteRepository
	readRepo  *repository.CustomerReadRepository
	publisher *events.Publisher
}

func NewCustomerCommandService(
	writeRepo *repository.CustomerWriteRepository,
	readRepo *repository.CustomerReadRepository,
	publisher *events.Publisher,
) *CustomerCommandService {
	return &CustomerCommandService{
		writeRepo: writeRepo,
		readRepo:  readRepo,
		publisher: publisher,
	}
}

func (s *CustomerCommandService) CreateCustomer(ctx context.Context, cmd cqrs.CreateCustomerCommand) (*models.Customer, error) {
	now := time.Now().UTC()
	customer := &models.Customer{
		Name:      cmd.Name,
		Email:     cmd.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.writeRepo.Create(customer); err != nil {
		return nil, err
	}

	s.readRepo.CacheCustomerView(ctx, customer)
	if err := s.publisher.Publish(ctx, events.CustomerEventsStream, events.CustomerCreated, events.CustomerCreatedEvent{
		CustomerID: customer.ID,
		Name:       customer.Name,
		Email:      customer.Email,
	}); err != nil {
		log.Printf("Failed to publish customer.created event: %v", err)
	}
	return customer, nil
}
