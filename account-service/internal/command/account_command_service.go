package command

import (
	"context"
	"log"
	"time"

	"github.com/harborbank/bank-services/account-service/internal/repository"
	"github.com/harborbank/bank-services/shared/cqrs"
	"github.com/harborbank/bank-services/shared/events"
	"github.com/harborbank/bank-services/shared/models"
)

// CustomerDirectory confirms that a customer exists before an account is tied
// to it. A nil return is an affirmative confirmation; anything else blocks the
// creation.
type CustomerDirectory interface {
	VerifyCustomerExists(ctx context.Context, clientID int64) error
}

// AccountStore is the slice of the write repository the command service uses.
type AccountStore interface {
	Create(account *models.Account) error
	ExistsByClientIDAndType(clientID int64, accountType models.AccountType) (bool, error)
}

// AccountProjector keeps the read model in step with completed writes.
type AccountProjector interface {
	CacheAccountView(ctx context.Context, account *models.Account)
}

// EventPublisher appends domain events to a stream.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// AccountCommandService orchestrates account creation across the local store
// and the remote customer directory. The directory check and the duplicate
// pre-check perform no mutation; the single side effect is the insert.
type AccountCommandService struct {
	directory CustomerDirectory
	store     AccountStore
	projector AccountProjector
	publisher EventPublisher
}

func NewAccountCommandService(
	directory CustomerDirectory,
	store AccountStore,
	projector AccountProjector,
	publisher EventPublisher,
) *AccountCommandService {
	return &AccountCommandService{
		directory: directory,
		store:     store,
		projector: projector,
		publisher: publisher,
	}
}

// CreateAccount verifies the referenced customer with the directory, rejects a
// second account of the same type for that customer, and persists the record.
// The uniqueness pre-check only buys a friendlier error under contention: the
// store's unique index on (client_id, type) is the authoritative enforcement,
// and a lost race surfaces from Create as the same DuplicateAccountTypeError.
func (s *AccountCommandService) CreateAccount(ctx context.Context, cmd cqrs.CreateAccountCommand) (*models.Account, error) {
	if err := s.directory.VerifyCustomerExists(ctx, cmd.ClientID); err != nil {
		return nil, err
	}

	exists, err := s.store.ExistsByClientIDAndType(cmd.ClientID, cmd.Type)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &repository.DuplicateAccountTypeError{ClientID: cmd.ClientID, Type: cmd.Type}
	}

	now := time.Now().UTC()
	account := &models.Account{
		Balance:   cmd.Balance,
		Type:      cmd.Type,
		ClientID:  cmd.ClientID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(account); err != nil {
		return nil, err
	}

	s.projector.CacheAccountView(ctx, account)
	if err := s.publisher.Publish(ctx, events.AccountEventsStream, events.AccountCreated, events.AccountCreatedEvent{
		AccountID: account.ID,
		ClientID:  account.ClientID,
		Type:      string(account.Type),
		Balance:   account.Balance,
	}); err != nil {
		log.Printf("Failed to publish account.created event: %v", err)
	}
	return account, nil
}
