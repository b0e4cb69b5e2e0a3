package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/harborbank/bank-services/shared/models"
	sharedredis "github.com/harborbank/bank-services/shared/redis"
	goredis "github.com/redis/go-redis/v9"
)

const accountViewKeyPrefix = "account:view:"

// AccountReadRepository handles all read operations for accounts. Redis is the
// primary read store; PostgreSQL is the transparent fallback, and every cold
// read warms the cache.
type AccountReadRepository struct {
	db    *sql.DB
	cache *sharedredis.ProjectionCache[models.Account]
}

func NewAccountReadRepository(db *sql.DB, redisClient *goredis.Client) *AccountReadRepository {
	return &AccountReadRepository{
		db:    db,
		cache: sharedredis.NewProjectionCache[models.Account](redisClient, 0),
	}
}

func accountViewKey(id int64) string {
	return accountViewKeyPrefix + strconv.FormatInt(id, 10)
}

// GetByID returns the account, trying Redis first then PostgreSQL.
func (r *AccountReadRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	if account, ok := r.cache.Get(ctx, accountViewKey(id)); ok {
		return account, nil
	}

	query := `
		SELECT id, client_id, type, balance, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`
	var account models.Account
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID, &account.ClientID, &account.Type, &account.Balance,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &AccountNotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	r.CacheAccountView(ctx, &account)
	return &account, nil
}

// ListByClientID returns all accounts owned by the customer. A customer with
// no accounts yields an empty result, not an error.
func (r *AccountReadRepository) ListByClientID(ctx context.Context, clientID int64) ([]models.Account, error) {
	query := `
		SELECT id, client_id, type, balance, created_at, updated_at
		FROM accounts
		WHERE client_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(
			&account.ID, &account.ClientID, &account.Type, &account.Balance,
			&account.CreatedAt, &account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// CacheAccountView stores or refreshes the Redis read model for an account.
// Called by the command service after every write to keep the read model current.
func (r *AccountReadRepository) CacheAccountView(ctx context.Context, account *models.Account) {
	r.cache.Set(ctx, accountViewKey(account.ID), account)
}
