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

const customerViewKeyPrefix = "customer:view:"

// CustomerReadRepository handles all read operations for customers. Redis is
// the primary read store; PostgreSQL is the transparent fallback, and every
// cold read warms the cache.
type CustomerReadRepository struct {
	db    *sql.DB
	cache *sharedredis.ProjectionCache[models.Customer]
}

func NewCustomerReadRepository(db *sql.DB, redisClient *goredis.Client) *CustomerReadRepository {
	return &CustomerReadRepository{
		db:    db,
		cache: sharedredis.NewProjectionCache[models.Customer](redisClient, 0),
	}
}

func customerViewKey(id int64) string {
	return customerViewKeyPrefix + strconv.FormatInt(id, 10)
}

// GetByID returns the customer, trying Redis first then PostgreSQL.
func (r *CustomerReadRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	if customer, ok := r.cache.Get(ctx, customerViewKey(id)); ok {
		return customer, nil
	}

	query := `
		SELECT id, name, email, created_at, updated_at
		FROM customers
		WHERE id = $1
	`
	var customer models.Customer
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&customer.ID, &customer.Name, &customer.Email,
		&customer.CreatedAt, &customer.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &CustomerNotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	r.CacheCustomerView(ctx, &customer)
	return &customer, nil
}

// ListAll returns every customer from PostgreSQL in insertion order.
func (r *CustomerReadRepository) ListAll(ctx context.Context) ([]models.Customer, error) {
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM customers
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var customer models.Customer
		if err := rows.Scan(
			&customer.ID, &customer.Name, &customer.Email,
			&customer.CreatedAt, &customer.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

// CacheCustomerView stores or refreshes the Redis read model for a customer.
// Called by the command service after every write to keep the read model current.
func (r *CustomerReadRepository) CacheCustomerView(ctx context.Context, customer *models.Customer) {
	r.cache.Set(ctx, customerViewKey(customer.ID), customer)
}
