package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrDirectoryUnavailable signals that the customer directory could not be
// reached at all: connect failure, timeout, or a dropped response. It is
// distinct from a not-found answer so the boundary can report 502 rather than
// 404, while account creation fails closed either way.
var ErrDirectoryUnavailable = errors.New("customer directory unavailable")

// CustomerNotFoundError signals that the directory did not confirm the
// customer's existence. Any response other than success collapses into this
// error: no account is created unless existence was affirmatively confirmed.
type CustomerNotFoundError struct {
	ClientID int64
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("Customer not found with ID: %d", e.ClientID)
}

const (
	confirmedKeyPrefix = "customer:confirmed:"
	confirmedTTL       = 5 * time.Minute
	requestTimeout     = 5 * time.Second
)

// CustomerDirectoryClient verifies customer existence against the customer
// service over HTTP. Confirmed ids are remembered in Redis for a short TTL so
// bursts of account creation for the same customer skip the network hop;
// absence is never cached.
type CustomerDirectoryClient struct {
	baseURL string
	http    *http.Client
	redis   *redis.Client
}

// NewCustomerDirectoryClient creates a client for the directory at baseURL.
// redisClient may be nil, which disables the confirmed-customer cache.
func NewCustomerDirectoryClient(baseURL string, redisClient *redis.Client) *CustomerDirectoryClient {
	return &CustomerDirectoryClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		redis:   redisClient,
	}
}

// VerifyCustomerExists returns nil when the directory affirms the customer
// exists. It returns *CustomerNotFoundError for any response that is not a
// success, and an error wrapping ErrDirectoryUnavailable when no response
// arrived at all.
func (c *CustomerDirectoryClient) VerifyCustomerExists(ctx context.Context, clientID int64) error {
	if c.isConfirmed(ctx, clientID) {
		return nil
	}

	url := c.baseURL + "/customers/" + strconv.FormatInt(clientID, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("Customer directory request failed for customer %d: %v", clientID, err)
		return fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.markConfirmed(ctx, clientID)
		return nil
	}

	// Fail closed: a non-success response means the customer was not
	// affirmatively confirmed. Statuses other than 404 are logged so that
	// directory trouble can be told apart from genuine absence.
	if resp.StatusCode != http.StatusNotFound {
		log.Printf("Customer directory returned unexpected status %d for customer %d", resp.StatusCode, clientID)
	}
	return &CustomerNotFoundError{ClientID: clientID}
}

func (c *CustomerDirectoryClient) isConfirmed(ctx context.Context, clientID int64) bool {
	if c.redis == nil {
		return false
	}
	key := confirmedKeyPrefix + strconv.FormatInt(clientID, 10)
	val, err := c.redis.Exists(ctx, key).Result()
	return err == nil && val > 0
}

func (c *CustomerDirectoryClient) markConfirmed(ctx context.Context, clientID int64) {
	if c.redis == nil {
		return
	}
	key := confirmedKeyPrefix + strconv.FormatInt(clientID, 10)
	if err := c.redis.Set(ctx, key, "1", confirmedTTL).Err(); err != nil {
		log.Printf("Failed to cache confirmed customer %d: %v", clientID, err)
	}
}
