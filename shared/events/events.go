package events

import "time"

// Event types
const (
	CustomerCreated = "customer.created"

	AccountCreated = "account.created"
)

// Stream names
const (
	CustomerEventsStream = "customer.events"
	AccountEventsStream  = "account.events"
)

// Event is the envelope written to a stream.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type CustomerCreatedEvent struct {
	CustomerID int64  `json:"customerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

type AccountCreatedEvent struct {
	AccountID int64   `json:"accountId"`
	ClientID  int64   `json:"clientId"`
	Type      string  `json:"type"`
	Balance   float64 `json:"balance"`
}
