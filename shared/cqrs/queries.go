package cqrs

// ---------- Customer queries ----------

// GetCustomerQuery fetches a single customer by ID.
type GetCustomerQuery struct {
	CustomerID int64
}

// ListCustomersQuery fetches every customer on record.
type ListCustomersQuery struct{}

// ---------- Account queries ----------

// GetAccountQuery fetches a single account by ID.
type GetAccountQuery struct {
	AccountID int64
}

// ListAccountsByCustomerQuery fetches all accounts owned by a customer.
type ListAccountsByCustomerQuery struct {
	CustomerID int64
}
