package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harborbank/bank-services/account-service/internal/client"
	"github.com/harborbank/bank-services/account-service/internal/repository"
	"github.com/harborbank/bank-services/shared/cqrs"
	"github.com/harborbank/bank-services/shared/models"
)

// ---- mock implementations ----

type mockAccountCommander struct {
	createFn func(context.Context, cqrs.CreateAccountCommand) (*models.Account, error)
}

func (m *mockAccountCommander) CreateAccount(ctx context.Context, cmd cqrs.CreateAccountCommand) (*models.Account, error) {
	if m.createFn != nil {
		return m.createFn(ctx, cmd)
	}
	return nil, fmt.Errorf("not configured")
}

type mockAccountQuerier struct {
	getFn  func(context.Context, cqrs.GetAccountQuery) (*models.Account, error)
	listFn func(context.Context, cqrs.ListAccountsByCustomerQuery) ([]models.Account, error)
}

func (m *mockAccountQuerier) GetAccount(ctx context.Context, q cqrs.GetAccountQuery) (*models.Account, error) {
	if m.getFn != nil {
		return m.getFn(ctx, q)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockAccountQuerier) ListAccountsByCustomer(ctx context.Context, q cqrs.ListAccountsByCustomerQuery) ([]models.Account, error) {
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return nil, fmt.Errorf("not configured")
}

// ---- helpers ----

func newAccountTestRouter(cmds AccountCommander, qrys AccountQuerier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAccountHandler(cmds, qrys)
	accounts := r.Group("/accounts")
	accounts.POST("", h.CreateAccount)
	accounts.GET("/:id", h.GetAccount)
	accounts.GET("/customer/:customerId", h.ListAccountsByCustomer)
	return r
}

func acctDoRequest(router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	if body != nil {
		b, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, url, strings.NewReader(string(b)))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ---- test data ----

var aTestAccount = &models.Account{
	ID: 1, Balance: 1000.0, Type: models.AccountTypeChecking, ClientID: 42,
	CreatedAt: time.Now(), UpdatedAt: time.Now(),
}

func aValidCreateBody() map[string]interface{} {
	return map[string]interface{}{"balance": 1000.0, "type": "CHECKING", "clientId": 42}
}

// ---- tests ----

func TestCreateAccount(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		createFn       func(context.Context, cqrs.CreateAccountCommand) (*models.Account, error)
		expectedStatus int
	}{
		{
			name:           "success - create account",
			body:           aValidCreateBody(),
			createFn:       func(_ context.Context, cmd cqrs.CreateAccountCommand) (*models.Account, error) { return aTestAccount, nil },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad request - missing required fields",
			body:           map[string]interface{}{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - negative balance",
			body:           map[string]interface{}{"balance": -5.0, "type": "CHECKING", "clientId": 42},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - unknown account type",
			body:           map[string]interface{}{"balance": 100.0, "type": "BROKERAGE", "clientId": 42},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not found - customer does not exist",
			body: aValidCreateBody(),
			createFn: func(_ context.Context, cmd cqrs.CreateAccountCommand) (*models.Account, error) {
				return nil, &client.CustomerNotFoundError{ClientID: cmd.ClientID}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "conflict - duplicate account type",
			body: aValidCreateBody(),
			createFn: func(_ context.Context, cmd cqrs.CreateAccountCommand) (*models.Account, error) {
				return nil, &repository.DuplicateAccountTypeError{ClientID: cmd.ClientID, Type: cmd.Type}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "bad gateway - customer directory unreachable",
			body: aValidCreateBody(),
			createFn: func(_ context.Context, _ cqrs.CreateAccountCommand) (*models.Account, error) {
				return nil, fmt.Errorf("%w: connection refused", client.ErrDirectoryUnavailable)
			},
			expectedStatus: http.StatusBadGateway,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds := &mockAccountCommander{createFn: tt.createFn}
			router := newAccountTestRouter(cmds, &mockAccountQuerier{})
			w := acctDoRequest(router, http.MethodPost, "/accounts", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateAccountEchoesRecord(t *testing.T) {
	createFn := func(_ context.Context, cmd cqrs.CreateAccountCommand) (*models.Account, error) {
		return &models.Account{ID: 9, Balance: cmd.Balance, Type: cmd.Type, ClientID: cmd.ClientID}, nil
	}
	router := newAccountTestRouter(&mockAccountCommander{createFn: createFn}, &mockAccountQuerier{})
	w := acctDoRequest(router, http.MethodPost, "/accounts", aValidCreateBody())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", w.Code, w.Body.String())
	}

	var got models.Account
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if got.ID != 9 || got.Balance != 1000.0 || got.Type != models.AccountTypeChecking || got.ClientID != 42 {
		t.Errorf("response does not echo the persisted record: %+v", got)
	}
}

func TestCreateAccountValidationBody(t *testing.T) {
	router := newAccountTestRouter(&mockAccountCommander{}, &mockAccountQuerier{})
	w := acctDoRequest(router, http.MethodPost, "/accounts", map[string]interface{}{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp struct {
		Status  int               `json:"status"`
		Error   string            `json:"error"`
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if resp.Status != http.StatusBadRequest || resp.Error != "Bad Request" {
		t.Errorf("unexpected error envelope: %+v", resp)
	}
	for _, field := range []string{"balance", "type", "clientId"} {
		if _, ok := resp.Errors[field]; !ok {
			t.Errorf("expected violation for field %q, got %v", field, resp.Errors)
		}
	}
}

func TestGetAccount(t *testing.T) {
	tests := []struct {
		name           string
		accountID      string
		getFn          func(context.Context, cqrs.GetAccountQuery) (*models.Account, error)
		expectedStatus int
	}{
		{
			name:           "success - fetch account",
			accountID:      "1",
			getFn:          func(_ context.Context, q cqrs.GetAccountQuery) (*models.Account, error) { return aTestAccount, nil },
			expectedStatus: http.StatusOK,
		},
		{
			name:      "not found - account does not exist",
			accountID: "404",
			getFn: func(_ context.Context, q cqrs.GetAccountQuery) (*models.Account, error) {
				return nil, &repository.AccountNotFoundError{ID: q.AccountID}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "bad request - non-numeric id",
			accountID:      "abc",
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAccountTestRouter(&mockAccountCommander{}, &mockAccountQuerier{getFn: tt.getFn})
			w := acctDoRequest(router, http.MethodGet, "/accounts/"+tt.accountID, nil)
			if w.Code != tt.expectedStatus {
				t.Errorf("[%s] expected %d got %d; body: %s", tt.name, tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestListAccountsByCustomer(t *testing.T) {
	listFn := func(_ context.Context, q cqrs.ListAccountsByCustomerQuery) ([]models.Account, error) {
		return []models.Account{*aTestAccount}, nil
	}
	router := newAccountTestRouter(&mockAccountCommander{}, &mockAccountQuerier{listFn: listFn})
	w := acctDoRequest(router, http.MethodGet, "/accounts/customer/42", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", w.Code, w.Body.String())
	}

	var got []models.Account
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(got) != 1 || got[0].ClientID != 42 {
		t.Errorf("unexpected list payload: %+v", got)
	}
}

// A customer with zero accounts is not an error: the endpoint returns an
// empty JSON array, never null.
func TestListAccountsByCustomerEmpty(t *testing.T) {
	listFn := func(_ context.Context, q cqrs.ListAccountsByCustomerQuery) ([]models.Account, error) {
		return nil, nil
	}
	router := newAccountTestRouter(&mockAccountCommander{}, &mockAccountQuerier{listFn: listFn})
	w := acctDoRequest(router, http.MethodGet, "/accounts/customer/42", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("expected empty JSON array, got %s", w.Body.String())
	}
}
