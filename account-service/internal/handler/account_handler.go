package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harborbank/bank-services/account-service/internal/client"
	"github.com/harborbank/bank-services/account-service/internal/repository"
	"github.com/harborbank/bank-services/shared/cqrs"
	"github.com/harborbank/bank-services/shared/middleware"
	"github.com/harborbank/bank-services/shared/models"
)

// AccountCommander defines the write-side operations used by AccountHandler.
type AccountCommander interface {
	CreateAccount(ctx context.Context, cmd cqrs.CreateAccountCommand) (*models.Account, error)
}

// AccountQuerier defines the read-side operations used by AccountHandler.
type AccountQuerier interface {
	GetAccount(ctx context.Context, q cqrs.GetAccountQuery) (*models.Account, error)
	ListAccountsByCustomer(ctx context.Context, q cqrs.ListAccountsByCustomerQuery) ([]models.Account, error)
}

// AccountHandler routes requests to the command or query service as appropriate.
type AccountHandler struct {
	commands AccountCommander
	queries  AccountQuerier
}

// Balance and ClientID are pointers so a missing field is told apart from a
// legitimate zero value.
type CreateAccountRequest struct {
	Balance  *float64 `json:"balance" validate:"required,gte=0"`
	Type     string   `json:"type" validate:"required,oneof=CHECKING SAVINGS"`
	ClientID *int64   `json:"clientId" validate:"required"`
}

func NewAccountHandler(commands AccountCommander, queries AccountQuerier) *AccountHandler {
	return &AccountHandler{commands: commands, queries: queries}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if violations := middleware.ValidateRequest(req); violations != nil {
		middleware.RespondWithValidationError(c, violations)
		return
	}

	account, err := h.commands.CreateAccount(c.Request.Context(), cqrs.CreateAccountCommand{
		Balance:  *req.Balance,
		Type:     models.AccountType(req.Type),
		ClientID: *req.ClientID,
	})
	if err != nil {
		var customerNotFound *client.CustomerNotFoundError
		if errors.As(err, &customerNotFound) {
			middleware.RespondWithError(c, http.StatusNotFound, customerNotFound.Error())
			return
		}
		var duplicate *repository.DuplicateAccountTypeError
		if errors.As(err, &duplicate) {
			middleware.RespondWithError(c, http.StatusConflict, duplicate.Error())
			return
		}
		if errors.Is(err, client.ErrDirectoryUnavailable) {
			middleware.RespondWithError(c, http.StatusBadGateway, "Customer service unavailable")
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Account ID must be numeric")
		return
	}

	account, err := h.queries.GetAccount(c.Request.Context(), cqrs.GetAccountQuery{AccountID: id})
	if err != nil {
		var notFound *repository.AccountNotFoundError
		if errors.As(err, &notFound) {
			middleware.RespondWithError(c, http.StatusNotFound, notFound.Error())
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to get account")
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) ListAccountsByCustomer(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("customerId"), 10, 64)
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Customer ID must be numeric")
		return
	}

	accounts, err := h.queries.ListAccountsByCustomer(c.Request.Context(), cqrs.ListAccountsByCustomerQuery{CustomerID: customerID})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list accounts")
		return
	}

	if accounts == nil {
		accounts = []models.Account{}
	}
	c.JSON(http.StatusOK, accounts)
}
