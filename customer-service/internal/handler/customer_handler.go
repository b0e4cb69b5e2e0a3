package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harborbank/bank-services/customer-service/internal/repository"
	"github.com/harborbank/bank-services/shared/cqrs"
	"github.com/harborbank/bank-services/shared/middleware"
	"github.com/harborbank/bank-services/shared/models"
)

// CustomerCommander defines the write-side operations used by CustomerHandler.
type CustomerCommander interface {
	CreateCustomer(ctx context.Context, cmd cqrs.CreateCustomerCommand) (*models.Customer, error)
}

// CustomerQuerier defines the read-side operations used by CustomerHandler.
type CustomerQuerier interface {
	GetCustomer(ctx context.Context, q cqrs.GetCustomerQuery) (*models.Customer, error)
	ListCustomers(ctx context.Context, q cqrs.ListCustomersQuery) ([]models.Customer, error)
}

// CustomerHandler routes requests to the command or query service as appropriate.
type CustomerHandler struct {
	commands CustomerCommander
	queries  CustomerQuerier
}

type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required,min=3,max=50"`
	Email string `json:"email" validate:"required,email"`
}

func NewCustomerHandler(commands CustomerCommander, queries CustomerQuerier) *CustomerHandler {
	return &CustomerHandler{commands: commands, queries: queries}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if violations := middleware.ValidateRequest(req); violations != nil {
		middleware.RespondWithValidationError(c, violations)
		return
	}

	customer, err := h.commands.CreateCustomer(c.Request.Context(), cqrs.CreateCustomerCommand{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Customer ID must be numeric")
		return
	}

	customer, err := h.queries.GetCustomer(c.Request.Context(), cqrs.GetCustomerQuery{CustomerID: id})
	if err != nil {
		var notFound *repository.CustomerNotFoundError
		if errors.As(err, &notFound) {
			middleware.RespondWithError(c, http.StatusNotFound, notFound.Error())
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to get customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.queries.ListCustomers(c.Request.Context(), cqrs.ListCustomersQuery{})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list customers")
		return
	}

	if customers == nil {
		customers = []models.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}
