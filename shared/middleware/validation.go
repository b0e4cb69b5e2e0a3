package middleware

import (
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator builds a validator that reports field names as they appear on
// the wire (json tag) rather than as Go struct field names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErrorResponse is the body returned for every failed request:
// timestamp, numeric status, the status reason phrase, and a human message.
// Validation failures additionally carry a field -> violation mapping.
type ErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// ValidateRequest checks obj against its validate tags and returns a
// field -> message mapping, or nil when the object is valid.
func ValidateRequest(obj any) map[string]string {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	violations := make(map[string]string)
	for _, fieldErr := range err.(validator.ValidationErrors) {
		violations[fieldErr.Field()] = violationMessage(fieldErr)
	}
	return violations
}

func violationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Must be at least " + err.Param() + " characters"
	case "max":
		return "Must be at most " + err.Param() + " characters"
	case "gte":
		return "Must be greater than or equal to " + err.Param()
	case "oneof":
		return "Must be one of: " + err.Param()
	default:
		return "Invalid value"
	}
}

// RespondWithError writes the standard error body for the given status.
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
	})
}

// RespondWithValidationError writes a 400 carrying field-level violations.
func RespondWithValidationError(c *gin.Context, violations map[string]string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    http.StatusBadRequest,
		Error:     http.StatusText(http.StatusBadRequest),
		Message:   "Validation Failed",
		Errors:    violations,
	})
}
