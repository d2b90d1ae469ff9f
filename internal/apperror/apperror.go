// Package apperror defines the error taxonomy surfaced by the REST API:
// validation failures (400, aggregated field errors), malformed object
// ids (404, distinct message so clients can tell a bad id from a missing
// resource) and missing resources (404, message per resource kind).
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError is a single entry of a validation batch.
type FieldError struct {
	Error string `json:"error"`
}

// ValidationErrors aggregates every failed field, not just the first.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationErrors) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Error
	}
	return strings.Join(msgs, "; ")
}

// NewValidation builds a batch from plain messages.
func NewValidation(messages ...string) *ValidationErrors {
	ve := &ValidationErrors{}
	for _, m := range messages {
		ve.Errors = append(ve.Errors, FieldError{Error: m})
	}
	return ve
}

// FromBinding converts a gin/validator binding error into an aggregated
// validation batch. Non-validator errors (malformed JSON and friends)
// collapse into a single generic entry.
func FromBinding(err error) *ValidationErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewValidation("The request body is not valid.")
	}

	ve := &ValidationErrors{}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			ve.Errors = append(ve.Errors, FieldError{
				Error: fmt.Sprintf("The %s field is required.", field),
			})
		default:
			ve.Errors = append(ve.Errors, FieldError{
				Error: fmt.Sprintf("The %s field is not valid.", field),
			})
		}
	}
	return ve
}

// NotFoundError covers a well-formed identifier whose referent is absent,
// or one the requester is not allowed to see.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFound builds the per-kind message, e.g.
// "The board with the given ID was not found."
func NewNotFound(kind string) *NotFoundError {
	return &NotFoundError{
		Message: fmt.Sprintf("The %s with the given ID was not found.", kind),
	}
}

// MalformedIDError covers identifiers that fail the 24-hex format check.
// It is reported before any store lookup is attempted.
type MalformedIDError struct {
	Message string
}

func (e *MalformedIDError) Error() string { return e.Message }

// NewMalformedID builds the malformed-id message. An empty label yields
// "ID is not valid."; a label such as "Board" yields "Board ID is not valid.".
func NewMalformedID(label string) *MalformedIDError {
	if label == "" {
		return &MalformedIDError{Message: "ID is not valid."}
	}
	return &MalformedIDError{Message: label + " ID is not valid."}
}

// ErrUnauthorized is returned when the session key is missing or unknown.
var ErrUnauthorized = errors.New("invalid session")

// Respond writes err to the response with the status the taxonomy assigns
// to it. Unknown errors become an opaque 500.
func Respond(c *gin.Context, err error) {
	var (
		verrs     *ValidationErrors
		notFound  *NotFoundError
		malformed *MalformedIDError
	)
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, verrs)
	case errors.As(err, &malformed):
		c.JSON(http.StatusNotFound, gin.H{"error": malformed.Message})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Message})
	case errors.Is(err, ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
