package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jobify-dev/jobs-api/repository"
	"github.com/rs/zerolog/log"
)

// Messages shared by several handlers.
const (
	MsgInternal         = "Something went wrong, try again later"
	MsgDuplicateEmail   = "Duplicate value entered for email field, please choose another value"
	MsgRouteNotFound    = "Route does not exist"
	MsgAuthInvalid      = "Authentication invalid"
	MsgInvalidBody      = "Invalid request body"
	MsgTestUserReadOnly = "Test User. Read Only!"
)

// APIError is a failure with a client-facing status and message.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Msg)
}

func BadRequest(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Msg: msg}
}

func Unauthenticated(msg string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Msg: msg}
}

func NotFound(msg string) *APIError {
	return &APIError{Status: http.StatusNotFound, Msg: msg}
}

// TranslateError maps err to an HTTP status and client message.
// Unknown errors are logged and hidden behind a generic message.
func TranslateError(err error) (int, string) {
	var apiErr *APIError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &apiErr):
		return apiErr.Status, apiErr.Msg
	case errors.Is(err, repository.ErrDuplicateEmail):
		return http.StatusBadRequest, MsgDuplicateEmail
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, validationMessage(validationErrs)
	default:
		log.Error().Err(err).Msg("unhandled error")
		return http.StatusInternalServerError, MsgInternal
	}
}

// WriteError writes the JSON error body for err.
func WriteError(w http.ResponseWriter, err error) {
	status, msg := TranslateError(err)
	WriteMessage(w, status, msg)
}

func validationMessage(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, ", ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return "Please provide " + field
	case "email":
		return "Please provide a valid " + field
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "jobstatus", "jobtype":
		return fmt.Sprintf("%v is not a valid %s", fe.Value(), field)
	default:
		return "Invalid value for " + field
	}
}
