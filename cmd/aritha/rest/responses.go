package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/arithahq/aritha/api/types/envelope"
)

// Error taxonomy of the backend, per status code.
var (
	// ErrConflict is a 409: a uniqueness conflict, or deleting a record
	// which still has associations.
	ErrConflict = errors.New("conflict")

	// ErrValidation is a 400 carrying a message or field-by-field errors.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized is a 401. The session is no longer valid; callers
	// destroy it and ask the user to log in again.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is a 404.
	ErrNotFound = errors.New("not found")

	// ErrServer is any other non-2xx answer.
	ErrServer = errors.New("server error")
)

// ValidationError surfaces a 400 response field by field.
type ValidationError struct {
	Message string
	Errors  []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Message)
	}
	return fmt.Sprintf("%s:\n  - %s", ErrValidation, strings.Join(e.Errors, "\n  - "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// wireEnvelope is the {success, data, ...} wrapper convention of the backend.
//
// Data stays raw so the same decode path serves objects and arrays.
type wireEnvelope struct {
	Success    *bool                `json:"success"`
	Data       json.RawMessage      `json:"data"`
	Message    string               `json:"message,omitempty"`
	Errors     []string             `json:"errors,omitempty"`
	Pagination *envelope.Pagination `json:"pagination,omitempty"`
}

// unmarshalJsonResponse decodes a response into v, unwrapping the
// {success, data} envelope when present and falling back to a bare payload
// otherwise. This is the single place tolerating the backend's mixed
// envelope/bare contract; call sites never re-check shapes.
//
// # Returns
//
// - *envelope.Pagination: list metadata when the envelope carried it
//
// - error: mapped by status code (ErrConflict, ErrValidation,
// ErrUnauthorized, ErrNotFound, ErrServer).
func unmarshalJsonResponse[T any](resp *http.Response, v *T) (*envelope.Pagination, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read server response: %w", err)
	}

	if resp.StatusCode < 300 {
		env := wireEnvelope{}
		if err := json.Unmarshal(body, &env); err == nil && env.Success != nil {
			if len(env.Data) == 0 {
				return env.Pagination, nil
			}
			if err := json.Unmarshal(env.Data, v); err != nil {
				return nil, fmt.Errorf(
					"unexpected response shape (status code = %d): %w",
					resp.StatusCode, err,
				)
			}
			return env.Pagination, nil
		}

		// bare array/object, without envelope.
		if err := json.Unmarshal(body, v); err != nil {
			return nil, fmt.Errorf(
				"unexpected response shape (status code = %d): %w",
				resp.StatusCode, err,
			)
		}
		return nil, nil
	}

	return nil, errorFromResponse(resp.StatusCode, body)
}

// unmarshalResponseDiscardingPayload drains a response where only the
// status matters.
func unmarshalResponseDiscardingPayload(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cannot read server response: %w", err)
	}
	if resp.StatusCode < 300 {
		return nil
	}
	return errorFromResponse(resp.StatusCode, body)
}

func errorFromResponse(status int, body []byte) error {
	msg := parseErrorMessage(body)

	switch status {
	case http.StatusBadRequest:
		em := envelope.ErrorMessage{}
		if err := json.Unmarshal(body, &em); err == nil && (em.Message != "" || len(em.Errors) > 0) {
			return &ValidationError{Message: em.Message, Errors: em.Errors}
		}
		return &ValidationError{Message: msg}
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusConflict:
		if msg == "" {
			msg = "record already exists"
		}
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	default:
		return fmt.Errorf("%w (status code = %d): %s", ErrServer, status, msg)
	}
}

func parseErrorMessage(body []byte) string {
	em := envelope.ErrorMessage{}
	if err := json.Unmarshal(body, &em); err == nil {
		if em.Message != "" {
			return em.Message
		}
		if len(em.Errors) > 0 {
			return strings.Join(em.Errors, "; ")
		}
	}
	return strings.TrimSpace(string(body))
}
