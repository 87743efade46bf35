// Package apperr defines the error taxonomy for upstream data
// handling: MalformedPayload, ValidationFailure and NotFound, plus a
// generic upstream-status error. Handlers map these onto HTTP status
// codes and a structured JSON error body.
package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"rivals-tracker/internal/schema"
)

// ErrNotFound signals that normalization succeeded structurally but
// the requested entity is absent. Distinct from a fetch failure so
// callers can render "no such hero" instead of "try again".
var ErrNotFound = errors.New("not found")

// MalformedPayloadError means the raw response could not be parsed
// into any known shape.
type MalformedPayloadError struct {
	Reason string
}

func (e *MalformedPayloadError) Error() string {
	return "malformed payload: " + e.Reason
}

func Malformed(reason string) error {
	return &MalformedPayloadError{Reason: reason}
}

// ValidationError carries the field-level violations from a failed
// strict schema parse.
type ValidationError struct {
	Entity     string
	Violations []schema.Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("%s validation failed: %s", e.Entity, strings.Join(parts, ", "))
}

func Validation(entity string, violations []schema.Violation) error {
	return &ValidationError{Entity: entity, Violations: violations}
}

// UpstreamError is a non-200 answer from the data API.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream API error: %d", e.StatusCode)
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code       string             `json:"code"`
	Message    string             `json:"message"`
	Violations []schema.Violation `json:"violations,omitempty"`
}

// Write maps err onto the taxonomy and writes the JSON error response.
func Write(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"
	var violations []schema.Violation

	var malformed *MalformedPayloadError
	var validation *ValidationError
	var upstream *UpstreamError
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"
	case errors.As(err, &malformed):
		status = http.StatusBadGateway
		code = "MALFORMED_PAYLOAD"
	case errors.As(err, &validation):
		status = http.StatusBadGateway
		code = "VALIDATION_FAILED"
		violations = validation.Violations
	case errors.As(err, &upstream):
		if upstream.StatusCode == http.StatusNotFound {
			status = http.StatusNotFound
			code = "NOT_FOUND"
		} else {
			status = http.StatusBadGateway
			code = "UPSTREAM_ERROR"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{
		Error: errorDetail{
			Code:       code,
			Message:    err.Error(),
			Violations: violations,
		},
	})
}
