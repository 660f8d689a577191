// Package server provides the HTTP API for the summarizer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/polysum/internal/types"
)

// ErrRequestBody indicates the request body could not be decoded
type ErrRequestBody struct {
	Cause error
}

func (e *ErrRequestBody) Error() string {
	return fmt.Sprintf("Invalid request body: %v", e.Cause)
}

func (e *ErrRequestBody) Unwrap() error {
	return e.Cause
}

// ErrProcessing indicates the pipeline failed to produce a summary
type ErrProcessing struct {
	Cause error
}

func (e *ErrProcessing) Error() string {
	return fmt.Sprintf("Processing error: %v", e.Cause)
}

func (e *ErrProcessing) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var inputErr *types.InputError
	var maxBytesErr *http.MaxBytesError
	var bodyErr *ErrRequestBody

	switch {
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &inputErr), errors.As(err, &bodyErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns the client-facing message for an error
func errorMessage(err error) string {
	var inputErr *types.InputError
	if errors.As(err, &inputErr) {
		return inputErr.Message
	}
	return err.Error()
}
