package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	CodeValidation = "validation_failed"
	CodeNotFound   = "not_found"
	CodeInternal   = "internal"
)

// Error is a classified failure that maps directly onto an HTTP status.
// Messages holds the human readable lines returned to the client.
type Error struct {
	Status   int
	Code     string
	Messages []string
	Err      error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Validation reports every violated field at once; nothing has been persisted.
func Validation(messages []string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeValidation, Messages: messages}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: CodeNotFound, Messages: []string{message}}
}

// From extracts a classified error from err's chain.
func From(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) && ae != nil {
		return ae, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	ae, ok := From(err)
	return ok && ae.Status == http.StatusNotFound
}

func IsValidation(err error) bool {
	ae, ok := From(err)
	return ok && ae.Status == http.StatusBadRequest
}
