package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrConflict          = errors.New("conflict")
	ErrRequestFailed     = errors.New("request failed")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrFutureDelivery    = errors.New("delivery date is in the future")
	ErrNotFound          = errors.New("not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

// FieldError names one form field that blocked a submission.
type FieldError struct {
	Field string
	Rule  string
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Field, f.Rule))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ServerError is a failed API call that carries the server's own message.
type ServerError interface {
	error
	ServerMessage() string
}

type NoticeKind string

const (
	NoticeUnauthorized NoticeKind = "unauthorized"
	NoticeConflict     NoticeKind = "conflict"
	NoticeInvalid      NoticeKind = "invalid"
	NoticeError        NoticeKind = "error"
)

// Notice is the blocking message an operator sees for a failed action.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Title   string     `json:"title"`
	Message string     `json:"message"`
}
