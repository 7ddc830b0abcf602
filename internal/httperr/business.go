package httperr

import (
	"errors"
	"fmt"
)

// ValidationError: entrada ausente ou malformada (HTTP 400)
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NotFoundError: id referenciado não existe (HTTP 404)
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// Code follows the "<entity>_not_found" convention used in the API responses.
func (e NotFoundError) Code() string {
	return e.Entity + "_not_found"
}

func ErrValidation(code, message string) error {
	return ValidationError{Code: code, Message: message}
}

func ErrNotFound(entity string, id uint) error {
	return NotFoundError{Entity: entity, ID: id}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}
