package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("note not found")
	ErrIO              = errors.New("i/o failure")
)

// InvalidIDError reports an ID argument that is not an integer.
type InvalidIDError struct {
	Input string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("'%s' is not a valid ID number", e.Input)
}

func (e *InvalidIDError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NotFoundError reports a Remove for an ID that no stored note carries.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No note found with ID #%d", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IOError wraps a filesystem failure while persisting notes or writing an export.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
