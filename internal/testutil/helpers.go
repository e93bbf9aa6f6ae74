package testutil

import (
	"errors"
)

const DatabaseError = "database error occurred"

// OperationResult wraps a generic mocked return and it's error.
type OperationResult[T any] struct {
	Data T
	Err  error
}

// Return a generic typed error return for a database call.
func GetMockRepoError[T any]() *OperationResult[T] {
	return NewErrorResult[T](DatabaseError)
}

func NewErrorResult[T any](err string) *OperationResult[T] {
	return &OperationResult[T]{
		Data: *new(T),
		Err:  errors.New(err),
	}
}

// Wrap a generic Data into a OperationResult struct.
func NewSuccessResult[T any](Data T) *OperationResult[T] {
	return &OperationResult[T]{
		Data: Data,
		Err:  nil,
	}
}
