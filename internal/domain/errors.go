package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates an insert hit a uniqueness constraint.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInsufficientStock indicates a sale would take stock below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)
