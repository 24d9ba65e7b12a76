package problem

import "errors"

var (
	ErrZeroID       = errors.New("problem ID cannot be zero")
	ErrIDAlreadySet = errors.New("problem ID is already set")
	ErrNotFound     = errors.New("problem not found")
)
