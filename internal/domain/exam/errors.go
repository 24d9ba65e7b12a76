package exam

import "errors"

var (
	ErrZeroID       = errors.New("mock exam ID cannot be zero")
	ErrIDAlreadySet = errors.New("mock exam ID is already set")
	ErrEmptyTitle   = errors.New("title is required")
	ErrInvalidLevel = errors.New("level must be between 1 and 5")
	ErrNotFound     = errors.New("mock exam not found")

	ErrNoSelection      = errors.New("no option selected")
	ErrAlreadySubmitted = errors.New("answer already submitted")
	ErrIndexOutOfRange  = errors.New("problem index out of range")
	ErrOptionOutOfRange = errors.New("option index out of range")
)
