package store

import "errors"

var (
	ErrDuplicateRef   = errors.New("script ref already exists")
	ErrRecordNotFound = errors.New("record not found")
)
