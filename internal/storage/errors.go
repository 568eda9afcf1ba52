package storage

import "errors"

var (
	ErrStorageInit   = errors.New("storage initialization failed")
	ErrFileOperation = errors.New("file operation failed")
	ErrInvalidData   = errors.New("invalid data")
)
