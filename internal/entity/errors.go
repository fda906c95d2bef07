package entity

import (
	"errors"
	"fmt"
)

var (
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrUnauthorized         = errors.New("unauthorized")
)

var (
	ErrInvalidEmail     = errors.New("email not found")
	ErrInvalidPassword  = errors.New("password mismatch")
	ErrMalformedSession = errors.New("malformed session")
)

var (
	ErrFolderNotFound = fmt.Errorf("folder %w", ErrNotFound)
	ErrFileNotFound   = fmt.Errorf("file %w", ErrNotFound)
	ErrBlobNotFound   = fmt.Errorf("file content %w", ErrNotFound)
)

var (
	ErrTooLarge       = errors.New("file too large")
	ErrDisallowedType = errors.New("file type not allowed")
)
