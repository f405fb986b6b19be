package model

import (
	"errors"
	"fmt"
)

var ErrInvalidParameter = errors.New("") // Base error for invalid parameter
var ErrFileRead = errors.New("")         // Base error for reading the local file
var ErrRequestFailed = errors.New("")    // Base error for the HTTP exchange
var ErrInvalidResponse = errors.New("")  // Base error for a response that is not JSON

// APIError is returned when the files manager answers with a non-2xx status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status %d, message: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrRequestFailed
}
