package service

import (
	"errors"
	"fmt"
)

// ErrEmptyQuestion is returned when the incoming question is empty or
// whitespace-only. No collaborator is consulted for such requests.
var ErrEmptyQuestion = errors.New("empty question")

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
