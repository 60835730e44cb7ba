// Package businessflow contains the core business logic and use cases for the influencer directory
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	ErrInfluencerNotFound  = errors.New("influencer not found")
	ErrInvalidInfluencerID = errors.New("influencer ID must be a positive integer")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func IsInfluencerNotFound(err error) bool {
	return errors.Is(err, ErrInfluencerNotFound)
}

func IsInvalidInfluencerID(err error) bool {
	return errors.Is(err, ErrInvalidInfluencerID)
}
