package errors

import "fmt"

// Kind classifies an application error so callers can map it to a
// transport-level response without string matching.
type Kind int

const (
	ErrInternal Kind = iota
	ErrNotFound
	ErrValidation
	ErrInvalidPhase
	ErrUnknownPlayer
	ErrInvalidOption
	ErrOptionsNotRevealed
	ErrNoActiveQuestion
	ErrAtFirstQuestion
)

// Error is an application-level error with a kind for classification
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Constructor functions for common error types

func NotFound(msg string) *Error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validation(msg string) *Error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func InvalidPhase(msg string) *Error {
	return &Error{Kind: ErrInvalidPhase, Message: msg}
}

func InvalidPhasef(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrInvalidPhase, Message: fmt.Sprintf(format, args...)}
}

func UnknownPlayer(msg string) *Error {
	return &Error{Kind: ErrUnknownPlayer, Message: msg}
}

func UnknownPlayerf(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrUnknownPlayer, Message: fmt.Sprintf(format, args...)}
}

func InvalidOption(msg string) *Error {
	return &Error{Kind: ErrInvalidOption, Message: msg}
}

func InvalidOptionf(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrInvalidOption, Message: fmt.Sprintf(format, args...)}
}

func OptionsNotRevealed(msg string) *Error {
	return &Error{Kind: ErrOptionsNotRevealed, Message: msg}
}

func NoActiveQuestion(msg string) *Error {
	return &Error{Kind: ErrNoActiveQuestion, Message: msg}
}

func AtFirstQuestion(msg string) *Error {
	return &Error{Kind: ErrAtFirstQuestion, Message: msg}
}

func Internal(err error) *Error {
	return &Error{Kind: ErrInternal, Message: "internal error", Err: err}
}

func Internalf(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}
