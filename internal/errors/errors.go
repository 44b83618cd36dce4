package errors

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeIllegalMove = "ILLEGAL_MOVE"
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeNoMoves     = "NO_MOVES"
	ErrCodeEmptyInput  = "EMPTY_INPUT"
	ErrCodeInternal    = "INTERNAL_ERROR"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrNoMoves       = errors.New("no moves found")
	ErrEmptyInput    = errors.New("empty PGN input")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// AppError represents an application error with an error code
type AppError struct {
	Code    string // Error code (e.g., "ILLEGAL_MOVE", "VALIDATION_ERROR")
	Message string // Human-readable error message
	Err     error  // Wrapped underlying error (optional)
	kind    error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the sentinel and the underlying error for errors.Is/As.
func (e *AppError) Unwrap() []error {
	var out []error
	if e.kind != nil {
		out = append(out, e.kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

// NewIllegalMoveError reports a move that cannot be played at the given 1-based ply.
func NewIllegalMoveError(ply int, san string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeIllegalMove,
		Message: fmt.Sprintf("move %q at ply %d cannot be played", san, ply),
		Err:     err,
		kind:    ErrIllegalMove,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		kind:    ErrInvalidConfig,
	}
}

// NewNoMovesError reports a game whose movetext yielded no moves.
func NewNoMovesError() *AppError {
	return &AppError{
		Code:    ErrCodeNoMoves,
		Message: "no moves could be read from the movetext",
		kind:    ErrNoMoves,
	}
}

// NewEmptyInputError reports blank PGN input.
func NewEmptyInputError() *AppError {
	return &AppError{
		Code:    ErrCodeEmptyInput,
		Message: "PGN text is empty",
		kind:    ErrEmptyInput,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal error",
		Err:     err,
	}
}

// Code returns the AppError code carried by err, or "" when there is none.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
