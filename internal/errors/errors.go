// Package errors provides sentinel errors and error types for the hourglass engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNotYourPiece indicates the origin square is empty or holds an opponent's piece.
	ErrNotYourPiece = errors.New("not your piece")

	// ErrIllegalMove indicates a move that is not among the current legal moves.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoPromotion indicates a pawn reached its last rank without a promotion choice.
	ErrNoPromotion = errors.New("promotion piece required")

	// ErrInvalidMoveText indicates move notation that could not be parsed.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a move rejection with the move and position it was tried on.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err  error  // The underlying error, one of the move sentinels
	Move string // The move in coordinate notation
	FEN  string // The position the move was tried on (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, " in ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// FENField names one of the six space-separated FEN fields.
type FENField int

const (
	FieldPlacement FENField = iota
	FieldActiveColor
	FieldCastling
	FieldEnPassant
	FieldHalfmove
	FieldFullmove
)

// String returns the human readable name of the field.
func (f FENField) String() string {
	names := []string{"piece placement", "active color", "castling rights", "en passant", "halfmove clock", "fullmove number"}
	if f >= 0 && int(f) < len(names) {
		return names[f]
	}
	return "unknown field"
}

// FENErrorKind classifies a FEN parsing failure.
type FENErrorKind int

const (
	// MissingComponent: fewer than six fields were present.
	MissingComponent FENErrorKind = iota
	// InvalidData: a field contained bad data at CharIndex.
	InvalidData
	// TooManyComponents: more than six fields were present.
	TooManyComponents
)

// String returns the name of the kind.
func (k FENErrorKind) String() string {
	switch k {
	case MissingComponent:
		return "MissingComponent"
	case InvalidData:
		return "InvalidData"
	case TooManyComponents:
		return "TooManyComponents"
	}
	return "Unknown"
}

// FENError describes why a FEN string could not be loaded.
// Field and CharIndex are meaningful for MissingComponent and InvalidData;
// CharIndex is the byte offset within the field.
type FENError struct {
	Kind      FENErrorKind
	Field     FENField
	CharIndex int
	Message   string
}

// Error returns a formatted error message with the field and position.
func (e *FENError) Error() string {
	switch e.Kind {
	case MissingComponent:
		return fmt.Sprintf("%v: missing %s", ErrInvalidFEN, e.Field)
	case TooManyComponents:
		return fmt.Sprintf("%v: too many components", ErrInvalidFEN)
	}
	return fmt.Sprintf("%v: %s at char %d: %s", ErrInvalidFEN, e.Field, e.CharIndex, e.Message)
}

// Unwrap returns ErrInvalidFEN so every FEN error matches it with errors.Is().
func (e *FENError) Unwrap() error {
	return ErrInvalidFEN
}

// Missing builds a MissingComponent error.
func Missing(field FENField) *FENError {
	return &FENError{Kind: MissingComponent, Field: field}
}

// Invalid builds an InvalidData error.
func Invalid(field FENField, charIndex int, message string) *FENError {
	return &FENError{Kind: InvalidData, Field: field, CharIndex: charIndex, Message: message}
}

// TooMany builds a TooManyComponents error.
func TooMany() *FENError {
	return &FENError{Kind: TooManyComponents}
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
// It forwards to the standard library so callers need only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
