// Package errors provides sentinel errors and error types for the chess engine.
// It defines the reasons a move can be rejected and structured error types that
// preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/lgbarn/chesslab-go/internal/chess"
)

// Sentinel errors for rejected moves.
// A rejected move leaves the board untouched; these only explain why.
var (
	// ErrOffBoard indicates a source or destination outside the 8x8 board.
	ErrOffBoard = errors.New("cell off the board")

	// ErrNoPiece indicates an empty source cell.
	ErrNoPiece = errors.New("no piece on source cell")

	// ErrWrongColour indicates a piece that does not belong to the side to move.
	ErrWrongColour = errors.New("piece belongs to the other side")

	// ErrOwnPiece indicates a destination held by a piece of the mover's colour.
	ErrOwnPiece = errors.New("destination holds own piece")

	// ErrIllegalMove indicates a destination the piece cannot reach.
	ErrIllegalMove = errors.New("illegal move")

	// ErrPathBlocked indicates an occupied cell between source and destination.
	ErrPathBlocked = errors.New("path blocked")

	// ErrSelfCheck indicates a move that would leave the mover's king in check.
	ErrSelfCheck = errors.New("move leaves own king in check")

	// ErrCastling indicates a castling attempt whose preconditions do not hold.
	ErrCastling = errors.New("castling not allowed")
)

// Sentinel errors for everything around the engine.
var (
	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrParseFailure indicates a malformed move script.
	ErrParseFailure = errors.New("parse failure")

	// ErrUnknownGame indicates a session id with no game behind it.
	ErrUnknownGame = errors.New("unknown game")

	// ErrPrecondition indicates a broken internal invariant (programmer error).
	ErrPrecondition = errors.New("precondition violated")
)

// MoveError wraps a rejection reason with the move that caused it.
type MoveError struct {
	Err    error        // The rejection reason
	From   chess.Cell   // Source cell
	To     chess.Cell   // Destination cell
	Colour chess.Colour // Side that attempted the move
	Turn   int          // Turn counter at the time of the attempt (0 if unknown)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string
	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}
	parts = append(parts, fmt.Sprintf("%s %s-%s", e.Colour, e.From, e.To))

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with file location context.
// It's used for move scripts.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	// Add file location
	if e.File != "" || e.Line > 0 {
		loc := e.File
		if loc == "" {
			loc = "line"
		}
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Precondition builds the error for a broken internal invariant. The result
// carries a stack trace and matches ErrPrecondition; callers panic with it.
func Precondition(format string, args ...interface{}) error {
	return pkgerrors.Wrapf(ErrPrecondition, format, args...)
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
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Reason returns the sentinel behind a rejected move, or err itself when it
// wraps none of them.
func Reason(err error) error {
	for _, s := range []error{
		ErrOffBoard, ErrNoPiece, ErrWrongColour, ErrOwnPiece,
		ErrIllegalMove, ErrPathBlocked, ErrSelfCheck, ErrCastling,
	} {
		if errors.Is(err, s) {
			return s
		}
	}
	return err
}
