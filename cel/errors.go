package cel

import "fmt"

// LexError reports an unrecognized character or unterminated string in a
// formula body. Offset is the byte offset of the offending character.
type LexError struct {
	Offset int
	Reason string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at offset %d: %s", e.Offset, e.Reason)
}

// ParseError reports malformed grammar: what the parser expected, what it
// found, and where.
type ParseError struct {
	Expected string
	Found    string
	Offset   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: expected %s, found %s", e.Offset, e.Expected, e.Found)
}

// EvalErrorCode is the closed set of evaluation failure categories.
type EvalErrorCode int

const (
	ErrArityOrUnknownFunction EvalErrorCode = iota + 1
	ErrTypeMismatch
	ErrDivisionByZero
	ErrCyclicReference
	ErrOutOfBounds
	ErrTopLevelArrayResult
)

func (c EvalErrorCode) String() string {
	switch c {
	case ErrArityOrUnknownFunction:
		return "ArityOrUnknownFunction"
	case ErrTypeMismatch:
		return "TypeMismatch"
	case ErrDivisionByZero:
		return "DivisionByZero"
	case ErrCyclicReference:
		return "CyclicReference"
	case ErrOutOfBounds:
		return "OutOfBounds"
	case ErrTopLevelArrayResult:
		return "TopLevelArrayResult"
	default:
		return "Unknown"
	}
}

// EvalError is an evaluation failure. Errors propagate unchanged from a
// failed cell to every cell that depends on it.
type EvalError struct {
	Code    EvalErrorCode
	Message string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func evalErrorf(code EvalErrorCode, format string, args ...any) *EvalError {
	return &EvalError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CellError pairs a failing cell's address with its error; the list of
// these pairs is the engine's error channel to the caller.
type CellError struct {
	Addr CellAddress
	Err  error
}

func (e CellError) Error() string {
	return fmt.Sprintf("%s: %v", e.Addr, e.Err)
}

func (e CellError) Unwrap() error { return e.Err }
