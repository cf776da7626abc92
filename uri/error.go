package uri

import (
	"strconv"

	"github.com/ghettovoice/rfc3986/internal/grammar"
)

// Error is a string sentinel error.
type Error = grammar.Error

const (
	// ErrMalformedInput matches every syntax error returned by the parsers.
	ErrMalformedInput = grammar.ErrMalformedInput
	ErrEmptyInput     = grammar.ErrEmptyInput

	ErrMissingHost       Error = "missing host"
	ErrMissingPath       Error = "missing path"
	ErrInvalidIPv4       Error = "invalid IPv4 address"
	ErrInvalidIPv6       Error = "invalid IPv6 address"
	ErrUnclosedIPLiteral Error = "unclosed IP literal"
	ErrNumberOverflow    Error = "number overflow"
	ErrLeadingZero       Error = "leading zero in IPv4 octet"
	ErrTrailingData      Error = "trailing data"

	// ErrBufferFull is returned by [URI.Detach] when the components do not fit the detached buffer.
	ErrBufferFull Error = "detached buffer is full"
)

// SyntaxError describes a parse failure.
// It matches both its Kind and [ErrMalformedInput] with [errors.Is].
type SyntaxError struct {
	// Kind is one of the Err* sentinels.
	Kind error
	// Pos is the byte offset of the input where the failure was detected.
	Pos int
}

func (e *SyntaxError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Kind.Error() + " at offset " + strconv.Itoa(e.Pos)
}

func (e *SyntaxError) Unwrap() error { return e.Kind }

func (e *SyntaxError) Is(target error) bool {
	return target == ErrMalformedInput //nolint:errorlint
}

// Grammar marks the error as a grammar error.
func (*SyntaxError) Grammar() bool { return true }

func syntaxErr(kind Error, pos int) *SyntaxError {
	return &SyntaxError{Kind: kind, Pos: pos}
}
