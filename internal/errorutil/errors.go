// Package errorutil provides error helpers shared by the parser and its tools.
package errorutil

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ghettovoice/rfc3986/internal/util"
)

// Error is a string type that implements the error interface.
// It is used to declare constant sentinel errors.
type Error string

func (s Error) Error() string { return string(s) }

// NewWrapperError creates or wraps an error with a sentinel error.
// It supports multiple argument patterns:
//   - No args: returns sentinel
//   - error arg: wraps with sentinel (unless already wrapped)
//   - string arg: formats as message with sentinel
//   - string + args: formats with Sprintf then wraps with sentinel
func NewWrapperError(sentinel error, args ...any) error {
	if len(args) == 0 {
		return sentinel //errtrace:skip
	}
	switch v := args[0].(type) {
	case error:
		if errors.Is(v, sentinel) {
			return v //errtrace:skip
		}
		return fmt.Errorf("%w: %w", sentinel, v) //errtrace:skip
	case string:
		if len(args) == 1 {
			return fmt.Errorf("%w: %s", sentinel, v) //errtrace:skip
		}
		return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(v, args[1:]...)) //errtrace:skip
	default:
		return sentinel //errtrace:skip
	}
}

// ErrInvalidArgument is returned when a caller passes a value outside of the accepted set,
// e.g. an unknown policy name.
const ErrInvalidArgument Error = "invalid argument"

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return NewWrapperError(ErrInvalidArgument, args...) //errtrace:skip
}

// IsGrammarErr reports whether err or any error in its chain is a grammar error,
// i.e. implements `Grammar() bool` returning true.
func IsGrammarErr(err error) bool {
	var e interface{ Grammar() bool }
	return errors.As(err, &e) && e.Grammar()
}

// JoinPrefix joins non-nil errs under a common prefix.
// A single error is wrapped as "prefix: err", several errors are rendered as an indented list.
// Returns nil if all errs are nil.
func JoinPrefix(prefix string, errs ...error) error {
	errs = compact(errs)
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%s: %w", strings.TrimRight(prefix, ": "), errs[0]) //errtrace:skip
	default:
		return &multiError{prefix: prefix, errs: errs} //errtrace:skip
	}
}

func compact(errs []error) []error {
	out := errs[:0:0]
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}

type multiError struct {
	prefix string
	errs   []error
}

func (e *multiError) Error() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if e.prefix == "" {
		sb.WriteString("multiple errors")
	} else {
		sb.WriteString(strings.TrimRight(e.prefix, ": "))
	}
	sb.WriteByte(':')
	for _, err := range e.errs {
		sb.WriteString("\n  - ")
		sb.WriteString(strings.ReplaceAll(err.Error(), "\n", "\n    "))
	}
	return sb.String()
}

func (e *multiError) Unwrap() []error { return e.errs }
