// Package grammar implements the RFC 3986 collected ABNF (appendix A) with
// github.com/ghettovoice/abnf operators.
//
// It is a slow reference implementation: the uri package has its own single-pass
// scanner, this package is used to cross-check its results and by tools to
// report RFC conformance of an input.
package grammar

//go:generate go tool errtrace -w .

import (
	"github.com/ghettovoice/abnf"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

// Error is a grammar error.
type Error string

func (e Error) Error() string { return string(e) }

// Grammar marks the error as a grammar error, see errorutil.IsGrammarErr.
func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

func matchAll(op abnf.Operator, s []byte) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op(s, 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsURI reports whether s matches the "URI" rule (absolute URI with optional fragment).
func IsURI[T ~string | ~[]byte](s T) bool { return matchAll(uri, []byte(s)) }

// IsURIReference reports whether s matches the "URI-reference" rule.
// The empty string is a valid relative reference, but it is reported as false
// to stay consistent with the other checks.
func IsURIReference[T ~string | ~[]byte](s T) bool { return matchAll(uriReference, []byte(s)) }

// IsIPv4Address reports whether s matches the "IPv4address" rule.
// The rule does not allow leading zeros in octets.
func IsIPv4Address[T ~string | ~[]byte](s T) bool { return matchAll(ipv4Address, []byte(s)) }

// IsIPv6Address reports whether s matches the "IPv6address" rule (without brackets).
func IsIPv6Address[T ~string | ~[]byte](s T) bool { return matchAll(ipv6Address, []byte(s)) }

// IsRegName reports whether s is a non-empty "reg-name".
func IsRegName[T ~string | ~[]byte](s T) bool { return matchAll(regName, []byte(s)) }
