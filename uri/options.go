package uri

import (
	"log/slog"

	"github.com/ghettovoice/rfc3986/internal/log"
)

// OverflowPolicy decides what happens to a digit that would overflow a port,
// an IPv4 octet or an IPv6 group.
type OverflowPolicy uint8

const (
	// OverflowStop leaves the overflowing digit unconsumed, so it becomes part of the next token.
	OverflowStop OverflowPolicy = iota
	// OverflowReject fails with [ErrNumberOverflow].
	OverflowReject
)

func (p OverflowPolicy) String() string {
	if p == OverflowReject {
		return "reject"
	}
	return "stop"
}

// LeadingZeroPolicy decides whether IPv4 octets may have leading zeros ("010").
type LeadingZeroPolicy uint8

const (
	LeadingZerosAllow LeadingZeroPolicy = iota
	LeadingZerosReject
)

func (p LeadingZeroPolicy) String() string {
	if p == LeadingZerosReject {
		return "reject"
	}
	return "allow"
}

// ParseOptions configures a [Parser].
type ParseOptions struct {
	Overflow     OverflowPolicy
	LeadingZeros LeadingZeroPolicy
	// Logger receives parse failures at debug level. Nil disables logging.
	Logger *slog.Logger
}

func (o *ParseOptions) overflow() OverflowPolicy {
	if o == nil {
		return OverflowStop
	}
	return o.Overflow
}

func (o *ParseOptions) leadingZeros() LeadingZeroPolicy {
	if o == nil {
		return LeadingZerosAllow
	}
	return o.LeadingZeros
}

func (o *ParseOptions) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Noop
	}
	return o.Logger
}

// Parser parses URIs with the given options.
// The zero value uses the defaults, a Parser is safe for concurrent use.
type Parser struct {
	Options ParseOptions
}

// NewParser returns a parser with the given options, nil means defaults.
func NewParser(opts *ParseOptions) *Parser {
	p := new(Parser)
	if opts != nil {
		p.Options = *opts
	}
	return p
}

// DefaultParser is used by the package level functions.
var DefaultParser = &Parser{}
