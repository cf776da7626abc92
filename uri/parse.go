package uri

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/internal/errorutil"
	"github.com/ghettovoice/rfc3986/internal/log"
	"github.com/ghettovoice/rfc3986/internal/util"
)

// Parse parses the whole input s (string or []byte) as a URI with [DefaultParser].
// The returned URI references s, see [URI] for the ownership rules.
func Parse[T ~string | ~[]byte](s T) (*URI, error) {
	return errtrace.Wrap2(DefaultParser.Parse(util.ByteView(s)))
}

// ParsePrefix parses the longest URI that starts at offset *pos of s with [DefaultParser].
// On success *pos is moved past the URI, on failure it is left unchanged.
// A nil pos means offset 0.
func ParsePrefix[T ~string | ~[]byte](s T, pos *int) (*URI, error) {
	return errtrace.Wrap2(DefaultParser.ParsePrefix(util.ByteView(s), pos))
}

// ParseIPv4 parses the whole input s as a dotted decimal IPv4 address.
func ParseIPv4[T ~string | ~[]byte](s T) (IPv4, error) {
	return errtrace.Wrap2(DefaultParser.ParseIPv4(util.ByteView(s)))
}

// ParseIPv6 parses the whole input s as an IPv6 address without brackets.
func ParseIPv6[T ~string | ~[]byte](s T) (IPv6, error) {
	return errtrace.Wrap2(DefaultParser.ParseIPv6(util.ByteView(s)))
}

// ParseDetached parses the whole input s and returns a copy that does not reference s.
func ParseDetached[T ~string | ~[]byte](s T) (*Detached, error) {
	u, err := Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(u.Detach())
}

func (p *Parser) scanner(b []byte) *scanner {
	return &scanner{src: b, opts: &p.Options}
}

func (p *Parser) fail(what string, b []byte, f failure) error {
	err := f.err()
	p.Options.logger().Debug("failed to parse "+what,
		"input", log.StringValue(b),
		"error", err,
	)
	return errtrace.Wrap(err)
}

// Parse parses the whole input b as a URI.
// Input that is left after a valid URI fails with [ErrTrailingData].
func (p *Parser) Parse(b []byte) (*URI, error) {
	if len(b) == 0 {
		return nil, p.fail("URI", b, failure{ErrEmptyInput, 0})
	}

	var k int
	u, f := p.scanner(b).uri(&k)
	if f.failed() {
		return nil, p.fail("URI", b, f)
	}
	if k != len(b) {
		return nil, p.fail("URI", b, failure{ErrTrailingData, k})
	}
	return u, nil
}

// ParsePrefix parses the longest URI starting at offset *pos of b.
// On success *pos is moved past the URI, on failure it is left unchanged.
// A nil pos means offset 0.
func (p *Parser) ParsePrefix(b []byte, pos *int) (*URI, error) {
	var k int
	if pos != nil {
		k = *pos
	}
	if k < 0 || k > len(b) {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("offset %d is out of range [0, %d]", k, len(b)))
	}

	u, f := p.scanner(b).uri(&k)
	if f.failed() {
		return nil, p.fail("URI", b, f)
	}
	if pos != nil {
		*pos = k
	}
	return u, nil
}

// ParseIPv4 parses the whole input b as a dotted decimal IPv4 address.
func (p *Parser) ParseIPv4(b []byte) (IPv4, error) {
	if len(b) == 0 {
		return 0, p.fail("IPv4 address", b, failure{ErrEmptyInput, 0})
	}

	var k int
	ip, f := p.scanner(b).ipv4(&k)
	if !f.failed() && k != len(b) {
		f = failure{ErrInvalidIPv4, k}
	}
	if f.failed() {
		return 0, p.fail("IPv4 address", b, f)
	}
	return ip, nil
}

// ParseIPv6 parses the whole input b as an IPv6 address, b must not have brackets.
func (p *Parser) ParseIPv6(b []byte) (IPv6, error) {
	if len(b) == 0 {
		return IPv6{}, p.fail("IPv6 address", b, failure{ErrEmptyInput, 0})
	}

	var k int
	ip, f := p.scanner(b).ipv6(&k)
	if !f.failed() && k != len(b) {
		f = failure{ErrInvalidIPv6, k}
	}
	if f.failed() {
		return IPv6{}, p.fail("IPv6 address", b, f)
	}
	return ip, nil
}
