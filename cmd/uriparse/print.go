package main

import (
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/rfc3986/internal/grammar"
	"github.com/ghettovoice/rfc3986/internal/ioutil"
	"github.com/ghettovoice/rfc3986/uri"
)

const absent = "---"

// printer writes parsed URIs in a tab separated "FIELD\tvalue" layout.
type printer struct {
	rfc bool
	dns bool
}

func (p *printer) field(u *uri.URI, sp uri.Span) string {
	if !sp.Valid {
		return absent
	}
	return u.Text(sp)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// writeURI writes all fields of u parsed from in to w.
func (p *printer) writeURI(w io.Writer, in string, u *uri.URI) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.Fprintf("SCHEME  \t%s\n", p.field(u, u.Scheme))
	cw.Fprintf("USERNAME\t%s\n", p.field(u, u.Userinfo.Username))
	cw.Fprintf("PASSWORD\t%s\n", p.field(u, u.Userinfo.Password))

	switch h := u.Host.(type) {
	case uri.RegName:
		name := u.Text(uri.Span(h))
		cw.Fprintf("HOST    \t%s\n", name)
		if p.dns {
			cw.Fprintf("DNS     \t%s\n", yesNo(isDomainName(name)))
		}
	case uri.IPv4:
		cw.Fprintf("HOST (IPV4)\t%s\n", h.Addr())
	case uri.IPv6:
		cw.Fprintf("HOST (IPV6)\t%s\n", h.Addr())
	default:
		cw.Fprintf("HOST    \t%s\n", absent)
	}

	if u.HasPort {
		cw.Fprintf("PORT    \t%d\n", u.Port)
	} else {
		cw.Fprintf("PORT    \t%s\n", absent)
	}
	cw.Fprintf("PATH    \t%s\n", p.field(u, u.Path))
	cw.Fprintf("QUERY   \t%s\n", p.field(u, u.Query))
	cw.Fprintf("FRAGMENT\t%s\n", p.field(u, u.Fragment))
	if p.rfc {
		cw.Fprintf("RFC3986 \t%s\n", yesNo(grammar.IsURIReference(in)))
		cw.Fprintf("RFC URI \t%s\n", yesNo(grammar.IsURI(in)))
		if u.Host != nil {
			cw.Fprintf("RFC HOST\t%s\n", yesNo(rfcHost(in, u.Host.Kind())))
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// rfcHost reports whether the RFC 3986 grammar finds a host of the given kind in in.
func rfcHost(in string, kind uri.HostKind) bool {
	comps, err := grammar.SplitURIReference(in)
	if err != nil {
		return false
	}
	host, ok := comps.Get(grammar.Host)
	if !ok {
		return false
	}
	switch kind {
	case uri.HostRegName:
		return grammar.IsRegName(host)
	case uri.HostIPv4:
		return grammar.IsIPv4Address(host)
	case uri.HostIPv6:
		lit, ok := strings.CutPrefix(host, "[")
		if !ok {
			return false
		}
		lit, ok = strings.CutSuffix(lit, "]")
		return ok && grammar.IsIPv6Address(lit)
	default:
		return false
	}
}

// isDomainName reports whether name is a syntactically valid DNS name.
// Empty names and names that do not fit into a DNS message are rejected.
func isDomainName(name string) bool {
	if name == "" {
		return false
	}
	_, ok := dns.IsDomainName(name)
	return ok
}
