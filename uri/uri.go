package uri

import (
	"bytes"
	"fmt"
	"io"
	"net/netip"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/internal/ioutil"
	"github.com/ghettovoice/rfc3986/internal/util"
)

// URI is a decomposed URI.
//
// Spans reference the parsed input, which is kept in the URI and returned by [URI.Source].
// The input must not be modified while the URI is in use. Use [URI.Clone] or [URI.Detach]
// to get a value that does not share memory with the input.
type URI struct {
	Scheme Span
	// Authority reports whether the URI has an authority ("//" after the scheme).
	// When it is false Userinfo is absent, Host is nil and there is no port.
	Authority bool
	Userinfo  Userinfo
	Host      Host
	Port      uint16
	HasPort   bool
	Path      Span
	Query     Span
	Fragment  Span

	src []byte
}

// Source returns the input the URI was parsed from.
func (u *URI) Source() []byte {
	if u == nil {
		return nil
	}
	return u.src
}

// Bytes returns the input bytes covered by sp.
// The result aliases the input and must not be modified.
func (u *URI) Bytes(sp Span) []byte {
	if u == nil {
		return nil
	}
	return sp.In(u.src)
}

// Text returns a copy of the input covered by sp.
func (u *URI) Text(sp Span) string { return string(u.Bytes(sp)) }

// HostName returns the registered name of the host.
func (u *URI) HostName() ([]byte, bool) {
	if u == nil {
		return nil, false
	}
	if rn, ok := u.Host.(RegName); ok {
		return Span(rn).In(u.src), true
	}
	return nil, false
}

// Addr returns the address of an IPv4 or IPv6 host.
func (u *URI) Addr() (netip.Addr, bool) {
	if u == nil {
		return netip.Addr{}, false
	}
	switch h := u.Host.(type) {
	case IPv4:
		return h.Addr(), true
	case IPv6:
		return h.Addr(), true
	default:
		return netip.Addr{}, false
	}
}

// RenderTo writes the URI to w.
func (u *URI) RenderTo(w io.Writer) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if u.Scheme.Valid {
		cw.Write(u.Bytes(u.Scheme))
		cw.WriteString(":")
	}
	if u.Authority {
		cw.WriteString("//")
		if u.Userinfo.Username.Valid {
			cw.Write(u.Bytes(u.Userinfo.Username))
			if u.Userinfo.Password.Valid {
				cw.WriteString(":")
				cw.Write(u.Bytes(u.Userinfo.Password))
			}
			cw.WriteString("@")
		}
		cw.Call(u.renderHost)
		if u.HasPort {
			cw.WriteString(":")
			cw.WriteString(strconv.FormatUint(uint64(u.Port), 10))
		}
	}
	cw.Write(u.Bytes(u.Path))
	if u.Query.Valid {
		cw.WriteString("?")
		cw.Write(u.Bytes(u.Query))
	}
	if u.Fragment.Valid {
		cw.WriteString("#")
		cw.Write(u.Bytes(u.Fragment))
	}
	return errtrace.Wrap2(cw.Result())
}

func (u *URI) renderHost(w io.Writer) (int, error) {
	switch h := u.Host.(type) {
	case RegName:
		return errtrace.Wrap2(w.Write(u.Bytes(Span(h))))
	case IPv4:
		return errtrace.Wrap2(io.WriteString(w, h.String()))
	case IPv6:
		return errtrace.Wrap2(fmt.Fprintf(w, "[%s]", h))
	}
	return 0, nil
}

// Render returns the text form of the URI.
func (u *URI) Render() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the text form of the URI.
func (u *URI) String() string { return u.Render() }

// Format implements [fmt.Formatter].
//
//   - %s renders the URI;
//   - %q renders the URI as a quoted string;
//   - %v and other verbs print the struct fields.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// The text is copied, so the URI does not reference it.
func (u *URI) UnmarshalText(text []byte) error {
	u1, err := Parse(bytes.Clone(text))
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}

// Clone returns a deep copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.src = bytes.Clone(u.src)
	return &u2
}

// Equal compares the URI with another one.
// Schemes and registered names are compared case-insensitively, all other components must match exactly.
// val may be URI or *URI.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return u.Scheme.Valid == other.Scheme.Valid &&
		util.EqFold(u.Bytes(u.Scheme), other.Bytes(other.Scheme)) &&
		u.Authority == other.Authority &&
		u.spanEqual(u.Userinfo.Username, other, other.Userinfo.Username) &&
		u.spanEqual(u.Userinfo.Password, other, other.Userinfo.Password) &&
		u.hostEqual(other) &&
		u.HasPort == other.HasPort &&
		u.Port == other.Port &&
		u.spanEqual(u.Path, other, other.Path) &&
		u.spanEqual(u.Query, other, other.Query) &&
		u.spanEqual(u.Fragment, other, other.Fragment)
}

func (u *URI) spanEqual(sp Span, other *URI, osp Span) bool {
	return sp.Valid == osp.Valid && bytes.Equal(u.Bytes(sp), other.Bytes(osp))
}

func (u *URI) hostEqual(other *URI) bool {
	switch h := u.Host.(type) {
	case nil:
		return other.Host == nil
	case RegName:
		oh, ok := other.Host.(RegName)
		return ok && util.EqFold(u.Bytes(Span(h)), other.Bytes(Span(oh)))
	default:
		return h == other.Host
	}
}

// IsValid reports whether the URI is consistent: it has a host when it has an authority,
// a non-empty path otherwise, and all present components are inside the source.
func (u *URI) IsValid() bool {
	if u == nil {
		return false
	}
	if u.Authority {
		if u.Host == nil {
			return false
		}
		if rn, ok := u.Host.(RegName); ok && Span(rn).Len() == 0 {
			return false
		}
	} else if !u.Path.Valid || u.Host != nil || !u.Userinfo.IsZero() || u.HasPort {
		return false
	}
	if u.Path.Valid && u.Path.Len() == 0 {
		return false
	}
	if !u.HasPort && u.Port != 0 {
		return false
	}
	for _, sp := range [...]Span{u.Scheme, u.Userinfo.Username, u.Userinfo.Password, u.Path, u.Query, u.Fragment} {
		if sp.Valid && sp.In(u.src) == nil && sp.Len() != 0 {
			return false
		}
	}
	return true
}
