package uri

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/rfc3986/internal/errorutil"
)

// DetachedSize is the capacity of the [Detached] buffer.
const DetachedSize = 512

// Detached is a URI whose components are copied into a fixed buffer kept in the value itself,
// so it does not reference the parsed input.
type Detached struct {
	uri  URI
	buf  [DetachedSize]byte
	used int
}

// URI returns the URI view of d. The result references d and is valid while d is not modified.
func (d *Detached) URI() *URI {
	if d == nil {
		return nil
	}
	u := d.uri
	u.src = d.buf[:d.used:d.used]
	return &u
}

// Len returns the number of used bytes of the buffer.
func (d *Detached) Len() int {
	if d == nil {
		return 0
	}
	return d.used
}

// String returns the text form of the URI.
func (d *Detached) String() string { return d.URI().String() }

type bumpAlloc struct {
	pool []byte
	used int
}

// dup copies b into the pool and returns its span there.
func (a *bumpAlloc) dup(b []byte) (Span, error) {
	if a.used+len(b) > len(a.pool) {
		return Span{}, errtrace.Wrap(errorutil.NewWrapperError(ErrBufferFull,
			"need %d bytes, %d left", len(b), len(a.pool)-a.used))
	}
	start := a.used
	a.used += copy(a.pool[start:], b)
	return span(start, a.used), nil
}

// Detach copies the components of u into a new [Detached].
// It fails with [ErrBufferFull] when they do not fit into [DetachedSize] bytes.
func (u *URI) Detach() (*Detached, error) {
	if u == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil URI"))
	}

	d := &Detached{uri: *u}
	d.uri.src = nil
	a := bumpAlloc{pool: d.buf[:]}

	for _, sp := range [...]*Span{
		&d.uri.Scheme,
		&d.uri.Userinfo.Username,
		&d.uri.Userinfo.Password,
		&d.uri.Path,
		&d.uri.Query,
		&d.uri.Fragment,
	} {
		if !sp.Valid {
			continue
		}
		var err error
		if *sp, err = a.dup(u.Bytes(*sp)); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	if rn, ok := u.Host.(RegName); ok {
		sp, err := a.dup(u.Bytes(Span(rn)))
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		d.uri.Host = RegName(sp)
	}

	d.used = a.used
	return d, nil
}
