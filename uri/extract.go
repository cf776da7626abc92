package uri

//go:generate go tool mockgen -destination=../internal/mocks/handler.go -package=mocks . Handler

import (
	"braces.dev/errtrace"
)

// Handler receives URIs found by [Extract].
// start and end are the offsets of the URI in the scanned text.
type Handler interface {
	HandleURI(u *URI, start, end int) error
}

// HandlerFunc is a function adapter for [Handler].
type HandlerFunc func(u *URI, start, end int) error

// HandleURI implements [Handler].
func (f HandlerFunc) HandleURI(u *URI, start, end int) error {
	return errtrace.Wrap(f(u, start, end))
}

// ExtractOptions configures [Extract].
type ExtractOptions struct {
	// Parser used for matching, nil means [DefaultParser].
	Parser *Parser
	// AllowNoAuthority reports URIs without authority, e.g. "mailto:user@example.com".
	// By default only URIs like "scheme://..." are reported.
	AllowNoAuthority bool
}

func (o *ExtractOptions) parser() *Parser {
	if o == nil || o.Parser == nil {
		return DefaultParser
	}
	return o.Parser
}

func (o *ExtractOptions) allowNoAuthority() bool { return o != nil && o.AllowNoAuthority }

// Extract finds URIs with a scheme embedded in text and passes them to h in order of appearance.
// A candidate starts with a letter that does not continue a previous scheme-like word,
// the longest URI is taken from there and the search resumes after it.
// An error returned by h stops the search and is returned.
//
// Returned URIs reference text.
func Extract(text []byte, h Handler, opts *ExtractOptions) error {
	s := opts.parser().scanner(text)
	allowNoAuth := opts.allowNoAuthority()

	for i := 0; i < len(text); {
		if !isAlpha(text[i]) || (i > 0 && isSchemeChar(text[i-1])) {
			i++
			continue
		}

		k := i
		if !s.scheme(&k).Valid {
			// bytes inside a scheme-like word are never candidates
			i = skipSchemeChars(text, i+1)
			continue
		}
		if !allowNoAuth && !s.authorityAhead(k) {
			i = k
			continue
		}

		end := i
		u, f := s.uri(&end)
		if f.failed() {
			i = k
			continue
		}
		if err := h.HandleURI(u, i, end); err != nil {
			return errtrace.Wrap(err)
		}
		i = end
	}
	return nil
}

func skipSchemeChars(text []byte, i int) int {
	for i < len(text) && isSchemeChar(text[i]) {
		i++
	}
	return i
}

// ExtractAll returns all URIs found in text by [Extract].
func ExtractAll(text []byte, opts *ExtractOptions) ([]*URI, error) {
	var uris []*URI
	err := Extract(text, HandlerFunc(func(u *URI, _, _ int) error {
		uris = append(uris, u)
		return nil
	}), opts)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return uris, nil
}
