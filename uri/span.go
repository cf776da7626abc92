package uri

// Span is a half-open byte range [Start, End) of the parsed input.
//
// A span with Valid == false marks an absent component.
// A valid span may be empty, e.g. the query of "http://a?".
type Span struct {
	Start, End int
	Valid      bool
}

func span(start, end int) Span { return Span{Start: start, End: end, Valid: true} }

// Len returns the length of the span, zero for absent spans.
func (s Span) Len() int {
	if !s.Valid {
		return 0
	}
	return s.End - s.Start
}

// In returns the part of src covered by the span.
// Absent spans and spans out of src bounds return nil.
func (s Span) In(src []byte) []byte {
	if !s.Valid || s.Start < 0 || s.End > len(src) || s.Start > s.End {
		return nil
	}
	return src[s.Start:s.End:s.End]
}

// Userinfo holds the user name and optional password of an authority.
// Absent userinfo has both spans invalid, a user name without password has only Password invalid.
type Userinfo struct {
	Username, Password Span
}

// IsZero reports whether the userinfo is absent.
func (ui Userinfo) IsZero() bool { return !ui.Username.Valid && !ui.Password.Valid }
