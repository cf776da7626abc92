package uri

// failure is a parse failure kept by value while the scanners run,
// speculative attempts throw it away without allocating.
// The zero value means success.
type failure struct {
	kind Error
	pos  int
}

func (f failure) failed() bool { return f.kind != "" }

func (f failure) err() error { return syntaxErr(f.kind, f.pos) }

// scanner holds the input and options of one parse call.
// Every scan method takes the cursor by pointer and moves it only on success,
// absent optional components leave it untouched.
type scanner struct {
	src  []byte
	opts *ParseOptions
}

// uri scans URI components in the fixed order:
// scheme, authority (userinfo, host, port), path, query, fragment.
func (s *scanner) uri(i *int) (*URI, failure) {
	k := *i
	u := &URI{src: s.src}

	u.Scheme = s.scheme(&k)

	if s.authorityAhead(k) {
		k += 2
		u.Authority = true
		u.Userinfo = s.userinfo(&k)

		h, f := s.host(&k)
		if f.failed() {
			return nil, f
		}
		u.Host = h

		if u.Port, u.HasPort, f = s.port(&k); f.failed() {
			return nil, f
		}

		if k < len(s.src) && s.src[k] == '/' {
			u.Path = s.path(&k)
		}
	} else {
		if k == len(s.src) || s.src[k] == '?' || s.src[k] == '#' {
			return nil, failure{ErrMissingPath, k}
		}
		if u.Path = s.path(&k); !u.Path.Valid {
			return nil, failure{ErrMissingPath, k}
		}
	}

	u.Query = s.query(&k)
	u.Fragment = s.fragment(&k)

	*i = k
	return u, failure{}
}

// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ) ":"
// The returned span excludes the colon.
func (s *scanner) scheme(i *int) Span {
	k := *i
	if k == len(s.src) || !isAlpha(s.src[k]) {
		return Span{}
	}
	for k++; k < len(s.src) && isSchemeChar(s.src[k]); k++ {
	}
	if k == len(s.src) || s.src[k] != ':' {
		return Span{}
	}
	sp := span(*i, k)
	*i = k + 1
	return sp
}

func (s *scanner) authorityAhead(k int) bool {
	return k+1 < len(s.src) && s.src[k] == '/' && s.src[k+1] == '/'
}

// userinfo = username [ ":" password ] "@"
// Both parts are non-empty, the whole attempt is dropped if "@" does not follow.
func (s *scanner) userinfo(i *int) Userinfo {
	k := *i
	n := len(s.src)
	if k == n || !isNameChar(s.src[k]) {
		return Userinfo{}
	}

	var ui Userinfo
	start := k
	for k++; k < n && isNameChar(s.src[k]); k++ {
	}
	ui.Username = span(start, k)

	if k+1 < n && s.src[k] == ':' && isNameChar(s.src[k+1]) {
		k++
		start = k
		for k++; k < n && isNameChar(s.src[k]); k++ {
		}
		ui.Password = span(start, k)
	}

	if k == n || s.src[k] != '@' {
		return Userinfo{}
	}
	*i = k + 1
	return ui
}

// host = "[" IPv6 "]" / IPv4 / reg-name
//
// A dotted quad is a host only when nothing that could continue a registered name follows it,
// otherwise the whole host is scanned again as a registered name.
func (s *scanner) host(i *int) (Host, failure) {
	k := *i
	n := len(s.src)
	if k == n {
		return nil, failure{ErrMissingHost, k}
	}

	if s.src[k] == '[' {
		k++
		ip, f := s.ipv6(&k)
		if f.failed() {
			if f.pos == n {
				f.kind = ErrUnclosedIPLiteral
			}
			return nil, f
		}
		if k == n || s.src[k] != ']' {
			if k < n && (isHex(s.src[k]) || s.src[k] == ':' || s.src[k] == '.') {
				return nil, failure{ErrInvalidIPv6, k}
			}
			return nil, failure{ErrUnclosedIPLiteral, k}
		}
		*i = k + 1
		return ip, failure{}
	}

	if isDigit(s.src[k]) {
		j := k
		if ip, f := s.ipv4(&j); !f.failed() && (j == n || !isNameChar(s.src[j])) {
			*i = j
			return ip, failure{}
		}
	}

	if !isNameChar(s.src[k]) {
		return nil, failure{ErrMissingHost, k}
	}
	start := k
	for k++; k < n && isNameChar(s.src[k]); k++ {
	}
	*i = k
	return RegName(span(start, k)), failure{}
}

// port = ":" 1*DIGIT
// A colon without a digit after it is left for the following components.
func (s *scanner) port(i *int) (port uint16, ok bool, f failure) {
	k := *i
	n := len(s.src)
	if k+1 >= n || s.src[k] != ':' || !isDigit(s.src[k+1]) {
		return 0, false, failure{}
	}

	var v uint32
	for k++; k < n && isDigit(s.src[k]); k++ {
		d := uint32(s.src[k] - '0')
		if v*10+d > 0xFFFF {
			if s.opts.overflow() == OverflowReject {
				return 0, false, failure{ErrNumberOverflow, k}
			}
			break
		}
		v = v*10 + d
	}
	*i = k
	return uint16(v), true, failure{}
}

// path is either "/" *( pchar / "/" ) or 1*pchar *( pchar / "/" ).
func (s *scanner) path(i *int) Span {
	k := *i
	n := len(s.src)
	switch {
	case k < n && s.src[k] == '/':
	case k < n && isPChar(s.src[k]):
	default:
		return Span{}
	}
	for k++; k < n && (isPChar(s.src[k]) || s.src[k] == '/'); k++ {
	}
	sp := span(*i, k)
	*i = k
	return sp
}

func (s *scanner) query(i *int) Span {
	return s.suffix(i, '?', isQueryChar)
}

func (s *scanner) fragment(i *int) Span {
	return s.suffix(i, '#', isFragmentChar)
}

func (s *scanner) suffix(i *int, sep byte, accept func(byte) bool) Span {
	k := *i
	if k == len(s.src) || s.src[k] != sep {
		return Span{}
	}
	k++
	start := k
	for k < len(s.src) && accept(s.src[k]) {
		k++
	}
	*i = k
	return span(start, k)
}
