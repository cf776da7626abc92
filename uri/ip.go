package uri

// ipv4 scans four decimal octets separated by dots.
func (s *scanner) ipv4(i *int) (IPv4, failure) {
	k := *i
	var ip IPv4
	for n := range 4 {
		if n > 0 {
			if k == len(s.src) || s.src[k] != '.' {
				return 0, failure{ErrInvalidIPv4, k}
			}
			k++
		}
		o, f := s.octet(&k)
		if f.failed() {
			return 0, f
		}
		ip = ip<<8 | IPv4(o)
	}
	*i = k
	return ip, failure{}
}

func (s *scanner) octet(i *int) (uint8, failure) {
	k := *i
	n := len(s.src)
	if k == n || !isDigit(s.src[k]) {
		return 0, failure{ErrInvalidIPv4, k}
	}

	var v uint
	for start := k; k < n && isDigit(s.src[k]); k++ {
		d := uint(s.src[k] - '0')
		if v*10+d > 0xFF {
			if s.opts.overflow() == OverflowReject {
				return 0, failure{ErrNumberOverflow, k}
			}
			break
		}
		if k > start && s.src[start] == '0' && s.opts.leadingZeros() == LeadingZerosReject {
			return 0, failure{ErrLeadingZero, start}
		}
		v = v*10 + d
	}
	*i = k
	return uint8(v), failure{}
}

// hexWord scans 1 to 4 hex digits.
func (s *scanner) hexWord(i *int) (uint16, failure) {
	k := *i
	n := len(s.src)
	if k == n || !isHex(s.src[k]) {
		return 0, failure{ErrInvalidIPv6, k}
	}

	var w uint16
	for start := k; k < n && isHex(s.src[k]); k++ {
		if k-start == 4 {
			if s.opts.overflow() == OverflowReject {
				return 0, failure{ErrNumberOverflow, k}
			}
			break
		}
		w = w<<4 | hexVal(s.src[k])
	}
	*i = k
	return w, failure{}
}

// dottedAhead reports whether the word at k is the start of a dotted quad.
func (s *scanner) dottedAhead(k int) bool {
	for k < len(s.src) && isHex(s.src[k]) {
		k++
	}
	return k < len(s.src) && s.src[k] == '.'
}

// ipv6 scans the inside of an IP literal.
//
// Words before "::" fill the address from the left, words after it
// are right aligned, the gap between them is zero.
// A dotted quad may stand for the last two words.
func (s *scanner) ipv6(i *int) (IPv6, failure) {
	var (
		ip    IPv6
		tail  [8]uint16
		nhead int
		ntail int
		k     = *i
		n     = len(s.src)
	)

	if k+1 < n && s.src[k] == ':' && s.src[k+1] == ':' {
		k += 2
	} else {
		for {
			if s.dottedAhead(k) {
				if nhead != 6 {
					return ip, failure{ErrInvalidIPv6, k}
				}
				v4, f := s.ipv4(&k)
				if f.failed() {
					return ip, f
				}
				ip[6], ip[7] = uint16(v4>>16), uint16(v4)
				*i = k
				return ip, failure{}
			}

			w, f := s.hexWord(&k)
			if f.failed() {
				return ip, f
			}
			ip[nhead] = w
			if nhead++; nhead == 8 {
				*i = k
				return ip, failure{}
			}

			if k == n || s.src[k] != ':' {
				return ip, failure{ErrInvalidIPv6, k}
			}
			k++
			if k < n && s.src[k] == ':' {
				k++
				break
			}
		}
	}

	// "::" stands for at least one zero word.
	budget := 7 - nhead
	for ntail < budget && k < n && isHex(s.src[k]) {
		if s.dottedAhead(k) {
			if budget-ntail < 2 {
				return ip, failure{ErrInvalidIPv6, k}
			}
			v4, f := s.ipv4(&k)
			if f.failed() {
				return ip, f
			}
			tail[ntail], tail[ntail+1] = uint16(v4>>16), uint16(v4)
			ntail += 2
			break
		}

		w, f := s.hexWord(&k)
		if f.failed() {
			return ip, f
		}
		tail[ntail] = w
		ntail++

		if ntail < budget && k+1 < n && s.src[k] == ':' && isHex(s.src[k+1]) {
			k++
			continue
		}
		break
	}

	copy(ip[8-ntail:], tail[:ntail])
	*i = k
	return ip, failure{}
}
