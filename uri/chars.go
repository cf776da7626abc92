package uri

const (
	clsAlpha uint8 = 1 << iota
	clsDigit
	clsHex
	clsScheme
	clsUnreserved
	clsSubDelim
	clsPChar
)

var charClass = func() (tbl [256]uint8) {
	for c := 'a'; c <= 'z'; c++ {
		tbl[c] |= clsAlpha | clsScheme | clsUnreserved | clsPChar
		tbl[c-'a'+'A'] |= clsAlpha | clsScheme | clsUnreserved | clsPChar
	}
	for c := '0'; c <= '9'; c++ {
		tbl[c] |= clsDigit | clsHex | clsScheme | clsUnreserved | clsPChar
	}
	for c := 'a'; c <= 'f'; c++ {
		tbl[c] |= clsHex
		tbl[c-'a'+'A'] |= clsHex
	}
	for _, c := range "+-." {
		tbl[c] |= clsScheme
	}
	for _, c := range "-._~" {
		tbl[c] |= clsUnreserved | clsPChar
	}
	for _, c := range "!$&'()*+,;=" {
		tbl[c] |= clsSubDelim | clsPChar
	}
	tbl[':'] |= clsPChar
	tbl['@'] |= clsPChar
	return tbl
}()

func isAlpha(c byte) bool { return charClass[c]&clsAlpha != 0 }

func isDigit(c byte) bool { return charClass[c]&clsDigit != 0 }

func isHex(c byte) bool { return charClass[c]&clsHex != 0 }

func isSchemeChar(c byte) bool { return charClass[c]&clsScheme != 0 }

// isNameChar reports whether c may appear in a user name, password or registered name.
func isNameChar(c byte) bool { return charClass[c]&(clsUnreserved|clsSubDelim) != 0 }

func isPChar(c byte) bool { return charClass[c]&clsPChar != 0 }

func isQueryChar(c byte) bool { return isPChar(c) || c == '/' || c == '?' }

func isFragmentChar(c byte) bool { return isPChar(c) || c == '/' }

func hexVal(c byte) uint16 {
	switch {
	case c >= 'a':
		return uint16(c-'a') + 10
	case c >= 'A':
		return uint16(c-'A') + 10
	default:
		return uint16(c - '0')
	}
}
