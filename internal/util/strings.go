// Package util contains small helpers shared across packages.
package util

import (
	"strings"
	"sync"
)

// EqFold reports whether s1 and s2 are equal under ASCII case folding.
// Unlike [strings.EqualFold] it does not apply Unicode folding, which matches RFC 3986
// case-insensitive comparison of schemes and registered names.
func EqFold[T1, T2 ~string | ~[]byte](s1 T1, s2 T2) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i := range len(s1) {
		if lowerASCII(s1[i]) != lowerASCII(s2[i]) {
			return false
		}
	}
	return true
}

// lowerASCII maps an upper case ASCII letter to lower case, other bytes are returned as is.
func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(256)
		return sb
	},
}

// GetStringBuilder takes a builder from the pool.
// It must be returned with [FreeStringBuilder].
func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

// FreeStringBuilder resets sb and puts it back to the pool.
func FreeStringBuilder(sb *strings.Builder) {
	if sb.Cap() > 64*1024 {
		return
	}
	sb.Reset()
	strBldrPool.Put(sb)
}
