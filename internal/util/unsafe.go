package util

import (
	"reflect"
	"unsafe"
)

// StringBytes returns the bytes of s without copying.
// The result must never be modified and must not outlive s.
func StringBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// ByteView returns s as a byte slice, without copying when possible.
// Byte slices of any named type are viewed in place, strings are aliased with unsafe.
// The result must be treated as read-only.
func ByteView[T ~string | ~[]byte](s T) []byte {
	switch v := any(s).(type) {
	case []byte:
		return v
	case string:
		return StringBytes(v)
	}
	if reflect.TypeFor[T]().Kind() == reflect.Slice {
		return []byte(s)
	}
	// Named string types convert to string for free.
	return StringBytes(string(s))
}
