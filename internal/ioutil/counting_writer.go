// Package ioutil contains writer helpers for RenderTo style methods.
package ioutil

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter wraps an [io.Writer], counts written bytes and keeps the first error.
// After an error all further writes are skipped, so a sequence of writes
// can be checked once with [CountingWriter.Result].
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

func (cw *CountingWriter) track(n int, err error) (int, error) {
	cw.num += n
	if err != nil {
		cw.err = err
		return n, errtrace.Wrap(err)
	}
	return n, nil
}

// Write implements [io.Writer].
func (cw *CountingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	return errtrace.Wrap2(cw.track(cw.w.Write(p)))
}

// WriteString implements [io.StringWriter].
func (cw *CountingWriter) WriteString(s string) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	return errtrace.Wrap2(cw.track(io.WriteString(cw.w, s)))
}

// Fprintf writes formatted output.
func (cw *CountingWriter) Fprintf(format string, args ...any) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	return errtrace.Wrap2(cw.track(fmt.Fprintf(cw.w, format, args...)))
}

// Call runs a RenderTo style function on the underlying writer.
func (cw *CountingWriter) Call(fn func(io.Writer) (int, error)) *CountingWriter {
	if cw.err == nil {
		cw.track(fn(cw.w)) //nolint:errcheck
	}
	return cw
}

// Result returns the number of written bytes and the first error.
func (cw *CountingWriter) Result() (num int, err error) {
	return cw.num, errtrace.Wrap(cw.err)
}

var cntWrtPool = &sync.Pool{
	New: func() any { return &CountingWriter{} },
}

// GetCountingWriter takes a writer from the pool, it must be returned with [FreeCountingWriter].
func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

// FreeCountingWriter resets cw and puts it back to the pool.
func FreeCountingWriter(cw *CountingWriter) {
	*cw = CountingWriter{}
	cntWrtPool.Put(cw)
}
