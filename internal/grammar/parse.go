package grammar

import (
	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/rfc3986/internal/errorutil"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

func parse(op abnf.Operator, s []byte) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op(s, 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}

// ParseURIReference parses s with the "URI-reference" rule and returns the root node.
func ParseURIReference[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(uriReference, []byte(s)))
}
