package grammar

import (
	"fmt"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"
)

const ErrNodeNotFound Error = "node not found"

// MustGetNode returns a pointer to the ABNF node with the given key.
func MustGetNode(n *abnf.Node, k string) *abnf.Node {
	sn, ok := n.GetNode(k)
	if !ok {
		panic(fmt.Errorf("get node %q from node %q: %w", k, n.Key, ErrNodeNotFound))
	}
	return sn
}

// Component names used as keys of [Components].
const (
	Scheme   = "scheme"
	Userinfo = "userinfo"
	Host     = "host"
	Port     = "port"
	Path     = "path"
	Query    = "query"
	Fragment = "fragment"
)

var pathKeys = []string{"path-abempty", "path-absolute", "path-noscheme", "path-rootless"}

// Components maps component names to their raw text.
// Absent components have no key, the empty path is treated as absent.
// IP literal hosts keep their brackets.
type Components map[string]string

// Get returns the component text and whether it is present.
func (c Components) Get(name string) (string, bool) {
	v, ok := c[name]
	return v, ok
}

// SplitURIReference parses s with the "URI-reference" rule and returns its components.
func SplitURIReference[T ~string | ~[]byte](s T) (Components, error) {
	n, err := ParseURIReference(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	comps := make(Components)
	for _, k := range []string{Scheme, Userinfo, Host, Port, Query, Fragment} {
		if sn, ok := n.GetNode(k); ok {
			comps[k] = sn.String()
		}
	}
	for _, k := range pathKeys {
		if sn, ok := n.GetNode(k); ok && sn.Len() > 0 {
			comps[Path] = sn.String()
			break
		}
	}
	return comps, nil
}
