package uri

import (
	"net/netip"
	"strconv"
)

// HostKind enumerates the [Host] variants.
type HostKind uint8

const (
	HostRegName HostKind = iota + 1
	HostIPv4
	HostIPv6
)

func (k HostKind) String() string {
	switch k {
	case HostRegName:
		return "reg-name"
	case HostIPv4:
		return "IPv4"
	case HostIPv6:
		return "IPv6"
	default:
		return "HostKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Host is the host of an authority.
// Implementations are [RegName], [IPv4] and [IPv6].
type Host interface {
	Kind() HostKind
	host()
}

// RegName is a registered name host, the span references the parsed input.
type RegName Span

// Kind implements [Host].
func (RegName) Kind() HostKind { return HostRegName }

func (RegName) host() {}

// IPv4 is an IPv4 address, octets are packed MSB first.
type IPv4 uint32

// Kind implements [Host].
func (IPv4) Kind() HostKind { return HostIPv4 }

func (IPv4) host() {}

// Octets returns the four octets of the address, leftmost first.
func (ip IPv4) Octets() [4]byte {
	return [4]byte{byte(ip >> 24), byte(ip >> 16), byte(ip >> 8), byte(ip)}
}

// Addr converts the address to [netip.Addr].
func (ip IPv4) Addr() netip.Addr { return netip.AddrFrom4(ip.Octets()) }

// String returns the dotted decimal form.
func (ip IPv4) String() string { return ip.Addr().String() }

// IPv6 is an IPv6 address as eight 16-bit groups, index 0 is the leftmost group.
type IPv6 [8]uint16

// Kind implements [Host].
func (IPv6) Kind() HostKind { return HostIPv6 }

func (IPv6) host() {}

// Addr converts the address to [netip.Addr].
func (ip IPv6) Addr() netip.Addr {
	var b [16]byte
	for i, w := range ip {
		b[2*i] = byte(w >> 8)
		b[2*i+1] = byte(w)
	}
	return netip.AddrFrom16(b)
}

// String returns the canonical text form (RFC 5952), without brackets.
func (ip IPv6) String() string { return ip.Addr().String() }
