package engine

import (
	"context"
	"net"
	"net/netip"
	"strings"
)

// Resolver turns a user-entered address into a single endpoint.
type Resolver interface {
	Resolve(ctx context.Context, address string) (net.IP, error)
}

// IPLookup is the subset of *net.Resolver used by AddressResolver.
type IPLookup interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// AddressResolver resolves IP literals locally and hostnames through an
// IPLookup. The first address returned by the lookup wins.
type AddressResolver struct {
	lookup IPLookup
}

// NewAddressResolver creates an AddressResolver. A nil lookup uses
// net.DefaultResolver.
func NewAddressResolver(lookup IPLookup) *AddressResolver {
	if lookup == nil {
		lookup = net.DefaultResolver
	}
	return &AddressResolver{lookup: lookup}
}

// Resolve parses address and returns one endpoint. Errors are *ProbeError
// classified as InvalidAddress or ResolutionFailed.
func (r *AddressResolver) Resolve(ctx context.Context, address string) (net.IP, error) {
	host := strings.TrimSpace(address)
	if host == "" {
		return nil, &ProbeError{Reason: InvalidAddress, Address: address, Err: ErrEmptyAddress}
	}

	if ip, ok := parseIPLiteral(host); ok {
		return ip, nil
	}

	if !validHostname(host) {
		return nil, &ProbeError{Reason: InvalidAddress, Address: address, Err: ErrInvalidHostname}
	}

	addrs, err := r.lookup.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, &ProbeError{Reason: ResolutionFailed, Address: address, Err: err}
	}
	if len(addrs) == 0 {
		return nil, &ProbeError{Reason: ResolutionFailed, Address: address, Err: ErrNoAddresses}
	}
	return addrs[0].IP, nil
}

// parseIPLiteral accepts IPv4, IPv6, bracketed IPv6 and zoned IPv6 literals.
func parseIPLiteral(host string) (net.IP, bool) {
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return nil, false
	}
	// Zones are dropped: the probe targets the address itself.
	return net.IP(addr.WithZone("").AsSlice()), true
}

// validHostname checks RFC 1123 label syntax, tolerating underscores which
// appear in real-world DNS names.
func validHostname(host string) bool {
	host = strings.TrimSuffix(host, ".")
	if host == "" || len(host) > 253 {
		return false
	}
	for _, label := range strings.Split(host, ".") {
		if len(label) == 0 || len(label) > 63 {
			return false
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for i := 0; i < len(label); i++ {
			c := label[i]
			switch {
			case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			case c == '-', c == '_':
			default:
				return false
			}
		}
	}
	return true
}
