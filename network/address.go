package network

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/automoto/peerfinder/shared/netconfig"
)

// NormalizeAddress turns user input into a websocket URL. Empty input gives
// fallback, a host without a port gets the default port and a missing scheme
// becomes ws://. Bare IPv6 hosts are bracketed.
func NormalizeAddress(input, fallback string) string {
	addr := strings.TrimSpace(input)
	if addr == "" {
		addr = fallback
	}

	scheme := "ws"
	if s, rest, ok := strings.Cut(addr, "://"); ok {
		scheme, addr = websocketScheme(s), rest
	}

	host, path, hasPath := strings.Cut(addr, "/")
	raw := scheme + "://" + withDefaultPort(host)
	if hasPath {
		raw += "/" + path
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.String()
}

func websocketScheme(s string) string {
	switch strings.ToLower(s) {
	case "wss", "https":
		return "wss"
	default:
		return "ws"
	}
}

func withDefaultPort(host string) string {
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	return net.JoinHostPort(host, strconv.Itoa(netconfig.DefaultPort))
}
