package network

import (
	"net"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty uses fallback", "", "ws://localhost:7373"},
		{"bare host gets port", "example.com", "ws://example.com:7373"},
		{"host and port", "10.0.0.2:9000", "ws://10.0.0.2:9000"},
		{"scheme kept", "wss://play.example.com:443", "wss://play.example.com:443"},
		{"path kept", "ws://example.com/session", "ws://example.com:7373/session"},
		{"whitespace trimmed", "  localhost:8080 ", "ws://localhost:8080"},
		{"bare ipv6 bracketed", "::1", "ws://[::1]:7373"},
		{"bracketed ipv6 gets port", "[::1]", "ws://[::1]:7373"},
		{"ipv6 with port", "[::1]:9000", "ws://[::1]:9000"},
		{"ipv6 with scheme and path", "wss://2001:db8::1/lobby", "wss://[2001:db8::1]:7373/lobby"},
		{"http maps to ws", "http://example.com", "ws://example.com:7373"},
		{"https maps to wss", "https://example.com:8443", "wss://example.com:8443"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAddress(tt.input, "ws://localhost:7373")
			assert.Equal(t, tt.want, got)

			u, err := url.Parse(got)
			require.NoError(t, err)
			_, port, err := net.SplitHostPort(u.Host)
			require.NoError(t, err)
			assert.NotEmpty(t, port)
		})
	}
}
