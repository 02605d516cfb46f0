package utils

import (
	"net"
	"net/url"
	"strings"
)

// IsAllowedOrigin reports whether an Origin header value should be trusted.
// The calendar is a LAN tool: localhost, private and link-local IPs, .local
// mDNS names, and bare single-label hostnames are allowed. Anything that
// resolves to the public internet is not.
func IsAllowedOrigin(origin string) bool {
	parsed, err := url.Parse(origin)
	if err != nil || parsed.Host == "" {
		return false
	}
	host := parsed.Hostname()

	if host == "localhost" || strings.HasSuffix(host, ".local") {
		return true
	}
	// Single-label names only exist on the LAN.
	if !strings.Contains(host, ".") {
		return true
	}

	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast()
	}
	return false
}
