// Package privacy coarsens identifying request metadata before it leaves
// the audit trail.
package privacy

import (
	"net"
	"strings"

	"github.com/mssola/useragent"
)

const unknown = "unknown"

// AnonymizeIP truncates IPv4 addresses to their /24 network and IPv6
// addresses to their /48 prefix.
func AnonymizeIP(ip string) string {
	ip = strings.TrimSpace(ip)
	if ip == "" || ip == unknown {
		return unknown
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "invalid"
	}

	if v4 := parsed.To4(); v4 != nil {
		return v4.Mask(net.CIDRMask(24, 32)).String()
	}
	return parsed.Mask(net.CIDRMask(48, 128)).String()
}

// CoarsenUserAgent keeps only the browser family and operating system,
// dropping versions and build identifiers.
func CoarsenUserAgent(ua string) string {
	if strings.TrimSpace(ua) == "" {
		return unknown
	}

	parsed := useragent.New(ua)
	if parsed.Bot() {
		return "bot"
	}

	browser, _ := parsed.Browser()
	os := parsed.OS()
	if browser == "" {
		browser = unknown
	}

	coarse := browser
	if os != "" {
		coarse += " on " + os
	}
	if parsed.Mobile() {
		coarse += " (mobile)"
	}
	return coarse
}
