package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Headers lists the proxy headers consulted by GetIP, highest priority first.
// X-Forwarded-For is read left to right and the first valid entry wins.
var Headers = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Client-IP",
	"X-Real-IP",
}

// GetIP returns the client address of r, normalised, or "" when neither the
// proxy headers nor RemoteAddr hold a valid IP.
func GetIP(r *http.Request) string {
	for _, name := range Headers {
		value := r.Header.Get(name)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	addr, err := netip.ParseAddr(s)
	if err != nil || addr.Zone() != "" {
		return ""
	}
	return addr.Unmap().String()
}
