package session

import (
	"strings"

	"github.com/dmitrymomot/snippets/pkg/cookie"
)

const DefaultCookiePrefix = "snippets"

// Names are the three cookie names used by a Manager.
type Names struct {
	Token         string
	Data          string
	DoNotRemember string
}

// NewNames builds cookie names as [__Secure-]prefix.name. The security
// prefix is decided here and nowhere else.
func NewNames(prefix string, secure bool) Names {
	build := func(name string) string {
		var b strings.Builder
		if secure {
			b.WriteString(cookie.SecurePrefix)
		}
		if prefix != "" {
			b.WriteString(prefix)
			b.WriteByte('.')
		}
		b.WriteString(name)
		return b.String()
	}

	return Names{
		Token:         build("session_token"),
		Data:          build("session_data"),
		DoNotRemember: build("do_not_remember"),
	}
}

// secureName reports whether the cookie must carry the Secure attribute.
// It reads the flag back from the name so the two can never disagree.
func secureName(name string) bool {
	return strings.HasPrefix(name, cookie.SecurePrefix)
}
