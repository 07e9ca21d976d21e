package cookie

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// SecurePrefix names cookies that must carry the Secure attribute.
	SecurePrefix = "__Secure-"
	// HostPrefix names cookies locked to the origin host: Secure, Path=/ and no Domain.
	HostPrefix = "__Host-"

	// MaxAgeLimit is the largest accepted Max-Age, 400 days in seconds.
	MaxAgeLimit = 34560000
	// ExpiresHorizon is how far into the future Expires may point.
	ExpiresHorizon = MaxAgeLimit * time.Second
)

// Pair is a single name/value entry from a Cookie header.
type Pair struct {
	Name  string
	Value string
}

// Cookies is an ordered set of parsed cookies. A repeated name keeps its
// first position and its last value.
type Cookies []Pair

// Get returns the value for name.
func (c Cookies) Get(name string) (string, bool) {
	for _, p := range c {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

func (c Cookies) set(name, value string) Cookies {
	for i := range c {
		if c[i].Name == name {
			c[i].Value = value
			return c
		}
	}
	return append(c, Pair{Name: name, Value: value})
}

// Parse decodes every name=value pair of a Cookie header in order.
// Segments without '=' are skipped.
func Parse(header string) Cookies {
	return parse(header, "")
}

// ParseOne returns at most the first cookie called name.
func ParseOne(header, name string) Cookies {
	if name == "" || !strings.Contains(header, name) {
		return Cookies{}
	}
	return parse(header, name)
}

func parse(header, name string) Cookies {
	out := Cookies{}

	for pair := range strings.SplitSeq(strings.TrimSpace(header), ";") {
		pair = strings.TrimSpace(pair)

		idx := strings.IndexByte(pair, '=')
		if idx < 0 {
			continue
		}

		cookieName := strings.TrimSpace(pair[:idx])
		if name != "" && cookieName != name {
			continue
		}

		out = out.set(cookieName, decodeValue(strings.TrimSpace(pair[idx+1:])))

		if name != "" {
			return out
		}
	}

	return out
}

// Serialize builds a Set-Cookie header value. Attributes are written in the
// order Max-Age, Domain, Path, Expires, HttpOnly, Secure, SameSite, Priority,
// Partitioned.
func Serialize(name, value string, opts Options) (string, error) {
	return serialize(name, value, opts, time.Now())
}

func serialize(name, value string, opts Options, now time.Time) (string, error) {
	if err := validate(name, opts, now); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(name) + len(value) + 64)
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(encodeValue(value))

	if opts.MaxAge != nil && *opts.MaxAge >= 0 {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(*opts.MaxAge))
	}
	if opts.Domain != "" && !strings.HasPrefix(name, HostPrefix) {
		b.WriteString("; Domain=")
		b.WriteString(opts.Domain)
	}
	if opts.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(opts.Path)
	}
	if !opts.Expires.IsZero() {
		b.WriteString("; Expires=")
		b.WriteString(opts.Expires.UTC().Format(http.TimeFormat))
	}
	if opts.HttpOnly {
		b.WriteString("; HttpOnly")
	}
	if opts.Secure {
		b.WriteString("; Secure")
	}
	if s := sameSiteString(opts.SameSite); s != "" {
		b.WriteString("; SameSite=")
		b.WriteString(s)
	}
	if opts.Priority != "" {
		b.WriteString("; Priority=")
		b.WriteString(string(opts.Priority))
	}
	if opts.Partitioned {
		b.WriteString("; Partitioned")
	}

	return b.String(), nil
}

func validate(name string, opts Options, now time.Time) error {
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if !validAttribute(opts.Path) {
		return fmt.Errorf("%w: path %q", ErrInvalidAttribute, opts.Path)
	}
	if !validAttribute(opts.Domain) {
		return fmt.Errorf("%w: domain %q", ErrInvalidAttribute, opts.Domain)
	}
	switch opts.Priority {
	case "", PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return fmt.Errorf("%w: priority %q", ErrInvalidAttribute, opts.Priority)
	}

	if strings.HasPrefix(name, SecurePrefix) && !opts.Secure {
		return ErrSecurePrefixRequiresSecure
	}

	if strings.HasPrefix(name, HostPrefix) {
		if !opts.Secure {
			return ErrHostPrefixRequiresSecure
		}
		if opts.Path != "/" {
			return ErrHostPrefixRequiresRootPath
		}
		if opts.Domain != "" {
			return ErrHostPrefixForbidsDomain
		}
	}

	if opts.MaxAge != nil && *opts.MaxAge > MaxAgeLimit {
		return fmt.Errorf("%w: %d", ErrMaxAgeTooLarge, *opts.MaxAge)
	}

	if !opts.Expires.IsZero() && opts.Expires.Sub(now) > ExpiresHorizon {
		return fmt.Errorf("%w: %s", ErrExpiresTooFar, opts.Expires.UTC().Format(time.RFC3339))
	}

	if opts.Partitioned && !opts.Secure {
		return ErrPartitionedRequiresSecure
	}

	return nil
}

func sameSiteString(s http.SameSite) string {
	switch s {
	case http.SameSiteStrictMode:
		return "Strict"
	case http.SameSiteLaxMode:
		return "Lax"
	case http.SameSiteNoneMode:
		return "None"
	}
	return ""
}

// validName reports whether name is an RFC 7230 token.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c <= 0x20 || c >= 0x7f || strings.IndexByte(`()<>@,;:\"/[]?={}`, c) >= 0 {
			return false
		}
	}
	return true
}

func validAttribute(v string) bool {
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c < 0x20 || c == 0x7f || c == ';' {
			return false
		}
	}
	return true
}

// encodeValue percent-encodes everything except the characters
// A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func encodeValue(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	const hexUpper = "0123456789ABCDEF"
	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', hexUpper[c>>4], hexUpper[c&0x0f])
	}
	return string(buf)
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// decodeValue reverses encodeValue. Values with broken escapes or invalid
// UTF-8 after decoding are returned as received.
func decodeValue(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	decoded, err := url.PathUnescape(s)
	if err != nil || !utf8.ValidString(decoded) {
		return s
	}
	return decoded
}
