package logger

import "log/slog"

// optional returns an empty Attr for a nil value so slog drops the key.
func optional(key string, v any) slog.Attr {
	if v == nil {
		return slog.Attr{}
	}
	return slog.Any(key, v)
}

// Error records err under "error". A nil error produces no attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records a user identifier under "user_id".
func UserID(id any) slog.Attr { return optional("user_id", id) }

// SessionID records the session row identifier under "session_id".
// Never pass the session token here.
func SessionID(id any) slog.Attr { return optional("session_id", id) }

// RequestID records the request identifier under "request_id".
func RequestID(id any) slog.Attr { return optional("request_id", id) }

// Status records a machine-readable outcome code such as "AUTH_LOGIN_ERROR".
func Status(code string) slog.Attr {
	return slog.String("status", code)
}

// Component names the subsystem that emitted the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
