package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/snippets/pkg/canonical"
	"github.com/dmitrymomot/snippets/pkg/codec"
)

// MaxPayloadSize is the largest encoded cached-data cookie value accepted.
const MaxPayloadSize = 4093

type cachedPayload struct {
	Data      json.RawMessage `json:"data"`
	ExpiresAt int64           `json:"expiresAt"`
	Signature string          `json:"signature"`
}

// encodeCached signs data together with its expiry and returns the cookie value.
func (m *Manager) encodeCached(data Data, expiresAt time.Time) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", errors.Join(ErrEncodePayload, err)
	}

	ms := expiresAt.UnixMilli()
	msg, err := signingInput(raw, ms)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(cachedPayload{
		Data:      raw,
		ExpiresAt: ms,
		Signature: m.cookies.Sign(msg),
	})
	if err != nil {
		return "", errors.Join(ErrEncodePayload, err)
	}

	value := codec.EncodeBase64URL(payload)
	if len(value) > MaxPayloadSize {
		return "", fmt.Errorf("%w (%d)", ErrPayloadTooLarge, len(value))
	}
	return value, nil
}

// decodeCached verifies a cookie value. ok is false for anything malformed
// or unsigned; callers treat that as a cache miss.
func (m *Manager) decodeCached(value string) (data *Data, expiresAt time.Time, ok bool) {
	if value == "" || len(value) > MaxPayloadSize {
		return nil, time.Time{}, false
	}

	payloadJSON, err := codec.DecodeBase64URL(value)
	if err != nil {
		return nil, time.Time{}, false
	}

	var p cachedPayload
	if err := json.Unmarshal(payloadJSON, &p); err != nil || len(p.Data) == 0 {
		return nil, time.Time{}, false
	}

	msg, err := signingInput(p.Data, p.ExpiresAt)
	if err != nil || !m.cookies.Verify(msg, p.Signature) {
		return nil, time.Time{}, false
	}

	var d Data
	if err := json.Unmarshal(p.Data, &d); err != nil {
		return nil, time.Time{}, false
	}

	return &d, time.UnixMilli(p.ExpiresAt), true
}

// signingInput is the canonical form of {user, session, expiresAt}.
func signingInput(rawData json.RawMessage, expiresAt int64) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(rawData))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return "", errors.Join(ErrEncodePayload, err)
	}
	fields["expiresAt"] = expiresAt

	msg, err := canonical.String(fields)
	if err != nil {
		return "", errors.Join(ErrEncodePayload, err)
	}
	return msg, nil
}
