package signer_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/snippets/pkg/signer"
)

const testSecret = "a-test-secret-value"

func TestSign_MatchesHMACSHA256(t *testing.T) {
	t.Parallel()

	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte("hello"))
	want := hex.EncodeToString(mac.Sum(nil))

	got := signer.Sign("hello", testSecret)
	assert.Equal(t, want, got)
	assert.Len(t, got, 64)
	assert.True(t, signer.Verify("hello", testSecret, got))
}

func TestVerify_TamperedMessage(t *testing.T) {
	t.Parallel()

	message := "user=42;role=member"
	sig := signer.Sign(message, testSecret)

	for i := range len(message) {
		b := []byte(message)
		b[i] ^= 0x01
		assert.False(t, signer.Verify(string(b), testSecret, sig), "flipped byte %d", i)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	message := "payload"
	sig := signer.Sign(message, testSecret)

	for i := range len(sig) {
		b := []byte(sig)
		if b[i] == '0' {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
		assert.False(t, signer.Verify(message, testSecret, string(b)), "flipped hex char %d", i)
	}
}

func TestVerify_MalformedSignature(t *testing.T) {
	t.Parallel()

	assert.False(t, signer.Verify("m", testSecret, ""))
	assert.False(t, signer.Verify("m", testSecret, "abc"))
	assert.False(t, signer.Verify("m", testSecret, "zz"))
	assert.False(t, signer.Verify("m", "other-secret-value", signer.Sign("m", testSecret)))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, signer.Equal(nil, nil))
	assert.True(t, signer.Equal([]byte("abc"), []byte("abc")))
	assert.False(t, signer.Equal([]byte("abc"), []byte("abd")))
	assert.False(t, signer.Equal([]byte("abc"), []byte("abcd")))
	assert.False(t, signer.Equal([]byte{0}, []byte{}))
	assert.True(t, signer.EqualString("same", "same"))
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := signer.New("short")
	require.ErrorIs(t, err, signer.ErrSecretTooShort)

	s, err := signer.New(testSecret)
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestSigner_SignedValue(t *testing.T) {
	t.Parallel()

	s, err := signer.New(testSecret)
	require.NoError(t, err)

	signed := s.SignValue("token.with.dots")
	value, ok := s.UnsignValue(signed)
	require.True(t, ok)
	assert.Equal(t, "token.with.dots", value)

	_, ok = s.UnsignValue("no-separator")
	assert.False(t, ok)

	_, ok = s.UnsignValue("token.deadbeef")
	assert.False(t, ok)

	replacement := "0"
	if signed[len(signed)-1] == '0' {
		replacement = "1"
	}
	_, ok = s.UnsignValue(signed[:len(signed)-1] + replacement)
	assert.False(t, ok)
}
