package random_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/snippets/pkg/random"
)

func TestNew_EmptyAlphabet(t *testing.T) {
	t.Parallel()

	_, err := random.New()
	require.ErrorIs(t, err, random.ErrEmptyAlphabet)

	_, err = random.New(random.Alphabet(99))
	require.ErrorIs(t, err, random.ErrUnknownAlphabet)
}

func TestGenerator_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		alphabets []random.Alphabet
		allowed   string
	}{
		{"lower", []random.Alphabet{random.Lower}, "abcdefghijklmnopqrstuvwxyz"},
		{"upper", []random.Alphabet{random.Upper}, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{"digits", []random.Alphabet{random.Digit}, "0123456789"},
		{"dash underscore", []random.Alphabet{random.DashUnderscore}, "-_"},
		{
			"mixed",
			[]random.Alphabet{random.Lower, random.Upper, random.Digit},
			"abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen, err := random.New(tt.alphabets...)
			require.NoError(t, err)

			s, err := gen.String(256)
			require.NoError(t, err)
			assert.Len(t, s, 256)
			for _, r := range s {
				assert.True(t, strings.ContainsRune(tt.allowed, r), "unexpected %q", r)
			}
		})
	}
}

func TestGenerator_Override(t *testing.T) {
	t.Parallel()

	gen := random.MustNew(random.Lower)

	s, err := gen.String(64, random.Digit)
	require.NoError(t, err)
	for _, r := range s {
		assert.True(t, r >= '0' && r <= '9', "unexpected %q", r)
	}

	_, err = gen.String(8, random.Alphabet(-1))
	require.ErrorIs(t, err, random.ErrUnknownAlphabet)
}

func TestGenerator_InvalidSize(t *testing.T) {
	t.Parallel()

	gen := random.MustNew(random.Lower)
	for _, size := range []int{0, -1} {
		_, err := gen.String(size)
		require.ErrorIs(t, err, random.ErrInvalidSize)
	}
}

func TestGenerator_Unique(t *testing.T) {
	t.Parallel()

	gen := random.MustNew(random.Lower, random.Upper, random.Digit)
	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		s, err := gen.String(32)
		require.NoError(t, err)
		_, dup := seen[s]
		require.False(t, dup)
		seen[s] = struct{}{}
	}
}

func TestGenerator_CoversCharset(t *testing.T) {
	t.Parallel()

	gen := random.MustNew(random.Digit, random.DashUnderscore)
	s, err := gen.String(2000)
	require.NoError(t, err)
	for _, c := range "0123456789-_" {
		assert.Contains(t, s, string(c))
	}
}

func TestAlphabet_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a-z", random.Lower.String())
	assert.Equal(t, "A-Z", random.Upper.String())
	assert.Equal(t, "0-9", random.Digit.String())
	assert.Equal(t, "-_", random.DashUnderscore.String())
}
