package ymusic

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSignKey is a fixed 64-byte HMAC key for reproducible signatures.
var testSignKey = bytes.Repeat([]byte("0123456789abcdef"), 4) //nolint:gochecknoglobals // Test fixture.

func newTestSigner(t *testing.T) *Signer {
	t.Helper()

	signer, err := NewSigner(testSignKey)
	require.NoError(t, err)

	return signer
}

func TestSigner_GoldenVectors(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t)

	tests := []struct {
		name string
		path string
		salt string
		want string
	}{
		{
			name: "short path",
			path: "/abc",
			salt: "saltX",
			want: "8938e3fd187c41decdc5ca9ab8fdc9b19310f8d4",
		},
		{
			name: "path differs in one character",
			path: "/abd",
			salt: "saltX",
			want: "08d1a07bbfed23fbaa64db4d9b59e07411bd708d",
		},
		{
			name: "salt differs",
			path: "/abc",
			salt: "saltY",
			want: "02ed833dc92aa709fabd1a71246e13dccfc533f6",
		},
		{
			name: "storage path",
			path: "/get-mp3/11/22/track.mp3",
			salt: "b2f2c1",
			want: "c047e664369748430281c220fe2e435102cc1118",
		},
		{
			name: "non-ascii path",
			path: "/кириллица",
			salt: "s",
			want: "f3f05e927c208dc3b3d79b7a737070286c29b02d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, signer.Sign(tt.path, tt.salt))
		})
	}
}

func TestSigner_Format(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner(nil)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{40}$`), signer.Sign("/abc", "saltX"))
}

func TestSigner_Deterministic(t *testing.T) {
	t.Parallel()

	signer, err := NewSigner(nil)
	require.NoError(t, err)

	assert.Equal(t, signer.Sign("/abc", "saltX"), signer.Sign("/abc", "saltX"))
	assert.NotEqual(t, signer.Sign("/abc", "saltX"), signer.Sign("/abd", "saltX"))
	assert.NotEqual(t, signer.Sign("/abc", "saltX"), signer.Sign("/abc", "saltY"))
}

func TestSigner_GeneratedKeysDiffer(t *testing.T) {
	t.Parallel()

	first, err := NewSigner(nil)
	require.NoError(t, err)

	second, err := NewSigner(nil)
	require.NoError(t, err)

	assert.Len(t, first.key, defaultHMACKeySize)
	assert.NotEqual(t, first.Sign("/abc", "saltX"), second.Sign("/abc", "saltX"))
}

func TestSigner_CopiesKey(t *testing.T) {
	t.Parallel()

	key := bytes.Clone(testSignKey)

	signer, err := NewSigner(key)
	require.NoError(t, err)

	key[0] ^= 0xff

	assert.Equal(t, "8938e3fd187c41decdc5ca9ab8fdc9b19310f8d4", signer.Sign("/abc", "saltX"))
}
