package digest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexKnownDigests(t *testing.T) {
	cases := []struct {
		algorithm string
		input     string
		want      string
	}{
		{"sha1", "hello world", "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed"},
		{"md5", "hello world", "5eb63bbbe01eeed093cb22bb8f5acdc3"},
		{"sha256", "hello world", "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
		{"sha1", "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
	}
	for _, tc := range cases {
		got, err := Hex(tc.algorithm, strings.NewReader(tc.input))
		require.NoError(t, err)
		assert.Equalf(t, tc.want, got, "%s(%q)", tc.algorithm, tc.input)
	}
}

func TestConvenienceWrappers(t *testing.T) {
	got, err := SHA1Hex(strings.NewReader("hello world"))
	require.NoError(t, err)
	assert.Equal(t, "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed", got)

	got, err = MD5Hex(strings.NewReader("hello world"))
	require.NoError(t, err)
	assert.Equal(t, "5eb63bbbe01eeed093cb22bb8f5acdc3", got)
}

func TestUnknownAlgorithm(t *testing.T) {
	_, err := New("crc32")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crc32")

	_, err = Hex("crc32", strings.NewReader("x"))
	require.Error(t, err)
}

func TestSipHash64Vectors(t *testing.T) {
	k0 := uint64(0x0706050403020100)
	k1 := uint64(0x0f0e0d0c0b0a0908)

	assert.Equal(t, uint64(0x726fdb47dd0e0e31), SipHash64(k0, k1, nil))
	assert.Equal(t, uint64(0x93f5f5799a932462),
		SipHash64(k0, k1, []byte{0, 1, 2, 3, 4, 5, 6, 7}))
	assert.Equal(t, uint64(0xed5159c956cd5602), SipHash64(k0, k1, []byte("hello world")))

	// Keyed: a different key gives a different hash.
	assert.NotEqual(t, SipHash64(k0, k1, []byte("x")), SipHash64(k0+1, k1, []byte("x")))
}
