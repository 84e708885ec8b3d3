package gcrypto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Hash
		out  string
	}{
		{
			"converts hex values",
			[]byte{0xde, 0xad, 0xbe, 0xef},
			"\"deadbeef\"",
		},
		{
			"handles empty hashes",
			[]byte{},
			"null",
		},
		{
			"handles nil hashes",
			nil,
			"null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := json.Marshal(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.out, string(j))
			var h Hash
			err = json.Unmarshal(j, &h)
			require.NoError(t, err)
			require.True(t, tt.in.Equal(h))
		})
	}
}

func TestKeccak256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   [][]byte
		out  string
	}{
		{
			"empty input",
			nil,
			"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		},
		{
			"single chunk",
			[][]byte{[]byte("eth")},
			"4f5b812789fc606be1b3b16908db13fc7a9adf7ca72641f84d75b47069d3d7f0",
		},
		{
			"chunks digest identically to their concatenation",
			[][]byte{[]byte("et"), []byte("h")},
			"4f5b812789fc606be1b3b16908db13fc7a9adf7ca72641f84d75b47069d3d7f0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, Keccak256(tt.in...).String())
		})
	}
}
