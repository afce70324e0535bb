// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package bitstream

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kaichun2/Huffman/compress/huffman/internal/tree"
)

func TestWriterPacksMSBFirst(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteCode(tree.Code{1, 0, 1}))
	require.NoError(t, w.WriteCode(tree.Code{1, 1, 1, 1, 0, 0}))
	require.Equal(t, uint64(9), w.Bits())
	require.NoError(t, w.Close())
	require.Equal(t, []byte{0b10111110, 0b00000000}, buf.Bytes())
}

func TestWriterCloseEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Close())
	require.Zero(t, buf.Len())
}

func TestReaderRoundTrip(t *testing.T) {
	bits := []uint8{1, 0, 0, 1, 1, 1, 0, 1, 0, 1, 1}
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, b := range bits {
		require.NoError(t, w.WriteBit(b))
	}
	require.NoError(t, w.Close())
	require.Equal(t, 2, buf.Len())

	r := NewReader(bytes.NewReader(buf.Bytes()))
	for i, want := range bits {
		got, ok, err := r.ReadBit()
		require.NoError(t, err)
		require.True(t, ok, "bit %d", i)
		require.Equal(t, want, got, "bit %d", i)
	}
	// padding
	for i := len(bits); i < 16; i++ {
		got, ok, err := r.ReadBit()
		require.NoError(t, err)
		require.True(t, ok)
		require.Zero(t, got)
	}
	require.Equal(t, uint64(16), r.Bits())

	for i := 0; i < 2; i++ {
		_, ok, err := r.ReadBit()
		require.NoError(t, err)
		require.False(t, ok)
	}
}

type failReader struct {
	err error
}

func (f *failReader) Read(p []byte) (n int, err error) {
	return 0, f.err
}

func TestReaderError(t *testing.T) {
	boom := errors.New("boom")
	r := NewReader(&failReader{err: boom})
	_, ok, err := r.ReadBit()
	require.False(t, ok)
	require.ErrorIs(t, err, boom)
}

func TestRewind(t *testing.T) {
	src := bytes.NewReader([]byte("abc"))
	_, err := io.ReadAll(src)
	require.NoError(t, err)
	require.NoError(t, Rewind(src))
	data, err := io.ReadAll(src)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), data)
}
