// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"
	"text/tabwriter"

	"github.com/icza/huffman/hufio"
	"github.com/klauspost/compress/zstd"
)

func hufioSize(t testing.TB, data []byte) int {
	buf := bytes.NewBuffer(nil)
	w := hufio.NewWriter(buf)
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Len()
}

func zstdSize(t testing.TB, data []byte, level zstd.EncoderLevel) int {
	buf := bytes.NewBuffer(nil)
	w, err := zstd.NewWriter(buf, zstd.WithEncoderLevel(level))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Len()
}

func TestCompressionRatio(t *testing.T) {
	cw := tabwriter.NewWriter(os.Stderr, 0, 15, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintln(cw, "size\thuffman\thufio\tzstd_fastest\tzstd_default\t")
	data := opticks(t)

	for _, size := range []int{1 << 10, 16 << 10, 64 << 10, len(data)} {
		xdata := data[:size]
		ratio := func(n int) string {
			return fmt.Sprintf("%.2f", float64(n)/float64(len(xdata)))
		}
		records := []string{strconv.Itoa(size)}
		records = append(records, ratio(len(compress(t, xdata))))
		records = append(records, ratio(hufioSize(t, xdata)))
		records = append(records, ratio(zstdSize(t, xdata, zstd.SpeedFastest)))
		records = append(records, ratio(zstdSize(t, xdata, zstd.SpeedDefault)))
		fmt.Fprintln(cw, strings.Join(records, "\t")+"\t")

		// order-0 entropy coding must beat storing English text raw
		if n := len(compress(t, xdata)); size >= 16<<10 && n >= size {
			t.Fatalf("no gain on %d bytes of text: %d", size, n)
		}
	}
	cw.Flush()
}

func BenchmarkCompress(b *testing.B) {
	data := opticks(b)
	for i := 4; i <= 64; i *= 2 {
		input := data[:i*1024]
		subfix := "@size=" + strconv.Itoa(i) + "KB"
		b.Run("huffman"+subfix, func(b *testing.B) {
			src := bytes.NewReader(input)
			for i := 0; i < b.N; i++ {
				b.SetBytes(int64(len(input)))
				if err := Compress(src, io.Discard); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run("hufio"+subfix, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.SetBytes(int64(len(input)))
				w := hufio.NewWriter(io.Discard)
				w.Write(input)
				w.Close()
			}
		})
	}
}

func BenchmarkUncompress(b *testing.B) {
	data := opticks(b)
	for i := 4; i <= 64; i *= 2 {
		input := data[:i*1024]
		compressed := compress(b, input)
		b.Run("huffman@size="+strconv.Itoa(i)+"KB", func(b *testing.B) {
			src := bytes.NewReader(compressed)
			for i := 0; i < b.N; i++ {
				b.SetBytes(int64(len(input)))
				src.Reset(compressed)
				if err := Uncompress(src, io.Discard); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
