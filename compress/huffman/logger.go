// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the package logger. It is configured at init from
// HUFFMAN_LOG_LEVEL, or LOG_LEVEL when that is unset, and is disabled when
// neither names a known level. WithLogger overrides it for a single call.
var Logger zerolog.Logger

func init() {
	setupLogger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

func setupLogger() {
	logLevel := os.Getenv("HUFFMAN_LOG_LEVEL")
	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	level := parseLevel(logLevel)

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	if level <= zerolog.DebugLevel {
		output.FormatLevel = func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
		}
	}

	Logger = zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("component", "huffman").
		Logger()
}

type compressStats struct {
	inputSize   int64
	headerSize  int
	payloadBits uint64
	symbols     int
	depth       int
}

func (s compressStats) outputSize() int64 {
	return int64(s.headerSize) + int64((s.payloadBits+7)/8)
}

func logCompress(l zerolog.Logger, s compressStats) {
	ev := l.Debug()
	if !ev.Enabled() {
		return
	}
	ratio := 0.0
	if s.inputSize > 0 {
		ratio = float64(s.outputSize()) / float64(s.inputSize)
	}
	ev.Str("event", "compress").
		Int64("input_size", s.inputSize).
		Int("header_size", s.headerSize).
		Uint64("payload_bits", s.payloadBits).
		Int64("output_size", s.outputSize()).
		Int("symbols", s.symbols).
		Int("tree_depth", s.depth).
		Float64("compression_ratio", ratio).
		Msg("Huffman compress")
}

func logUncompress(l zerolog.Logger, size uint64, symbols int, output int64, strict bool) {
	l.Debug().
		Str("event", "uncompress").
		Uint64("expected_size", size).
		Int("symbols", symbols).
		Int64("output_size", output).
		Bool("strict", strict).
		Msg("Huffman uncompress")
}

func logError(l zerolog.Logger, err error, stage string) {
	l.Error().
		Err(err).
		Str("stage", stage).
		Msg("Huffman error")
}
