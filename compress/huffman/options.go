// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import "github.com/rs/zerolog"

// Option configures a compress or uncompress call.
type Option func(*options)

type options struct {
	strict bool
	logger zerolog.Logger
}

func newOptions(opts []Option) options {
	o := options{logger: Logger}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStrict selects how a payload that ends before its EOF code is handled.
// By default decoding stops quietly at the end of the data; in strict mode it
// fails with a CorruptInputError.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithLogger replaces the package Logger for one call.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
