// SPDX-License-Identifier: MIT

package gridtext

import (
	"fmt"
	"unicode/utf8"
)

// DefaultComma separates fields unless WithComma overrides it.
const DefaultComma = ','

// Option configures Parse and Write.
type Option func(*options)

type options struct {
	comma     rune
	comment   rune
	trimSpace bool
	header    bool
}

// WithComma sets the field separator.
// Panics on '\r', '\n', '"' or an invalid rune, none of which can separate fields.
func WithComma(r rune) Option {
	if !validDelim(r) {
		panic(fmt.Sprintf("gridtext: WithComma(%q): invalid separator", r))
	}

	return func(o *options) { o.comma = r }
}

// WithComment makes lines starting with r comments. Parse skips them.
// Panics on the same runes as WithComma.
func WithComment(r rune) Option {
	if !validDelim(r) {
		panic(fmt.Sprintf("gridtext: WithComment(%q): invalid comment marker", r))
	}

	return func(o *options) { o.comment = r }
}

// WithTrimSpace strips leading and trailing white space from every field
// before it is parsed.
func WithTrimSpace() Option {
	return func(o *options) { o.trimSpace = true }
}

// WithHeader makes Parse discard the first record. Its length still fixes
// the column count.
func WithHeader() Option {
	return func(o *options) { o.header = true }
}

func validDelim(r rune) bool {
	return r != 0 && r != '\r' && r != '\n' && r != '"' && r != utf8.RuneError && utf8.ValidRune(r)
}

func gatherOptions(opts []Option) options {
	o := options{comma: DefaultComma}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
