// Package zenkaku converts ASCII digits embedded in text to decorative
// Unicode digit scripts and back.
//
// The package offers a Codec interface for bidirectional digit
// conversion, a table-driven Variant implementation, and a registry of
// codecs keyed by variant name.
//
// # Variants
//
// A variant is one decorative-digit script. Five are built in, each in
// its own provider package:
//
//   - fullwidth - fullwidth digits １２３ (U+FF10..U+FF19)
//   - circle - circled digits ①②③ (U+24EA for zero, U+2460..U+2468)
//   - roman - Roman numerals ⅠⅡⅢ (U+2160..U+2168, fullwidth zero)
//   - chinese - Chinese numerals 一二三 (〇 for zero)
//   - thai - Thai digits ๑๒๓ (U+0E50..U+0E59)
//
// Importing a provider package registers its codec:
//
//	import (
//	    "github.com/naminx/zenkaku"
//	    _ "github.com/naminx/zenkaku/fullwidth"
//	)
//
//	c, ok := zenkaku.Get("fullwidth")
//	if !ok {
//	    // unknown variant
//	}
//	out := c.Encode("abc123") // "abc１２３"
//	in := c.Decode(out)       // "abc123"
//
// # Semantics
//
// Encode replaces each ASCII digit byte with the UTF-8 encoding of the
// variant's codepoint for that digit; every other byte passes through
// unchanged. Decode scans for the variant's byte patterns and replaces
// each with the ASCII digit it encodes; unrecognized bytes, including
// malformed or truncated UTF-8, pass through unchanged. Both operations
// are pure and total: they never fail, and decode is a left inverse of
// encode.
//
// # Custom Variants
//
// Additional variants can be declared in a YAML variant file and loaded
// with LoadVariantFile; see the Definition type.
package zenkaku

// Codec converts ASCII digits to one decorative script and back.
type Codec interface {
	// Name returns the variant name used for registry lookup (e.g. "fullwidth").
	Name() string

	// Encode replaces ASCII digits in text with the variant's codepoints.
	Encode(text string) string

	// Decode replaces the variant's codepoints in text with ASCII digits.
	Decode(text string) string
}
