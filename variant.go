package zenkaku

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"
)

// Variant is a table-driven Codec: ten codepoints indexed by digit
// value for encode, and a rule set recognizing their UTF-8 sequences
// for decode.
type Variant struct {
	name  string
	enc   [10]string
	rules []Rule
}

// NewVariant builds a Variant from a name, a table of ten codepoints
// indexed by digit value, and the rules that recognize their UTF-8
// sequences. When no rules are given, one exact rule per glyph is
// derived from the table.
//
// The table must hold ten distinct non-ASCII codepoints. The rule set
// must cover each digit exactly once, no matchable sequence may be a
// prefix of another, and decoding a glyph's sequence must yield the
// digit the table encodes it from. Violations return an error wrapping
// ErrInvalidVariant.
func NewVariant(name string, glyphs [10]rune, rules ...Rule) (*Variant, error) {
	if name == "" {
		return nil, newVariantError(ErrInvalidVariant, name, "empty name")
	}

	v := &Variant{name: name}
	seen := make(map[rune]bool, 10)
	for d, g := range glyphs {
		if !utf8.ValidRune(g) || g < utf8.RuneSelf {
			return nil, newVariantError(ErrInvalidVariant, name, "glyph for digit "+digitString(d)+" is not a multi-byte codepoint")
		}
		if seen[g] {
			return nil, newVariantError(ErrInvalidVariant, name, "duplicate glyph for digit "+digitString(d))
		}
		seen[g] = true
		v.enc[d] = string(g)
	}

	if len(rules) == 0 {
		rules = derivedRules(v.enc)
	}
	v.rules = rules

	if err := v.checkRules(); err != nil {
		return nil, err
	}
	return v, nil
}

// MustVariant is NewVariant that panics on error. Provider packages
// use it for their static tables.
func MustVariant(name string, glyphs [10]rune, rules ...Rule) *Variant {
	v, err := NewVariant(name, glyphs, rules...)
	if err != nil {
		panic(err)
	}
	return v
}

// derivedRules builds one exact rule per glyph from an encode table.
func derivedRules(enc [10]string) []Rule {
	rules := make([]Rule, 10)
	for d, s := range enc {
		rules[d] = Exact(d, []byte(s)...)
	}
	return rules
}

// checkRules verifies the rule set is injective, prefix-free, and a
// left inverse of the encode table.
func (v *Variant) checkRules() error {
	covered := make(map[int]bool, 10)
	seqs := make(map[string]int)
	for _, r := range v.rules {
		for seq, d := range r.sequences() {
			if d < 0 || d > 9 {
				return newVariantError(ErrInvalidVariant, v.name, "rule yields digit outside 0-9")
			}
			if prev, dup := seqs[seq]; dup && prev != d {
				return newVariantError(ErrInvalidVariant, v.name, "ambiguous sequence for digits "+digitString(prev)+" and "+digitString(d))
			}
			seqs[seq] = d
			covered[d] = true
		}
	}
	for d := 0; d < 10; d++ {
		if !covered[d] {
			return newVariantError(ErrInvalidVariant, v.name, "no rule matches digit "+digitString(d))
		}
	}
	for a := range seqs {
		for b := range seqs {
			if len(a) < len(b) && b[:len(a)] == a {
				return newVariantError(ErrInvalidVariant, v.name, "one sequence is a prefix of another")
			}
		}
	}
	for d, s := range v.enc {
		got, n, ok := v.matchAt(s, 0)
		if !ok || got != d || n != len(s) {
			return newVariantError(ErrInvalidVariant, v.name, "rules do not decode the glyph for digit "+digitString(d))
		}
	}
	return nil
}

// Name returns the variant name.
func (v *Variant) Name() string {
	return v.name
}

// Encode replaces each ASCII digit byte in text with the UTF-8
// encoding of the variant's codepoint for that digit. Every other byte
// passes through unchanged.
func (v *Variant) Encode(text string) string {
	start := time.Now()
	var out strings.Builder
	out.Grow(len(text))
	digits := 0
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch >= '0' && ch <= '9' {
			out.WriteString(v.enc[ch-'0'])
			digits++
		} else {
			out.WriteByte(ch)
		}
	}
	s := out.String()
	emitEncode(context.Background(), v.name, len(text), len(s), digits, time.Since(start))
	return s
}

// Decode scans text for the variant's byte sequences and replaces each
// with the ASCII digit it encodes. Unrecognized bytes, including
// malformed or truncated UTF-8, pass through unchanged one byte at a
// time.
func (v *Variant) Decode(text string) string {
	start := time.Now()
	var out strings.Builder
	out.Grow(len(text))
	digits := 0
	for i := 0; i < len(text); {
		if d, n, ok := v.matchAt(text, i); ok {
			out.WriteByte('0' + byte(d))
			i += n
			digits++
			continue
		}
		out.WriteByte(text[i])
		i++
	}
	s := out.String()
	emitDecode(context.Background(), v.name, len(text), len(s), digits, time.Since(start))
	return s
}

// matchAt reports whether one of the variant's sequences begins at
// text[i:], and if so which digit it encodes and how many bytes it
// spans.
func (v *Variant) matchAt(text string, i int) (digit, size int, ok bool) {
	for _, r := range v.rules {
		if d, ok := r.match(text, i); ok {
			return d, r.size(), true
		}
	}
	return 0, 0, false
}

func digitString(d int) string {
	return string(rune('0' + d))
}
