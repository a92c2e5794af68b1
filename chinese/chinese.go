// Package chinese provides the Chinese numeral digit codec.
//
// The numerals are ordinary CJK ideographs scattered across the
// unified block rather than a contiguous run, so decode rules are
// derived from the table, one exact sequence per digit.
package chinese

import "github.com/naminx/zenkaku"

// codec is the chinese variant, registered at import time.
var codec = zenkaku.MustVariant("chinese",
	[10]rune{'〇', '一', '二', '三', '四', '五', '六', '七', '八', '九'},
)

func init() {
	zenkaku.Register(codec)
}

// New returns the chinese codec.
func New() zenkaku.Codec {
	return codec
}
