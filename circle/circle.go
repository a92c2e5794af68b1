// Package circle provides the circled digit codec.
//
// Digits 1 through 9 map to U+2460..U+2468. Zero is the outlier
// U+24EA, which sits in a different row of the Enclosed Alphanumerics
// block and needs its own rule.
package circle

import "github.com/naminx/zenkaku"

// codec is the circle variant, registered at import time.
var codec = zenkaku.MustVariant("circle",
	[10]rune{'⓪', '①', '②', '③', '④', '⑤', '⑥', '⑦', '⑧', '⑨'},
	zenkaku.Exact(0, 0xE2, 0x93, 0xAA),
	zenkaku.Run(1, []byte{0xE2, 0x91}, 0xA0, 9),
)

func init() {
	zenkaku.Register(codec)
}

// New returns the circle codec.
func New() zenkaku.Codec {
	return codec
}
