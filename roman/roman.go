// Package roman provides the Roman numeral digit codec.
//
// Digits 1 through 9 map to the Number Forms numerals U+2160..U+2168.
// Roman numerals have no zero, so the table borrows the fullwidth zero
// U+FF10; decoding consequently recovers fullwidth zeros as well.
package roman

import "github.com/naminx/zenkaku"

// codec is the roman variant, registered at import time.
var codec = zenkaku.MustVariant("roman",
	[10]rune{'０', 'Ⅰ', 'Ⅱ', 'Ⅲ', 'Ⅳ', 'Ⅴ', 'Ⅵ', 'Ⅶ', 'Ⅷ', 'Ⅸ'},
	zenkaku.Exact(0, 0xEF, 0xBC, 0x90),
	zenkaku.Run(1, []byte{0xE2, 0x85}, 0xA0, 9),
)

func init() {
	zenkaku.Register(codec)
}

// New returns the roman codec.
func New() zenkaku.Codec {
	return codec
}
