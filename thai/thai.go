// Package thai provides the Thai digit codec.
package thai

import "github.com/naminx/zenkaku"

// codec is the thai variant, registered at import time. Thai digits
// U+0E50..U+0E59 are three-byte sequences with the prefix E0 B9.
var codec = zenkaku.MustVariant("thai",
	[10]rune{'๐', '๑', '๒', '๓', '๔', '๕', '๖', '๗', '๘', '๙'},
	zenkaku.Run(0, []byte{0xE0, 0xB9}, 0x90, 10),
)

func init() {
	zenkaku.Register(codec)
}

// New returns the thai codec.
func New() zenkaku.Codec {
	return codec
}
