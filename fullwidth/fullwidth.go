// Package fullwidth provides the fullwidth digit codec.
//
// ASCII digits map to the Fullwidth Forms block, U+FF10 through U+FF19,
// each a three-byte UTF-8 sequence sharing the prefix EF BC.
package fullwidth

import "github.com/naminx/zenkaku"

// codec is the fullwidth variant, registered at import time.
var codec = zenkaku.MustVariant("fullwidth",
	[10]rune{'０', '１', '２', '３', '４', '５', '６', '７', '８', '９'},
	zenkaku.Run(0, []byte{0xEF, 0xBC}, 0x90, 10),
)

func init() {
	zenkaku.Register(codec)
}

// New returns the fullwidth codec.
func New() zenkaku.Codec {
	return codec
}
