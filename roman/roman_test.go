package roman_test

import (
	"testing"

	"github.com/naminx/zenkaku"
	"github.com/naminx/zenkaku/roman"
)

func TestRegisteredOnImport(t *testing.T) {
	if _, ok := zenkaku.Get("roman"); !ok {
		t.Fatal("importing the package should register the codec")
	}
}

func TestEncode(t *testing.T) {
	c := roman.New()

	tests := []struct {
		in   string
		want string
	}{
		{in: "1", want: "Ⅰ"},
		{in: "0123456789", want: "０ⅠⅡⅢⅣⅤⅥⅦⅧⅨ"},
		{in: "chapter 7", want: "chapter Ⅶ"},
	}

	for _, tt := range tests {
		if got := c.Encode(tt.in); got != tt.want {
			t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecode(t *testing.T) {
	c := roman.New()

	tests := []struct {
		in   string
		want string
	}{
		{in: "Ⅰ", want: "1"},
		{in: "０ⅠⅡⅢⅣⅤⅥⅦⅧⅨ", want: "0123456789"},
		// Ⅹ (ten) is past the end of the digit run.
		{in: "ⅩⅪ", want: "ⅩⅪ"},
	}

	for _, tt := range tests {
		if got := c.Decode(tt.in); got != tt.want {
			t.Errorf("Decode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// The zero glyph is borrowed from the fullwidth table, so roman decode
// recovers fullwidth zeros too. Faithful to the original table.
func TestDecodeFullwidthZero(t *testing.T) {
	c := roman.New()

	if got := c.Decode("０"); got != "0" {
		t.Errorf("Decode(%q) = %q, want %q", "０", got, "0")
	}
}

func TestRoundTripEachDigit(t *testing.T) {
	c := roman.New()

	for d := 0; d < 10; d++ {
		in := string(rune('0' + d))
		if got := c.Decode(c.Encode(in)); got != in {
			t.Errorf("Decode(Encode(%q)) = %q", in, got)
		}
	}
}
