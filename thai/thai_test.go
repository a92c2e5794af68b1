package thai_test

import (
	"testing"

	"github.com/naminx/zenkaku"
	"github.com/naminx/zenkaku/thai"
)

func TestRegisteredOnImport(t *testing.T) {
	if _, ok := zenkaku.Get("thai"); !ok {
		t.Fatal("importing the package should register the codec")
	}
}

func TestEncode(t *testing.T) {
	c := thai.New()

	tests := []struct {
		in   string
		want string
	}{
		{in: "9", want: "๙"},
		{in: "0123456789", want: "๐๑๒๓๔๕๖๗๘๙"},
		{in: "pi = 3.14", want: "pi = ๓.๑๔"},
	}

	for _, tt := range tests {
		if got := c.Encode(tt.in); got != tt.want {
			t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDecode(t *testing.T) {
	c := thai.New()

	tests := []struct {
		in   string
		want string
	}{
		{in: "๙", want: "9"},
		{in: "๐๑๒๓๔๕๖๗๘๙", want: "0123456789"},
		// Thai letters share the leading byte with Thai digits but
		// stay outside the final-byte range.
		{in: "สวัสดี", want: "สวัสดี"},
	}

	for _, tt := range tests {
		if got := c.Decode(tt.in); got != tt.want {
			t.Errorf("Decode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundTripEachDigit(t *testing.T) {
	c := thai.New()

	for d := 0; d < 10; d++ {
		in := string(rune('0' + d))
		if got := c.Decode(c.Encode(in)); got != in {
			t.Errorf("Decode(Encode(%q)) = %q", in, got)
		}
	}
}
