package zenkaku_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/naminx/zenkaku"
)

const devanagariYAML = `
variants:
  - name: devanagari
    glyphs: ["०", "१", "२", "३", "४", "५", "६", "७", "८", "९"]
`

func TestLoadVariants(t *testing.T) {
	variants, err := zenkaku.LoadVariants(strings.NewReader(devanagariYAML))
	if err != nil {
		t.Fatalf("LoadVariants() error: %v", err)
	}
	if len(variants) != 1 {
		t.Fatalf("LoadVariants() returned %d variants, want 1", len(variants))
	}

	v := variants[0]
	if v.Name() != "devanagari" {
		t.Errorf("Name() = %q, want %q", v.Name(), "devanagari")
	}
	if got := v.Encode("2024"); got != "२०२४" {
		t.Errorf("Encode(%q) = %q, want %q", "2024", got, "२०२४")
	}
	if got := v.Decode("२०२४"); got != "2024" {
		t.Errorf("Decode(%q) = %q, want %q", "२०२४", got, "2024")
	}
}

func TestLoadVariants_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "malformed yaml",
			yaml: "variants: [",
			want: zenkaku.ErrVariantFile,
		},
		{
			name: "empty name",
			yaml: `
variants:
  - glyphs: ["०", "१", "२", "३", "४", "५", "६", "७", "८", "९"]
`,
			want: zenkaku.ErrVariantFile,
		},
		{
			name: "duplicate name",
			yaml: devanagariYAML + `
  - name: devanagari
    glyphs: ["๐", "๑", "๒", "๓", "๔", "๕", "๖", "๗", "๘", "๙"]
`,
			want: zenkaku.ErrVariantFile,
		},
		{
			name: "nine glyphs",
			yaml: `
variants:
  - name: short
    glyphs: ["१", "२", "३", "४", "५", "६", "७", "८", "९"]
`,
			want: zenkaku.ErrVariantFile,
		},
		{
			name: "multi-rune glyph",
			yaml: `
variants:
  - name: multi
    glyphs: ["०७", "१", "२", "३", "४", "५", "६", "७", "८", "९"]
`,
			want: zenkaku.ErrVariantFile,
		},
		{
			name: "ascii digit glyph",
			yaml: `
variants:
  - name: ascii
    glyphs: ["0", "१", "२", "३", "४", "५", "६", "७", "८", "९"]
`,
			want: zenkaku.ErrInvalidVariant,
		},
		{
			name: "duplicate glyph",
			yaml: `
variants:
  - name: dup
    glyphs: ["१", "१", "२", "३", "४", "५", "६", "७", "८", "९"]
`,
			want: zenkaku.ErrInvalidVariant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := zenkaku.LoadVariants(strings.NewReader(tt.yaml))
			if err == nil {
				t.Fatal("LoadVariants() expected error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadVariantFile(t *testing.T) {
	zenkaku.Reset()

	path := filepath.Join(t.TempDir(), "variants.yaml")
	if err := os.WriteFile(path, []byte(devanagariYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := zenkaku.LoadVariantFile(path); err != nil {
		t.Fatalf("LoadVariantFile() error: %v", err)
	}

	c, ok := zenkaku.Get("devanagari")
	if !ok {
		t.Fatal("Get() should find variant registered from file")
	}
	if got := c.Encode("7"); got != "७" {
		t.Errorf("Encode(%q) = %q, want %q", "7", got, "७")
	}
}

func TestLoadVariantFile_Missing(t *testing.T) {
	if err := zenkaku.LoadVariantFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadVariantFile() expected error for missing file")
	}
}
