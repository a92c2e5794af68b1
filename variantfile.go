package zenkaku

import (
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Definition declares one user-defined variant in a variant file.
// Glyphs lists the decorative codepoints for digits 0 through 9, in
// order, one codepoint per entry. Decode rules are derived from the
// glyph table, so a definition is complete on its own:
//
//	variants:
//	  - name: devanagari
//	    glyphs: ["०", "१", "२", "३", "४", "५", "६", "७", "८", "९"]
type Definition struct {
	Name   string   `yaml:"name"`
	Glyphs []string `yaml:"glyphs"`
}

// variantFile is the top-level document of a variant file.
type variantFile struct {
	Variants []Definition `yaml:"variants"`
}

// LoadVariants parses a YAML variant file and returns one Variant per
// definition, in file order, without registering them. Malformed YAML
// and malformed definitions return an error wrapping ErrVariantFile.
func LoadVariants(r io.Reader) ([]*Variant, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, newVariantError(ErrVariantFile, "", err.Error())
	}

	var file variantFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, newVariantError(ErrVariantFile, "", err.Error())
	}

	variants := make([]*Variant, 0, len(file.Variants))
	seen := make(map[string]bool, len(file.Variants))
	for _, def := range file.Variants {
		if def.Name == "" {
			return nil, newVariantError(ErrVariantFile, "", "definition with empty name")
		}
		if seen[def.Name] {
			return nil, newVariantError(ErrVariantFile, def.Name, "defined twice")
		}
		seen[def.Name] = true

		v, err := def.variant()
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}

// LoadVariantFile reads path and registers every variant it defines.
func LoadVariantFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	variants, err := LoadVariants(f)
	if err != nil {
		return err
	}
	for _, v := range variants {
		Register(v)
	}
	return nil
}

// variant converts a definition into a validated Variant.
func (d Definition) variant() (*Variant, error) {
	if len(d.Glyphs) != 10 {
		return nil, newVariantError(ErrVariantFile, d.Name, "needs exactly 10 glyphs")
	}

	var glyphs [10]rune
	for i, g := range d.Glyphs {
		r, size := utf8.DecodeRuneInString(g)
		if r == utf8.RuneError || size != len(g) {
			return nil, newVariantError(ErrVariantFile, d.Name, "glyph for digit "+digitString(i)+" is not a single codepoint")
		}
		glyphs[i] = r
	}

	v, err := NewVariant(d.Name, glyphs)
	if err != nil {
		return nil, err
	}
	return v, nil
}
