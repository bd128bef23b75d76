package printing

import (
	"github.com/labelprint/backend/internal/domain/printing"
	"golang.org/x/text/language"
)

// rtlScripts are the ISO 15924 scripts written right to left
var rtlScripts = map[string]bool{
	"Arab": true,
	"Hebr": true,
	"Thaa": true,
	"Syrc": true,
}

// DirectionFor derives the text direction of a BCP-47 tag. Unparseable
// tags are treated as left to right.
func DirectionFor(tag string) printing.Direction {
	t, err := language.Parse(tag)
	if err != nil {
		return printing.DirectionLTR
	}
	script, _ := t.Script()
	if rtlScripts[script.String()] {
		return printing.DirectionRTL
	}
	return printing.DirectionLTR
}

// normalizeLanguage returns the canonical form of tag, or tag unchanged
func normalizeLanguage(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	return t.String()
}
