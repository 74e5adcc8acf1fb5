package core

import (
	"fmt"
	"unicode"
)

// Direction is the horizontal writing direction of a text.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// String returns the HTML dir attribute value for the direction.
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == RightToLeft {
		return LeftToRight
	}
	return RightToLeft
}

// ParseDirection converts "ltr"/"rtl" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "ltr":
		return LeftToRight, nil
	case "rtl":
		return RightToLeft, nil
	default:
		return LeftToRight, fmt.Errorf("unknown direction %q (want \"ltr\" or \"rtl\")", s)
	}
}

// rtlScripts covers the Unicode blocks whose presence marks a text as
// right-to-left: Hebrew, Arabic, Arabic Supplement, Arabic Extended-A,
// and the Arabic/Hebrew presentation forms.
var rtlScripts = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0590, Hi: 0x05FF, Stride: 1},
		{Lo: 0x0600, Hi: 0x06FF, Stride: 1},
		{Lo: 0x0750, Hi: 0x077F, Stride: 1},
		{Lo: 0x08A0, Hi: 0x08FF, Stride: 1},
		{Lo: 0xFB50, Hi: 0xFDFF, Stride: 1},
		{Lo: 0xFE70, Hi: 0xFEFF, Stride: 1},
	},
}

// ContainsRTL reports whether text contains at least one code point from a
// right-to-left script. A single matching rune anywhere is enough; there is
// no weighting or word-boundary logic.
func ContainsRTL(text string) bool {
	for _, r := range text {
		if unicode.Is(rtlScripts, r) {
			return true
		}
	}
	return false
}

// DetectDirection classifies a text blob by script content.
func DetectDirection(text string) Direction {
	if ContainsRTL(text) {
		return RightToLeft
	}
	return LeftToRight
}
