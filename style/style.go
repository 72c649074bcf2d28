// Package style maps semantic block kinds to concrete formatting records.
//
// The mapping is a pure function over (kind, flags) and a base Set: identical
// inputs always produce identical records. All the GOST 7.32 specific values
// live in the default Set so the engine itself stays standard-agnostic.
package style

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pzg/config"
)

// Kind of a semantic block the engine knows how to format.
type Kind int

const (
	KindHeading1 Kind = iota
	KindHeading2
	KindBody
	KindListItem
	KindTOCEntry
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindHeading1:
		return "heading1"
	case KindHeading2:
		return "heading2"
	case KindBody:
		return "body"
	case KindListItem:
		return "listItem"
	case KindTOCEntry:
		return "tocEntry"
	case KindReference:
		return "reference"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Paragraph alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignJustify:
		return "both"
	default:
		return "left"
	}
}

// Flags modify formatting of a single block on top of what its kind dictates.
type Flags struct {
	Bold     bool
	Indented bool
	Centered bool
}

// Set is the base typography every record is derived from.
type Set struct {
	FontFamily        string
	FontSizePt        int
	LineSpacing       float64
	FirstLineIndentCm float64
}

// DefaultSet returns GOST 7.32-2017 typography.
func DefaultSet() Set {
	return Set{
		FontFamily:        "Times New Roman",
		FontSizePt:        14,
		LineSpacing:       1.5,
		FirstLineIndentCm: 1.25,
	}
}

// SetFromConfig builds a Set from loaded configuration.
func SetFromConfig(conf *config.StyleConfig) Set {
	return Set{
		FontFamily:        conf.FontFamily,
		FontSizePt:        conf.FontSizePt,
		LineSpacing:       conf.LineSpacing,
		FirstLineIndentCm: conf.FirstLineIndentCm,
	}
}

// Record is the resolved formatting of one block. EastAsiaFamily always
// mirrors FontFamily so mixed-script runs render with the same glyphs.
type Record struct {
	FontFamily        string
	EastAsiaFamily    string
	FontSizePt        int
	Bold              bool
	Alignment         Alignment
	LineSpacing       float64
	SpaceBeforePt     int
	SpaceAfterPt      int
	FirstLineIndentCm float64
}

// For resolves the formatting record for a block of the given kind. It is
// total: every kind/flags combination has a defined result.
func For(kind Kind, flags Flags, set Set) Record {
	r := Record{
		FontFamily:     set.FontFamily,
		EastAsiaFamily: set.FontFamily,
		FontSizePt:     set.FontSizePt,
		LineSpacing:    set.LineSpacing,
		Alignment:      AlignJustify,
	}

	switch kind {
	case KindHeading1:
		r.Alignment = AlignCenter
		r.Bold = true
		r.SpaceAfterPt = 12
	case KindHeading2:
		r.Bold = true
		r.SpaceBeforePt = 12
		r.SpaceAfterPt = 6
		r.FirstLineIndentCm = set.FirstLineIndentCm
	case KindBody:
		r.Bold = flags.Bold
		if flags.Indented {
			r.FirstLineIndentCm = set.FirstLineIndentCm
		}
		if flags.Centered {
			r.Alignment = AlignCenter
		}
	case KindListItem:
		r.FirstLineIndentCm = set.FirstLineIndentCm
	case KindTOCEntry, KindReference:
		// explicit override of the paragraph default - no indent
	}
	return r
}

var upperRU = cases.Upper(language.Russian)

// UpperTitle upper-cases level 1 heading text. Content is predominantly
// Cyrillic, so use language-aware casing rather than strings.ToUpper.
func UpperTitle(s string) string {
	return upperRU.String(s)
}

// ListPrefix renders the marker a list item text is prefixed with:
// "n) " for ordinals, "– " otherwise.
func ListPrefix(ordinal int) string {
	if ordinal > 0 {
		return fmt.Sprintf("%d) ", ordinal)
	}
	return "– "
}
