package docx

import (
	"math"
	"strconv"
)

// WordprocessingML measures lengths in twips (1/20 pt, 1440 per inch),
// font sizes in half-points and line spacing in 240ths of a line.

func cmToTwips(cm float64) int {
	return int(math.Round(cm * 1440.0 / 2.54))
}

func ptToTwips(pt int) int {
	return pt * 20
}

func ptToHalfPoints(pt int) int {
	return pt * 2
}

func lineSpacingTo240ths(multiple float64) int {
	return int(math.Round(multiple * 240.0))
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
