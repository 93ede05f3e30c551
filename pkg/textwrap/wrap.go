// Package textwrap splits box labels into display lines.
//
// Widths are estimated, not measured: every character is assumed to be
// [CharWidth] pixels wide, which matches a monospace font closely enough for
// the fixed-width boxes hnotes draws.
package textwrap

import (
	"strings"
	"unicode/utf8"
)

const (
	// CharWidth is the estimated advance of a single character, in pixels.
	CharWidth = 8.0
	// Padding is the inset between a box edge and its text, in pixels.
	Padding = 10.0
)

// Width returns the estimated pixel width of s.
func Width(s string) float64 { return float64(utf8.RuneCountInString(s)) * CharWidth }

// Wrap greedily packs the words of text into lines no wider than
// maxWidth minus the box padding on both sides.
//
// Words are separated by the literal space character, so a run of spaces
// yields empty words that still take a separator slot on the line. Words are
// never split: a word wider than the budget gets a line to itself and
// overflows. Empty text yields no lines.
func Wrap(text string, maxWidth float64) []string {
	budget := maxWidth - 2*Padding

	var (
		lines []string
		line  strings.Builder
		width float64
		words int
	)
	flush := func() {
		if line.Len() > 0 {
			lines = append(lines, line.String())
		}
		line.Reset()
		width, words = 0, 0
	}

	for _, word := range strings.Split(text, " ") {
		advance := Width(word)
		if words > 0 {
			advance += CharWidth
		}
		if width+advance > budget && line.Len() > 0 {
			flush()
			advance = Width(word)
		}
		if words > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
		width += advance
		words++
	}
	flush()

	return lines
}
