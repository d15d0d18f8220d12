package measure

import (
	"math"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// wrapLines splits text into display lines. Hard line breaks always split.
// When maxWidth is not NaN, lines also break at the last line-break
// opportunity that keeps them within maxWidth. A segment that is wider than
// maxWidth on its own still gets its own line.
func wrapLines(text string, maxWidth float32, width func(string) float32) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if math.IsNaN(float64(maxWidth)) {
			lines = append(lines, trimTrailingSpace(para))
			continue
		}
		lines = append(lines, wrapParagraph(para, maxWidth, width)...)
	}
	return lines
}

func wrapParagraph(para string, maxWidth float32, width func(string) float32) []string {
	if para == "" {
		return []string{""}
	}

	var lines []string
	var line strings.Builder
	state := -1
	rest := para
	for len(rest) > 0 {
		var segment string
		var mustBreak bool
		segment, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)

		if line.Len() > 0 && width(trimTrailingSpace(line.String()+segment)) > maxWidth {
			lines = append(lines, trimTrailingSpace(line.String()))
			line.Reset()
		}
		line.WriteString(segment)

		if mustBreak && len(rest) > 0 {
			lines = append(lines, trimTrailingSpace(line.String()))
			line.Reset()
		}
	}
	return append(lines, trimTrailingSpace(line.String()))
}

func trimTrailingSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// widest returns the largest width among lines.
func widest(lines []string, width func(string) float32) float32 {
	var w float32
	for _, l := range lines {
		w = max(w, width(l))
	}
	return w
}
