package measure

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	flex "github.com/grindlemire/go-flex"
)

// Cells returns a measure function for text drawn on a terminal grid.
// Widths are in cells as reported by go-runewidth and every line is one
// row tall.
func Cells(text string) flex.MeasureFunc {
	return textMeasure(text, 1, cellWidth)
}

// CellsBaseline returns a baseline function that puts the baseline at the
// bottom of the first row.
func CellsBaseline() flex.BaselineFunc {
	return func(_ *flex.Node, _, _ float32) float32 {
		return 1
	}
}

// Face returns a measure function for text drawn with face. Widths are the
// summed glyph advances and lines are face.Metrics().Height apart.
func Face(face font.Face, text string) flex.MeasureFunc {
	lineHeight := fixedToFloat(face.Metrics().Height)
	return textMeasure(text, lineHeight, func(s string) float32 {
		return fixedToFloat(font.MeasureString(face, s))
	})
}

// FaceBaseline returns a baseline function that puts the baseline at the
// ascent of the first line.
func FaceBaseline(face font.Face) flex.BaselineFunc {
	ascent := fixedToFloat(face.Metrics().Ascent)
	return func(_ *flex.Node, _, _ float32) float32 {
		return ascent
	}
}

func cellWidth(s string) float32 {
	return float32(runewidth.StringWidth(s))
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// textMeasure builds the shared measure function. Exactly modes return the
// given size on that axis; AtMost modes wrap and cap the result.
func textMeasure(text string, lineHeight float32, width func(string) float32) flex.MeasureFunc {
	return func(_ *flex.Node, w float32, wMode flex.MeasureMode, h float32, hMode flex.MeasureMode) flex.Size {
		wrapAt := flex.Undefined
		if wMode != flex.MeasureModeUndefined {
			wrapAt = w
		}
		lines := wrapLines(text, wrapAt, width)

		size := flex.Size{
			Width:  widest(lines, width),
			Height: float32(len(lines)) * lineHeight,
		}

		switch wMode {
		case flex.MeasureModeExactly:
			size.Width = w
		case flex.MeasureModeAtMost:
			size.Width = min(size.Width, w)
		}
		switch hMode {
		case flex.MeasureModeExactly:
			size.Height = h
		case flex.MeasureModeAtMost:
			size.Height = min(size.Height, h)
		}
		return size
	}
}
