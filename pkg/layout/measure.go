package layout

import "strings"

// TextMeasurer supplies rendered text metrics for label layout. Connector
// attachment points depend on the measured label width, so the geometry
// core takes the measurer as a collaborator instead of assuming a drawing
// surface.
type TextMeasurer interface {
	// Measure wraps text to maxWidth and returns the wrapped lines plus
	// the bounding box of the wrapped block.
	Measure(text string, maxWidth float64) (lines []string, width, height float64)
}

// HeuristicMeasurer estimates glyph metrics from the font size alone:
// average character width about 0.6em, line height 1.2em. Good enough for
// headless layout and SVG export; a drawing layer with real font metrics
// can substitute its own measurer.
type HeuristicMeasurer struct {
	FontSize float64
}

const (
	charWidthRatio  = 0.6
	lineHeightRatio = 1.2
)

// Measure implements TextMeasurer with a greedy word wrap.
func (m HeuristicMeasurer) Measure(text string, maxWidth float64) ([]string, float64, float64) {
	size := m.FontSize
	if size <= 0 {
		size = 12
	}
	charW := size * charWidthRatio

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, 0, 0
	}

	maxChars := 0
	if maxWidth > 0 {
		maxChars = int(maxWidth / charW)
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if maxChars > 0 && len(current)+1+len(w) > maxChars {
			lines = append(lines, current)
			current = w
			continue
		}
		current += " " + w
	}
	lines = append(lines, current)

	longest := 0
	for _, l := range lines {
		if len(l) > longest {
			longest = len(l)
		}
	}
	width := float64(longest) * charW
	height := float64(len(lines)) * size * lineHeightRatio
	return lines, width, height
}
