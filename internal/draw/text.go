// internal/draw/text.go
package draw

import "strings"

// Approximate per-glyph advance widths as a fraction of the font size,
// loosely modeled on Helvetica metrics. Both render targets lay text out
// from these estimates, so line breaks agree between preview and export.
const (
	glyphNarrow  = 0.30
	glyphRegular = 0.52
	glyphUpper   = 0.68
	glyphWide    = 0.88
	glyphSpace   = 0.28
)

// EstimateWidth approximates the rendered width of a single-line string at
// the given font size.
func EstimateWidth(s string, size float64) float64 {
	var w float64
	for _, r := range s {
		switch {
		case r == ' ':
			w += glyphSpace
		case strings.ContainsRune("iljtf.,':;|!()[]", r):
			w += glyphNarrow
		case strings.ContainsRune("mwMW@%", r):
			w += glyphWide
		case r >= 'A' && r <= 'Z':
			w += glyphUpper
		default:
			w += glyphRegular
		}
	}
	return w * size
}

// Wrap splits text into lines no wider than maxWidth at the given size.
// Explicit newlines are preserved (preformatted input soft-wraps), and a
// single word longer than the line is emitted on its own line rather than
// broken.
func Wrap(s string, size, maxWidth float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if EstimateWidth(candidate, size) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}
