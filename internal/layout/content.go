// internal/layout/content.go
package layout

import (
	"github.com/propdeck/propdeck/internal/draw"
	"github.com/propdeck/propdeck/internal/models"
)

const (
	bodyTextSize   = 10.0
	bodyLineHeight = 18.0
)

// renderContent is the plain text treatment shared by project-summary,
// approach and terms sections: header plus a soft-wrapped body block capped
// at 95% of the usable width.
func renderContent(c *canvas, f Frame, section models.Section, ctx pageContext) {
	y := sectionHeader(c, f, section.Title, ctx)

	maxWidth := (f.W - 2*pageMargin) * 0.95
	for _, line := range draw.Wrap(section.Content, bodyTextSize, maxWidth) {
		if y > f.bottom()-pageMargin {
			break
		}
		if line != "" {
			c.add(draw.Text{
				X: f.X + pageMargin, Y: y,
				Content: line,
				Size:    bodyTextSize,
				Color:   ctx.palette.Body,
			})
		}
		y += bodyLineHeight
	}
}
