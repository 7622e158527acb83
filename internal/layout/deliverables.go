// internal/layout/deliverables.go
package layout

import (
	"strconv"

	"github.com/propdeck/propdeck/internal/draw"
	"github.com/propdeck/propdeck/internal/models"
)

// compactPhaseCap bounds phases shown when the section shares a page.
const compactPhaseCap = 3

// renderDeliverables draws each phase as a numbered badge plus its bulleted
// item list. Numbering is 1-based over the visible phase list.
func renderDeliverables(c *canvas, f Frame, section models.Section, ctx pageContext) {
	y := sectionHeader(c, f, section.Title, ctx)

	phases := section.Deliverables
	if ctx.compact && len(phases) > compactPhaseCap {
		phases = phases[:compactPhaseCap]
	}

	x := f.X + pageMargin
	for i, phase := range phases {
		if y+24 > f.bottom()-pageMargin {
			break
		}

		c.add(draw.Circle{CX: x + 10, CY: y, R: 10, Fill: draw.Solid(ctx.primary())})
		c.add(draw.Text{
			X: x + 10, Y: y + 3.5,
			Content: strconv.Itoa(i + 1),
			Size:    10, Weight: 700,
			Color:  "#ffffff",
			Anchor: draw.AnchorMiddle,
		})
		c.add(draw.Text{
			X: x + 28, Y: y + 4,
			Content: phase.Title,
			Size:    13, Weight: 600,
			Color: ctx.palette.Heading,
		})
		y += 26

		itemX := x + 38
		maxWidth := f.right() - pageMargin - itemX
		for _, item := range phase.Items {
			lines := draw.Wrap(item, bodyTextSize, maxWidth)
			if y+float64(len(lines))*15 > f.bottom()-pageMargin {
				break
			}
			c.add(draw.Circle{CX: itemX - 9, CY: y - 3, R: 2.5, Fill: draw.Solid(ctx.primary())})
			for _, line := range lines {
				c.add(draw.Text{
					X: itemX, Y: y,
					Content: line,
					Size:    bodyTextSize,
					Color:   ctx.palette.Body,
				})
				y += 15
			}
			y += 2
		}
		y += 16
	}
}
