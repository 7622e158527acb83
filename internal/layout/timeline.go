// internal/layout/timeline.go
package layout

import (
	"github.com/propdeck/propdeck/internal/draw"
	"github.com/propdeck/propdeck/internal/models"
)

const (
	timelineDotRadius   = 6.0
	timelineDescSize    = 10.0
	timelineSubItemSize = 9.0
)

// renderTimeline draws the vertical milestone list: a period badge, a dot on
// the connector axis and a content block per item. Connector segments run
// between consecutive dots only; nothing is drawn after the last.
func renderTimeline(c *canvas, f Frame, section models.Section, ctx pageContext) {
	y := sectionHeader(c, f, section.Title, ctx)

	axisX := f.X + pageMargin + 12
	contentX := axisX + 26
	maxWidth := f.right() - pageMargin - contentX

	var prevDotY float64
	for i, item := range section.Timeline {
		if y+30 > f.bottom()-pageMargin {
			break
		}

		dotY := y - 4
		if i > 0 {
			c.add(draw.Line{
				X1: axisX, Y1: prevDotY + timelineDotRadius + 3,
				X2: axisX, Y2: dotY - timelineDotRadius - 3,
				Color: ctx.primary().WithAlpha("40"),
				Width: 2,
			})
		}
		c.add(draw.Circle{
			CX: axisX, CY: dotY, R: timelineDotRadius,
			Fill:        draw.Solid(ctx.palette.PageBg),
			Stroke:      ctx.primary(),
			StrokeWidth: 3,
		})
		prevDotY = dotY

		badgeWidth := draw.EstimateWidth(item.Period, 7) + 18
		c.add(draw.Rect{
			X: contentX, Y: y - 12, W: badgeWidth, H: 15, Radius: 7.5,
			Fill: draw.Solid(ctx.primary()),
		})
		c.add(draw.Text{
			X: contentX + badgeWidth/2, Y: y - 1.5,
			Content: item.Period,
			Size:    7, Weight: 700,
			Color:  "#ffffff",
			Anchor: draw.AnchorMiddle,
		})
		c.add(draw.Text{
			X: contentX + badgeWidth + 10, Y: y,
			Content: item.Title,
			Size:    12, Weight: 600,
			Color: ctx.palette.Heading,
		})
		y += 18

		for _, line := range draw.Wrap(item.Description, timelineDescSize, maxWidth) {
			c.add(draw.Text{
				X: contentX, Y: y,
				Content: line,
				Size:    timelineDescSize,
				Color:   ctx.palette.Muted,
			})
			y += 15
		}

		if len(item.Items) > 0 {
			y += 4
			for _, subItem := range item.Items {
				c.add(draw.Circle{CX: contentX + 4, CY: y - 3, R: 1.8, Fill: draw.Solid(ctx.accent())})
				c.add(draw.Text{
					X: contentX + 12, Y: y,
					Content: subItem,
					Size:    timelineSubItemSize,
					Color:   ctx.palette.Muted,
				})
				y += 13
			}
		}
		y += 22
	}
}
