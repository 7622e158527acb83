// internal/layout/nextsteps.go
package layout

import (
	"strconv"

	"github.com/propdeck/propdeck/internal/draw"
	"github.com/propdeck/propdeck/internal/models"
)

const (
	maxStepCards   = 5
	stepCardHeight = 120.0
	stepCardGap    = 10.0
)

// renderNextSteps draws up to five step cards in a horizontal row with arrow
// glyphs between them. The last visible card is emphasized in the primary
// color. Anything in Items follows as the "What We Need From You" list.
func renderNextSteps(c *canvas, f Frame, section models.Section, ctx pageContext) {
	y := sectionHeader(c, f, section.Title, ctx)

	steps := section.NextSteps
	if len(steps) > maxStepCards {
		steps = steps[:maxStepCards]
	}

	x := f.X + pageMargin
	usable := f.W - 2*pageMargin
	if n := len(steps); n > 0 {
		cardW := (usable - float64(n-1)*stepCardGap) / float64(n)
		for i, step := range steps {
			cardX := x + float64(i)*(cardW+stepCardGap)
			emphasized := i == len(steps)-1

			cardBg := draw.Solid(ctx.palette.CardBg)
			badgeFill := draw.Solid(ctx.primary())
			badgeNumber := draw.Color("#ffffff")
			nameColor := ctx.palette.Heading
			descColor := ctx.palette.Muted
			if emphasized {
				cardBg = draw.Solid(ctx.primary())
				badgeFill = draw.Solid(draw.Color("#ffffff"))
				badgeNumber = ctx.primary()
				nameColor = "#ffffff"
				descColor = "#ffffffcc"
			}

			c.add(draw.Rect{X: cardX, Y: y, W: cardW, H: stepCardHeight, Radius: 6, Fill: cardBg})
			c.add(draw.Circle{CX: cardX + cardW/2, CY: y + 22, R: 9, Fill: badgeFill})
			c.add(draw.Text{
				X: cardX + cardW/2, Y: y + 25,
				Content: strconv.Itoa(i + 1),
				Size:    9, Weight: 700,
				Color:  badgeNumber,
				Anchor: draw.AnchorMiddle,
			})

			textY := y + 46
			for _, line := range draw.Wrap(step.Step, 8, cardW-14) {
				c.add(draw.Text{
					X: cardX + cardW/2, Y: textY,
					Content: line,
					Size:    8, Weight: 700,
					Color:  nameColor,
					Anchor: draw.AnchorMiddle,
				})
				textY += 11
			}
			textY += 3
			for _, line := range draw.Wrap(step.Description, 6.5, cardW-14) {
				if textY > y+stepCardHeight-8 {
					break
				}
				c.add(draw.Text{
					X: cardX + cardW/2, Y: textY,
					Content: line,
					Size:    6.5,
					Color:   descColor,
					Anchor:  draw.AnchorMiddle,
				})
				textY += 9
			}

			if i > 0 {
				c.add(draw.Text{
					X: cardX - stepCardGap/2, Y: y + stepCardHeight/2 + 3,
					Content: "→",
					Size:    10,
					Color:   ctx.palette.Muted,
					Anchor:  draw.AnchorMiddle,
				})
			}
		}
		y += stepCardHeight + 34
	}

	if len(section.Items) > 0 && y+20 <= f.bottom()-pageMargin {
		c.add(draw.Text{
			X: x, Y: y,
			Content: "What We Need From You",
			Size:    12, Weight: 600,
			Color: ctx.palette.Heading,
		})
		y += 20
		for _, item := range section.Items {
			lines := draw.Wrap(item, 9.5, usable-18)
			if y+float64(len(lines))*13 > f.bottom()-pageMargin {
				break
			}
			c.add(draw.Circle{CX: x + 4, CY: y - 3, R: 2.5, Fill: draw.Solid(ctx.accent())})
			for _, line := range lines {
				c.add(draw.Text{X: x + 14, Y: y, Content: line, Size: 9.5, Color: ctx.palette.Body})
				y += 13
			}
			y += 5
		}
	}
}
