// internal/layout/cover.go
package layout

import (
	"strings"

	"github.com/propdeck/propdeck/internal/draw"
	"github.com/propdeck/propdeck/internal/models"
)

// renderCover fills the whole page with the primary-to-secondary diagonal
// gradient, places the two optional logos in the top corners and centers the
// title block.
func renderCover(c *canvas, f Frame, section models.Section, ctx pageContext) {
	c.add(draw.Rect{
		X: f.X, Y: f.Y, W: f.W, H: f.H,
		Fill: draw.Paint{Gradient: draw.Linear(135, ctx.primary(), ctx.secondary())},
	})

	// Own mark top-left, client mark top-right; each shown independently.
	if ctx.design.LogoURL != "" {
		c.add(draw.Image{X: f.X + 36, Y: f.Y + 30, W: 105, H: 52, URL: ctx.design.LogoURL})
	} else {
		c.add(draw.Text{
			X: f.X + 36, Y: f.Y + 48,
			Content: strings.ToLower(ctx.design.CompanyName),
			Size:    10, Weight: 500,
			Color:         "#ffffffcc",
			LetterSpacing: 2.5,
		})
	}
	if ctx.design.ClientLogoURL != "" {
		c.add(draw.Image{X: f.right() - 36 - 105, Y: f.Y + 30, W: 105, H: 52, URL: ctx.design.ClientLogoURL})
	}

	centerX := f.X + f.W/2
	centerY := f.Y + f.H/2

	titleLines := draw.Wrap(section.Title, 42, f.W-2*pageMargin)
	titleTop := centerY - 20 - float64(len(titleLines)-1)*24
	for i, line := range titleLines {
		c.add(draw.Text{
			X: centerX, Y: titleTop + float64(i)*48,
			Content: line,
			Size:    42, Weight: 700,
			Color:         "#ffffff",
			Anchor:        draw.AnchorMiddle,
			LetterSpacing: -1,
		})
	}
	if section.Subtitle != "" {
		subtitleTop := titleTop + float64(len(titleLines)-1)*48 + 44
		for i, line := range draw.Wrap(section.Subtitle, 16, 430) {
			c.add(draw.Text{
				X: centerX, Y: subtitleTop + float64(i)*24,
				Content: line,
				Size:    16,
				Color:   "#ffffffcc",
				Anchor:  draw.AnchorMiddle,
			})
		}
	}

	c.add(draw.Line{
		X1: centerX - 30, Y1: f.bottom() - 118,
		X2: centerX + 30, Y2: f.bottom() - 118,
		Color: "#ffffff4d", Width: 1.5,
	})
	c.add(draw.Text{
		X: centerX, Y: f.bottom() - 94,
		Content:       "PROPOSAL FOR " + strings.ToUpper(ctx.client),
		Size:          8,
		Color:         "#ffffff99",
		Anchor:        draw.AnchorMiddle,
		LetterSpacing: 3,
	})

	c.add(draw.Rect{X: f.X, Y: f.bottom() - 4, W: f.W, H: 4, Fill: draw.Solid(ctx.accent())})
}
