// internal/layout/contact.go
package layout

import (
	"github.com/nyaruka/phonenumbers"

	"github.com/propdeck/propdeck/internal/draw"
	"github.com/propdeck/propdeck/internal/models"
)

// renderContact draws the closing page: an angled gradient banner across the
// upper half and the sender's card below it.
func renderContact(c *canvas, f Frame, section models.Section, ctx pageContext) {
	bannerBottom := f.Y + f.H*0.52

	// Two stacked polygons with different bottom slopes make the banner edge.
	c.add(draw.Path{
		Cmds: []draw.PathCmd{
			{Kind: draw.MoveTo, X: f.X, Y: f.Y},
			{Kind: draw.LineTo, X: f.right(), Y: f.Y},
			{Kind: draw.LineTo, X: f.right(), Y: bannerBottom - 70},
			{Kind: draw.LineTo, X: f.X, Y: bannerBottom},
			{Kind: draw.ClosePath},
		},
		Fill: draw.Paint{Gradient: draw.Linear(135, ctx.primary(), ctx.secondary())},
	})
	c.add(draw.Path{
		Cmds: []draw.PathCmd{
			{Kind: draw.MoveTo, X: f.X, Y: bannerBottom - 40},
			{Kind: draw.LineTo, X: f.right(), Y: bannerBottom - 110},
			{Kind: draw.LineTo, X: f.right(), Y: bannerBottom - 70},
			{Kind: draw.LineTo, X: f.X, Y: bannerBottom},
			{Kind: draw.ClosePath},
		},
		Fill: draw.Paint{Color: ctx.accent(), Opacity: 0.25},
	})

	c.add(draw.Text{
		X: f.X + pageMargin, Y: f.Y + 150,
		Content: section.Title,
		Size:    30, Weight: 700,
		Color: "#ffffff",
	})
	c.add(draw.Rect{
		X: f.X + pageMargin, Y: f.Y + 164,
		W: 52, H: 3, Radius: 1.5,
		Fill: draw.Solid(ctx.accent()),
	})
	if section.Content != "" {
		textY := f.Y + 196.0
		for _, line := range draw.Wrap(section.Content, 11, f.W-2*pageMargin-60) {
			c.add(draw.Text{
				X: f.X + pageMargin, Y: textY,
				Content: line,
				Size:    11,
				Color:   "#ffffffd9",
			})
			textY += 17
		}
	}

	// Sender card below the banner. Text colors flip on a black page.
	headingColor := draw.Color("#2c2c2c")
	lineColor := draw.Color("#555555")
	if ctx.palette.Dark {
		headingColor = ctx.palette.Heading
		lineColor = ctx.palette.Body
	}

	centerX := f.X + f.W/2
	y := f.Y + f.H*0.62

	if ctx.design.LogoURL != "" {
		c.add(draw.Image{
			X: centerX - 60, Y: y, W: 120, H: 56,
			URL:    ctx.design.LogoURL,
			Invert: ctx.palette.Dark,
		})
		y += 74
	} else {
		// Placeholder mark: a 2x2 brand-color grid.
		mark := 14.0
		c.add(draw.Rect{X: centerX - mark, Y: y, W: mark, H: mark, Fill: draw.Solid(ctx.primary())})
		c.add(draw.Rect{X: centerX, Y: y, W: mark, H: mark, Fill: draw.Solid(ctx.accent())})
		c.add(draw.Rect{X: centerX - mark, Y: y + mark, W: mark, H: mark, Fill: draw.Solid(ctx.secondary())})
		c.add(draw.Rect{X: centerX, Y: y + mark, W: mark, H: mark, Fill: draw.Solid(ctx.primary().WithAlpha("80"))})
		y += 2*mark + 24
	}

	c.add(draw.Text{
		X: centerX, Y: y,
		Content: ctx.design.CompanyName,
		Size:    16, Weight: 700,
		Color:  headingColor,
		Anchor: draw.AnchorMiddle,
	})
	y += 18
	c.add(draw.Rect{
		X: centerX - 30, Y: y, W: 60, H: 2,
		Fill: draw.Paint{Gradient: draw.Linear(90, ctx.accent(), ctx.primary())},
	})
	y += 26

	fields := section.Contact
	if fields != nil {
		if fields.Name != "" {
			label := fields.Name
			if fields.Title != "" {
				label += "  ·  " + fields.Title
			}
			c.add(draw.Text{X: centerX, Y: y, Content: label, Size: 10, Weight: 600, Color: headingColor, Anchor: draw.AnchorMiddle})
			y += 17
		}
		if fields.Email != "" {
			c.add(draw.Text{X: centerX, Y: y, Content: fields.Email, Size: 10, Color: lineColor, Anchor: draw.AnchorMiddle})
			y += 17
		}
		if fields.Phone != "" {
			c.add(draw.Text{X: centerX, Y: y, Content: formatPhone(fields.Phone), Size: 10, Color: lineColor, Anchor: draw.AnchorMiddle})
			y += 17
		}
		if fields.ClosingMessage != "" {
			c.add(draw.Text{
				X: f.right() - pageMargin, Y: f.bottom() - 60,
				Content: fields.ClosingMessage,
				Size:    10,
				Color:   lineColor,
				Anchor:  draw.AnchorEnd,
			})
		}
	}

	c.add(draw.Rect{X: f.X, Y: f.bottom() - 4, W: f.W, H: 4, Fill: draw.Solid(ctx.accent())})
}

// formatPhone pretty-prints a phone number in international notation, falling
// back to the raw input when it does not parse.
func formatPhone(raw string) string {
	num, err := phonenumbers.Parse(raw, "US")
	if err != nil {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}
