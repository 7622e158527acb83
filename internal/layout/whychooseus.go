// internal/layout/whychooseus.go
package layout

import (
	"github.com/propdeck/propdeck/internal/diagram"
	"github.com/propdeck/propdeck/internal/draw"
	"github.com/propdeck/propdeck/internal/models"
)

const (
	defaultCenterText = "#1 CHOICE"
	diagramWidth      = 420.0
	maxStatColumns    = 4
)

// DefaultStats is the canned "by the numbers" strip used when a section
// supplies none of its own.
var DefaultStats = []models.StatItem{
	{Value: "500+", Label: "Projects Delivered"},
	{Value: "98%", Label: "Client Satisfaction"},
	{Value: "10+", Label: "Years of Experience"},
	{Value: "24/7", Label: "Support Available"},
}

// renderWhyChooseUs dispatches between the three mutually exclusive modes:
// circular-logo, image and the default numbered feature grid.
func renderWhyChooseUs(c *canvas, f Frame, section models.Section, ctx pageContext) {
	fields := section.WhyChooseUs
	switch fields.ResolveMode() {
	case models.WhyChooseUsModeDiagram:
		renderWhyChooseUsDiagram(c, f, section, fields, ctx)
	case models.WhyChooseUsModeImage:
		renderWhyChooseUsImage(c, f, section, fields, ctx)
	default:
		renderWhyChooseUsGrid(c, f, section, fields, ctx)
	}
}

func renderWhyChooseUsDiagram(c *canvas, f Frame, section models.Section, fields *models.WhyChooseUsFields, ctx pageContext) {
	y := sectionHeader(c, f, section.Title, ctx)

	centerText := defaultCenterText
	companyName := ctx.design.CompanyName
	if fields != nil {
		if fields.CenterText != "" {
			centerText = fields.CenterText
		}
		if fields.CompanyName != "" {
			companyName = fields.CompanyName
		}
	}

	badge := diagram.Generate(centerText, companyName, ctx.primary(), 400)
	scale := diagramWidth / badge.W
	c.add(draw.Place(badge.Ops, f.X+(f.W-diagramWidth)/2, y, scale)...)

	stats := DefaultStats
	if fields != nil && len(fields.Stats) > 0 {
		stats = fields.Stats
	}
	renderStatStrip(c, f, y+diagramWidth*badge.H/badge.W+24, stats, ctx.primary(), ctx.palette.Muted)
}

func renderWhyChooseUsImage(c *canvas, f Frame, section models.Section, fields *models.WhyChooseUsFields, ctx pageContext) {
	y := sectionHeader(c, f, section.Title, ctx)
	c.add(draw.Image{
		X: f.X + pageMargin, Y: y + 10,
		W: f.W - 2*pageMargin, H: 300,
		URL: fields.ImageURL,
	})
}

func renderWhyChooseUsGrid(c *canvas, f Frame, section models.Section, fields *models.WhyChooseUsFields, ctx pageContext) {
	c.add(draw.Rect{
		X: f.X, Y: f.Y, W: f.W, H: f.H,
		Fill: draw.Paint{Gradient: draw.Linear(135, ctx.secondary(), ctx.primary().WithAlpha("ee"))},
	})
	y := lightSectionHeader(c, f, section.Title, ctx)
	y += 14

	var features []models.FeatureItem
	var stats []models.StatItem
	if fields != nil {
		features = fields.Features
		stats = fields.Stats
	}

	gutter := 36.0
	columnWidth := (f.W - 2*pageMargin - gutter) / 2
	textWidth := columnWidth - 46

	rowTop := y
	var rowBottom float64
	for i, feature := range features {
		column := i % 2
		if column == 0 && i > 0 {
			rowTop = rowBottom + 26
		}
		x := f.X + pageMargin + float64(column)*(columnWidth+gutter)
		itemY := rowTop

		c.add(draw.Text{
			X: x, Y: itemY + 24,
			Content: feature.Number,
			Size:    36, Weight: 700,
			Color:   "#ffffff26",
		})

		titleLines := draw.Wrap(feature.Title, 10, textWidth)
		textY := itemY + 12
		for _, line := range titleLines {
			c.add(draw.Text{
				X: x + 46, Y: textY,
				Content:       line,
				Size:          10,
				Weight:        700,
				Color:         "#ffffff",
				LetterSpacing: 1.2,
			})
			textY += 14
		}
		textY += 3
		for _, line := range draw.Wrap(feature.Description, 9, textWidth) {
			c.add(draw.Text{
				X: x + 46, Y: textY,
				Content: line,
				Size:    9,
				Color:   "#ffffffb3",
			})
			textY += 13
		}
		if textY > rowBottom {
			rowBottom = textY
		}
	}

	if len(stats) > 0 {
		renderStatStrip(c, f, rowBottom+40, stats, "#ffffff", "#ffffff99")
	}
}

// renderStatStrip draws the centered value/label grid. Column count is the
// stat count capped at four.
func renderStatStrip(c *canvas, f Frame, y float64, stats []models.StatItem, valueColor, labelColor draw.Color) {
	if len(stats) == 0 {
		return
	}
	columns := len(stats)
	if columns > maxStatColumns {
		columns = maxStatColumns
	}
	columnWidth := (f.W - 2*pageMargin) / float64(columns)
	for i, stat := range stats {
		if i >= columns {
			break
		}
		cx := f.X + pageMargin + columnWidth*(float64(i)+0.5)
		c.add(draw.Text{
			X: cx, Y: y,
			Content: stat.Value,
			Size:    20, Weight: 700,
			Color:  valueColor,
			Anchor: draw.AnchorMiddle,
		})
		c.add(draw.Text{
			X: cx, Y: y + 16,
			Content: stat.Label,
			Size:    8,
			Color:   labelColor,
			Anchor:  draw.AnchorMiddle,
		})
	}
}
