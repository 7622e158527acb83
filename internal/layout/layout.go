// internal/layout/layout.go

// Package layout turns composed pages into drawing-instruction streams. Each
// section type has one committed layout routine; the preview and export
// adapters replay the identical instruction list.
package layout

import (
	"github.com/propdeck/propdeck/internal/compose"
	"github.com/propdeck/propdeck/internal/draw"
	"github.com/propdeck/propdeck/internal/models"
)

// A4 portrait in points.
const (
	PageWidth  = 595.28
	PageHeight = 841.89

	pageMargin = 45.0
)

// Frame is the region of the page a section lays out into.
type Frame struct {
	X, Y, W, H float64
}

func (f Frame) right() float64  { return f.X + f.W }
func (f Frame) bottom() float64 { return f.Y + f.H }

// pageContext carries per-page render state. The palette is computed once
// per page and applied consistently to every section on it.
type pageContext struct {
	design  models.DesignSettings
	palette Palette
	client  string
	compact bool
}

func (ctx pageContext) primary() draw.Color   { return draw.Color(ctx.design.PrimaryColor) }
func (ctx pageContext) secondary() draw.Color { return draw.Color(ctx.design.SecondaryColor) }
func (ctx pageContext) accent() draw.Color    { return draw.Color(ctx.design.AccentColor) }

type canvas struct {
	ops []draw.Op
}

func (c *canvas) add(ops ...draw.Op) {
	c.ops = append(c.ops, ops...)
}

// RenderPage lays out one composed page. A single section receives the full
// page; a pair splits it horizontally, and sections render their compact
// variants.
func RenderPage(page compose.Page, design models.DesignSettings, clientName string) draw.Drawing {
	design = design.Normalize()
	ctx := pageContext{
		design:  design,
		palette: PaletteFor(design),
		client:  clientName,
		compact: len(page) > 1,
	}

	c := &canvas{}
	c.add(draw.Rect{X: 0, Y: 0, W: PageWidth, H: PageHeight, Fill: draw.Solid(ctx.palette.PageBg)})

	frames := framesFor(len(page))
	for i, section := range page {
		renderSection(c, frames[i], section, ctx)
	}

	return draw.Drawing{W: PageWidth, H: PageHeight, Ops: c.ops}
}

func framesFor(count int) []Frame {
	if count <= 1 {
		return []Frame{{X: 0, Y: 0, W: PageWidth, H: PageHeight}}
	}
	half := PageHeight / 2
	return []Frame{
		{X: 0, Y: 0, W: PageWidth, H: half},
		{X: 0, Y: half, W: PageWidth, H: half},
	}
}

func renderSection(c *canvas, f Frame, section models.Section, ctx pageContext) {
	switch section.Type {
	case models.SectionCover:
		renderCover(c, f, section, ctx)
	case models.SectionDeliverables:
		renderDeliverables(c, f, section, ctx)
	case models.SectionTimeline:
		renderTimeline(c, f, section, ctx)
	case models.SectionWhyChooseUs:
		renderWhyChooseUs(c, f, section, ctx)
	case models.SectionPricing:
		renderPricing(c, f, section, ctx)
	case models.SectionNextSteps:
		renderNextSteps(c, f, section, ctx)
	case models.SectionContact:
		renderContact(c, f, section, ctx)
	default:
		// project-summary, approach, terms and any future text variant share
		// the plain content treatment.
		renderContent(c, f, section, ctx)
	}
}

// sectionHeader draws the title with its gradient underline bar and returns
// the Y coordinate content should start at.
func sectionHeader(c *canvas, f Frame, title string, ctx pageContext) float64 {
	baseline := f.Y + pageMargin + 22
	c.add(draw.Text{
		X: f.X + pageMargin, Y: baseline,
		Content: title,
		Size:    22, Weight: 700,
		Color: ctx.palette.Heading,
	})
	c.add(draw.Rect{
		X: f.X + pageMargin, Y: baseline + 10,
		W: 52, H: 3, Radius: 1.5,
		Fill: draw.Paint{Gradient: draw.Linear(90, ctx.primary(), ctx.accent())},
	})
	return baseline + 38
}

// lightSectionHeader is the header variant for pages with their own dark
// gradient background: white title, solid accent underline.
func lightSectionHeader(c *canvas, f Frame, title string, ctx pageContext) float64 {
	baseline := f.Y + pageMargin + 22
	c.add(draw.Text{
		X: f.X + pageMargin, Y: baseline,
		Content: title,
		Size:    22, Weight: 700,
		Color: "#ffffff",
	})
	c.add(draw.Rect{
		X: f.X + pageMargin, Y: baseline + 10,
		W: 52, H: 3, Radius: 1.5,
		Fill: draw.Solid(ctx.accent()),
	})
	return baseline + 38
}
