// internal/render/svgpreview/svgpreview.go

// Package svgpreview renders drawing-instruction streams as inline SVG for
// the browser preview. Geometry comes from the shared layout engine; this
// adapter only translates instructions to SVG elements.
package svgpreview

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/a-h/templ"
	svg "github.com/ajstarks/svgo/float"

	"github.com/propdeck/propdeck/internal/compose"
	"github.com/propdeck/propdeck/internal/draw"
	"github.com/propdeck/propdeck/internal/layout"
	"github.com/propdeck/propdeck/internal/models"
)

// Render writes one page drawing as a complete SVG element. The viewBox is
// the drawing's own coordinate space so the caller can scale freely with CSS.
func Render(w io.Writer, d draw.Drawing) {
	canvas := svg.New(w)
	canvas.Startview(d.W, d.H, 0, 0, d.W, d.H)

	grads := collectGradients(d.Ops)
	if len(grads) > 0 {
		canvas.Def()
		for id, g := range grads {
			writeGradient(canvas, id, g)
		}
		canvas.DefEnd()
	}

	for _, op := range d.Ops {
		writeOp(canvas, op, grads)
	}
	canvas.End()
}

// gradientKey dedupes identical gradients so each is defined once.
func gradientKey(g *draw.Gradient) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%g", g.Angle)
	for _, s := range g.Stops {
		fmt.Fprintf(&b, "|%g:%s", s.Offset, s.Color)
	}
	return b.String()
}

func collectGradients(ops []draw.Op) map[string]*draw.Gradient {
	grads := map[string]*draw.Gradient{}
	keys := map[string]string{}
	add := func(p draw.Paint) {
		if p.Gradient == nil {
			return
		}
		key := gradientKey(p.Gradient)
		if _, seen := keys[key]; seen {
			return
		}
		id := fmt.Sprintf("grad%d", len(grads)+1)
		keys[key] = id
		grads[id] = p.Gradient
	}
	for _, op := range ops {
		switch v := op.(type) {
		case draw.Rect:
			add(v.Fill)
		case draw.Circle:
			add(v.Fill)
		case draw.Path:
			add(v.Fill)
		}
	}
	return grads
}

func writeGradient(canvas *svg.SVG, id string, g *draw.Gradient) {
	// Angle 90 runs left to right; convert to endpoint percentages.
	rad := (g.Angle - 90) * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	x1 := uint8(clampPct(50 - 50*dx))
	y1 := uint8(clampPct(50 - 50*dy))
	x2 := uint8(clampPct(50 + 50*dx))
	y2 := uint8(clampPct(50 + 50*dy))

	stops := make([]svg.Offcolor, len(g.Stops))
	for i, s := range g.Stops {
		color, opacity := splitAlpha(s.Color)
		stops[i] = svg.Offcolor{Offset: uint8(s.Offset * 100), Color: color, Opacity: opacity}
	}
	canvas.LinearGradient(id, x1, y1, x2, y2, stops)
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// splitAlpha separates an 8-digit hex color into its 6-digit base and an
// opacity in 0..1. Plain colors pass through fully opaque.
func splitAlpha(c draw.Color) (string, float64) {
	s := string(c)
	if len(s) == 9 && s[0] == '#' {
		var alpha int
		if _, err := fmt.Sscanf(s[7:9], "%02x", &alpha); err == nil {
			return s[:7], float64(alpha) / 255
		}
	}
	return s, 1
}

func fillStyle(p draw.Paint, grads map[string]*draw.Gradient) string {
	if p.Gradient != nil {
		key := gradientKey(p.Gradient)
		for id, g := range grads {
			if gradientKey(g) == key {
				return fmt.Sprintf("fill:url(#%s)", id)
			}
		}
	}
	if p.Color == "" {
		return "fill:none"
	}
	color, opacity := splitAlpha(p.Color)
	style := "fill:" + color
	if p.Opacity > 0 && p.Opacity < 1 {
		opacity = p.Opacity
	}
	if opacity < 1 {
		style += fmt.Sprintf(";fill-opacity:%.3f", opacity)
	}
	return style
}

func writeOp(canvas *svg.SVG, op draw.Op, grads map[string]*draw.Gradient) {
	switch v := op.(type) {
	case draw.Rect:
		if v.Radius > 0 {
			canvas.Roundrect(v.X, v.Y, v.W, v.H, v.Radius, v.Radius, fillStyle(v.Fill, grads))
		} else {
			canvas.Rect(v.X, v.Y, v.W, v.H, fillStyle(v.Fill, grads))
		}
	case draw.Circle:
		style := fillStyle(v.Fill, grads)
		if v.Stroke != "" {
			color, opacity := splitAlpha(v.Stroke)
			style += fmt.Sprintf(";stroke:%s;stroke-width:%g", color, v.StrokeWidth)
			if opacity < 1 {
				style += fmt.Sprintf(";stroke-opacity:%.3f", opacity)
			}
		}
		canvas.Circle(v.CX, v.CY, v.R, style)
	case draw.Line:
		color, opacity := splitAlpha(v.Color)
		style := fmt.Sprintf("stroke:%s;stroke-width:%g", color, v.Width)
		if opacity < 1 {
			style += fmt.Sprintf(";stroke-opacity:%.3f", opacity)
		}
		canvas.Line(v.X1, v.Y1, v.X2, v.Y2, style)
	case draw.Text:
		writeText(canvas, v)
	case draw.Image:
		style := ""
		if v.Opacity > 0 && v.Opacity < 1 {
			style = fmt.Sprintf("opacity:%.3f", v.Opacity)
		}
		if v.Invert {
			if style != "" {
				style += ";"
			}
			style += "filter:invert(1)"
		}
		if style != "" {
			canvas.Image(v.X, v.Y, int(v.W), int(v.H), v.URL, style, `preserveAspectRatio="xMidYMid meet"`)
		} else {
			canvas.Image(v.X, v.Y, int(v.W), int(v.H), v.URL, `preserveAspectRatio="xMidYMid meet"`)
		}
	case draw.Path:
		writePath(canvas, v, grads)
	}
}

func writeText(canvas *svg.SVG, t draw.Text) {
	color, opacity := splitAlpha(t.Color)
	var style strings.Builder
	fmt.Fprintf(&style, "font-size:%gpx;fill:%s", t.Size, color)
	if opacity < 1 {
		fmt.Fprintf(&style, ";fill-opacity:%.3f", opacity)
	}
	if t.Weight != 0 && t.Weight != 400 {
		fmt.Fprintf(&style, ";font-weight:%d", t.Weight)
	}
	if t.LetterSpacing != 0 {
		fmt.Fprintf(&style, ";letter-spacing:%gpx", t.LetterSpacing)
	}
	switch t.Anchor {
	case draw.AnchorMiddle:
		style.WriteString(";text-anchor:middle")
	case draw.AnchorEnd:
		style.WriteString(";text-anchor:end")
	}
	canvas.Text(t.X, t.Y, t.Content, style.String())
}

func writePath(canvas *svg.SVG, p draw.Path, grads map[string]*draw.Gradient) {
	var d strings.Builder
	for _, cmd := range p.Cmds {
		switch cmd.Kind {
		case draw.MoveTo:
			fmt.Fprintf(&d, "M %.2f %.2f ", cmd.X, cmd.Y)
		case draw.LineTo:
			fmt.Fprintf(&d, "L %.2f %.2f ", cmd.X, cmd.Y)
		case draw.ArcAround:
			endX, endY := arcPoint(cmd, cmd.EndDeg)
			large := 0
			if sweep := arcSweep(cmd); sweep > 180 {
				large = 1
			}
			dir := 0
			if cmd.Clockwise {
				dir = 1
			}
			fmt.Fprintf(&d, "A %.2f %.2f 0 %d %d %.2f %.2f ", cmd.R, cmd.R, large, dir, endX, endY)
		case draw.ClosePath:
			d.WriteString("Z ")
		}
	}

	style := fillStyle(p.Fill, grads)
	if p.Stroke != "" {
		color, opacity := splitAlpha(p.Stroke)
		style += fmt.Sprintf(";stroke:%s;stroke-width:%g", color, p.StrokeWidth)
		if opacity < 1 {
			style += fmt.Sprintf(";stroke-opacity:%.3f", opacity)
		}
	}
	canvas.Path(strings.TrimSpace(d.String()), style)
}

func arcPoint(cmd draw.PathCmd, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cmd.CX + cmd.R*math.Cos(rad), cmd.CY + cmd.R*math.Sin(rad)
}

// arcSweep returns the swept angle in degrees, 0..360.
func arcSweep(cmd draw.PathCmd) float64 {
	sweep := cmd.EndDeg - cmd.StartDeg
	if !cmd.Clockwise {
		sweep = -sweep
	}
	for sweep < 0 {
		sweep += 360
	}
	for sweep > 360 {
		sweep -= 360
	}
	return sweep
}

// Pages renders every composed page of the proposal as a stacked list of
// scaled page cards for the editor preview pane.
func Pages(p *models.Proposal) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		design := p.Design.Normalize()
		fontStack := design.FontFamily.Stack()

		var b strings.Builder
		fmt.Fprintf(&b, `<div class="preview-pages" style="font-family:%s">`, fontStack)
		for i, page := range compose.Pages(p.Sections) {
			fmt.Fprintf(&b, `<div class="preview-page" data-page="%d">`, i+1)
			Render(&b, layout.RenderPage(page, design, p.ClientName))
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
