// internal/render/pdfexport/pdfexport.go

// Package pdfexport renders drawing-instruction streams into an A4 PDF. It
// is the second consumer of the shared layout engine; a proposal exported
// here matches the SVG preview page for page.
package pdfexport

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"math"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog/log"

	"github.com/propdeck/propdeck/internal/compose"
	"github.com/propdeck/propdeck/internal/draw"
	"github.com/propdeck/propdeck/internal/layout"
	"github.com/propdeck/propdeck/internal/models"
)

// minPDFSize guards against handing out a truncated document.
const minPDFSize = 100

const imageFetchTimeout = 5 * time.Second

// Exporter renders proposals to PDF bytes. A fresh document is built per
// call, so one Exporter serves concurrent requests.
type Exporter struct {
	client *http.Client
}

func New() *Exporter {
	return &Exporter{client: &http.Client{Timeout: imageFetchTimeout}}
}

// Export renders every composed page of the proposal into a single PDF.
func (e *Exporter) Export(ctx context.Context, p *models.Proposal) ([]byte, error) {
	design := p.Design.Normalize()

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	defer pdf.Close()

	r := &replayer{
		ctx:    ctx,
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		client: e.client,
		images: map[string]bool{},
	}

	for _, page := range compose.Pages(p.Sections) {
		pdf.AddPage()
		for _, op := range layout.RenderPage(page, design, p.ClientName).Ops {
			r.write(op)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	if pdf.Err() {
		return nil, fmt.Errorf("pdf render: %w", pdf.Error())
	}
	if buf.Len() < minPDFSize {
		return nil, fmt.Errorf("pdf output suspiciously small (%d bytes)", buf.Len())
	}
	return buf.Bytes(), nil
}

// Filename derives a safe attachment name from the proposal title.
func Filename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	name := b.String()
	if strings.Trim(name, "_") == "" {
		name = "proposal"
	}
	return name + ".pdf"
}

// replayer translates one drawing op at a time onto the current PDF page.
type replayer struct {
	ctx    context.Context
	pdf    *fpdf.Fpdf
	tr     func(string) string
	client *http.Client
	images map[string]bool
}

// Core fonts cover cp1252 only; glyphs outside it get close substitutes.
var glyphFallback = strings.NewReplacer("→", "»")

func (r *replayer) write(op draw.Op) {
	switch v := op.(type) {
	case draw.Rect:
		r.writeRect(v)
	case draw.Circle:
		r.writeCircle(v)
	case draw.Line:
		rr, g, b, a := parseColor(v.Color)
		r.pdf.SetDrawColor(rr, g, b)
		r.pdf.SetLineWidth(v.Width)
		r.withAlpha(a, func() {
			r.pdf.Line(v.X1, v.Y1, v.X2, v.Y2)
		})
	case draw.Text:
		r.writeText(v)
	case draw.Image:
		r.writeImage(v)
	case draw.Path:
		r.writePath(v)
	}
}

func (r *replayer) writeRect(v draw.Rect) {
	if v.Fill.Gradient != nil {
		r.pdf.ClipRoundedRect(v.X, v.Y, v.W, v.H, v.Radius, false)
		r.fillGradient(v.Fill.Gradient, v.X, v.Y, v.W, v.H)
		r.pdf.ClipEnd()
		return
	}
	rr, g, b, a := parseColor(v.Fill.Color)
	r.pdf.SetFillColor(rr, g, b)
	r.withAlpha(paintAlpha(v.Fill, a), func() {
		if v.Radius > 0 {
			r.pdf.RoundedRect(v.X, v.Y, v.W, v.H, v.Radius, "1234", "F")
		} else {
			r.pdf.Rect(v.X, v.Y, v.W, v.H, "F")
		}
	})
}

func (r *replayer) writeCircle(v draw.Circle) {
	if v.Fill.Gradient != nil {
		r.pdf.ClipCircle(v.CX, v.CY, v.R, false)
		r.fillGradient(v.Fill.Gradient, v.CX-v.R, v.CY-v.R, 2*v.R, 2*v.R)
		r.pdf.ClipEnd()
	} else if v.Fill.Color != "" {
		rr, g, b, a := parseColor(v.Fill.Color)
		r.pdf.SetFillColor(rr, g, b)
		r.withAlpha(paintAlpha(v.Fill, a), func() {
			r.pdf.Circle(v.CX, v.CY, v.R, "F")
		})
	}
	if v.Stroke != "" {
		rr, g, b, a := parseColor(v.Stroke)
		r.pdf.SetDrawColor(rr, g, b)
		r.pdf.SetLineWidth(v.StrokeWidth)
		r.withAlpha(a, func() {
			r.pdf.Circle(v.CX, v.CY, v.R, "D")
		})
	}
}

func (r *replayer) writeText(v draw.Text) {
	style := ""
	if v.Weight >= 600 {
		style = "B"
	}
	r.pdf.SetFont("Helvetica", style, v.Size)

	rr, g, b, a := parseColor(v.Color)
	r.pdf.SetTextColor(rr, g, b)

	content := r.tr(glyphFallback.Replace(v.Content))
	x := v.X
	switch v.Anchor {
	case draw.AnchorMiddle:
		x -= r.pdf.GetStringWidth(content) / 2
	case draw.AnchorEnd:
		x -= r.pdf.GetStringWidth(content)
	}
	r.withAlpha(a, func() {
		r.pdf.Text(x, v.Y, content)
	})
}

func (r *replayer) writeImage(v draw.Image) {
	name, imageType, ok := r.registerImage(v.URL, v.Invert)
	if !ok {
		return
	}
	opts := fpdf.ImageOptions{ImageType: imageType}
	alpha := 1.0
	if v.Opacity > 0 && v.Opacity < 1 {
		alpha = v.Opacity
	}
	r.withAlpha(alpha, func() {
		r.pdf.ImageOptions(name, v.X, v.Y, v.W, v.H, false, opts, 0, "")
	})
}

// registerImage fetches and registers a remote image once per document. The
// inverted variant registers under its own name so both renditions can share
// a page. A failed fetch logs and skips the op; the export still succeeds.
func (r *replayer) registerImage(url string, invert bool) (string, string, bool) {
	if url == "" {
		return "", "", false
	}
	name := url
	if invert {
		name = url + "#inverted"
	}
	if r.images[name] {
		return name, "", true
	}

	req, err := http.NewRequestWithContext(r.ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Ctx(r.ctx).Warn().Err(err).Str("url", url).Msg("skipping image")
		return "", "", false
	}
	resp, err := r.client.Do(req)
	if err != nil {
		log.Ctx(r.ctx).Warn().Err(err).Str("url", url).Msg("skipping image")
		return "", "", false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Ctx(r.ctx).Warn().Int("status", resp.StatusCode).Str("url", url).Msg("skipping image")
		return "", "", false
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Ctx(r.ctx).Warn().Err(err).Str("url", url).Msg("skipping image")
		return "", "", false
	}

	imageType := imageTypeFor(resp.Header.Get("Content-Type"), url)
	if invert {
		inverted, err := invertImage(body)
		if err != nil {
			log.Ctx(r.ctx).Warn().Err(err).Str("url", url).Msg("rendering image without inversion")
		} else {
			body = inverted
			imageType = "png"
		}
	}

	r.pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(body))
	if r.pdf.Err() {
		log.Ctx(r.ctx).Warn().Str("url", url).Str("error", r.pdf.Error().Error()).Msg("skipping image")
		r.pdf.ClearError()
		return "", "", false
	}
	r.images[name] = true
	return name, imageType, true
}

// invertImage flips every RGB channel while keeping alpha, matching the CSS
// invert filter the preview applies to logos on dark pages. Output is PNG
// regardless of the source format.
func invertImage(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			dst.SetNRGBA(x, y, color.NRGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// imageTypeFor resolves the format name fpdf expects, preferring the
// response content type over the URL extension.
func imageTypeFor(contentType, url string) string {
	switch strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0])) {
	case "image/png":
		return "png"
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/gif":
		return "gif"
	}
	switch ext := strings.ToLower(strings.TrimPrefix(path.Ext(url), ".")); ext {
	case "png", "jpg", "jpeg", "gif":
		return ext
	}
	return "png"
}

func (r *replayer) writePath(v draw.Path) {
	points := flattenPath(v.Cmds)
	if len(points) < 2 {
		return
	}

	if v.Fill.Gradient != nil {
		minX, minY, maxX, maxY := bounds(points)
		r.pdf.ClipPolygon(points, false)
		r.fillGradient(v.Fill.Gradient, minX, minY, maxX-minX, maxY-minY)
		r.pdf.ClipEnd()
	} else if v.Fill.Color != "" {
		rr, g, b, a := parseColor(v.Fill.Color)
		r.pdf.SetFillColor(rr, g, b)
		r.withAlpha(paintAlpha(v.Fill, a), func() {
			r.pdf.Polygon(points, "F")
		})
	}
	if v.Stroke != "" {
		rr, g, b, a := parseColor(v.Stroke)
		r.pdf.SetDrawColor(rr, g, b)
		r.pdf.SetLineWidth(v.StrokeWidth)
		r.withAlpha(a, func() {
			r.pdf.Polygon(points, "D")
		})
	}
}

// flattenPath reduces a command list to a polygon outline. Arcs are sampled
// at two-degree steps, close enough that the wedge edges read as smooth
// curves at print resolution.
func flattenPath(cmds []draw.PathCmd) []fpdf.PointType {
	var points []fpdf.PointType
	for _, cmd := range cmds {
		switch cmd.Kind {
		case draw.MoveTo, draw.LineTo:
			points = append(points, fpdf.PointType{X: cmd.X, Y: cmd.Y})
		case draw.ArcAround:
			start, end := cmd.StartDeg, cmd.EndDeg
			if !cmd.Clockwise && end > start {
				end -= 360
			}
			if cmd.Clockwise && end < start {
				end += 360
			}
			steps := int(math.Abs(end-start)/2) + 1
			for s := 0; s <= steps; s++ {
				deg := start + (end-start)*float64(s)/float64(steps)
				rad := deg * math.Pi / 180
				points = append(points, fpdf.PointType{
					X: cmd.CX + cmd.R*math.Cos(rad),
					Y: cmd.CY + cmd.R*math.Sin(rad),
				})
			}
		case draw.ClosePath:
		}
	}
	return points
}

func bounds(points []fpdf.PointType) (minX, minY, maxX, maxY float64) {
	minX, minY = points[0].X, points[0].Y
	maxX, maxY = minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

// fillGradient paints a linear gradient over the given box, assuming the
// target shape is already clipped. Gradients with more than two stops are
// approximated by banding the box along the dominant axis.
func (r *replayer) fillGradient(g *draw.Gradient, x, y, w, h float64) {
	rad := (g.Angle - 90) * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	x1 := clamp01(0.5 - 0.5*dx)
	y1 := clamp01(0.5 - 0.5*dy)
	x2 := clamp01(0.5 + 0.5*dx)
	y2 := clamp01(0.5 + 0.5*dy)

	if len(g.Stops) <= 2 {
		from, to := g.Stops[0].Color, g.Stops[len(g.Stops)-1].Color
		r1, g1, b1, _ := parseColor(from)
		r2, g2, b2, _ := parseColor(to)
		r.pdf.LinearGradient(x, y, w, h, r1, g1, b1, r2, g2, b2, x1, y1, x2, y2)
		return
	}

	horizontal := math.Abs(dx) >= math.Abs(dy)
	for i := 0; i < len(g.Stops)-1; i++ {
		from, to := g.Stops[i], g.Stops[i+1]
		r1, g1, b1, _ := parseColor(from.Color)
		r2, g2, b2, _ := parseColor(to.Color)
		if horizontal {
			bx := x + w*from.Offset
			bw := w * (to.Offset - from.Offset)
			r.pdf.LinearGradient(bx, y, bw, h, r1, g1, b1, r2, g2, b2, 0, 0.5, 1, 0.5)
		} else {
			by := y + h*from.Offset
			bh := h * (to.Offset - from.Offset)
			r.pdf.LinearGradient(x, by, w, bh, r1, g1, b1, r2, g2, b2, 0.5, 0, 0.5, 1)
		}
	}
}

func (r *replayer) withAlpha(alpha float64, fn func()) {
	if alpha >= 1 {
		fn()
		return
	}
	r.pdf.SetAlpha(alpha, "Normal")
	fn()
	r.pdf.SetAlpha(1, "Normal")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func paintAlpha(p draw.Paint, colorAlpha float64) float64 {
	if p.Opacity > 0 && p.Opacity < 1 {
		return p.Opacity
	}
	return colorAlpha
}

// parseColor splits a hex color into RGB ints and an alpha in 0..1. The
// 8-digit form carries the alpha in its last byte.
func parseColor(c draw.Color) (int, int, int, float64) {
	s := strings.TrimPrefix(string(c), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 && len(s) != 8 {
		return 0, 0, 0, 1
	}
	var rr, g, b int
	if _, err := fmt.Sscanf(s[:6], "%02x%02x%02x", &rr, &g, &b); err != nil {
		return 0, 0, 0, 1
	}
	alpha := 1.0
	if len(s) == 8 {
		var a int
		if _, err := fmt.Sscanf(s[6:8], "%02x", &a); err == nil {
			alpha = float64(a) / 255
		}
	}
	return rr, g, b, alpha
}
