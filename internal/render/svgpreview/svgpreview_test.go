// internal/render/svgpreview/svgpreview_test.go
package svgpreview

import (
	"context"
	"strings"
	"testing"

	"github.com/propdeck/propdeck/internal/draw"
	"github.com/propdeck/propdeck/internal/models"
)

func TestRenderBasicOps(t *testing.T) {
	d := draw.Drawing{
		W: 100, H: 50,
		Ops: []draw.Op{
			draw.Rect{X: 0, Y: 0, W: 100, H: 50, Fill: draw.Solid("#0d4f4f")},
			draw.Circle{CX: 50, CY: 25, R: 10, Fill: draw.Solid("#ffffff"), Stroke: "#000000", StrokeWidth: 2},
			draw.Text{X: 50, Y: 25, Content: "Hello", Size: 12, Weight: 700, Anchor: draw.AnchorMiddle, Color: "#111111"},
		},
	}

	var b strings.Builder
	Render(&b, d)
	out := b.String()

	for _, want := range []string{
		"<svg", "</svg>",
		`viewBox="0 0 100 50"`,
		"fill:#0d4f4f",
		"Hello",
		"font-weight:700",
		"text-anchor:middle",
		"stroke:#000000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderGradientDefs(t *testing.T) {
	d := draw.Drawing{
		W: 10, H: 10,
		Ops: []draw.Op{
			draw.Rect{X: 0, Y: 0, W: 10, H: 10, Fill: draw.Paint{Gradient: draw.Linear(135, "#0d4f4f", "#1a1a2e")}},
		},
	}

	var b strings.Builder
	Render(&b, d)
	out := b.String()

	if !strings.Contains(out, "<linearGradient") {
		t.Fatal("expected a gradient definition")
	}
	if !strings.Contains(out, "fill:url(#grad1)") {
		t.Fatal("expected the rect to reference the gradient")
	}
}

func TestRenderAlphaColors(t *testing.T) {
	d := draw.Drawing{
		W: 10, H: 10,
		Ops: []draw.Op{
			draw.Rect{X: 0, Y: 0, W: 10, H: 10, Fill: draw.Solid(draw.Color("#0d4f4f").WithAlpha("40"))},
		},
	}

	var b strings.Builder
	Render(&b, d)
	out := b.String()

	if !strings.Contains(out, "fill:#0d4f4f") {
		t.Fatal("expected six-digit base color")
	}
	if !strings.Contains(out, "fill-opacity:0.251") {
		t.Fatalf("expected alpha suffix as fill-opacity, got: %s", out)
	}
}

func TestArcSweep(t *testing.T) {
	cw := draw.PathCmd{Kind: draw.ArcAround, StartDeg: -90, EndDeg: 0, Clockwise: true}
	if got := arcSweep(cw); got != 90 {
		t.Fatalf("clockwise sweep = %g, want 90", got)
	}
	ccw := draw.PathCmd{Kind: draw.ArcAround, StartDeg: 0, EndDeg: -90}
	if got := arcSweep(ccw); got != 90 {
		t.Fatalf("counter-clockwise sweep = %g, want 90", got)
	}
}

func TestPagesComponent(t *testing.T) {
	p := models.NewDefaultProposal()

	var b strings.Builder
	if err := Pages(&p).Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := b.String()

	if !strings.Contains(out, `class="preview-pages"`) {
		t.Fatal("missing preview wrapper")
	}
	if !strings.Contains(out, "Poppins") {
		t.Fatal("expected the default font stack on the wrapper")
	}
	if strings.Count(out, `class="preview-page"`) < 5 {
		t.Fatalf("expected multiple page cards, got %d", strings.Count(out, `class="preview-page"`))
	}
}
