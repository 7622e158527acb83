// internal/diagram/diagram.go

// Package diagram generates the radial four-segment marketing badge used by
// the why-choose-us circular-logo layout. There is exactly one
// implementation; the preview and the export both place the drawing it
// returns.
package diagram

import (
	"math"
	"strings"

	"github.com/propdeck/propdeck/internal/draw"
)

// Segment copy is fixed; only the center medallion text, company name,
// primary color and overall size vary.
type segment struct {
	number      string
	title       string
	description string
}

var segments = [4]segment{
	{
		number:      "01",
		title:       "PROVEN ROI\nACCELERATION",
		description: "We make brands impossible\nto ignore. Your growth\nbecomes our legacy.",
	},
	{
		number:      "02",
		title:       "FULL-SPECTRUM\nCREATIVE\nPOWERHOUSE",
		description: "We don't make ads,\nwe craft experiences.\nFrom CGI to viral content.",
	},
	{
		number:      "03",
		title:       "STRATEGIC\nPARTNERSHIP\nAPPROACH",
		description: "We succeed when you\ndominate. Your competitors\nbecome our case studies.",
	},
	{
		number:      "04",
		title:       "CUTTING-EDGE\nTECHNOLOGY\n& INSIGHTS",
		description: "While others catch up,\nwe stay ahead. Next-gen\nstrategies for tomorrow.",
	},
}

const (
	lightSegmentColor = draw.Color("#E5E5E5")
	darkSegmentColor  = draw.Color("#2C2C2C")
	// Letterbox margin on all four sides so no label clips at any size.
	padding = 200.0

	centerCaption = "OVER OTHERS"
)

// SegmentFill returns the alternating fill for segment index i:
// light gray, primary, near-black, primary.
func SegmentFill(i int, primary draw.Color) draw.Color {
	colors := [4]draw.Color{lightSegmentColor, primary, darkSegmentColor, primary}
	return colors[i%4]
}

// Generate builds the badge as a self-contained drawing. The ring occupies a
// size-by-size square centered inside the letterboxed bounding box.
func Generate(centerText, companyName string, primary draw.Color, size float64) draw.Drawing {
	viewBox := size + padding*2
	cx := viewBox / 2
	cy := viewBox / 2
	outerR := size/2 - 15
	innerR := size / 7
	anglePer := 360.0 / float64(len(segments))

	var ops []draw.Op

	for i, seg := range segments {
		// 12 o'clock start, clockwise. Page coordinates put -90deg at the top.
		startDeg := -90 + anglePer*float64(i)
		endDeg := startDeg + anglePer
		fill := SegmentFill(i, primary)

		ops = append(ops, wedge(cx, cy, outerR, innerR, startDeg, endDeg, fill))

		midDeg := startDeg + anglePer/2
		textR := (outerR + innerR) / 2
		tx := cx + textR*math.Cos(midDeg*math.Pi/180)
		ty := cy + textR*math.Sin(midDeg*math.Pi/180)

		light := fill == lightSegmentColor
		numberColor := draw.Color("#ffffff")
		titleColor := draw.Color("#ffffff")
		descColor := draw.Color("#fffffff2")
		if light {
			numberColor = "#000000"
			titleColor = "#000000"
			descColor = "#444444"
		}

		ops = append(ops, draw.Text{
			X: tx, Y: ty - 50,
			Content: seg.number,
			Size:    48, Weight: 700,
			Color:  numberColor,
			Anchor: draw.AnchorMiddle,
		})
		for li, line := range strings.Split(seg.title, "\n") {
			ops = append(ops, draw.Text{
				X: tx, Y: ty - 15 + float64(li)*18,
				Content: line,
				Size:    16, Weight: 700,
				Color:         titleColor,
				Anchor:        draw.AnchorMiddle,
				LetterSpacing: 1.2,
			})
		}
		for li, line := range strings.Split(seg.description, "\n") {
			ops = append(ops, draw.Text{
				X: tx, Y: ty + 40 + float64(li)*15,
				Content: line,
				Size:    13,
				Color:   descColor,
				Anchor:  draw.AnchorMiddle,
			})
		}
	}

	// Center medallion: gradient ring, then the white disks, then text.
	ringGradient := &draw.Gradient{
		Angle: 135,
		Stops: []draw.Stop{
			{Offset: 0, Color: primary},
			{Offset: 0.5, Color: "#000000"},
			{Offset: 1, Color: primary},
		},
	}
	ops = append(ops,
		draw.Circle{CX: cx, CY: cy, R: innerR + 16, Fill: draw.Paint{Gradient: ringGradient}},
		draw.Circle{CX: cx, CY: cy, R: innerR + 8, Fill: draw.Solid("#ffffff")},
		draw.Circle{CX: cx, CY: cy, R: innerR, Fill: draw.Solid("#ffffff")},
	)

	for li, line := range strings.Split(centerText, "\n") {
		ops = append(ops, draw.Text{
			X: cx, Y: cy - 22 + float64(li)*20,
			Content: line,
			Size:    18, Weight: 700,
			Color:  "#000000",
			Anchor: draw.AnchorMiddle,
		})
	}
	if companyName != "" {
		ops = append(ops, draw.Text{
			X: cx, Y: cy + 2,
			Content: companyName,
			Size:    22, Weight: 700,
			Color:  primary,
			Anchor: draw.AnchorMiddle,
		})
	}
	ops = append(ops, draw.Text{
		X: cx, Y: cy + 28,
		Content: centerCaption,
		Size:    14, Weight: 700,
		Color:  "#000000",
		Anchor: draw.AnchorMiddle,
	})

	return draw.Drawing{W: viewBox, H: viewBox, Ops: ops}
}

// wedge builds an annular segment: outer arc clockwise, radial line inward,
// inner arc back, radial line out to the start.
func wedge(cx, cy, outerR, innerR, startDeg, endDeg float64, fill draw.Color) draw.Path {
	startOuterX := cx + outerR*math.Cos(startDeg*math.Pi/180)
	startOuterY := cy + outerR*math.Sin(startDeg*math.Pi/180)
	innerEndX := cx + innerR*math.Cos(endDeg*math.Pi/180)
	innerEndY := cy + innerR*math.Sin(endDeg*math.Pi/180)

	return draw.Path{
		Cmds: []draw.PathCmd{
			{Kind: draw.MoveTo, X: startOuterX, Y: startOuterY},
			{Kind: draw.ArcAround, CX: cx, CY: cy, R: outerR, StartDeg: startDeg, EndDeg: endDeg, Clockwise: true},
			{Kind: draw.LineTo, X: innerEndX, Y: innerEndY},
			{Kind: draw.ArcAround, CX: cx, CY: cy, R: innerR, StartDeg: endDeg, EndDeg: startDeg},
			{Kind: draw.ClosePath},
		},
		Fill:        draw.Solid(fill),
		Stroke:      "#ffffff",
		StrokeWidth: 3,
	}
}
