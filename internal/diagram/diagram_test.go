// internal/diagram/diagram_test.go
package diagram

import (
	"testing"

	"github.com/propdeck/propdeck/internal/draw"
)

func TestGenerate_ExactlyFourSegments(t *testing.T) {
	for _, size := range []float64{40, 120, 400, 1200} {
		d := Generate("#1 CHOICE", "ACME", "#0d4f4f", size)
		var wedges int
		for _, op := range d.Ops {
			if _, ok := op.(draw.Path); ok {
				wedges++
			}
		}
		if wedges != 4 {
			t.Errorf("size %f: expected 4 segment wedges, got %d", size, wedges)
		}
	}
}

func TestGenerate_AlternatingFillPattern(t *testing.T) {
	primary := draw.Color("#0d4f4f")
	d := Generate("#1 CHOICE", "ACME", primary, 400)

	want := []draw.Color{"#E5E5E5", primary, "#2C2C2C", primary}
	var got []draw.Color
	for _, op := range d.Ops {
		if path, ok := op.(draw.Path); ok {
			got = append(got, path.Fill.Color)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d wedges, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Segment %d: expected fill %s, got %s", i, want[i], got[i])
		}
	}
}

func TestGenerate_PaddingPreventsClipping(t *testing.T) {
	for _, size := range []float64{1, 50, 400, 2000} {
		d := Generate("#1 CHOICE", "ACME", "#0d4f4f", size)
		if d.W != size+400 || d.H != size+400 {
			t.Fatalf("size %f: expected letterboxed view box %f, got %f x %f", size, size+400, d.W, d.H)
		}
		for _, op := range d.Ops {
			text, ok := op.(draw.Text)
			if !ok {
				continue
			}
			half := draw.EstimateWidth(text.Content, text.Size) / 2
			if text.X-half < 0 || text.X+half > d.W {
				t.Errorf("size %f: label %q clips horizontally (x=%f, half=%f)", size, text.Content, text.X, half)
			}
			if text.Y-text.Size < 0 || text.Y+text.Size > d.H {
				t.Errorf("size %f: label %q clips vertically (y=%f)", size, text.Content, text.Y)
			}
		}
	}
}

func TestGenerate_MedallionContent(t *testing.T) {
	d := Generate("#1 CHOICE", "ACME", "#0d4f4f", 400)

	var texts []draw.Text
	for _, op := range d.Ops {
		if text, ok := op.(draw.Text); ok {
			texts = append(texts, text)
		}
	}

	var sawCenter, sawCompany, sawCaption bool
	for _, text := range texts {
		switch text.Content {
		case "#1 CHOICE":
			sawCenter = true
		case "ACME":
			sawCompany = true
			if text.Color != "#0d4f4f" {
				t.Errorf("Company name should use the primary color, got %s", text.Color)
			}
		case "OVER OTHERS":
			sawCaption = true
		}
	}
	if !sawCenter || !sawCompany || !sawCaption {
		t.Errorf("Missing medallion text: center=%v company=%v caption=%v", sawCenter, sawCompany, sawCaption)
	}
}

func TestGenerate_OmitsEmptyCompanyName(t *testing.T) {
	d := Generate("#1 CHOICE", "", "#0d4f4f", 400)
	for _, op := range d.Ops {
		if text, ok := op.(draw.Text); ok && text.Content == "" && text.Size == 22 {
			t.Error("Empty company name should not produce a text op")
		}
	}
}

func TestSegmentFill_Cycle(t *testing.T) {
	primary := draw.Color("#123456")
	if SegmentFill(0, primary) != "#E5E5E5" {
		t.Error("Segment 0 should be light gray")
	}
	if SegmentFill(1, primary) != primary || SegmentFill(3, primary) != primary {
		t.Error("Segments 1 and 3 should use the primary color")
	}
	if SegmentFill(2, primary) != "#2C2C2C" {
		t.Error("Segment 2 should be near-black")
	}
}
