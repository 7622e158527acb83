// internal/layout/layout_test.go
package layout

import (
	"strconv"
	"testing"

	"github.com/propdeck/propdeck/internal/compose"
	"github.com/propdeck/propdeck/internal/draw"
	"github.com/propdeck/propdeck/internal/models"
)

func textOps(ops []draw.Op) []draw.Text {
	var texts []draw.Text
	for _, op := range ops {
		if t, ok := op.(draw.Text); ok {
			texts = append(texts, t)
		}
	}
	return texts
}

func hasText(ops []draw.Op, content string) bool {
	for _, t := range textOps(ops) {
		if t.Content == content {
			return true
		}
	}
	return false
}

func rectsFilled(ops []draw.Op, color draw.Color) []draw.Rect {
	var rects []draw.Rect
	for _, op := range ops {
		if r, ok := op.(draw.Rect); ok && r.Fill.Color == color {
			rects = append(rects, r)
		}
	}
	return rects
}

func TestRenderPageSplitsPairs(t *testing.T) {
	design := models.DefaultDesignSettings()
	page := compose.Page{
		{ID: "a", Type: models.SectionProjectSummary, Title: "Summary", Content: "Hello."},
		{ID: "b", Type: models.SectionApproach, Title: "Approach", Content: "World."},
	}

	d := RenderPage(page, design, "Acme Corp")
	if d.W != PageWidth || d.H != PageHeight {
		t.Fatalf("drawing size = %gx%g, want %gx%g", d.W, d.H, PageWidth, PageHeight)
	}
	if !hasText(d.Ops, "Summary") || !hasText(d.Ops, "Approach") {
		t.Fatal("expected both section titles on the page")
	}

	// The second section's title must land in the lower half.
	for _, txt := range textOps(d.Ops) {
		if txt.Content == "Approach" && txt.Y <= PageHeight/2 {
			t.Fatalf("paired section title at y=%g, want lower half", txt.Y)
		}
		if txt.Content == "Summary" && txt.Y > PageHeight/2 {
			t.Fatalf("first section title at y=%g, want upper half", txt.Y)
		}
	}
}

func TestRenderPageDarkBackground(t *testing.T) {
	design := models.DefaultDesignSettings()
	design.BackgroundColor = "#000000"
	page := compose.Page{
		{ID: "a", Type: models.SectionProjectSummary, Title: "Summary", Content: "Hello."},
	}

	d := RenderPage(page, design, "Acme Corp")
	if len(rectsFilled(d.Ops, "#000000")) == 0 {
		t.Fatal("expected black page background fill")
	}
	for _, txt := range textOps(d.Ops) {
		if txt.Content == "Summary" && txt.Color != "#f5f5f5" {
			t.Fatalf("heading color = %q, want light variant", txt.Color)
		}
	}
}

func TestRenderCoverFooterLine(t *testing.T) {
	design := models.DefaultDesignSettings()
	page := compose.Page{
		{ID: "a", Type: models.SectionCover, Title: "Website Redesign", Subtitle: "A proposal"},
	}

	d := RenderPage(page, design, "Acme Corp")
	if !hasText(d.Ops, "PROPOSAL FOR ACME CORP") {
		t.Fatal("expected uppercase client footer on cover")
	}
}

func TestWhyChooseUsDiagramWithDefaultStats(t *testing.T) {
	design := models.DefaultDesignSettings()
	page := compose.Page{{
		ID: "w", Type: models.SectionWhyChooseUs, Title: "Why Choose Us",
		WhyChooseUs: &models.WhyChooseUsFields{
			UseCircularLogo: true,
			CompanyName:     "ACME",
		},
	}}

	d := RenderPage(page, design, "Acme Corp")
	if !hasText(d.Ops, "ACME") {
		t.Fatal("expected company name inside the diagram medallion")
	}
	if !hasText(d.Ops, "OVER OTHERS") {
		t.Fatal("expected medallion caption")
	}
	for _, stat := range DefaultStats {
		if !hasText(d.Ops, stat.Value) || !hasText(d.Ops, stat.Label) {
			t.Fatalf("missing default stat %q / %q", stat.Value, stat.Label)
		}
	}

	// Four default stats spread over four columns centered in the page.
	var xs []float64
	for _, txt := range textOps(d.Ops) {
		for _, stat := range DefaultStats {
			if txt.Content == stat.Value {
				xs = append(xs, txt.X)
			}
		}
	}
	if len(xs) != 4 {
		t.Fatalf("stat value count = %d, want 4", len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Fatalf("stat columns not left to right: %v", xs)
		}
	}
}

func TestWhyChooseUsModePrecedence(t *testing.T) {
	design := models.DefaultDesignSettings()

	imageSection := compose.Page{{
		ID: "w", Type: models.SectionWhyChooseUs, Title: "Why Choose Us",
		WhyChooseUs: &models.WhyChooseUsFields{ImageURL: "https://example.com/team.png"},
	}}
	d := RenderPage(imageSection, design, "Acme Corp")
	foundImage := false
	for _, op := range d.Ops {
		if img, ok := op.(draw.Image); ok && img.URL == "https://example.com/team.png" {
			foundImage = true
		}
	}
	if !foundImage {
		t.Fatal("image mode should place the section image")
	}
	if hasText(d.Ops, "OVER OTHERS") {
		t.Fatal("image mode must not draw the diagram")
	}

	gridSection := compose.Page{{
		ID: "w", Type: models.SectionWhyChooseUs, Title: "Why Choose Us",
		WhyChooseUs: &models.WhyChooseUsFields{
			Features: []models.FeatureItem{
				{ID: "f1", Number: "01", Title: "Proven Expertise", Description: "Years of delivery."},
			},
		},
	}}
	d = RenderPage(gridSection, design, "Acme Corp")
	if !hasText(d.Ops, "01") {
		t.Fatal("grid mode should draw feature ordinals")
	}
}

func TestNextStepsCapAndEmphasis(t *testing.T) {
	design := models.DefaultDesignSettings()
	var steps []models.NextStepItem
	for i := 1; i <= 7; i++ {
		steps = append(steps, models.NextStepItem{
			ID:   strconv.Itoa(i),
			Step: "Step " + strconv.Itoa(i),
		})
	}
	page := compose.Page{{
		ID: "n", Type: models.SectionNextSteps, Title: "Next Steps", NextSteps: steps,
	}}

	d := RenderPage(page, design, "Acme Corp")
	if hasText(d.Ops, "6") || hasText(d.Ops, "Step 6") {
		t.Fatal("steps past the fifth must be dropped")
	}
	if !hasText(d.Ops, "Step 5") {
		t.Fatal("fifth step should render")
	}

	// The fifth card is the emphasized one: filled with the primary color.
	primary := draw.Color(design.PrimaryColor)
	emphasized := 0
	for _, r := range rectsFilled(d.Ops, primary) {
		if r.H == stepCardHeight {
			emphasized++
		}
	}
	if emphasized != 1 {
		t.Fatalf("emphasized card count = %d, want 1", emphasized)
	}
}

func TestPricingTablePath(t *testing.T) {
	design := models.DefaultDesignSettings()
	page := compose.Page{{
		ID: "p", Type: models.SectionPricing, Title: "Investment",
		Pricing: &models.PricingFields{
			TableRows: []models.PricingTableRow{
				{ID: "r1", Service: "Design", Description: "UI design", Investment: "$4,000"},
				{ID: "r2", Service: "Total", Description: "", Investment: "$9,500"},
			},
		},
	}}

	d := RenderPage(page, design, "Acme Corp")
	for _, caption := range []string{"Service", "Description", "Investment"} {
		if !hasText(d.Ops, caption) {
			t.Fatalf("missing table header %q", caption)
		}
	}
	if !hasText(d.Ops, "$9,500") {
		t.Fatal("total row amount missing")
	}

	// Total row gets a tinted background derived from the primary color.
	tint := draw.Color(design.PrimaryColor).WithAlpha("14")
	if len(rectsFilled(d.Ops, tint)) == 0 {
		t.Fatal("expected tinted total row background")
	}
}

func TestPricingTermsPath(t *testing.T) {
	design := models.DefaultDesignSettings()
	page := compose.Page{{
		ID: "p", Type: models.SectionPricing, Title: "Pricing & Terms",
		Pricing: &models.PricingFields{
			TermItems: []models.TermItem{
				{ID: "t1", Title: "Engagement", Content: "Fixed scope, fixed fee."},
			},
			TotalAmount: "$12,000",
		},
	}}

	d := RenderPage(page, design, "Acme Corp")
	if hasText(d.Ops, "Service") {
		t.Fatal("terms path must not draw table headers")
	}
	if !hasText(d.Ops, "Engagement") {
		t.Fatal("term title missing")
	}
	if !hasText(d.Ops, "Total Investment") || !hasText(d.Ops, "$12,000") {
		t.Fatal("total box missing")
	}
}

func TestPricingDefaultPaymentTerms(t *testing.T) {
	design := models.DefaultDesignSettings()
	page := compose.Page{{
		ID: "p", Type: models.SectionPricing, Title: "Investment",
		Pricing: &models.PricingFields{
			TableRows: []models.PricingTableRow{
				{ID: "r1", Service: "Build", Description: "Implementation", Investment: "$5,000"},
			},
		},
	}}

	d := RenderPage(page, design, "Acme Corp")
	found := false
	for _, txt := range textOps(d.Ops) {
		if len(txt.Content) >= 14 && txt.Content[:14] == "Payment terms:" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the default payment terms caption")
	}
}

func TestContactFormatsPhone(t *testing.T) {
	design := models.DefaultDesignSettings()
	page := compose.Page{{
		ID: "c", Type: models.SectionContact, Title: "Let's Talk",
		Contact: &models.ContactFields{
			Name:  "Jordan Lee",
			Email: "jordan@example.com",
			Phone: "2125551234",
		},
	}}

	d := RenderPage(page, design, "Acme Corp")
	if !hasText(d.Ops, "+1 212-555-1234") {
		t.Fatal("expected the phone number in international format")
	}
	if !hasText(d.Ops, "jordan@example.com") {
		t.Fatal("expected the contact email")
	}
}

func TestFormatPhoneFallback(t *testing.T) {
	if got := formatPhone("ask reception"); got != "ask reception" {
		t.Fatalf("formatPhone fallback = %q, want raw input", got)
	}
}

func TestTimelineConnectorsBetweenDotsOnly(t *testing.T) {
	design := models.DefaultDesignSettings()
	page := compose.Page{{
		ID: "t", Type: models.SectionTimeline, Title: "Timeline",
		Timeline: []models.TimelineItem{
			{ID: "1", Period: "Week 1", Title: "Kickoff", Description: "Align on goals."},
			{ID: "2", Period: "Week 2", Title: "Design", Description: "Wireframes."},
			{ID: "3", Period: "Week 4", Title: "Build", Description: "Implementation."},
		},
	}}

	d := RenderPage(page, design, "Acme Corp")
	lines := 0
	for _, op := range d.Ops {
		if l, ok := op.(draw.Line); ok && l.X1 == l.X2 {
			lines++
		}
	}
	if lines != 2 {
		t.Fatalf("connector count = %d, want one fewer than items", lines)
	}
}
