// internal/layout/palette.go
package layout

import (
	"github.com/propdeck/propdeck/internal/draw"
	"github.com/propdeck/propdeck/internal/models"
)

// Palette resolves the cross-cutting content-page colors. A pure-black
// background flips headings, body text and card backgrounds to light
// variants. Cover and contact pages carry their own fixed gradient schemes
// and ignore it.
type Palette struct {
	Heading draw.Color
	Body    draw.Color
	Muted   draw.Color
	CardBg  draw.Color
	PageBg  draw.Color
	Dark    bool
}

func PaletteFor(design models.DesignSettings) Palette {
	if design.IsDarkBackground() {
		return Palette{
			Heading: "#f5f5f5",
			Body:    "#cccccc",
			Muted:   "#9e9e9e",
			CardBg:  "#1c1c1c",
			PageBg:  "#000000",
			Dark:    true,
		}
	}
	return Palette{
		Heading: draw.Color(design.SecondaryColor),
		Body:    "#555555",
		Muted:   "#666666",
		CardBg:  "#f5f5f5",
		PageBg:  draw.Color(design.BackgroundColor),
		Dark:    false,
	}
}
