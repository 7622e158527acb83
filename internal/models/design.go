// internal/models/design.go
package models

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	defaultPrimaryColor    = "#0d4f4f"
	defaultSecondaryColor  = "#1a1a2e"
	defaultAccentColor     = "#3498db"
	defaultBackgroundColor = "#ffffff"
	defaultCompanyName     = "Your Company"
)

// Opaque hex colors only; consumers may append an alpha suffix to derive
// tinted fills from a base color.
var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Short 3-digit hex is tolerated for backgrounds only.
var shortHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{3}$`)

func IsHexColor(value string) bool {
	return hexColorRegex.MatchString(strings.TrimSpace(value))
}

// FontFamily enumerates the supported typefaces.
type FontFamily string

const (
	FontInter   FontFamily = "inter"
	FontPoppins FontFamily = "poppins"
	FontOutfit  FontFamily = "outfit"
)

// Stack returns the CSS font stack for the family.
func (f FontFamily) Stack() string {
	switch f {
	case FontInter:
		return "'Inter', -apple-system, BlinkMacSystemFont, sans-serif"
	case FontOutfit:
		return "'Outfit', -apple-system, BlinkMacSystemFont, sans-serif"
	default:
		return "'Poppins', -apple-system, BlinkMacSystemFont, sans-serif"
	}
}

// HeaderStyle is advisory; the layout engine currently renders a single
// committed header treatment.
type HeaderStyle string

const (
	HeaderGradient HeaderStyle = "gradient"
	HeaderSolid    HeaderStyle = "solid"
	HeaderMinimal  HeaderStyle = "minimal"
)

// DesignSettings holds the theme applied uniformly across a proposal render.
type DesignSettings struct {
	PrimaryColor    string      `json:"primaryColor"`
	SecondaryColor  string      `json:"secondaryColor"`
	AccentColor     string      `json:"accentColor"`
	BackgroundColor string      `json:"backgroundColor,omitempty"`
	LogoURL         string      `json:"logoUrl,omitempty"`
	ClientLogoURL   string      `json:"clientLogoUrl,omitempty"`
	CompanyName     string      `json:"companyName"`
	HeaderStyle     HeaderStyle `json:"headerStyle,omitempty"`
	FontFamily      FontFamily  `json:"fontFamily,omitempty"`
}

func DefaultDesignSettings() DesignSettings {
	return DesignSettings{
		PrimaryColor:    defaultPrimaryColor,
		SecondaryColor:  defaultSecondaryColor,
		AccentColor:     defaultAccentColor,
		BackgroundColor: defaultBackgroundColor,
		CompanyName:     defaultCompanyName,
		HeaderStyle:     HeaderGradient,
		FontFamily:      FontPoppins,
	}
}

// Normalize fills empty fields with defaults so downstream layout code never
// sees a blank palette.
func (d DesignSettings) Normalize() DesignSettings {
	def := DefaultDesignSettings()
	if strings.TrimSpace(d.PrimaryColor) == "" {
		d.PrimaryColor = def.PrimaryColor
	}
	if strings.TrimSpace(d.SecondaryColor) == "" {
		d.SecondaryColor = def.SecondaryColor
	}
	if strings.TrimSpace(d.AccentColor) == "" {
		d.AccentColor = def.AccentColor
	}
	if strings.TrimSpace(d.BackgroundColor) == "" {
		d.BackgroundColor = def.BackgroundColor
	}
	if strings.TrimSpace(d.CompanyName) == "" {
		d.CompanyName = def.CompanyName
	}
	if d.HeaderStyle == "" {
		d.HeaderStyle = def.HeaderStyle
	}
	if d.FontFamily == "" {
		d.FontFamily = def.FontFamily
	}
	return d
}

func (d DesignSettings) Validate() error {
	colorFields := map[string]string{
		"primaryColor":   d.PrimaryColor,
		"secondaryColor": d.SecondaryColor,
		"accentColor":    d.AccentColor,
	}
	for name, value := range colorFields {
		if !IsHexColor(value) {
			return fmt.Errorf("%s must be a 6-digit hex color like #AABBCC", name)
		}
	}
	if bg := strings.TrimSpace(d.BackgroundColor); bg != "" {
		if !IsHexColor(bg) && !isNamedBackground(bg) {
			return fmt.Errorf("backgroundColor must be a hex color or a recognized name")
		}
	}
	switch d.FontFamily {
	case "", FontInter, FontPoppins, FontOutfit:
	default:
		return fmt.Errorf("unsupported font family %q", d.FontFamily)
	}
	return nil
}

// IsDarkBackground reports whether the background triggers the dark-mode
// variant: pure black, case-insensitive, with or without a leading '#', or
// the name "black". Shortened "#000" counts as pure black.
func (d DesignSettings) IsDarkBackground() bool {
	bg := strings.ToLower(strings.TrimSpace(d.BackgroundColor))
	bg = strings.TrimPrefix(bg, "#")
	return bg == "000000" || bg == "000" || bg == "black"
}

func isNamedBackground(value string) bool {
	switch strings.ToLower(value) {
	case "black", "white":
		return true
	}
	return shortHexColorRegex.MatchString(value)
}
