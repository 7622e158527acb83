package layouts

import (
	"fmt"
	"strings"

	"github.com/propdeck/propdeck/internal/models"
)

func getThemeCssVars(design models.DesignSettings) string {
	defaults := models.DefaultDesignSettings()
	primary := themeColorOrDefault(design.PrimaryColor, defaults.PrimaryColor)
	secondary := themeColorOrDefault(design.SecondaryColor, defaults.SecondaryColor)
	accent := themeColorOrDefault(design.AccentColor, defaults.AccentColor)
	background := themeColorOrDefault(design.BackgroundColor, defaults.BackgroundColor)

	return fmt.Sprintf(
		":root{--theme-primary:%s;--theme-secondary:%s;--theme-accent:%s;--theme-background:%s;}",
		primary,
		secondary,
		accent,
		background,
	)
}

func themeColorOrDefault(value string, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	if !models.IsHexColor(trimmed) {
		return fallback
	}
	return trimmed
}
