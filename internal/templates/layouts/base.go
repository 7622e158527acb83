// Package layouts holds the shared page shell wrapping rendered content.
package layouts

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/propdeck/propdeck/internal/models"
)

const fontsHref = "https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&family=Poppins:wght@400;500;600;700&family=Outfit:wght@400;500;600;700&display=swap"

// Base wraps content in the HTML shell: font loading, theme CSS variables
// and the proposal's font stack on the body.
func Base(content templ.Component, title string, design models.DesignSettings) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		design = design.Normalize()
		if title == "" {
			title = "Proposal"
		}

		head := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="preconnect" href="https://fonts.googleapis.com">
<link rel="stylesheet" href="%s">
<style>%s
body{margin:0;background:#ececec;font-family:%s;}
.preview-pages{display:flex;flex-direction:column;align-items:center;gap:24px;padding:32px 0;}
.preview-page{width:595px;background:#fff;box-shadow:0 2px 12px rgba(0,0,0,.18);}
.preview-page svg{display:block;width:100%%;height:auto;}
</style>
</head>
<body>`,
			html.EscapeString(title), fontsHref, getThemeCssVars(design), design.FontFamily.Stack())

		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body>\n</html>")
		return err
	})
}
