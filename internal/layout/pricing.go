// internal/layout/pricing.go
package layout

import (
	"github.com/propdeck/propdeck/internal/draw"
	"github.com/propdeck/propdeck/internal/models"
)

// DefaultPaymentTerms is appended under the pricing table when the section
// does not override it.
const DefaultPaymentTerms = "50% advance payment to commence work, balance due upon final delivery."

const (
	pricingHeaderRowHeight = 24.0
	pricingRowPadding      = 9.0
)

// renderPricing dispatches between the structured three-column table and the
// legacy term-item list.
func renderPricing(c *canvas, f Frame, section models.Section, ctx pageContext) {
	if section.Pricing.ResolveMode() == models.PricingModeTable {
		renderPricingTable(c, f, section, ctx)
		return
	}
	renderPricingTerms(c, f, section, ctx)
}

func pricingHeaders(fields *models.PricingFields) models.PricingTableHeaders {
	headers := models.PricingTableHeaders{
		Service:     "Service",
		Description: "Description",
		Investment:  "Investment",
	}
	if fields == nil || fields.TableHeaders == nil {
		return headers
	}
	if fields.TableHeaders.Service != "" {
		headers.Service = fields.TableHeaders.Service
	}
	if fields.TableHeaders.Description != "" {
		headers.Description = fields.TableHeaders.Description
	}
	if fields.TableHeaders.Investment != "" {
		headers.Investment = fields.TableHeaders.Investment
	}
	return headers
}

func renderPricingTable(c *canvas, f Frame, section models.Section, ctx pageContext) {
	y := sectionHeader(c, f, section.Title, ctx)

	fields := section.Pricing
	headers := pricingHeaders(fields)

	x := f.X + pageMargin
	usable := f.W - 2*pageMargin
	serviceW := usable * 0.30
	descW := usable * 0.45
	investW := usable * 0.25

	c.add(draw.Rect{X: x, Y: y, W: usable, H: pricingHeaderRowHeight, Fill: draw.Solid(ctx.primary())})
	headerBaseline := y + pricingHeaderRowHeight/2 + 3
	c.add(draw.Text{X: x + 10, Y: headerBaseline, Content: headers.Service, Size: 9, Weight: 700, Color: "#ffffff"})
	c.add(draw.Text{X: x + serviceW + 10, Y: headerBaseline, Content: headers.Description, Size: 9, Weight: 700, Color: "#ffffff"})
	c.add(draw.Text{X: x + serviceW + descW + investW - 10, Y: headerBaseline, Content: headers.Investment, Size: 9, Weight: 700, Color: "#ffffff", Anchor: draw.AnchorEnd})
	y += pricingHeaderRowHeight

	for _, row := range fields.TableRows {
		serviceLines := draw.Wrap(row.Service, 9, serviceW-20)
		descLines := draw.Wrap(row.Description, 8.5, descW-20)
		lineCount := len(serviceLines)
		if len(descLines) > lineCount {
			lineCount = len(descLines)
		}
		if lineCount == 0 {
			lineCount = 1
		}
		rowHeight := float64(lineCount)*12 + 2*pricingRowPadding
		if y+rowHeight > f.bottom()-pageMargin {
			break
		}

		total := row.IsTotal()
		serviceColor := ctx.palette.Heading
		investColor := ctx.primary()
		serviceWeight := 600
		if total {
			c.add(draw.Rect{X: x, Y: y, W: usable, H: rowHeight, Fill: draw.Solid(ctx.primary().WithAlpha("14"))})
			serviceColor = ctx.primary()
			serviceWeight = 700
		}

		baseline := y + pricingRowPadding + 9
		for i, line := range serviceLines {
			c.add(draw.Text{
				X: x + 10, Y: baseline + float64(i)*12,
				Content: line,
				Size:    9, Weight: serviceWeight,
				Color: serviceColor,
			})
		}
		for i, line := range descLines {
			c.add(draw.Text{
				X: x + serviceW + 10, Y: baseline + float64(i)*12,
				Content: line,
				Size:    8.5,
				Color:   ctx.palette.Muted,
			})
		}
		c.add(draw.Text{
			X: x + usable - 10, Y: baseline,
			Content: row.Investment,
			Size:    9, Weight: 700,
			Color:  investColor,
			Anchor: draw.AnchorEnd,
		})

		y += rowHeight
		if !total {
			c.add(draw.Line{X1: x, Y1: y, X2: x + usable, Y2: y, Color: "#e0e0e0", Width: 0.5})
		}
	}

	terms := DefaultPaymentTerms
	if fields != nil && fields.PaymentTerms != "" {
		terms = fields.PaymentTerms
	}
	y += 18
	for _, line := range draw.Wrap("Payment terms: "+terms, 9, usable) {
		if y > f.bottom()-pageMargin {
			break
		}
		c.add(draw.Text{X: x, Y: y, Content: line, Size: 9, Color: ctx.palette.Muted})
		y += 13
	}
}

func renderPricingTerms(c *canvas, f Frame, section models.Section, ctx pageContext) {
	y := sectionHeader(c, f, section.Title, ctx)

	x := f.X + pageMargin
	usable := f.W - 2*pageMargin

	var items []models.TermItem
	var totalAmount string
	if section.Pricing != nil {
		items = section.Pricing.TermItems
		totalAmount = section.Pricing.TotalAmount
	}

	for _, item := range items {
		lines := draw.Wrap(item.Content, 9.5, usable-16)
		blockHeight := 16 + float64(len(lines))*13
		if y+blockHeight > f.bottom()-pageMargin {
			break
		}

		c.add(draw.Rect{
			X: x, Y: y - 9, W: 2, H: blockHeight,
			Fill: draw.Solid(ctx.primary().WithAlpha("35")),
		})
		c.add(draw.Text{
			X: x + 14, Y: y,
			Content: item.Title,
			Size:    11, Weight: 600,
			Color: ctx.palette.Heading,
		})
		y += 16
		for _, line := range lines {
			c.add(draw.Text{X: x + 14, Y: y, Content: line, Size: 9.5, Color: ctx.palette.Muted})
			y += 13
		}
		y += 14
	}

	if totalAmount != "" && y+64 <= f.bottom()-pageMargin {
		y += 6
		c.add(draw.Rect{
			X: x, Y: y, W: usable, H: 64, Radius: 6,
			Fill: draw.Solid(ctx.primary().WithAlpha("08")),
		})
		c.add(draw.Text{
			X: x + f.W/2 - pageMargin, Y: y + 24,
			Content: "Total Investment",
			Size:    9,
			Color:   ctx.palette.Muted,
			Anchor:  draw.AnchorMiddle,
		})
		c.add(draw.Text{
			X: x + f.W/2 - pageMargin, Y: y + 50,
			Content: totalAmount,
			Size:    24, Weight: 700,
			Color:  ctx.primary(),
			Anchor: draw.AnchorMiddle,
		})
	}
}
