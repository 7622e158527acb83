// internal/compose/compose.go

// Package compose groups an ordered section list into fixed-size pages.
package compose

import "github.com/propdeck/propdeck/internal/models"

// Page is the group of one or two sections laid out on one physical page.
type Page []models.Section

// Pages groups sections in encounter order. Cover, contact and why-choose-us
// sections always start a new page and occupy it alone; every other type is
// appended to the previous page when that page holds exactly one pairable
// section, otherwise it starts a new page. No section is dropped, duplicated
// or reordered.
func Pages(sections []models.Section) []Page {
	var pages []Page
	for _, section := range sections {
		if section.Type.Exclusive() {
			pages = append(pages, Page{section})
			continue
		}
		if n := len(pages); n > 0 {
			last := pages[n-1]
			if len(last) == 1 && !last[0].Type.Exclusive() {
				pages[n-1] = append(last, section)
				continue
			}
		}
		pages = append(pages, Page{section})
	}
	return pages
}
