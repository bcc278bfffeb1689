// Package gallery filters the project portfolio by category and tracks the
// project shown in the lightbox.
package gallery

import (
	"errors"
	"fmt"

	"bdgc-website/internal/domain"
)

var (
	ErrUnknownCategory = errors.New("gallery: unknown category")
	ErrNotInSubset     = errors.New("gallery: item not in filtered subset")
)

// Gallery is a view over an immutable catalog. It is not safe for
// concurrent use; each page view gets its own.
type Gallery struct {
	catalog  []domain.GalleryItem
	filter   domain.Category
	visible  []domain.GalleryItem
	selected *domain.GalleryItem
}

// New starts with the All filter and nothing selected.
func New(catalog []domain.GalleryItem) *Gallery {
	cp := make([]domain.GalleryItem, len(catalog))
	copy(cp, catalog)
	g := &Gallery{catalog: cp}
	g.applyFilter(domain.CategoryAll)
	return g
}

func (g *Gallery) Filter() domain.Category { return g.filter }

// SetFilter selects the subset for tag. The lightbox selection is left as is,
// even when it falls outside the new subset.
func (g *Gallery) SetFilter(tag domain.Category) error {
	if _, err := domain.ParseCategory(string(tag)); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, tag)
	}
	g.applyFilter(tag)
	return nil
}

// Items returns the filtered subset in catalog order.
func (g *Gallery) Items() []domain.GalleryItem {
	cp := make([]domain.GalleryItem, len(g.visible))
	copy(cp, g.visible)
	return cp
}

// Open shows the item with id in the lightbox. The item must be part of the
// current subset.
func (g *Gallery) Open(id int) error {
	i := g.position(id)
	if i < 0 {
		return fmt.Errorf("%w: id %d under filter %q", ErrNotInSubset, id, g.filter)
	}
	item := g.visible[i]
	g.selected = &item
	return nil
}

// Close clears the lightbox.
func (g *Gallery) Close() {
	g.selected = nil
}

// Selected returns the item in the lightbox, if any.
func (g *Gallery) Selected() (domain.GalleryItem, bool) {
	if g.selected == nil {
		return domain.GalleryItem{}, false
	}
	return *g.selected, true
}

// Next moves the selection to the following item of the subset, wrapping at
// the end. A selection outside the subset moves to its first item.
func (g *Gallery) Next() {
	if g.selected == nil || len(g.visible) == 0 {
		return
	}
	i := g.position(g.selected.ID)
	next := 0
	if i >= 0 && i < len(g.visible)-1 {
		next = i + 1
	}
	item := g.visible[next]
	g.selected = &item
}

// Previous moves the selection to the preceding item of the subset, wrapping
// at the start. A selection outside the subset moves to its last item.
func (g *Gallery) Previous() {
	if g.selected == nil || len(g.visible) == 0 {
		return
	}
	i := g.position(g.selected.ID)
	prev := len(g.visible) - 1
	if i > 0 {
		prev = i - 1
	}
	item := g.visible[prev]
	g.selected = &item
}

func (g *Gallery) applyFilter(tag domain.Category) {
	g.filter = tag
	if tag == domain.CategoryAll {
		g.visible = g.catalog
		return
	}
	visible := make([]domain.GalleryItem, 0, len(g.catalog))
	for _, it := range g.catalog {
		if it.Category == tag {
			visible = append(visible, it)
		}
	}
	g.visible = visible
}

func (g *Gallery) position(id int) int {
	for i, it := range g.visible {
		if it.ID == id {
			return i
		}
	}
	return -1
}
