package usecase

import (
	"errors"
	"fmt"

	"bdgc-website/internal/carousel"
	"bdgc-website/internal/domain"
	"bdgc-website/internal/gallery"
)

type showcaseUsecase struct {
	projects     []domain.GalleryItem
	testimonials []domain.Testimonial
}

// NewShowcaseUsecase fails when there are no testimonials, since the
// carousel needs at least one.
func NewShowcaseUsecase(projects []domain.GalleryItem, testimonials []domain.Testimonial) (domain.ShowcaseUsecase, error) {
	if len(testimonials) == 0 {
		return nil, fmt.Errorf("showcase: %w", carousel.ErrEmpty)
	}
	return &showcaseUsecase{projects: projects, testimonials: testimonials}, nil
}

func (uc *showcaseUsecase) Gallery(category string, projectID int) (*domain.GalleryView, error) {
	if category == "" {
		category = string(domain.CategoryAll)
	}
	g := gallery.New(uc.projects)
	if err := g.SetFilter(domain.Category(category)); err != nil {
		return nil, err
	}

	view := &domain.GalleryView{
		Filter:     g.Filter(),
		Categories: append([]domain.Category{domain.CategoryAll}, domain.Categories...),
		Items:      g.Items(),
	}
	if projectID == 0 {
		return view, nil
	}
	if err := g.Open(projectID); err != nil {
		return nil, err
	}

	selected, _ := g.Selected()
	view.Selected = &selected

	g.Next()
	next, _ := g.Selected()
	view.NextID = next.ID
	g.Previous()
	g.Previous()
	prev, _ := g.Selected()
	view.PrevID = prev.ID

	return view, nil
}

func (uc *showcaseUsecase) Testimonials(index int) (*domain.TestimonialView, error) {
	c, err := carousel.New(uc.testimonials)
	if err != nil {
		return nil, err
	}
	if err := c.JumpTo(index); err != nil {
		return nil, err
	}
	return &domain.TestimonialView{
		Index:   c.Index(),
		Prev:    c.PeekPrevious(),
		Next:    c.PeekNext(),
		Total:   c.Len(),
		Current: c.Current(),
	}, nil
}

// IsNotFound reports errors that mean "no such item" rather than bad input.
func IsNotFound(err error) bool {
	return errors.Is(err, gallery.ErrNotInSubset) || errors.Is(err, carousel.ErrOutOfRange)
}
