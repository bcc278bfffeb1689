package domain

// GalleryItem is one finished project in the portfolio.
type GalleryItem struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Category    Category `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	Location    string   `json:"location" yaml:"location"`
	ImageRef    string   `json:"image" yaml:"image"`
	ColorTag    string   `json:"color,omitempty" yaml:"color"`
}

// Testimonial is one carousel entry.
type Testimonial struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
	Rating   int    `json:"rating" yaml:"rating"`
	Text     string `json:"text" yaml:"text"`
	Project  string `json:"project" yaml:"project"`
	Initials string `json:"initials" yaml:"initials"`
	ColorTag string `json:"color,omitempty" yaml:"color"`
}

// GalleryView is the gallery section as rendered: the filtered subset and,
// when the lightbox is open, the selected item and its neighbours.
type GalleryView struct {
	Filter     Category      `json:"filter"`
	Categories []Category    `json:"categories"`
	Items      []GalleryItem `json:"items"`
	Selected   *GalleryItem  `json:"selected,omitempty"`
	PrevID     int           `json:"prev_id,omitempty"`
	NextID     int           `json:"next_id,omitempty"`
}

// TestimonialView is the carousel as rendered.
type TestimonialView struct {
	Index   int         `json:"index"`
	Prev    int         `json:"prev"`
	Next    int         `json:"next"`
	Total   int         `json:"total"`
	Current Testimonial `json:"current"`
}

// ShowcaseUsecase serves the read-only portfolio sections.
type ShowcaseUsecase interface {
	// Gallery filters by category and opens projectID when it is non-zero.
	Gallery(category string, projectID int) (*GalleryView, error)
	// Testimonials positions the carousel at index.
	Testimonials(index int) (*TestimonialView, error)
}
