package component

// List operations on config values. Every operation copies before it
// patches and hands back a fresh value, so callers can compare old and new
// configs (change detection, blob diff cleanup) without aliasing surprises.
// Removal is by index, never by value: two identical service lines must be
// removable independently.

// AddSlide appends an empty image slot.
func (c HeroConfig) AddSlide() HeroConfig {
	c.Slides = append(copySlides(c.Slides), HeroSlide{})
	return c
}

// SetSlide replaces the image of one slot. Out-of-range indexes are a
// no-op rather than a panic.
func (c HeroConfig) SetSlide(index int, storageID string) HeroConfig {
	if index < 0 || index >= len(c.Slides) {
		return c
	}
	slides := copySlides(c.Slides)
	slides[index] = HeroSlide{StorageID: storageID}
	c.Slides = slides
	return c
}

// RemoveSlide drops the slot at index.
func (c HeroConfig) RemoveSlide(index int) HeroConfig {
	if index < 0 || index >= len(c.Slides) {
		return c
	}
	slides := copySlides(c.Slides)
	c.Slides = append(slides[:index], slides[index+1:]...)
	return c
}

// AddItem appends an empty showcase entry.
func (c PortfolioConfig) AddItem() PortfolioConfig {
	c.Items = append(copyPortfolioItems(c.Items), PortfolioItem{})
	return c
}

// SetItem replaces the entry at index.
func (c PortfolioConfig) SetItem(index int, item PortfolioItem) PortfolioConfig {
	if index < 0 || index >= len(c.Items) {
		return c
	}
	items := copyPortfolioItems(c.Items)
	items[index] = item
	c.Items = items
	return c
}

// RemoveItem drops the entry at index.
func (c PortfolioConfig) RemoveItem(index int) PortfolioConfig {
	if index < 0 || index >= len(c.Items) {
		return c
	}
	items := copyPortfolioItems(c.Items)
	c.Items = append(items[:index], items[index+1:]...)
	return c
}

// AddService appends a service line.
func (c ServicesConfig) AddService(value string) ServicesConfig {
	c.Services = append(copyStrings(c.Services), value)
	return c
}

// SetService replaces the service line at index.
func (c ServicesConfig) SetService(index int, value string) ServicesConfig {
	c.Services = setStringAt(c.Services, index, value)
	return c
}

// RemoveService drops the service line at index.
func (c ServicesConfig) RemoveService(index int) ServicesConfig {
	c.Services = removeStringAt(c.Services, index)
	return c
}

// AddQuality appends a quality line.
func (c ServicesConfig) AddQuality(value string) ServicesConfig {
	c.Qualities = append(copyStrings(c.Qualities), value)
	return c
}

// SetQuality replaces the quality line at index.
func (c ServicesConfig) SetQuality(index int, value string) ServicesConfig {
	c.Qualities = setStringAt(c.Qualities, index, value)
	return c
}

// RemoveQuality drops the quality line at index.
func (c ServicesConfig) RemoveQuality(index int) ServicesConfig {
	c.Qualities = removeStringAt(c.Qualities, index)
	return c
}

// AddItem appends an empty review.
func (c TestimonialsConfig) AddItem() TestimonialsConfig {
	c.Items = append(copyTestimonials(c.Items), Testimonial{Rating: 5})
	return c
}

// SetItem replaces the review at index, clamping the rating to 1..5.
func (c TestimonialsConfig) SetItem(index int, item Testimonial) TestimonialsConfig {
	if index < 0 || index >= len(c.Items) {
		return c
	}
	if item.Rating < 1 {
		item.Rating = 1
	}
	if item.Rating > 5 {
		item.Rating = 5
	}
	items := copyTestimonials(c.Items)
	items[index] = item
	c.Items = items
	return c
}

// RemoveItem drops the review at index.
func (c TestimonialsConfig) RemoveItem(index int) TestimonialsConfig {
	if index < 0 || index >= len(c.Items) {
		return c
	}
	items := copyTestimonials(c.Items)
	c.Items = append(items[:index], items[index+1:]...)
	return c
}

// TogglePost flips a post in or out of the selection. A newly selected
// post goes to the end, so the stored order is the order the admin clicked
// in; toggling off and on again moves a post to the back.
func (c PostsConfig) TogglePost(id string) PostsConfig {
	ids := copyStrings(c.PostIDs)
	for i, existing := range ids {
		if existing == id {
			c.PostIDs = append(ids[:i], ids[i+1:]...)
			return c
		}
	}
	c.PostIDs = append(ids, id)
	return c
}

func copySlides(in []HeroSlide) []HeroSlide {
	out := make([]HeroSlide, len(in))
	copy(out, in)
	return out
}

func copyPortfolioItems(in []PortfolioItem) []PortfolioItem {
	out := make([]PortfolioItem, len(in))
	copy(out, in)
	return out
}

func copyTestimonials(in []Testimonial) []Testimonial {
	out := make([]Testimonial, len(in))
	copy(out, in)
	return out
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func setStringAt(in []string, index int, value string) []string {
	if index < 0 || index >= len(in) {
		return in
	}
	out := copyStrings(in)
	out[index] = value
	return out
}

func removeStringAt(in []string, index int) []string {
	if index < 0 || index >= len(in) {
		return in
	}
	out := copyStrings(in)
	return append(out[:index], out[index+1:]...)
}
