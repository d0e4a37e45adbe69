package component

import "encoding/json"

// Type tags a home component with its config shape, admin form and public
// renderer. The set of known types lives in the registry; everything else
// in this package is keyed off it.
type Type string

const (
	TypeHero         Type = "hero"
	TypePortfolio    Type = "portfolio"
	TypeServices     Type = "services"
	TypeTestimonials Type = "testimonials"
	TypePosts        Type = "posts"
	TypeCustom       Type = "custom"
)

// HeroSlide is one background image slot of the hero banner.
type HeroSlide struct {
	StorageID string `json:"storageId,omitempty"`
}

// HeroConfig drives the full-screen slideshow at the top of the page.
type HeroConfig struct {
	Title    string      `json:"title,omitempty"`
	Subtitle string      `json:"subtitle,omitempty"`
	Slides   []HeroSlide `json:"slides"`
}

// PortfolioItem is one showcase image with its caption data.
type PortfolioItem struct {
	Title     string `json:"title"`
	Category  string `json:"category"`
	StorageID string `json:"storageId,omitempty"`
}

// PortfolioConfig drives the showcase grid.
type PortfolioConfig struct {
	Title string          `json:"title,omitempty"`
	Items []PortfolioItem `json:"items"`
}

// ServicesConfig carries two independent ordered string lists: the services
// on offer and the studio's quality commitments.
type ServicesConfig struct {
	Title     string   `json:"title,omitempty"`
	Services  []string `json:"services"`
	Qualities []string `json:"qualities"`
}

// Testimonial is one customer review.
type Testimonial struct {
	Author  string `json:"author"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// TestimonialsConfig drives the review section.
type TestimonialsConfig struct {
	Title string        `json:"title,omitempty"`
	Items []Testimonial `json:"items"`
}

// PostsConfig selects blog posts for the home page. PostIDs is the current
// shape: a hand-picked, ordered list. Count is the legacy shape ("show the
// N most recent posts"); records written under the old revision still carry
// it and keep working.
type PostsConfig struct {
	Title   string   `json:"title,omitempty"`
	PostIDs []string `json:"postIds"`
	Count   int      `json:"count,omitempty"`
}

// CustomConfig is a raw HTML passthrough. The content is rendered verbatim
// on the public page, by contract without validation.
type CustomConfig struct {
	HTML string `json:"html,omitempty"`
}

// decodeHero and friends are the single decode-with-defaulting point per
// variant. They accept malformed JSON, missing fields, or a blob shaped for
// a different type, and always come back with a renderable value.

func decodeHero(raw string) HeroConfig {
	var cfg HeroConfig
	decodeLoose(raw, &cfg)
	if cfg.Slides == nil {
		cfg.Slides = []HeroSlide{}
	}
	return cfg
}

func decodePortfolio(raw string) PortfolioConfig {
	var cfg PortfolioConfig
	decodeLoose(raw, &cfg)
	if cfg.Items == nil {
		cfg.Items = []PortfolioItem{}
	}
	return cfg
}

func decodeServices(raw string) ServicesConfig {
	var cfg ServicesConfig
	decodeLoose(raw, &cfg)
	if cfg.Services == nil {
		cfg.Services = []string{}
	}
	if cfg.Qualities == nil {
		cfg.Qualities = []string{}
	}
	return cfg
}

func decodeTestimonials(raw string) TestimonialsConfig {
	var cfg TestimonialsConfig
	decodeLoose(raw, &cfg)
	if cfg.Items == nil {
		cfg.Items = []Testimonial{}
	}
	return cfg
}

func decodePosts(raw string) PostsConfig {
	var cfg PostsConfig
	decodeLoose(raw, &cfg)
	if cfg.PostIDs == nil {
		cfg.PostIDs = []string{}
	}
	if cfg.Count < 0 {
		cfg.Count = 0
	}
	return cfg
}

func decodeCustom(raw string) CustomConfig {
	var cfg CustomConfig
	decodeLoose(raw, &cfg)
	return cfg
}

// decodeLoose fills dst from raw where the fields line up and leaves the
// zero value otherwise. Errors are deliberately dropped: a bad blob must
// degrade to the empty shape, never break a page.
func decodeLoose(raw string, dst interface{}) {
	if raw == "" {
		return
	}
	_ = json.Unmarshal([]byte(raw), dst)
}

// Encode serializes a config value back to the persisted string form.
func Encode(cfg interface{}) string {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "{}"
	}
	return string(data)
}
