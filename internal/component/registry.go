package component

import "html/template"

// Definition is the single source of truth for one component type: its
// picker label, default config, tolerant decoder, admin form and public
// renderer all live in this one table entry. Adding a type means adding
// one entry here; nothing else needs to know about it.
type Definition struct {
	Type   Type
	Label  string
	New    func() interface{}
	Decode func(raw string) interface{}
	Form   func(raw string, posts []PostOption) template.HTML
	Render func(raw string, ctx RenderContext) template.HTML
}

// registry lists every known type. The legacy "latest" tag was dropped a
// schema revision ago and is intentionally absent: records still carrying
// it take the unrecognized-type path on both sides.
var registry = map[Type]Definition{
	TypeHero: {
		Type:   TypeHero,
		Label:  "Hero Banner",
		New:    func() interface{} { return HeroConfig{Slides: []HeroSlide{}} },
		Decode: func(raw string) interface{} { return decodeHero(raw) },
		Form:   heroForm,
		Render: renderHero,
	},
	TypePortfolio: {
		Type:   TypePortfolio,
		Label:  "Portfolio Grid",
		New:    func() interface{} { return PortfolioConfig{Items: []PortfolioItem{}} },
		Decode: func(raw string) interface{} { return decodePortfolio(raw) },
		Form:   portfolioForm,
		Render: renderPortfolio,
	},
	TypeServices: {
		Type:  TypeServices,
		Label: "Services",
		New: func() interface{} {
			return ServicesConfig{Services: []string{}, Qualities: []string{}}
		},
		Decode: func(raw string) interface{} { return decodeServices(raw) },
		Form:   servicesForm,
		Render: renderServices,
	},
	TypeTestimonials: {
		Type:   TypeTestimonials,
		Label:  "Testimonials",
		New:    func() interface{} { return TestimonialsConfig{Items: []Testimonial{}} },
		Decode: func(raw string) interface{} { return decodeTestimonials(raw) },
		Form:   testimonialsForm,
		Render: renderTestimonials,
	},
	TypePosts: {
		Type:   TypePosts,
		Label:  "Blog Posts",
		New:    func() interface{} { return PostsConfig{PostIDs: []string{}} },
		Decode: func(raw string) interface{} { return decodePosts(raw) },
		Form:   postsForm,
		Render: renderPosts,
	},
	TypeCustom: {
		Type:   TypeCustom,
		Label:  "Custom HTML",
		New:    func() interface{} { return CustomConfig{} },
		Decode: func(raw string) interface{} { return decodeCustom(raw) },
		Form:   customForm,
		Render: renderCustom,
	},
}

// pickerOrder fixes the order of the type picker in the admin.
var pickerOrder = []Type{
	TypeHero,
	TypePortfolio,
	TypeServices,
	TypeTestimonials,
	TypePosts,
	TypeCustom,
}

// Lookup returns the definition for a type tag.
func Lookup(t Type) (Definition, bool) {
	def, ok := registry[t]
	return def, ok
}

// Known reports whether the tag names a registered type.
func Known(t Type) bool {
	_, ok := registry[t]
	return ok
}

// Option is one {value,label} pair of the admin type picker.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TypeOptions returns the picker entries in display order.
func TypeOptions() []Option {
	options := make([]Option, 0, len(pickerOrder))
	for _, t := range pickerOrder {
		def := registry[t]
		options = append(options, Option{Value: string(def.Type), Label: def.Label})
	}
	return options
}

// DefaultConfigJSON returns the serialized empty config for a type, used
// when a component is created or switched to a different type. Unknown
// types get an empty object.
func DefaultConfigJSON(t Type) string {
	def, ok := registry[t]
	if !ok {
		return "{}"
	}
	return Encode(def.New())
}
