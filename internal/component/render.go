package component

import (
	"bytes"
	"html/template"
	"strings"
)

// PostRef is the slice of a blog post the public renderer needs.
type PostRef struct {
	ID           string
	Title        string
	Slug         string
	ThumbnailURL string
}

// RenderContext carries the pre-resolved data a render pass may need:
// storage id to URL mappings and the active posts. Ids missing from
// ImageURLs are unresolved (deleted or never uploaded) and their slots are
// dropped silently.
type RenderContext struct {
	ImageURLs map[string]string
	Posts     []PostRef
}

// Record is the subset of a stored home component the renderer consumes.
type Record struct {
	ID     uint
	Type   string
	Active bool
	Config string
}

// RenderComponents maps component records to HTML sections. Records are
// processed in the caller's order (sorted by display order upstream);
// inactive records, unrecognized types and effectively empty sections all
// contribute nothing. One bad record never stops the rest of the page.
func RenderComponents(records []Record, imageURLs map[string]string, posts []PostRef) []template.HTML {
	ctx := RenderContext{ImageURLs: imageURLs, Posts: posts}

	sections := make([]template.HTML, 0, len(records))
	for _, record := range records {
		if !record.Active {
			continue
		}
		def, ok := registry[Type(record.Type)]
		if !ok {
			continue
		}
		if html := def.Render(record.Config, ctx); html != "" {
			sections = append(sections, html)
		}
	}
	return sections
}

var (
	heroTmpl = template.Must(template.New("hero").Parse(`<section class="hero">
{{- range $i, $s := .Slides }}
  <div class="hero-slide{{ if eq $i 0 }} is-active{{ end }}">
    <img src="{{ $s.URL }}" alt="Slide {{ $i }}">
  </div>
{{- end }}
  <div class="hero-dots">
{{- range $i, $s := .Slides }}
    <button class="hero-dot" data-slide="{{ $i }}"></button>
{{- end }}
  </div>
</section>
`))

	portfolioTmpl = template.Must(template.New("portfolio").Parse(`<section class="portfolio">
  <h2 class="section-title">{{ .Title }}</h2>
  <div class="portfolio-grid">
{{- range .Items }}
    <figure class="portfolio-item">
      <img src="{{ .URL }}" alt="{{ .Title }}">
      <figcaption>
        <span class="item-category">{{ .Category }}</span>
        <span class="item-title">{{ .Title }}</span>
      </figcaption>
    </figure>
{{- end }}
  </div>
</section>
`))

	servicesTmpl = template.Must(template.New("services").Parse(`<section class="services">
  <h2 class="section-title">{{ .Title }}</h2>
{{- if .Services }}
  <div class="service-grid">
{{- range .Services }}
    <div class="service-cell"><h4>{{ . }}</h4></div>
{{- end }}
  </div>
{{- end }}
{{- if .Qualities }}
  <div class="quality-panel">
    <h3>Chúng tôi cam kết</h3>
    <ul class="quality-list">
{{- range .Qualities }}
      <li>{{ . }}</li>
{{- end }}
    </ul>
  </div>
{{- end }}
</section>
`))

	testimonialsTmpl = template.Must(template.New("testimonials").Parse(`<section class="testimonials">
  <h2 class="section-title">{{ .Title }}</h2>
  <div class="testimonial-grid">
{{- range .Items }}
    <blockquote class="testimonial">
      <p>{{ .Content }}</p>
      <footer>
        <span class="author">{{ .Author }}</span>
        <span class="rating" aria-label="{{ .Rating }} sao">{{ .Stars }}</span>
      </footer>
    </blockquote>
{{- end }}
  </div>
</section>
`))

	postsTmpl = template.Must(template.New("posts").Parse(`<section class="home-posts">
  <h2 class="section-title">{{ .Title }}</h2>
  <div class="post-strip">
{{- range .Posts }}
    <a class="post-card" href="/bai-viet/{{ .Slug }}">
{{- if .ThumbnailURL }}
      <img src="{{ .ThumbnailURL }}" alt="{{ .Title }}">
{{- else }}
      <div class="post-card-placeholder">No Image</div>
{{- end }}
      <h4>{{ .Title }}</h4>
      <span class="read-more">Xem chi tiết</span>
    </a>
{{- end }}
  </div>
</section>
`))
)

type resolvedSlide struct {
	URL string
}

func renderHero(raw string, ctx RenderContext) template.HTML {
	cfg := decodeHero(raw)

	slides := make([]resolvedSlide, 0, len(cfg.Slides))
	for _, slide := range cfg.Slides {
		if slide.StorageID == "" {
			continue
		}
		url, ok := ctx.ImageURLs[slide.StorageID]
		if !ok || url == "" {
			continue
		}
		slides = append(slides, resolvedSlide{URL: url})
	}
	if len(slides) == 0 {
		return ""
	}

	return execute(heroTmpl, struct{ Slides []resolvedSlide }{slides})
}

type resolvedPortfolioItem struct {
	Title    string
	Category string
	URL      string
}

func renderPortfolio(raw string, ctx RenderContext) template.HTML {
	cfg := decodePortfolio(raw)

	items := make([]resolvedPortfolioItem, 0, len(cfg.Items))
	for _, item := range cfg.Items {
		if item.StorageID == "" {
			continue
		}
		url, ok := ctx.ImageURLs[item.StorageID]
		if !ok || url == "" {
			continue
		}
		items = append(items, resolvedPortfolioItem{
			Title:    item.Title,
			Category: item.Category,
			URL:      url,
		})
	}
	if len(items) == 0 {
		return ""
	}

	return execute(portfolioTmpl, struct {
		Title string
		Items []resolvedPortfolioItem
	}{fallback(cfg.Title, "Hình Xăm Nổi Bật"), items})
}

func renderServices(raw string, _ RenderContext) template.HTML {
	cfg := decodeServices(raw)
	if len(cfg.Services) == 0 && len(cfg.Qualities) == 0 {
		return ""
	}

	return execute(servicesTmpl, struct {
		Title     string
		Services  []string
		Qualities []string
	}{fallback(cfg.Title, "Dịch vụ của chúng tôi"), cfg.Services, cfg.Qualities})
}

type renderedTestimonial struct {
	Author  string
	Content string
	Rating  int
	Stars   string
}

func renderTestimonials(raw string, _ RenderContext) template.HTML {
	cfg := decodeTestimonials(raw)
	if len(cfg.Items) == 0 {
		return ""
	}

	items := make([]renderedTestimonial, 0, len(cfg.Items))
	for _, item := range cfg.Items {
		items = append(items, renderedTestimonial{
			Author:  item.Author,
			Content: item.Content,
			Rating:  item.Rating,
			Stars:   stars(item.Rating),
		})
	}

	return execute(testimonialsTmpl, struct {
		Title string
		Items []renderedTestimonial
	}{fallback(cfg.Title, "Cảm nhận khách hàng"), items})
}

func renderPosts(raw string, ctx RenderContext) template.HTML {
	cfg := decodePosts(raw)

	var selected []PostRef
	if len(cfg.PostIDs) > 0 {
		// Hand-picked list: display order follows the stored ids, and ids
		// with no matching post (deleted or deactivated) drop out.
		byID := make(map[string]PostRef, len(ctx.Posts))
		for _, post := range ctx.Posts {
			byID[post.ID] = post
		}
		for _, id := range cfg.PostIDs {
			if post, ok := byID[id]; ok {
				selected = append(selected, post)
			}
		}
	} else if cfg.Count > 0 {
		// Legacy shape: the N most recent posts, in the caller's order.
		n := cfg.Count
		if n > len(ctx.Posts) {
			n = len(ctx.Posts)
		}
		selected = ctx.Posts[:n]
	}
	if len(selected) == 0 {
		return ""
	}

	return execute(postsTmpl, struct {
		Title string
		Posts []PostRef
	}{fallback(cfg.Title, "Bài viết"), selected})
}

func renderCustom(raw string, _ RenderContext) template.HTML {
	cfg := decodeCustom(raw)
	if cfg.HTML == "" {
		return ""
	}
	// Raw passthrough by contract: the admin owns this markup.
	return template.HTML(cfg.HTML)
}

func execute(tmpl *template.Template, data interface{}) template.HTML {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func stars(rating int) string {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
