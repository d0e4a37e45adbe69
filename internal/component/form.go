package component

import (
	"bytes"
	"html/template"
)

// PostOption is one selectable post in the posts-type form.
type PostOption struct {
	ID    string
	Title string
}

// FormHTML renders the editing form for a component type bound to the
// current config. The config may be empty, partial, or left over from a
// different type; decoding substitutes type-appropriate defaults. An
// unrecognized type gets a neutral placeholder, never an error.
func FormHTML(t Type, rawConfig string, posts []PostOption) template.HTML {
	def, ok := registry[t]
	if !ok {
		return executeForm(noFormTmpl, string(t))
	}
	return def.Form(rawConfig, posts)
}

var (
	noFormTmpl = template.Must(template.New("no-form").Parse(
		`<div class="config-form config-form-empty">Chưa có biểu mẫu cho loại này{{ if . }} ({{ . }}){{ end }}.</div>
`))

	heroFormTmpl = template.Must(template.New("hero-form").Parse(`<div class="config-form" data-type="hero">
  <label>Tiêu đề
    <input type="text" name="title" value="{{ .Title }}" placeholder="Tiêu đề hero banner">
  </label>
  <label>Subtitle
    <input type="text" name="subtitle" value="{{ .Subtitle }}" placeholder="Subtitle">
  </label>
  <fieldset class="slide-list">
    <legend>Slides ({{ len .Slides }})</legend>
{{- range $i, $s := .Slides }}
    <div class="slide" data-index="{{ $i }}">
      <input type="hidden" name="slides.{{ $i }}.storageId" value="{{ $s.StorageID }}">
      <button type="button" data-op="remove_slide" data-index="{{ $i }}">Xóa</button>
    </div>
{{- end }}
    <button type="button" data-op="add_slide">+ Thêm slide</button>
  </fieldset>
</div>
`))

	portfolioFormTmpl = template.Must(template.New("portfolio-form").Parse(`<div class="config-form" data-type="portfolio">
  <label>Tiêu đề section
    <input type="text" name="title" value="{{ .Title }}" placeholder="Hình Xăm Nổi Bật">
  </label>
  <fieldset class="item-list">
    <legend>Hình ảnh ({{ len .Items }})</legend>
{{- range $i, $item := .Items }}
    <div class="item" data-index="{{ $i }}">
      <input type="text" name="items.{{ $i }}.title" value="{{ $item.Title }}" placeholder="Tên hình xăm">
      <input type="text" name="items.{{ $i }}.category" value="{{ $item.Category }}" placeholder="Phong cách">
      <input type="hidden" name="items.{{ $i }}.storageId" value="{{ $item.StorageID }}">
      <button type="button" data-op="remove_item" data-index="{{ $i }}">Xóa</button>
    </div>
{{- end }}
    <button type="button" data-op="add_item">+ Thêm hình</button>
  </fieldset>
</div>
`))

	servicesFormTmpl = template.Must(template.New("services-form").Parse(`<div class="config-form" data-type="services">
  <label>Tiêu đề
    <input type="text" name="title" value="{{ .Title }}" placeholder="Dịch vụ của chúng tôi">
  </label>
  <fieldset class="string-list" data-list="services">
    <legend>Dịch vụ ({{ len .Services }})</legend>
{{- range $i, $v := .Services }}
    <div class="line" data-index="{{ $i }}">
      <input type="text" name="services.{{ $i }}" value="{{ $v }}">
      <button type="button" data-op="remove_service" data-index="{{ $i }}">Xóa</button>
    </div>
{{- end }}
    <button type="button" data-op="add_service">+ Thêm dịch vụ</button>
  </fieldset>
  <fieldset class="string-list" data-list="qualities">
    <legend>Cam kết ({{ len .Qualities }})</legend>
{{- range $i, $v := .Qualities }}
    <div class="line" data-index="{{ $i }}">
      <input type="text" name="qualities.{{ $i }}" value="{{ $v }}">
      <button type="button" data-op="remove_quality" data-index="{{ $i }}">Xóa</button>
    </div>
{{- end }}
    <button type="button" data-op="add_quality">+ Thêm cam kết</button>
  </fieldset>
</div>
`))

	testimonialsFormTmpl = template.Must(template.New("testimonials-form").Parse(`<div class="config-form" data-type="testimonials">
  <label>Tiêu đề
    <input type="text" name="title" value="{{ .Title }}" placeholder="Cảm nhận khách hàng">
  </label>
  <fieldset class="item-list">
    <legend>Đánh giá ({{ len .Items }})</legend>
{{- range $i, $item := .Items }}
    <div class="item" data-index="{{ $i }}">
      <input type="text" name="items.{{ $i }}.author" value="{{ $item.Author }}" placeholder="Tên khách hàng">
      <textarea name="items.{{ $i }}.content" placeholder="Nội dung đánh giá">{{ $item.Content }}</textarea>
      <input type="number" name="items.{{ $i }}.rating" value="{{ $item.Rating }}" min="1" max="5">
      <button type="button" data-op="remove_item" data-index="{{ $i }}">Xóa</button>
    </div>
{{- end }}
    <button type="button" data-op="add_item">+ Thêm đánh giá</button>
  </fieldset>
</div>
`))

	postsFormTmpl = template.Must(template.New("posts-form").Parse(`<div class="config-form" data-type="posts">
  <label>Tiêu đề
    <input type="text" name="title" value="{{ .Title }}" placeholder="Bài viết">
  </label>
  <fieldset class="post-picker">
    <legend>Chọn bài viết ({{ len .Selected }})</legend>
    <ol class="selected-posts">
{{- range .Selected }}
      <li>{{ .Title }}</li>
{{- end }}
    </ol>
    <div class="post-options">
{{- range .Options }}
      <button type="button" data-op="toggle_post" data-post-id="{{ .ID }}"
        class="post-option{{ if .Selected }} is-selected{{ end }}">{{ .Title }}</button>
{{- end }}
    </div>
  </fieldset>
</div>
`))

	customFormTmpl = template.Must(template.New("custom-form").Parse(`<div class="config-form" data-type="custom">
  <label>HTML
    <textarea name="html" rows="12" placeholder="&lt;div&gt;...&lt;/div&gt;">{{ .HTML }}</textarea>
  </label>
</div>
`))
)

func heroForm(raw string, _ []PostOption) template.HTML {
	return executeForm(heroFormTmpl, decodeHero(raw))
}

func portfolioForm(raw string, _ []PostOption) template.HTML {
	return executeForm(portfolioFormTmpl, decodePortfolio(raw))
}

func servicesForm(raw string, _ []PostOption) template.HTML {
	return executeForm(servicesFormTmpl, decodeServices(raw))
}

func testimonialsForm(raw string, _ []PostOption) template.HTML {
	return executeForm(testimonialsFormTmpl, decodeTestimonials(raw))
}

type postPickerOption struct {
	ID       string
	Title    string
	Selected bool
}

func postsForm(raw string, posts []PostOption) template.HTML {
	cfg := decodePosts(raw)

	selectedSet := make(map[string]bool, len(cfg.PostIDs))
	for _, id := range cfg.PostIDs {
		selectedSet[id] = true
	}

	byID := make(map[string]PostOption, len(posts))
	options := make([]postPickerOption, 0, len(posts))
	for _, post := range posts {
		byID[post.ID] = post
		options = append(options, postPickerOption{
			ID:       post.ID,
			Title:    post.Title,
			Selected: selectedSet[post.ID],
		})
	}

	// The selected list keeps the order the admin clicked in, which is the
	// public display order. Ids of deleted posts drop out quietly.
	selected := make([]PostOption, 0, len(cfg.PostIDs))
	for _, id := range cfg.PostIDs {
		if post, ok := byID[id]; ok {
			selected = append(selected, post)
		}
	}

	return executeForm(postsFormTmpl, struct {
		Title    string
		Selected []PostOption
		Options  []postPickerOption
	}{cfg.Title, selected, options})
}

func customForm(raw string, _ []PostOption) template.HTML {
	return executeForm(customFormTmpl, decodeCustom(raw))
}

func executeForm(tmpl *template.Template, data interface{}) template.HTML {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}
