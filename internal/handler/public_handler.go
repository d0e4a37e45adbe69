package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/inkwell/internal/component"
	"github.com/inkwell/internal/service"
	"github.com/inkwell/internal/storage"
	"github.com/microcosm-cc/bluemonday"
)

var postSanitizer = bluemonday.UGCPolicy()

const (
	visitorCookieName   = "iw_visitor_id"
	visitorCookieMaxAge = 365 * 24 * 60 * 60
)

type siteView struct {
	Name         string
	LogoURL      string
	FaviconURL   string
	SEOTitle     string
	SEODesc      string
	PrimaryColor string
	Phone        string
	Zalo         string
	Facebook     string
	Address      string
	Year         int
}

type menuView struct {
	Name string
	URL  string
}

var homePageTmpl = template.Must(template.New("home-page").Parse(`<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ if .Site.SEOTitle }}{{ .Site.SEOTitle }}{{ else }}{{ .Site.Name }}{{ end }}</title>
{{- if .Site.SEODesc }}
<meta name="description" content="{{ .Site.SEODesc }}">
{{- end }}
{{- if .Site.FaviconURL }}
<link rel="icon" href="{{ .Site.FaviconURL }}">
{{- end }}
{{- if .Site.PrimaryColor }}
<style>:root { --primary: {{ .Site.PrimaryColor }}; }</style>
{{- end }}
<link rel="stylesheet" href="/static/site.css">
</head>
<body>
<header class="site-header">
  <a class="brand" href="/">
{{- if .Site.LogoURL }}
    <img src="{{ .Site.LogoURL }}" alt="{{ .Site.Name }}">
{{- else }}
    <span>{{ .Site.Name }}</span>
{{- end }}
  </a>
  <nav>
{{- range .Menus }}
    <a href="{{ .URL }}">{{ .Name }}</a>
{{- end }}
  </nav>
</header>
<main>
{{- range .Sections }}
{{ . }}
{{- end }}
</main>
<footer class="site-footer">
{{- if .Site.Address }}
  <p>{{ .Site.Address }}</p>
{{- end }}
{{- if .Site.Phone }}
  <p><a href="tel:{{ .Site.Phone }}">{{ .Site.Phone }}</a></p>
{{- end }}
  <p>© {{ .Site.Year }} {{ .Site.Name }}</p>
</footer>
</body>
</html>
`))

var postPageTmpl = template.Must(template.New("post-page").Parse(`<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .Post.Title }} - {{ .Site.Name }}</title>
{{- if .Post.Excerpt }}
<meta name="description" content="{{ .Post.Excerpt }}">
{{- end }}
{{- if .Site.FaviconURL }}
<link rel="icon" href="{{ .Site.FaviconURL }}">
{{- end }}
<link rel="stylesheet" href="/static/site.css">
</head>
<body>
<header class="site-header">
  <a class="brand" href="/">{{ .Site.Name }}</a>
</header>
<main class="post-detail">
  <article>
    <h1>{{ .Post.Title }}</h1>
{{- if .Post.PublishedLabel }}
    <time>{{ .Post.PublishedLabel }}</time>
{{- end }}
{{- if .Post.ThumbnailURL }}
    <img class="post-thumbnail" src="{{ .Post.ThumbnailURL }}" alt="{{ .Post.Title }}">
{{- end }}
    <div class="post-body">{{ .Post.Body }}</div>
  </article>
</main>
<footer class="site-footer">
  <p>© {{ .Site.Year }} {{ .Site.Name }}</p>
</footer>
</body>
</html>
`))

var notFoundTmpl = template.Must(template.New("not-found").Parse(`<!DOCTYPE html>
<html lang="vi">
<head><meta charset="utf-8"><title>Không tìm thấy trang</title></head>
<body>
<main class="not-found">
  <h1>404</h1>
  <p>Trang bạn tìm không tồn tại.</p>
  <a href="/">Về trang chủ</a>
</main>
</body>
</html>
`))

// ShowHome renders the public home page: active components in stored
// order, image URLs resolved in one batch, active posts for the
// posts-type sections. A record that fails to render never takes the
// page down with it.
func (a *API) ShowHome(c *gin.Context) {
	a.trackVisit(c)

	site := a.siteView()

	active := true
	components, err := a.components.List(&active)
	if err != nil {
		components = nil
	}
	posts, err := a.posts.List(&active)
	if err != nil {
		posts = nil
	}

	// One batched resolve covers every storage id the page can need:
	// component config references plus post thumbnails.
	ids := make([]string, 0, len(components)*4)
	for _, comp := range components {
		ids = append(ids, storage.ExtractStorageIDs(comp.Config)...)
	}
	for _, post := range posts {
		if post.Thumbnail != "" {
			ids = append(ids, post.Thumbnail)
		}
	}
	imageURLs := a.blobs.URLs(ids)

	records := make([]component.Record, 0, len(components))
	for _, comp := range components {
		records = append(records, component.Record{
			ID:     comp.ID,
			Type:   comp.Type,
			Active: comp.Active,
			Config: comp.Config,
		})
	}

	refs := make([]component.PostRef, 0, len(posts))
	for _, post := range posts {
		refs = append(refs, component.PostRef{
			ID:           strconv.FormatUint(uint64(post.ID), 10),
			Title:        post.Title,
			Slug:         post.Slug,
			ThumbnailURL: imageURLs[post.Thumbnail],
		})
	}

	sections := component.RenderComponents(records, imageURLs, refs)

	a.renderPage(c, http.StatusOK, homePageTmpl, gin.H{
		"Site":     site,
		"Menus":    a.menuViews(),
		"Sections": sections,
	})
}

type postView struct {
	Title          string
	Excerpt        string
	PublishedLabel string
	ThumbnailURL   string
	Body           template.HTML
}

// ShowPost renders one published post by slug. Unknown slugs and inactive
// posts both get the plain 404 page.
func (a *API) ShowPost(c *gin.Context) {
	a.trackVisit(c)

	post, err := a.posts.GetBySlug(c.Param("slug"))
	if err != nil || !post.Active {
		if err != nil && !errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusInternalServerError, "failed to load post")
			return
		}
		a.renderPage(c, http.StatusNotFound, notFoundTmpl, nil)
		return
	}

	view := postView{
		Title:   post.Title,
		Excerpt: post.Excerpt,
		Body:    template.HTML(postSanitizer.Sanitize(post.Content)),
	}
	if post.PublishedAt != nil {
		view.PublishedLabel = post.PublishedAt.Format("02/01/2006")
	}
	if url, ok := a.blobs.URL(post.Thumbnail); ok {
		view.ThumbnailURL = url
	}

	a.renderPage(c, http.StatusOK, postPageTmpl, gin.H{
		"Site": a.siteView(),
		"Post": view,
	})
}

func (a *API) siteView() siteView {
	settings, err := a.settings.Get()
	if err != nil {
		settings = service.Settings{SiteName: service.DefaultSiteName}
	}

	view := siteView{
		Name:         settings.SiteName,
		SEOTitle:     settings.SEOTitle,
		SEODesc:      settings.SEODescription,
		PrimaryColor: settings.PrimaryColor,
		Phone:        settings.Phone,
		Zalo:         settings.Zalo,
		Facebook:     settings.Facebook,
		Address:      settings.Address,
		Year:         time.Now().Year(),
	}
	if url, ok := a.blobs.URL(settings.LogoStorageID); ok {
		view.LogoURL = url
	}
	if url, ok := a.blobs.URL(settings.FaviconStorageID); ok {
		view.FaviconURL = url
	}
	return view
}

func (a *API) menuViews() []menuView {
	active := true
	menus, err := a.menus.List(&active)
	if err != nil {
		return nil
	}

	views := make([]menuView, 0, len(menus))
	for _, menu := range menus {
		views = append(views, menuView{Name: menu.Name, URL: menu.URL})
	}
	return views
}

// trackVisit attributes the page view to a cookie-identified visitor,
// minting the cookie on first contact. Tracking failures never affect the
// page.
func (a *API) trackVisit(c *gin.Context) {
	visitorID, err := c.Cookie(visitorCookieName)
	if err != nil || visitorID == "" {
		visitorID = uuid.New().String()
		c.SetCookie(visitorCookieName, visitorID, visitorCookieMaxAge, "/", "", false, true)
	}

	_, _ = a.visitors.Track(service.VisitInput{
		VisitorID: visitorID,
		Path:      c.Request.URL.Path,
		UserAgent: c.Request.UserAgent(),
	})
}

func (a *API) renderPage(c *gin.Context, status int, tmpl *template.Template, data interface{}) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		c.String(http.StatusInternalServerError, "template error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
