package component

import (
	"strings"
	"testing"
)

func TestFormHTML_UnknownTypeGetsPlaceholder(t *testing.T) {
	html := string(FormHTML(Type("latest"), `{"count":3}`, nil))
	if !strings.Contains(html, "Chưa có biểu mẫu") {
		t.Fatalf("expected the placeholder form, got: %s", html)
	}
	if !strings.Contains(html, "latest") {
		t.Fatalf("placeholder should name the stray type: %s", html)
	}
}

func TestFormHTML_HeroBindsConfig(t *testing.T) {
	config := `{"title":"Inkwell","slides":[{"storageId":"a.jpg"},{"storageId":"b.jpg"}]}`

	html := string(FormHTML(TypeHero, config, nil))
	if !strings.Contains(html, `value="Inkwell"`) {
		t.Fatalf("title not bound: %s", html)
	}
	if !strings.Contains(html, `value="a.jpg"`) || !strings.Contains(html, `value="b.jpg"`) {
		t.Fatalf("slides not bound: %s", html)
	}
	if !strings.Contains(html, `data-op="add_slide"`) {
		t.Fatalf("add button missing: %s", html)
	}
}

func TestFormHTML_EmptyConfigStillRenders(t *testing.T) {
	for _, typ := range []Type{TypeHero, TypePortfolio, TypeServices, TypeTestimonials, TypePosts, TypeCustom} {
		html := string(FormHTML(typ, "", nil))
		if html == "" {
			t.Errorf("type %s: empty config must still produce a form", typ)
		}
		if !strings.Contains(html, string(typ)) {
			t.Errorf("type %s: form should carry its type marker: %s", typ, html)
		}
	}
}

func TestPostsForm_SelectionOrderAndFlags(t *testing.T) {
	posts := []PostOption{
		{ID: "1", Title: "Bài một"},
		{ID: "2", Title: "Bài hai"},
		{ID: "3", Title: "Bài ba"},
	}
	config := `{"postIds":["3","404","1"]}`

	html := string(postsForm(config, posts))

	// The selected list follows the stored click order and drops the id
	// that matches no post.
	iBa := strings.Index(html, "Bài ba")
	iMot := strings.Index(html, "Bài một")
	if iBa == -1 || iMot == -1 || iBa > iMot {
		t.Fatalf("selected order wrong: %s", html)
	}
	if !strings.Contains(html, "(2)") {
		t.Fatalf("expected 2 selected posts counted: %s", html)
	}
	if strings.Count(html, "is-selected") != 2 {
		t.Fatalf("expected 2 selected options flagged: %s", html)
	}
}

func TestCustomForm_EscapesStoredHTML(t *testing.T) {
	html := string(customForm(`{"html":"<b>bold</b>"}`, nil))
	if strings.Contains(html, "<b>bold</b>") {
		t.Fatalf("stored markup must be escaped inside the editor: %s", html)
	}
	if !strings.Contains(html, "&lt;b&gt;bold&lt;/b&gt;") {
		t.Fatalf("expected escaped markup in textarea: %s", html)
	}
}
