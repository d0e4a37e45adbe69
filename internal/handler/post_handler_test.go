package handler

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/db"
)

func TestCreatePost(t *testing.T) {
	api := setupTestAPI(t)

	c, w := jsonContext(t, http.MethodPost, "/admin/api/posts", map[string]interface{}{
		"title":   "Chăm sóc hình xăm",
		"slug":    "cham-soc-hinh-xam",
		"excerpt": "Hướng dẫn chăm sóc",
		"content": "<p>Nội dung</p>",
		"active":  true,
	})
	api.CreatePost(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var created db.Post
	if err := api.db.First(&created).Error; err != nil {
		t.Fatalf("load created post: %v", err)
	}
	if created.Slug != "cham-soc-hinh-xam" {
		t.Fatalf("unexpected slug %q", created.Slug)
	}
	if created.PublishedAt == nil {
		t.Fatalf("active post must carry a publication time")
	}
}

func TestCreatePostDuplicateSlugConflicts(t *testing.T) {
	api := setupTestAPI(t)

	payload := map[string]interface{}{"title": "Một", "slug": "trung-lap"}
	c, w := jsonContext(t, http.MethodPost, "/admin/api/posts", payload)
	api.CreatePost(c)
	if w.Code != http.StatusOK {
		t.Fatalf("first create: expected 200, got %d", w.Code)
	}

	c, w = jsonContext(t, http.MethodPost, "/admin/api/posts", payload)
	api.CreatePost(c)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate slug, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreatePostRejectsBadSlug(t *testing.T) {
	api := setupTestAPI(t)

	c, w := jsonContext(t, http.MethodPost, "/admin/api/posts", map[string]interface{}{
		"title": "Xấu",
		"slug":  "có dấu và cách",
	})
	api.CreatePost(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdatePostPartialPatch(t *testing.T) {
	api := setupTestAPI(t)

	seed := db.Post{Title: "Cũ", Slug: "bai-cu", Excerpt: "giữ nguyên"}
	if err := api.db.Create(&seed).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}

	c, w := jsonContext(t, http.MethodPut, "/admin/api/posts/1", map[string]interface{}{
		"title": "Mới",
	})
	c.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(seed.ID))}}
	api.UpdatePost(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated db.Post
	if err := api.db.First(&updated, seed.ID).Error; err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if updated.Title != "Mới" || updated.Excerpt != "giữ nguyên" || updated.Slug != "bai-cu" {
		t.Fatalf("patch must only touch the sent fields: %+v", updated)
	}
}

func TestDeletePostNotFound(t *testing.T) {
	api := setupTestAPI(t)

	c, w := jsonContext(t, http.MethodDelete, "/admin/api/posts/42", nil)
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	api.DeletePost(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetPostsActiveFilter(t *testing.T) {
	api := setupTestAPI(t)

	for _, post := range []db.Post{
		{Title: "Hiện", Slug: "hien", Active: true},
		{Title: "Ẩn", Slug: "an", Active: false},
	} {
		record := post
		if err := api.db.Create(&record).Error; err != nil {
			t.Fatalf("seed post: %v", err)
		}
	}

	c, w := jsonContext(t, http.MethodGet, "/admin/api/posts?active=true", nil)
	api.GetPosts(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Hiện") || strings.Contains(body, "Ẩn") {
		t.Fatalf("active filter not applied: %s", body)
	}
}
