package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/service"
)

// GetPosts lists posts, most recently updated first.
func (a *API) GetPosts(c *gin.Context) {
	posts, err := a.posts.List(parseActiveOnly(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPost returns one post by id.
func (a *API) GetPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	post, err := a.posts.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "post not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

type postCreateRequest struct {
	Title             string   `json:"title" binding:"required"`
	Slug              string   `json:"slug" binding:"required"`
	Excerpt           string   `json:"excerpt"`
	Content           string   `json:"content"`
	Thumbnail         string   `json:"thumbnail"`
	Active            bool     `json:"active"`
	ContentStorageIDs []string `json:"contentStorageIds"`
}

// CreatePost inserts a new post.
func (a *API) CreatePost(c *gin.Context) {
	var req postCreateRequest
	if !bindJSON(c, &req, "invalid post payload") {
		return
	}

	post, err := a.posts.Create(service.PostCreateInput{
		Title:             req.Title,
		Slug:              req.Slug,
		Excerpt:           req.Excerpt,
		Content:           req.Content,
		Thumbnail:         req.Thumbnail,
		Active:            req.Active,
		ContentStorageIDs: req.ContentStorageIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlugTaken):
			respondError(c, http.StatusConflict, "slug already exists")
		case errors.Is(err, service.ErrPostTitleMissing),
			errors.Is(err, service.ErrPostSlugMissing),
			errors.Is(err, service.ErrPostSlugInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create post")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

type postUpdateRequest struct {
	Title             *string   `json:"title"`
	Slug              *string   `json:"slug"`
	Excerpt           *string   `json:"excerpt"`
	Content           *string   `json:"content"`
	Thumbnail         *string   `json:"thumbnail"`
	Active            *bool     `json:"active"`
	ContentStorageIDs *[]string `json:"contentStorageIds"`
}

// UpdatePost applies a partial patch to a post.
func (a *API) UpdatePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req postUpdateRequest
	if !bindJSON(c, &req, "invalid post payload") {
		return
	}

	post, err := a.posts.Update(id, service.PostUpdateInput{
		Title:             req.Title,
		Slug:              req.Slug,
		Excerpt:           req.Excerpt,
		Content:           req.Content,
		Thumbnail:         req.Thumbnail,
		Active:            req.Active,
		ContentStorageIDs: req.ContentStorageIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			respondError(c, http.StatusNotFound, "post not found")
		case errors.Is(err, service.ErrSlugTaken):
			respondError(c, http.StatusConflict, "slug already exists")
		case errors.Is(err, service.ErrPostTitleMissing),
			errors.Is(err, service.ErrPostSlugMissing),
			errors.Is(err, service.ErrPostSlugInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update post")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// DeletePost removes a post and its image blobs.
func (a *API) DeletePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.posts.Delete(id); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "post not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
