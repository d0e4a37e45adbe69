package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/component"
	"github.com/inkwell/internal/service"
)

// GetComponentTypes returns the type picker options.
func (a *API) GetComponentTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": component.TypeOptions()})
}

// GetComponents lists home components sorted by display order.
func (a *API) GetComponents(c *gin.Context) {
	items, err := a.components.List(parseActiveOnly(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list components")
		return
	}
	c.JSON(http.StatusOK, gin.H{"components": items})
}

// GetComponent returns one component together with its rendered admin form.
func (a *API) GetComponent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := a.components.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrComponentNotFound) {
			respondError(c, http.StatusNotFound, "component not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load component")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"component": item,
		"formHtml":  component.FormHTML(component.Type(item.Type), item.Config, a.postOptions()),
	})
}

type componentCreateRequest struct {
	Name   string `json:"name" binding:"required"`
	Type   string `json:"type" binding:"required"`
	Active bool   `json:"active"`
	Order  *int   `json:"order"`
	Config string `json:"config"`
}

// CreateComponent inserts a new home component.
func (a *API) CreateComponent(c *gin.Context) {
	var req componentCreateRequest
	if !bindJSON(c, &req, "invalid component payload") {
		return
	}

	item, err := a.components.Create(service.ComponentCreateInput{
		Name:   req.Name,
		Type:   req.Type,
		Active: req.Active,
		Order:  req.Order,
		Config: req.Config,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrComponentNameMissing),
			errors.Is(err, service.ErrComponentTypeInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create component")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"component": item})
}

type componentUpdateRequest struct {
	Name   *string `json:"name"`
	Type   *string `json:"type"`
	Active *bool   `json:"active"`
	Order  *int    `json:"order"`
	Config *string `json:"config"`
}

// UpdateComponent applies a partial patch to a component.
func (a *API) UpdateComponent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req componentUpdateRequest
	if !bindJSON(c, &req, "invalid component payload") {
		return
	}

	item, err := a.components.Update(id, service.ComponentUpdateInput{
		Name:   req.Name,
		Type:   req.Type,
		Active: req.Active,
		Order:  req.Order,
		Config: req.Config,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrComponentNotFound):
			respondError(c, http.StatusNotFound, "component not found")
		case errors.Is(err, service.ErrComponentNameMissing),
			errors.Is(err, service.ErrComponentTypeInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update component")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"component": item})
}

// DeleteComponent removes a component and its referenced blobs.
func (a *API) DeleteComponent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.components.Delete(id); err != nil {
		if errors.Is(err, service.ErrComponentNotFound) {
			respondError(c, http.StatusNotFound, "component not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete component")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "component deleted"})
}

type moveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// MoveComponent nudges a component one position up or down.
func (a *API) MoveComponent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req moveRequest
	if !bindJSON(c, &req, "invalid move payload") {
		return
	}

	if err := a.components.Move(id, req.Direction); err != nil {
		if errors.Is(err, service.ErrComponentNotFound) {
			respondError(c, http.StatusNotFound, "component not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to move component")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "component moved"})
}

type configOpRequest struct {
	Type   string       `json:"type" binding:"required"`
	Config string       `json:"config"`
	Op     component.Op `json:"op" binding:"required"`
}

// ApplyConfigOp runs one form list-operation against a config draft and
// returns the new config plus the re-rendered form fragment. The draft
// lives client-side; nothing is persisted here.
func (a *API) ApplyConfigOp(c *gin.Context) {
	var req configOpRequest
	if !bindJSON(c, &req, "invalid config operation") {
		return
	}

	typ := component.Type(req.Type)
	next, err := component.ApplyOp(typ, req.Config, req.Op)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"config":   next,
		"formHtml": component.FormHTML(typ, next, a.postOptions()),
	})
}

// GetComponentForm renders the admin form for a type and draft config,
// used when the admin switches the type picker: the config resets to the
// new type's default shape.
func (a *API) GetComponentForm(c *gin.Context) {
	typ := component.Type(c.Query("type"))
	raw := c.Query("config")
	if raw == "" || !component.Known(typ) {
		raw = component.DefaultConfigJSON(typ)
	}

	c.JSON(http.StatusOK, gin.H{
		"config":   raw,
		"formHtml": component.FormHTML(typ, raw, a.postOptions()),
	})
}

// postOptions lists the live posts for the posts-type form picker.
func (a *API) postOptions() []component.PostOption {
	active := true
	posts, err := a.posts.List(&active)
	if err != nil {
		return nil
	}

	options := make([]component.PostOption, 0, len(posts))
	for _, post := range posts {
		options = append(options, component.PostOption{
			ID:    strconv.FormatUint(uint64(post.ID), 10),
			Title: post.Title,
		})
	}
	return options
}
