package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/service"
)

// GetMenus lists navigation entries sorted by display order.
func (a *API) GetMenus(c *gin.Context) {
	items, err := a.menus.List(parseActiveOnly(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list menus")
		return
	}
	c.JSON(http.StatusOK, gin.H{"menus": items})
}

type menuCreateRequest struct {
	Name   string `json:"name" binding:"required"`
	URL    string `json:"url" binding:"required"`
	Active bool   `json:"active"`
	Order  *int   `json:"order"`
}

// CreateMenu inserts a new navigation entry.
func (a *API) CreateMenu(c *gin.Context) {
	var req menuCreateRequest
	if !bindJSON(c, &req, "invalid menu payload") {
		return
	}

	item, err := a.menus.Create(service.MenuCreateInput{
		Name:   req.Name,
		URL:    req.URL,
		Active: req.Active,
		Order:  req.Order,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMenuNameMissing), errors.Is(err, service.ErrMenuURLMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create menu")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": item})
}

type menuUpdateRequest struct {
	Name   *string `json:"name"`
	URL    *string `json:"url"`
	Active *bool   `json:"active"`
	Order  *int    `json:"order"`
}

// UpdateMenu applies a partial patch to a navigation entry.
func (a *API) UpdateMenu(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req menuUpdateRequest
	if !bindJSON(c, &req, "invalid menu payload") {
		return
	}

	item, err := a.menus.Update(id, service.MenuUpdateInput{
		Name:   req.Name,
		URL:    req.URL,
		Active: req.Active,
		Order:  req.Order,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMenuNotFound):
			respondError(c, http.StatusNotFound, "menu not found")
		case errors.Is(err, service.ErrMenuNameMissing), errors.Is(err, service.ErrMenuURLMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update menu")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": item})
}

// DeleteMenu removes a navigation entry.
func (a *API) DeleteMenu(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.menus.Delete(id); err != nil {
		if errors.Is(err, service.ErrMenuNotFound) {
			respondError(c, http.StatusNotFound, "menu not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete menu")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu deleted"})
}

// MoveMenu nudges a navigation entry one position up or down.
func (a *API) MoveMenu(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req moveRequest
	if !bindJSON(c, &req, "invalid move payload") {
		return
	}

	if err := a.menus.Move(id, req.Direction); err != nil {
		if errors.Is(err, service.ErrMenuNotFound) {
			respondError(c, http.StatusNotFound, "menu not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to move menu")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu moved"})
}
