package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/service"
)

// GetUsers lists staff accounts.
func (a *API) GetUsers(c *gin.Context) {
	users, err := a.users.List(parseActiveOnly(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUser returns one staff account by id.
func (a *API) GetUser(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.users.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "user not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type userCreateRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// CreateUser inserts a new staff account.
func (a *API) CreateUser(c *gin.Context) {
	var req userCreateRequest
	if !bindJSON(c, &req, "invalid user payload") {
		return
	}

	user, err := a.users.Create(service.UserCreateInput{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Active: req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			respondError(c, http.StatusConflict, "email already exists")
		case errors.Is(err, service.ErrUserNameMissing),
			errors.Is(err, service.ErrUserEmailMissing),
			errors.Is(err, service.ErrUserRoleInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create user")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type userUpdateRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Active *bool   `json:"active"`
}

// UpdateUser applies a partial patch to a staff account.
func (a *API) UpdateUser(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req userUpdateRequest
	if !bindJSON(c, &req, "invalid user payload") {
		return
	}

	user, err := a.users.Update(id, service.UserUpdateInput{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Active: req.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, http.StatusNotFound, "user not found")
		case errors.Is(err, service.ErrEmailTaken):
			respondError(c, http.StatusConflict, "email already exists")
		case errors.Is(err, service.ErrUserNameMissing),
			errors.Is(err, service.ErrUserEmailMissing),
			errors.Is(err, service.ErrUserRoleInvalid):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to update user")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser removes a staff account.
func (a *API) DeleteUser(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.users.Delete(id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "user not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
