package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/imaging"
)

// maxUploadBytes caps a single image upload at 20 MB before conversion.
const maxUploadBytes = 20 << 20

// UploadImage accepts one image file, converts it to the stored
// representation (JPEG at fixed quality) and saves it as a blob. The
// response carries the opaque storage id plus a resolved URL.
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "no image in request")
		return
	}
	if file.Size > maxUploadBytes {
		respondError(c, http.StatusBadRequest, "image is too large")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "only image uploads are allowed")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to read upload")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to read upload")
		return
	}
	if len(data) > maxUploadBytes {
		respondError(c, http.StatusBadRequest, "image is too large")
		return
	}

	converted, err := imaging.Normalize(data)
	if err != nil {
		if errors.Is(err, imaging.ErrNotAnImage) {
			respondError(c, http.StatusBadRequest, "unsupported image format")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to process image")
		return
	}

	storageID, err := a.blobs.Save(converted, imaging.Ext)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to store image")
		return
	}

	url, _ := a.blobs.URL(storageID)
	c.JSON(http.StatusOK, gin.H{
		"storageId": storageID,
		"url":       url,
		"fileName":  imaging.FileName(file.Filename),
	})
}

// DeleteBlob removes an uploaded blob by id. Deleting an id that is
// already gone still reports success.
func (a *API) DeleteBlob(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, http.StatusBadRequest, "missing blob id")
		return
	}
	_ = a.blobs.Delete(id)
	c.JSON(http.StatusOK, gin.H{"message": "blob deleted"})
}
