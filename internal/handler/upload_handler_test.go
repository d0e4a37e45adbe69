package handler

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func multipartUpload(t *testing.T, fieldName, fileName, contentType string, data []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="` + fieldName + `"; filename="` + fileName + `"`}
	if contentType != "" {
		header["Content-Type"] = []string{contentType}
	}
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/api/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestUploadImageConvertsAndStores(t *testing.T) {
	api := setupTestAPI(t)

	c, w := multipartUpload(t, "image", "logo.png", "image/png", testPNG(t))
	api.UploadImage(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	parsed := decodeBody(t, w)

	storageID, _ := parsed["storageId"].(string)
	if !strings.HasSuffix(storageID, ".jpg") {
		t.Fatalf("stored blob must be jpeg, got id %q", storageID)
	}
	if fileName, _ := parsed["fileName"].(string); fileName != "logo.jpg" {
		t.Fatalf("expected converted file name logo.jpg, got %q", fileName)
	}

	url, _ := parsed["url"].(string)
	if url == "" {
		t.Fatalf("upload response must carry a resolved url")
	}
	if resolved, ok := api.blobs.URL(storageID); !ok || resolved != url {
		t.Fatalf("returned url must match the store, got %q vs %q", url, resolved)
	}
}

func TestUploadImageRejectsNonImages(t *testing.T) {
	api := setupTestAPI(t)

	c, w := multipartUpload(t, "image", "notes.txt", "image/png", []byte("plain text"))
	api.UploadImage(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("undecodable body: expected 400, got %d", w.Code)
	}

	c, w = multipartUpload(t, "image", "doc.pdf", "application/pdf", []byte("%PDF-1.4"))
	api.UploadImage(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-image content type: expected 400, got %d", w.Code)
	}
}

func TestUploadImageRequiresFile(t *testing.T) {
	api := setupTestAPI(t)

	c, w := jsonContext(t, http.MethodPost, "/admin/api/upload", nil)
	api.UploadImage(c)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without a file, got %d", w.Code)
	}
}

func TestDeleteBlobIsIdempotent(t *testing.T) {
	api := setupTestAPI(t)

	id, err := api.blobs.Save([]byte("blob"), "jpg")
	if err != nil {
		t.Fatalf("seed blob: %v", err)
	}

	for i := 0; i < 2; i++ {
		c, w := jsonContext(t, http.MethodDelete, "/admin/api/blobs/"+id, nil)
		c.Params = gin.Params{{Key: "id", Value: id}}
		api.DeleteBlob(c)
		if w.Code != http.StatusOK {
			t.Fatalf("delete %d: expected 200, got %d", i+1, w.Code)
		}
	}
	if _, ok := api.blobs.URL(id); ok {
		t.Fatalf("blob must be gone after delete")
	}
}
