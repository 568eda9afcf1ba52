package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartContext(t *testing.T, build func(w *multipart.Writer)) *gin.Context {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	build(w)
	require.NoError(t, w.Close())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/post/generate", &body)
	c.Request.Header.Set("Content-Type", w.FormDataContentType())
	return c
}

func TestOptionalFileAbsentField(t *testing.T) {
	c := multipartContext(t, func(w *multipart.Writer) {
		require.NoError(t, w.WriteField("theme", "férias"))
	})

	doc, err := optionalFile(c, "style_image")

	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestOptionalFilePresentField(t *testing.T) {
	c := multipartContext(t, func(w *multipart.Writer) {
		fw, err := w.CreateFormFile("logo_image", "logo.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte{0x89, 0x50})
		require.NoError(t, err)
	})

	doc, err := optionalFile(c, "logo_image")

	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "logo.png", doc.Name)
	assert.Equal(t, []byte{0x89, 0x50}, doc.Data)
}

func TestOptionalFileSurfacesMultipartErrors(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/post/generate",
		strings.NewReader(`{"theme":"férias"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	doc, err := optionalFile(c, "style_image")

	assert.Error(t, err)
	assert.Nil(t, doc)
}
