package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"advocacia-backend/internal/export"
	"advocacia-backend/internal/model"
	"advocacia-backend/internal/service"
	"advocacia-backend/pkg/logger"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Generate creates the post text and both image variants. Multipart
// fields: "theme", "aspect_ratio", optional "style_image" and "logo_image".
func (h *PostHandler) Generate(c *gin.Context) {
	theme := c.PostForm("theme")
	aspectRatio := c.DefaultPostForm("aspect_ratio", "4:5")

	styleImage, err := optionalFile(c, "style_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}
	logoImage, err := optionalFile(c, "logo_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.postService.Generate(c.Request.Context(), theme, aspectRatio, styleImage, logoImage)
	if err != nil {
		logger.Errorf("Post generation failed: %v", err)
		c.JSON(statusFor(err), model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Export serves the post texts as a Word-compatible attachment.
func (h *PostHandler) Export(c *gin.Context) {
	var req model.ExportPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	filename := export.PostFilename(req.PostContent.Title)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.WordMimeType, []byte(export.PostDocumentHTML(req.PostContent)))
}

// optionalFile loads a multipart file field that may legitimately be
// absent. Only a missing file is treated as absence; any other multipart
// failure is surfaced so a broken upload is not silently dropped.
func optionalFile(c *gin.Context, field string) (*model.CaseDocument, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	doc, err := documentFromHeader(fh)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
