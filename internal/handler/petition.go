package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advocacia-backend/internal/export"
	"advocacia-backend/internal/model"
	"advocacia-backend/internal/service"
	"advocacia-backend/pkg/logger"
)

type PetitionHandler struct {
	petitionService *service.PetitionService
}

func NewPetitionHandler(petitionService *service.PetitionService) *PetitionHandler {
	return &PetitionHandler{petitionService: petitionService}
}

// Generate drafts a petition from the uploaded case documents and the
// optional template. Multipart fields: "documentos" (repeated), "modelo".
func (h *PetitionHandler) Generate(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	var docs []model.CaseDocument
	for _, fh := range form.File["documentos"] {
		doc, err := documentFromHeader(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
			return
		}
		docs = append(docs, doc)
	}

	var template *model.CaseDocument
	if headers := form.File["modelo"]; len(headers) > 0 {
		doc, err := documentFromHeader(headers[0])
		if err != nil {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
			return
		}
		template = &doc
	}

	text, err := h.petitionService.Generate(c.Request.Context(), docs, template)
	if err != nil {
		logger.Errorf("Petition generation failed: %v", err)
		c.JSON(statusFor(err), model.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.PetitionResponse{Text: text})
}

// Export returns the petition as justified rich HTML for the clipboard.
func (h *PetitionHandler) Export(c *gin.Context) {
	var req model.ExportPetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(export.PetitionHTML(req.Text)))
}
