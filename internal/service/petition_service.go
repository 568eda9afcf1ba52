package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"advocacia-backend/internal/extract"
	"advocacia-backend/internal/gemini"
	"advocacia-backend/internal/model"
	"advocacia-backend/internal/prompt"
	"advocacia-backend/pkg/logger"
)

// ErrNoDocuments is the local validation failure for a petition request
// with no case documents attached. It is raised before any network call.
var ErrNoDocuments = errors.New("Por favor, anexe ao menos um documento do caso.")

// PetitionService drives the petition pipeline: extract the uploaded
// documents, compose the prompt plan (template or skeleton) and issue one
// long-form reasoning request with the native files attached inline.
type PetitionService struct {
	client    gemini.Client
	extractor extract.TextExtractor
	composer  *prompt.PetitionComposer
}

func NewPetitionService(client gemini.Client, extractor extract.TextExtractor, composer *prompt.PetitionComposer) *PetitionService {
	return &PetitionService{
		client:    client,
		extractor: extractor,
		composer:  composer,
	}
}

func (s *PetitionService) Generate(ctx context.Context, docs []model.CaseDocument, template *model.CaseDocument) (string, error) {
	if len(docs) == 0 {
		return "", ErrNoDocuments
	}

	templateText, err := s.templateContent(template)
	if err != nil {
		return "", err
	}

	extractedTexts, native, err := extract.Batch(s.extractor, docs)
	if err != nil {
		return "", err
	}

	plan := prompt.PlanFor(templateText)
	fullPrompt := s.composer.Compose(extractedTexts, plan)

	parts := make([]gemini.InlinePart, 0, len(native))
	for _, doc := range native {
		parts = append(parts, gemini.InlinePart{MimeType: doc.MimeType, Data: doc.Data})
	}

	logger.Infof("Generating petition: %d documents (%d native), plan=%d", len(docs), len(native), plan.Kind)

	text, err := s.client.GenerateText(ctx, fullPrompt, parts, true)
	if err != nil {
		return "", err
	}

	return text, nil
}

// templateContent reads the optional template document. Word templates go
// through the text extractor; anything else is assumed to be readable text.
func (s *PetitionService) templateContent(template *model.CaseDocument) (string, error) {
	if template == nil {
		return "", nil
	}

	if strings.EqualFold(filepath.Ext(template.Name), ".docx") {
		text, err := s.extractor.ExtractText(*template)
		if err != nil {
			return "", fmt.Errorf(
				"Falha ao processar o arquivo de modelo '%s'. Verifique se o arquivo não está corrompido e se o formato é suportado (.docx, .txt).",
				template.Name)
		}
		return text, nil
	}

	return string(template.Data), nil
}
