package service

import (
	"context"
	"errors"

	"advocacia-backend/internal/gemini"
)

var ErrNoPrompt = errors.New("Por favor, digite a sua consulta.")

// QueryService answers complex legal questions with deep reasoning
// enabled. No documents are attached; the prompt is sent as-is.
type QueryService struct {
	client gemini.Client
}

func NewQueryService(client gemini.Client) *QueryService {
	return &QueryService{client: client}
}

func (s *QueryService) Generate(ctx context.Context, promptText string) (string, error) {
	if promptText == "" {
		return "", ErrNoPrompt
	}
	return s.client.GenerateText(ctx, promptText, nil, true)
}
