package service

import (
	"context"
	"encoding/json"
	"sync"

	"google.golang.org/genai"

	"advocacia-backend/internal/gemini"
)

// fakeClient records every call so tests can assert ordering and
// all-or-nothing behavior without touching the network.
type fakeClient struct {
	mu sync.Mutex

	structuredPrompts []string
	textPrompts       []string
	textParts         [][]gemini.InlinePart
	textReasoning     []bool
	imagePrompts      []string
	imageParts        [][]gemini.InlinePart

	structuredJSON string
	structuredErr  error
	textResult     string
	textErr        error
	imageURI       string
	imageErr       func(prompt string) error
}

func (f *fakeClient) GenerateStructured(_ context.Context, prompt string, _ *genai.Schema, out any) error {
	f.mu.Lock()
	f.structuredPrompts = append(f.structuredPrompts, prompt)
	f.mu.Unlock()

	if f.structuredErr != nil {
		return f.structuredErr
	}
	return json.Unmarshal([]byte(f.structuredJSON), out)
}

func (f *fakeClient) GenerateText(_ context.Context, prompt string, parts []gemini.InlinePart, reasoning bool) (string, error) {
	f.mu.Lock()
	f.textPrompts = append(f.textPrompts, prompt)
	f.textParts = append(f.textParts, parts)
	f.textReasoning = append(f.textReasoning, reasoning)
	f.mu.Unlock()

	if f.textErr != nil {
		return "", f.textErr
	}
	return f.textResult, nil
}

func (f *fakeClient) GenerateImage(_ context.Context, prompt string, parts []gemini.InlinePart) (string, error) {
	f.mu.Lock()
	f.imagePrompts = append(f.imagePrompts, prompt)
	f.imageParts = append(f.imageParts, parts)
	f.mu.Unlock()

	if f.imageErr != nil {
		if err := f.imageErr(prompt); err != nil {
			return "", err
		}
	}
	return f.imageURI, nil
}

func (f *fakeClient) calls() (structured, text, image int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.structuredPrompts), len(f.textPrompts), len(f.imagePrompts)
}
