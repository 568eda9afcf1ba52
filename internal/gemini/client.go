package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"advocacia-backend/internal/config"
	"advocacia-backend/pkg/logger"
)

// InlinePart is a binary attachment sent alongside a prompt, for models
// that accept multimodal input directly (PDFs, images).
type InlinePart struct {
	MimeType string
	Data     []byte
}

// Client is the narrow surface the services depend on, so the pipeline is
// testable with a fake instead of a real network.
type Client interface {
	// GenerateStructured requests JSON constrained to the given schema and
	// decodes it into out.
	GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema, out any) error
	// GenerateText requests unconstrained long-form text, optionally with
	// deep reasoning effort enabled.
	GenerateText(ctx context.Context, prompt string, parts []InlinePart, reasoning bool) (string, error)
	// GenerateImage requests a single image and returns it as a base64
	// data URI.
	GenerateImage(ctx context.Context, prompt string, parts []InlinePart) (string, error)
}

// GenAIClient calls the Gemini API. It performs no retries; every failure
// is normalized and surfaced to the caller as-is.
type GenAIClient struct {
	client *genai.Client
	cfg    config.GeminiConfig
}

func NewGenAIClient(ctx context.Context, cfg config.GeminiConfig) (*GenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}

	return &GenAIClient{client: client, cfg: cfg}, nil
}

func (g *GenAIClient) GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema, out any) error {
	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.TextModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		})
	if err != nil {
		return fmt.Errorf("gemini: %w", err)
	}

	text := resp.Text()
	if text == "" {
		if reason, blocked := blockReason(resp); blocked {
			return fmt.Errorf("%w. Motivo: %s. Tente reformular o tema.", ErrBlocked, reason)
		}
		return ErrEmptyResponse
	}

	if err := json.Unmarshal([]byte(text), out); err != nil {
		logger.Errorf("structured response did not decode: %v", err)
		return fmt.Errorf("%w: %v", ErrParse, err)
	}

	return nil
}

func (g *GenAIClient) GenerateText(ctx context.Context, prompt string, parts []InlinePart, reasoning bool) (string, error) {
	model := g.cfg.TextModel
	cfg := &genai.GenerateContentConfig{}
	if reasoning {
		model = g.cfg.ReasoningModel
		cfg.ThinkingConfig = &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(g.cfg.ThinkingBudget),
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, contentsWith(prompt, parts), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	if reason, blocked := blockReason(resp); blocked {
		return "", fmt.Errorf("%w. Motivo: %s.", ErrBlocked, reason)
	}

	return resp.Text(), nil
}

func (g *GenAIClient) GenerateImage(ctx context.Context, prompt string, parts []InlinePart) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.ImageModel,
		contentsWith(prompt, parts),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"IMAGE"},
		})
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	return imageDataURI(resp)
}

func contentsWith(prompt string, parts []InlinePart) []*genai.Content {
	all := make([]*genai.Part, 0, len(parts)+1)
	all = append(all, genai.NewPartFromText(prompt))
	for _, p := range parts {
		all = append(all, genai.NewPartFromBytes(p.Data, p.MimeType))
	}
	return []*genai.Content{genai.NewContentFromParts(all, genai.RoleUser)}
}

// blockReason reports whether generation terminated abnormally and with
// which reason code.
func blockReason(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	fr := resp.Candidates[0].FinishReason
	if fr != "" && fr != genai.FinishReasonStop {
		return string(fr), true
	}
	return "", false
}

// imageDataURI digs the first inline image out of a response and encodes
// it as a data URI, distinguishing each missing-field failure.
func imageDataURI(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w para a geração de imagem", ErrNoCandidate)
	}

	candidate := resp.Candidates[0]
	if reason, blocked := blockReason(resp); blocked {
		return "", fmt.Errorf("a geração de imagem foi bloqueada: %w. Motivo: %s. Tente reformular o tema do post.", ErrBlocked, reason)
	}

	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w para a imagem", ErrNoContent)
	}

	for _, part := range candidate.Content.Parts {
		if part.InlineData != nil {
			encoded := base64.StdEncoding.EncodeToString(part.InlineData.Data)
			return fmt.Sprintf("data:%s;base64,%s", part.InlineData.MIMEType, encoded), nil
		}
	}

	return "", fmt.Errorf("%w da geração do post", ErrNoImage)
}
