package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"advocacia-backend/internal/gemini"
	"advocacia-backend/internal/model"
	"advocacia-backend/internal/prompt"
	"advocacia-backend/pkg/logger"
)

var ErrNoTheme = errors.New("Por favor, descreva o tema do post.")

// PostService assembles a complete social-media post. Text generation must
// succeed first, because both image prompts are derived from the generated
// title and copy; the two image variants then run concurrently. If either
// image fails the whole operation fails and nothing is returned.
type PostService struct {
	client gemini.Client
}

func NewPostService(client gemini.Client) *PostService {
	return &PostService{client: client}
}

func (s *PostService) Generate(ctx context.Context, theme, aspectRatio string, styleImage, logoImage *model.CaseDocument) (*model.PostResult, error) {
	if theme == "" {
		return nil, ErrNoTheme
	}

	var content model.PostContent
	err := s.client.GenerateStructured(ctx, prompt.BuildPostTextPrompt(theme), gemini.PostContentSchema(), &content)
	if err != nil {
		return nil, err
	}

	var parts []gemini.InlinePart
	if styleImage != nil {
		parts = append(parts, gemini.InlinePart{MimeType: styleImage.MimeType, Data: styleImage.Data})
	}
	if logoImage != nil {
		parts = append(parts, gemini.InlinePart{MimeType: logoImage.MimeType, Data: logoImage.Data})
	}

	spec := prompt.ImageSpec{
		Post:          content,
		AspectRatio:   aspectRatio,
		HasStyleImage: styleImage != nil,
		HasLogoImage:  logoImage != nil,
	}

	logger.Infof("Post text generated, requesting both image variants (aspect %s)", aspectRatio)

	var withText, withoutText string
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		spec := spec
		spec.WithText = true
		uri, err := s.client.GenerateImage(gctx, prompt.BuildImagePrompt(spec), parts)
		if err != nil {
			return err
		}
		withText = uri
		return nil
	})

	g.Go(func() error {
		spec := spec
		spec.WithText = false
		uri, err := s.client.GenerateImage(gctx, prompt.BuildImagePrompt(spec), parts)
		if err != nil {
			return err
		}
		withoutText = uri
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.PostResult{
		PostContent:         content,
		ImageURLWithText:    withText,
		ImageURLWithoutText: withoutText,
	}, nil
}
