package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"advocacia-backend/internal/gemini"
	"advocacia-backend/internal/model"
	"advocacia-backend/internal/service"
)

// documentFromHeader loads one uploaded file into memory. The declared
// Content-Type is kept when present; otherwise it is guessed from the
// extension so native files still reach the model with a usable MIME type.
func documentFromHeader(fh *multipart.FileHeader) (model.CaseDocument, error) {
	f, err := fh.Open()
	if err != nil {
		return model.CaseDocument{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return model.CaseDocument{}, err
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = mimeFromExtension(fh.Filename)
	}

	return model.CaseDocument{
		Name:     fh.Filename,
		MimeType: mimeType,
		Data:     data,
	}, nil
}

func mimeFromExtension(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

// statusFor maps the pipeline's error taxonomy onto HTTP statuses:
// rejected or unusable input is the client's to fix, upstream generation
// failures are a bad gateway, everything else is internal.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNoDocuments),
		errors.Is(err, service.ErrNoTheme),
		errors.Is(err, service.ErrNoPrompt):
		return http.StatusBadRequest
	case errors.Is(err, gemini.ErrBlocked),
		errors.Is(err, gemini.ErrEmptyResponse),
		errors.Is(err, gemini.ErrParse),
		errors.Is(err, gemini.ErrNoCandidate),
		errors.Is(err, gemini.ErrNoContent),
		errors.Is(err, gemini.ErrNoImage):
		return http.StatusBadGateway
	default:
		return http.StatusUnprocessableEntity
	}
}
