package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"advocacia-backend/internal/model"
	"advocacia-backend/pkg/logger"
)

// Kind classifies an uploaded document by what the pipeline does with it.
type Kind int

const (
	// KindConvertible documents are turned into plain text before prompt
	// assembly (.docx, .xlsx, .xls, .txt).
	KindConvertible Kind = iota
	// KindNative documents are attached to the model request as inline
	// binary parts (PDFs, images, anything Gemini accepts directly).
	KindNative
	// KindRejected documents are refused outright (legacy .doc).
	KindRejected
)

// TextExtractor converts a convertible document into UTF-8 plain text.
type TextExtractor interface {
	ExtractText(doc model.CaseDocument) (string, error)
}

// DocumentExtractor is the production TextExtractor. It dispatches on the
// file extension, which is more reliable than browser-supplied MIME types
// for office documents.
type DocumentExtractor struct{}

func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Classify decides how a document enters the pipeline.
func Classify(name string) Kind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".doc":
		return KindRejected
	case ".docx", ".xlsx", ".xls", ".txt":
		return KindConvertible
	default:
		return KindNative
	}
}

func (e *DocumentExtractor) ExtractText(doc model.CaseDocument) (string, error) {
	if len(doc.Data) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyFile, doc.Name)
	}

	switch strings.ToLower(filepath.Ext(doc.Name)) {
	case ".docx":
		return extractDocx(doc.Data)
	case ".xlsx":
		return extractXlsx(doc.Data)
	case ".xls":
		return extractXls(doc.Data)
	case ".txt":
		return string(doc.Data), nil
	case ".doc":
		return "", ErrLegacyDoc
	default:
		return "", fmt.Errorf("%w: no text extractor for %s", ErrExtraction, doc.Name)
	}
}

// Batch runs the extractor over every convertible document and splits out
// the native ones. Any extraction failure aborts the whole batch with a
// user-facing message naming the offending file; partial results are never
// returned.
func Batch(extractor TextExtractor, docs []model.CaseDocument) (string, []model.CaseDocument, error) {
	var sb strings.Builder
	var native []model.CaseDocument

	for _, doc := range docs {
		switch Classify(doc.Name) {
		case KindRejected:
			return "", nil, fmt.Errorf(
				"O formato .doc não é suportado. Por favor, salve o arquivo \"%s\" como .docx antes de fazer o upload.",
				doc.Name)
		case KindNative:
			native = append(native, doc)
		case KindConvertible:
			text, err := extractor.ExtractText(doc)
			if err != nil {
				logger.Errorf("extraction failed for %s: %v", doc.Name, err)
				return "", nil, fmt.Errorf(
					"Falha ao processar o arquivo '%s': %v. Verifique se o arquivo não está corrompido e se o formato é .docx (para Word).",
					doc.Name, err)
			}
			sb.WriteString(fmt.Sprintf(
				"\n\n--- INÍCIO DO CONTEÚDO DO ARQUIVO: %s ---\n%s\n--- FIM DO CONTEÚDO DO ARQUIVO: %s ---\n",
				doc.Name, text, doc.Name))
		}
	}

	return sb.String(), native, nil
}
