package extract

import "errors"

var (
	// ErrLegacyDoc marks the old binary Word format, which is rejected by
	// policy rather than by a parsing failure.
	ErrLegacyDoc = errors.New("legacy .doc format is not supported")

	ErrExtraction = errors.New("text extraction failed")
	ErrEmptyFile  = errors.New("file is empty")
)
