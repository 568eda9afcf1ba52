package prompt

import (
	"regexp"
	"strings"
)

// Lock markers delimit spans of a petition template that must survive
// generation byte-for-byte.
const (
	LockStartMarker = "$$LOCKED START$$"
	LockEndMarker   = "$$LOCKED END$$"
)

var lockedSpanRe = regexp.MustCompile(`(?s)\$\$LOCKED START\$\$(.*?)\$\$LOCKED END\$\$`)

// ExtractLockedSpans returns the text between each marker pair, trimmed,
// in document order.
func ExtractLockedSpans(template string) []string {
	matches := lockedSpanRe.FindAllStringSubmatch(template, -1)
	spans := make([]string, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, strings.TrimSpace(m[1]))
	}
	return spans
}

// StripLockMarkers removes the markers while leaving the enclosed text in
// place. Stripping an already-stripped template is a no-op.
func StripLockMarkers(template string) string {
	return lockedSpanRe.ReplaceAllString(template, "$1")
}
