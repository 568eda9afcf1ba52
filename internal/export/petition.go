// Package export renders generated content for the clipboard and for
// word-processor downloads.
package export

import (
	"fmt"
	"html"
	"strings"
)

// isSectionTitle is the formatting heuristic for petition lines: a line
// that is entirely uppercase, contains no bracketed placeholder and is
// under 80 characters is treated as a section title.
func isSectionTitle(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.Contains(line, "[") {
		return false
	}
	return trimmed == strings.ToUpper(trimmed) && len([]rune(trimmed)) < 80
}

// PetitionHTML renders the petition text as a standalone HTML document
// with paragraph-level justification and indent, ready for a rich-text
// clipboard. Callers fall back to the plain text when rich paste fails.
func PetitionHTML(text string) string {
	var body strings.Builder

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			body.WriteString("<p>&nbsp;</p>")
			continue
		}

		escaped := html.EscapeString(line)
		if isSectionTitle(line) {
			body.WriteString(fmt.Sprintf(
				`<p style="font-weight: bold; text-transform: uppercase; text-align: justify; line-height: 1.5; margin: 0; padding: 0;">%s</p>`,
				escaped))
		} else {
			body.WriteString(fmt.Sprintf(
				`<p style="text-indent: 1.25cm; text-align: justify; line-height: 1.5; margin: 0; padding: 0;">%s</p>`,
				escaped))
		}
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
body { font-family: 'Bookman Old Style', serif; font-size: 12pt; }
</style>
</head>
<body>%s</body>
</html>`, body.String())
}
