package export

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"advocacia-backend/internal/model"
)

// WordMimeType is the content type the post export is served with, so
// browsers hand the file straight to a word processor.
const WordMimeType = "application/msword"

var filenameRe = regexp.MustCompile(`[^a-z0-9]`)

// PostFilename derives the .doc attachment name from the post title.
func PostFilename(title string) string {
	slug := filenameRe.ReplaceAllString(strings.ToLower(title), "-")
	return slug + ".doc"
}

// PostDocumentHTML wraps the post texts in the minimal Office-flavored
// HTML that word processors accept as a document.
func PostDocumentHTML(content model.PostContent) string {
	copyHTML := strings.ReplaceAll(html.EscapeString(content.Copy), "\n", "<br />")

	return fmt.Sprintf(`<!DOCTYPE html>
<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:w="urn:schemas-microsoft-com:office:word" xmlns="http://www.w3.org/TR/REC-html40">
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
<h1>%s</h1>
<h2>%s</h2>
<p>%s</p>
<hr/>
<h3>Hashtags</h3>
<p>%s</p>
<h3>Palavras-chave (SEO)</h3>
<p>%s</p>
</body>
</html>`,
		html.EscapeString(content.Title),
		html.EscapeString(content.Title),
		html.EscapeString(content.Subtitle),
		copyHTML,
		html.EscapeString(strings.Join(content.Hashtags, " ")),
		html.EscapeString(strings.Join(content.SEOKeywords, ", ")))
}
