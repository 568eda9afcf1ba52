package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"advocacia-backend/internal/model"
)

func TestPostFilenameSlug(t *testing.T) {
	assert.Equal(t, "post-trabalhista.doc", PostFilename("Post Trabalhista"))
	assert.Equal(t, "rescis-o-indireta-.doc", PostFilename("Rescisão Indireta!"))
	assert.Equal(t, "13--sal-rio.doc", PostFilename("13º Salário"))
}

func TestPostDocumentHTMLContents(t *testing.T) {
	content := model.PostContent{
		Title:       "Férias & descanso",
		Subtitle:    "O que diz a CLT",
		Copy:        "linha um\nlinha dois",
		Hashtags:    []string{"#ferias", "#clt"},
		SEOKeywords: []string{"férias", "clt"},
	}

	out := PostDocumentHTML(content)

	assert.Contains(t, out, "urn:schemas-microsoft-com:office:word")
	assert.Contains(t, out, "<h1>Férias &amp; descanso</h1>")
	assert.Contains(t, out, "<h2>O que diz a CLT</h2>")
	assert.Contains(t, out, "linha um<br />linha dois")
	assert.Contains(t, out, "#ferias #clt")
	assert.Contains(t, out, "férias, clt")
}
