package gemini

import "google.golang.org/genai"

// PostContentSchema constrains post text generation to the exact field
// set of model.PostContent, so the result is atomic: either every field
// decodes or the request fails.
func PostContentSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {
				Type:        genai.TypeString,
				Description: "Um título atraente e curto para o post (máximo 6-8 palavras).",
			},
			"subtitle": {
				Type:        genai.TypeString,
				Description: "Um subtítulo curto e informativo (máximo 10-12 palavras).",
			},
			"copy": {
				Type:        genai.TypeString,
				Description: "A legenda principal do post (cerca de 2-3 parágrafos).",
			},
			"hashtags": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Uma lista de 5-7 hashtags relevantes em português sobre direito do trabalho.",
			},
			"seoKeywords": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Uma lista de 3-5 palavras-chave de SEO para otimização de blog sobre direito do trabalho.",
			},
		},
		Required: []string{"title", "subtitle", "copy", "hashtags", "seoKeywords"},
	}
}
