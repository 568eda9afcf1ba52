package prompt

import "fmt"

// BuildPostTextPrompt asks for the structured text of a social-media post
// on the given theme, in the sober register the OAB ethics code demands.
// The field layout itself is enforced by the response schema, not by the
// prompt.
func BuildPostTextPrompt(theme string) string {
	return fmt.Sprintf(`
Você é um especialista em marketing de conteúdo para o setor jurídico, com foco em direito do trabalho.
Sua tarefa é criar o conteúdo de texto para um post de mídia social com base no seguinte tema.
O tom deve ser profissional, informativo e sóbrio, em conformidade com o Código de Ética da OAB (sem mercantilização).
O idioma deve ser português do Brasil.
Tema: "%s"
`, theme)
}
