package prompt

import (
	"fmt"

	"advocacia-backend/internal/model"
)

// aspectRatioDescriptions maps the supported aspect-ratio codes to the
// human phrasing used in the image prompt. Codes outside this set fall
// back to a generic "proporção de X" phrase instead of failing.
var aspectRatioDescriptions = map[string]string{
	"4:5":  "formato de retrato vertical (4 por 5)",
	"1:1":  "formato quadrado (1 por 1)",
	"9:16": "formato de stories vertical (9 por 16)",
	"16:9": "formato de paisagem horizontal (16 por 9)",
	"4:3":  "formato de apresentação horizontal (4 por 3)",
	"3:4":  "formato de pin vertical (3 por 4)",
}

func describeAspectRatio(code string) string {
	if d, ok := aspectRatioDescriptions[code]; ok {
		return d
	}
	return fmt.Sprintf("proporção de %s", code)
}

const defaultImageAesthetic = `Estética jurídica de luxo, ambiente escuro, profundidade de campo rasa, iluminação cinematográfica discreta, luz principal quente + luz de contorno sutil, detalhes em dourado e partículas douradas suaves, texturas ricas, pretos foscos, um toque de latão envelhecido. Paleta de cores: #0B0B0F, #1A1A1F, #C8A35F, #D4AF37, #F5F2E8, #8C6B3E. Adicione granulação de filme fina, vinheta leve, brilho suave apenas nos elementos dourados, realces brilhantes controlados. Composição usando a regra dos terços, espaço negativo generoso, toques de desfoque em primeiro plano, bokeh de fundo. Editorial, elegante, realista, premium. Sem neon, sem desenho animado, sem alta saturação. Foco seletivo, chiaroscuro dramático, bokeh de fundo, ultra-detalhe, assunto nítido, brilho de bom gosto, gradação de cores coesa.`

// ImageSpec describes one image-generation request for a post. The same
// spec is built twice per post: once with WithText set and once without.
type ImageSpec struct {
	Post          model.PostContent
	AspectRatio   string
	HasStyleImage bool
	HasLogoImage  bool
	WithText      bool
}

// BuildImagePrompt renders the image prompt. The aspect-ratio rule is
// stated first and overrides the proportions of any reference images.
func BuildImagePrompt(spec ImageSpec) string {
	var textInstruction string
	if spec.WithText {
		textInstruction = fmt.Sprintf(`
[REGRA CRÍTICA #2 - INCLUSÃO DE TEXTO]
- Incorpore o seguinte texto de forma criativa, legível e elegante na imagem:
  - Título Principal: "%s"
  - Subtítulo (menor): "%s"
- A tipografia deve ser profissional e complementar ao estilo visual. O texto deve ser o ponto focal, mas integrado harmonicamente.
`, spec.Post.Title, spec.Post.Subtitle)
	} else {
		textInstruction = `
[REGRA CRÍTICA #2 - SEM TEXTO]
A imagem final NÃO DEVE conter NENHUM texto, NENHUMA letra, NENHUMA palavra, NENHUMA marca d'água. Deve ser puramente visual.
`
	}

	var styleInstruction string
	if spec.HasStyleImage {
		styleInstruction = "- Use a primeira imagem de referência como INSPIRAÇÃO VISUAL (estilo, cores, composição). A proporção desta imagem de referência é irrelevante e DEVE SER IGNORADA."
	} else {
		styleInstruction = "- Crie um fundo visual com base no seguinte estilo detalhado: " + defaultImageAesthetic
	}

	var logoInstruction string
	if spec.HasLogoImage {
		position := "primeira"
		if spec.HasStyleImage {
			position = "segunda"
		}
		logoInstruction = fmt.Sprintf("- Pegue o logotipo da %s imagem de referência e posicione-o discretamente em um canto inferior. A proporção desta imagem de referência do logotipo é irrelevante e DEVE SER IGNORADA para a composição final.", position)
	} else {
		logoInstruction = "- Não adicione nenhum logotipo."
	}

	return fmt.Sprintf(`
[REGRA TÉCNICA #1 - FORMATO DE SAÍDA - PRIORIDADE MÁXIMA]
A proporção de aspecto da imagem final DEVE SER EXATAMENTE %s (%s).
Esta é a instrução mais importante. É um parâmetro técnico, não uma sugestão criativa.
IGNORE COMPLETAMENTE a proporção de aspecto e as dimensões de TODAS as imagens de referência fornecidas (tanto a imagem de estilo quanto a imagem do logotipo).
A única fonte de verdade para o formato da imagem final é esta regra.

---

TAREFA: Criar uma imagem para um post de advocacia (português do Brasil).

%s

PASSO 1: TEMA DA IMAGEM
- O tema central da imagem deve ser uma representação visual abstrata e conceitual do seguinte conteúdo:
  - Título do post: "%s"
  - Assunto principal: "%s..."
- A imagem deve evocar profissionalismo, seriedade e confiança, alinhada a um escritório de advocacia.

PASSO 2: ESTILO VISUAL
%s

PASSO 3: LOGOTIPO (se fornecido)
%s
`,
		spec.AspectRatio, describeAspectRatio(spec.AspectRatio),
		textInstruction,
		spec.Post.Title, truncate(spec.Post.Copy, 200),
		styleInstruction,
		logoInstruction)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
