package prompt

import (
	"fmt"
	"strings"

	"advocacia-backend/internal/config"
)

// Placeholder is the fixed token the model must emit for any field it
// cannot source from the supplied documents.
const Placeholder = "[INFORMAÇÃO NÃO ENCONTRADA NO DOCUMENTO]"

// PlanKind selects the petition prompt strategy, decided once per request.
type PlanKind int

const (
	// Skeleton emits the fixed 14-section labor-petition structure.
	Skeleton PlanKind = iota
	// TemplateBased follows a user-supplied template document.
	TemplateBased
)

// Plan is the tagged petition prompt variant. For TemplateBased plans the
// locked spans are extracted before the markers are stripped from the body.
type Plan struct {
	Kind        PlanKind
	LockedSpans []string
	Body        string
}

// PlanFor builds the prompt plan for a request. An empty template selects
// the skeleton.
func PlanFor(templateText string) Plan {
	if strings.TrimSpace(templateText) == "" {
		return Plan{Kind: Skeleton}
	}
	return Plan{
		Kind:        TemplateBased,
		LockedSpans: ExtractLockedSpans(templateText),
		Body:        StripLockMarkers(templateText),
	}
}

// PetitionComposer assembles the full petition prompt. Output is
// deterministic given the same inputs.
type PetitionComposer struct {
	firm config.FirmConfig
}

func NewPetitionComposer(firm config.FirmConfig) *PetitionComposer {
	return &PetitionComposer{firm: firm}
}

// Compose merges the extracted document texts with the plan-specific
// instruction block and the final formatting directive.
func (c *PetitionComposer) Compose(extractedTexts string, plan Plan) string {
	var body string
	switch plan.Kind {
	case TemplateBased:
		body = c.templatePrompt(plan)
	default:
		body = c.skeletonPrompt()
	}
	return extractedTexts + body + formattingDirective
}

func (c *PetitionComposer) templatePrompt(plan Plan) string {
	var blocks strings.Builder
	for i, span := range plan.LockedSpans {
		blocks.WriteString(fmt.Sprintf("--- Bloco %d ---\n%s\n--- Fim do Bloco %d ---\n\n", i+1, span, i+1))
	}

	return fmt.Sprintf(`
Você é um assistente jurídico altamente qualificado e também um advogado trabalhista muito experiente. Sua tarefa é redigir uma Petição Inicial completa e formal.

INSTRUÇÃO DE INÍCIO (PRIORIDADE MÁXIMA): Comece a resposta DIRETAMENTE com o texto da petição, iniciando pelo ENDEREÇAMENTO (se presente no modelo) ou pelo primeiro item do modelo. NÃO inclua NENHUMA frase introdutória, saudação ou qualquer texto antes do início formal do documento, como "Com certeza, aqui está a petição...".

INSTRUÇÃO CRÍTICA: Um modelo de petição foi fornecido. Você deve seguir a estrutura e o conteúdo deste modelo, preenchendo as informações que faltam com base nos documentos do caso e na entrevista.
Se uma informação necessária (como nomes, datas, endereços, etc.) não for encontrada nos documentos, use o placeholder %s.

INSTRUÇÃO ADICIONAL CRÍTICA: Antes da seção de pedidos ou do fechamento final da petição, você DEVE adicionar uma nova seção intitulada "CÁLCULO ESTIMADO DOS VALORES DA CAUSA". Nesta seção, você deve detalhar, item por item, os valores estimados para cada verba pleiteada (ex: horas extras, aviso prévio, multa do FGTS, etc.) e, ao final, apresentar a soma total em "VALOR TOTAL ESTIMADO DA CAUSA".

O modelo contém blocos de texto que DEVEM SER PRESERVADOS na íntegra, sem NENHUMA alteração. Eles já estão no lugar certo no texto do modelo, mas estão listados aqui para sua referência.
BLOCOS DE TEXTO A SEREM PRESERVADOS:
%s
Abaixo está o modelo completo a ser seguido. Use-o como base para a petição final, combinando-o com as informações extraídas dos arquivos de caso.
--- INÍCIO DO MODELO ---
%s
--- FIM DO MODELO ---
`, Placeholder, blocks.String(), plan.Body)
}

func (c *PetitionComposer) skeletonPrompt() string {
	contacts := strings.Join(c.firm.Phones, " / ")
	lawyers := strings.Join(c.firm.Lawyers, "; ")

	return fmt.Sprintf(`
Você é um assistente jurídico altamente qualificado e também um advogado trabalhista muito experiente.
Sua tarefa é redigir uma Petição Inicial completa e formal a partir dos documentos do caso.

INSTRUÇÃO DE INÍCIO (PRIORIDADE MÁXIMA): Comece a resposta DIRETAMENTE com o texto da petição, iniciando pelo ENDEREÇAMENTO. NÃO inclua NENHUMA frase introdutória, saudação ou qualquer texto antes do início formal do documento, como "Com certeza, aqui está a petição...".

Analise o texto extraído de arquivos (se houver) e os arquivos PDF/Imagens anexados para obter o contexto completo.
Se uma informação necessária (como nomes, datas, endereços, etc.) não for encontrada nos documentos, use o placeholder %s.

Estruture a petição rigorosamente da seguinte forma:
  1.  ENDEREÇAMENTO: "EXCELENTÍSSIMO SENHOR DOUTOR JUIZ DA VARA DO TRABALHO DE [CIDADE/UF]".
  2.  PREÂMBULO: Qualificação completa do Reclamante e do Reclamado, extraídas dos documentos fornecidos do cliente.
Informações sobre o escritório de Advocacia:
%s, com endereço eletrônico %s, Celular (WhatsApp) %s.

  3.  SÍNTESE DO CONTRATO DE TRABALHO: Um breve resumo dos fatos da relação de emprego.
  4.  DOS FATOS: Narre detalhadamente os acontecimentos que levaram à ação.
  5.  DO JUÍZO "100%% DIGITAL": "A Resolução CNJ nº 345/2020, regulamenta a tramitação dos autos em formato integralmente digital, conforme dispõe o artigo 1ª da Resolução supracitada:
Art. 1º. Autorizar a adoção, pelos Tribunais, das medidas necessárias à implementação do "Juízo 100%% Digital" no Poder Judiciário. Parágrafo único. No âmbito do "Juízo 100%% Digital", todos os atos processuais serão exclusivamente praticados por meio eletrônico e remoto por intermédio da rede mundial de computadores.
Sendo assim, é facultado ao reclamante optar, no momento da distribuição da reclamatória trabalhista, se deseja a tramitação dos autos sob este formato, conforme artigo 3º da Resolução CNJ nº 345/2020:
Art. 3º. A escolha pelo "Juízo 100%% Digital" é facultativa e será exercida pela parte demandante no momento da distribuição da ação, podendo a parte demandada opor-se a essa opção até o momento da contestação.
Dessa forma, em cumprimento ao parágrafo único, do artigo 2º da Resolução CNJ nº 345/2020, no preâmbulo foi indicado o endereço eletrônico e telefone de seus procuradores, a fim de viabilizar as notificações, conforme segue:
Endereço eletrônico dos procuradores: %s
Celular (WhatsApp): %s
Ante o exposto, requer seja deferido ao reclamante a tramitação do processo em formato "100%% digital", ocorrendo todos os atos processuais por meio eletrônico e remoto, devendo a parte reclamada ser notificada para informar os seus dados.
"
  6.  DA CONCESSÃO DO BENEFÍCIO DA JUSTIÇA GRATUITA: O reclamante informa que não possui condições financeiras para arcar com custas processuais e honorários advocatícios, sem prejuízo do seu sustento próprio e da sua família, com base no art. 5º, inciso LXXIV, da Constituição Federal, bem como do artigo 790, parágrafo 3º, da CLT, e, ainda, amparado pela Lei Federal nº 1.060/50, juntamente à Lei nº 13.105/15.
A referida declaração está em conformidade com o artigo 1º da Lei 7115/83, senão vejamos:
Art. 1º - A declaração destinada a fazer prova de vida, residência, pobreza, dependência econômica, homônima ou bons antecedentes, quando firmada pelo próprio interessado ou por procurador bastante, e sob as penas da Lei, presume-se verdadeira.
Tal garantia vem esculpida na Lei Maior, que assevera:
Art. 5º Todos são iguais perante a lei, sem distinção de qualquer natureza, garantindo-se aos brasileiros e aos estrangeiros residentes no País a inviolabilidade do direito à vida, à liberdade, à igualdade, à segurança e à propriedade, nos termos seguintes:

LXXIV – o Estado prestará assistência jurídica integral e gratuita aos que comprovarem insuficiência de recursos.
De acordo com a Lei nº 1.060/50, no seu artigo 4º, basta a afirmação de que não possui condições de arcar com custas e honorários, sem prejuízo próprio e de sua família, na própria petição inicial ou em seu pedido, a qualquer momento do processo, para a concessão do benefício, pelo que nos bastamos do texto da lei, in verbis:
Art. 4º A parte gozará dos benefícios da assistência judiciária, mediante simples afirmação, na própria petição inicial, de que não está em condições de pagar as custas do processo e os honorários de advogado, sem prejuízo próprio ou de sua família.

§ 1º Presume-se pobre, até prova em contrário, quem afirmar essa condição nos termos da lei, sob pena de pagamento até o décuplo das custas judiciais.
Ressalta que o reclamante firmou declaração de pobreza que segue em anexo, a qual declara ser verdadeira, nos termos da lei, estando amparada estas declarações nos artigos 98 e 99, § 3º do Código de Processo Civil e no artigo 374, IV do Código de Processo Civil.
Diante disto, pugna-se pela concessão do Benefício da Justiça Gratuita ao reclamante, em razão da Declaração de Pobreza firmada.

  7.  DA MULTA DO ART. 477 DA CLT: A partir de 11/11/17, com a edição da Lei nº 13.467/17 (mais conhecida como reforma trabalhista), a matéria sofreu sensível alteração. Isso porque o artigo 477, parágrafo 6º, da CLT, passou a exigir a realização de dois atos no prazo de 10 dias da rescisão: o pagamento das verbas rescisórias e a entrega ao empregado de documentos comprobatórios da comunicação da extinção contratual aos órgãos competentes.
Descumprido qualquer um desses requisitos, passou a ser aplicável a multa do parágrafo 8º do mesmo dispositivo do artigo 477 da CLT, cuja redação permaneceu intocada.
No presente caso a reclamada somente oficializou a Baixa na CTPS, homologação do TRCT, entrega da chave e documentação para liberação do FGTS, bem como a entrega das Guias do Seguro-Desemprego fora do prazo legal, infringindo o previsto na nova redação do §6º do artigo 477 da CLT, dispõe que:
§6º A entrega ao empregado de documentos que comprovem a comunicação da extinção contratual aos órgãos competentes bem como o pagamento dos valores constantes do instrumento de rescisão ou recibo de quitação deverão ser efetuados até dez dias contados a partir do término do contrato." (Redação dada pela Lei nº 13.467, de 2017)
É importante ressaltar que a Reclamada passou mais de 10 (dez) dias do rompimento contratual para realizar entrega dos documentos (baixa na CTPS, TRCT, FGTS). Logo, a não comunicação do rompimento contratual aos órgãos competentes dentro do prazo previsto legalmente por culpa da reclamada, incorre na multa prevista no art. 477, §8º da CLT.
§ 8º - A inobservância do disposto no § 6º deste artigo sujeitará o infrator à multa de 160 BTN, por trabalhador, bem assim ao pagamento da multa a favor do empregado, em valor equivalente ao seu salário, devidamente corrigido pelo índice de variação do BTN, salvo quando, comprovadamente, o trabalhador der causa à mora." (Incluído pela Lei nº 7.855, de 24.10.1989)
Nesse sentido, é o entendimento do TST:
MULTA DO § 8º DO ART. 477 DA CLT. PAGAMENTO DAS VERBAS RESCISÓRIAS DENTRO DO PRAZO LEGAL. ATRASO NA ENTREGA DA DOCUMENTAÇÃO RESCISÓRIA. RUPTURA CONTRATUAL NA VIGÊNCIA DA LEI 13.467/2017. PENALIDADE DEVIDA. A discussão, no presente, caso consiste em perquirir se é devida a multa do artigo 477, § 8º, da CLT, em face do atraso na entrega da documentação rescisória, apesar de as verbas rescisórias terem sido pagas tempestivamente. De acordo com a nova redação do § 6º do artigo 477 da CLT, promovida pela Lei 13.467/2017 (já vigente na ocasião da rescisão contratual da Obreira), a penalidade do referido dispositivo passou a ser devida não só no caso do atraso no pagamento das verbas rescisórias, mas, também, do atraso na entrega, ao empregado, de documentos que comprovem a comunicação da extinção contratual aos órgãos competentes. Assim, ante a alteração da redação do art. 477, § 6º, da CLT, o entendimento desta Corte é no sentido de que, nos contratos de trabalho rescindidos após a vigência da Lei nº 13.467/2017, é devida a aplicação da multa prevista no § 8º do art. 477 da CLT, tanto nos casos de atraso no pagamento das verbas rescisórias quanto na entrega da documentação que comprova a extinção do contrato de trabalho. No presente caso, embora constatado o pagamento oportuno das verbas rescisórias, houve o descumprimento do prazo estipulado no § 6º do art. 477 da CLT, no que diz respeito à entrega dos documentos alusivos ao término da relação de emprego (guias do seguro-desemprego e do FGTS), incidindo a multa estipulada no § 8º. Não se pode, por interpretação desfavorável, no Direito do Trabalho, reduzir comando ou verba trabalhista. Portanto, constatado o efetivo descumprimento da referida obrigação no prazo legal, devida a condenação da Reclamada ao pagamento da multa do art. 477, § 8º, da CLT. Julgados. Recurso de revista conhecido e provido no aspecto. (RRAg-1001245-64.2019.5.02.0072, 3ª Turma, Relator Ministro Mauricio Godinho Delgado, DEJT 09/08/2024).
Diante do exposto, requer ao MM Juízo que condene a reclamada em favor do reclamante no pagamento da multa prevista no art. 477 da CLT, diante do atraso na entrega da documentação rescisória.

  8.  DO DIREITO: Fundamente cada pedido com a legislação (CLT), doutrina e jurisprudência aplicável.
  9.  DOS HONORÁRIOS ADVOCATÍCIOS: O reclamante postula a condenação da reclamada ao pagamento de honorários de sucumbência em percentual de 15%% (quinze por cento) sobre o valor total bruto da condenação, previstos no art. 791-A, caput, CLT, artigo 85, § 2º, do CPC/2015 e no artigo 22 do Estatuto da OAB (Lei nº 8.906/94).
DA LIQUIDAÇÃO DA EXORDIAL NOS TERMOS DA LEI Nº 13.467/17: Salienta que a referida Lei nº 13.467/17 estabeleceu que as reclamatórias trabalhistas devem conter os valores de seus pedidos.
Diante disto, o reclamante salienta que esta apresentação de cálculos na fase inicial, segue com fulcro no art. 324 CPC, descrito abaixo:
Art. 324.CPC
O pedido deve ser determinado.
§ 1º É lícito, porém, formular pedido genérico:
I - nas ações universais, se o autor não puder individuar os bens demandados;
II - quando não for possível determinar, desde logo, as consequências do ato ou do fato;
III - quando a determinação do objeto ou do valor da condenação depender de ato que deva ser praticado pelo réu.
§ 2º O disposto neste artigo aplica-se à reconvenção.
Considerando que foi afastada a necessidade de valor líquido para os pedidos em ação trabalhista, sendo que a 1ª Seção de Dissídios Individuais do TRT-4 (RS) que concedeu por unanimidade, mandado de segurança que aborda a questão da obrigatoriedade, ou não, de as petições iniciais formularem pedidos líquidos com valores certos. O julgado concluiu ser desnecessária a indicação de um valor líquido para os pedidos, bastando a apresentação de um valor determinado. (Proc. nº 0020054-24.2018.5.04.0000). Vejamos os trechos do julgamento:
No julgamento - cujo relator foi o desembargador João Paulo Lucena, - foi reafirmado "o princípio constitucional que garante a todo cidadão brasileiro o amplo acesso à justiça, sem a necessidade de formalidade, sobretudo na preservação dos direitos nas relações de emprego".
"Conforme o art. 840, § 1º, da CLT, o pedido dever ser certo, determinado e indicar o seu valor, o que, contudo, não significa que o pedido deva ser líquido.
Não é exigível da parte a apresentação de pedido líquido e certo estritamente interpretado e a traduzir com exatidão o quantum debeatur do direito reclamado, como se liquidação antecipada da execução fosse, antes mesmo de constituída a relação processual. A "Indicação do seu valor" (do pedido), o que deve ser tomado, literalmente, como uma indicação e não como uma certeza, a qual somente se obterá com os limites fixados no julgamento e após a necessária liquidação. Conforme lembra JORGE SOUTO MAIOR, assim agiu o próprio legislador da Reforma Trabalhista ao deixar claro que a definição do valor efetivamente devido será feita com a liquidação da sentença, conforme o teor do art. 791-A, o qual estabelece que os honorários advocatícios devidos ao advogado do reclamante serão calculados sobre "o valor que resultar da liquidação da sentença".
Neste sentido, o ato processual diz respeito ao atendimento dos requisitos legais previstos para a petição inicial, que deveriam ser aqueles dispostos na CLT já com as alterações feitas pela Lei nº 13.467/17 e que apenas determina sejam apontados os valores na peça inaugural, não exigindo sua liquidação exata neste aspecto.
Portanto, assim deve ser recebida a presente exordial, considerando que fora preenchido os requisitos legais.

  10. CÁLCULO ESTIMADO DOS VALORES DA CAUSA: Detalhe, item por item, os valores estimados para cada verba pleiteada e, ao final, apresente a soma total.
  11. DOS PEDIDOS: Liste de forma clara e objetiva todas as solicitações (pedidos certos, determinados e com indicação de seu valor, não esqueça de mencionar: "Juízo 100%% Digital", "benefício da Justiça Gratuita" e "DA MULTA DO ART. 477 DA CLT").
  12. DOS REQUERIMENTOS FINAIS: Inclua os requerimentos de praxe (citação, provas, justiça gratuita, honorários, etc.).
  13. VALOR DA CAUSA.
  14. FECHAMENTO: "Nestes termos, pede deferimento. [Local (deve ser o mesmo da VARA DO TRABALHO DE)], [data atual em que esta petição está sendo gerada]. %s".
`, Placeholder, c.firm.OfficeAddress, c.firm.Email, contacts, c.firm.Email, contacts, lawyers)
}

const formattingDirective = `
INSTRUÇÃO DE FORMATAÇÃO FINAL (PRIORIDADE MÁXIMA):
Gere o conteúdo final em formato de documento jurídico profissional, seguindo rigorosamente as seguintes configurações de estilo e formatação:

Configurações do Documento
- Papel: A4 (21 x 29,7 cm)
- Margens: Superior 2,5 cm | Inferior 2,5 cm | Esquerda 3,0 cm | Direita 2,0 cm
- Fonte principal: Bookman Old Style
- Tamanho da fonte:
  - Corpo do texto: Bookman Old Style, Recuo: Primeira linha: 3 cm, Justificado, Espaçamento entre linhas: 1,5 linhas, Espaço Antes: 14 pt, Depois de: 14 pt
  - Títulos e subtítulos: Bookman Old Style, 12 pt, Negrito, Todas em Maiúsculas, Dimensão de caractere: 105%, Centralizado, Espaçamento entre linhas: 1,5 linhas, Espaço Antes: 28 pt, Depois de: 18 pt
- Alinhamento: Justificado
- Recuo de primeira linha: 1,25 cm
- Espaçamento entre linhas: 1,5 linha
- Espaçamento entre parágrafos: Antes: 0 pt / Depois: 0 pt
- Cabeçalho e rodapé: 1,25 cm.

Gere o texto formatado com todas as regras acima, estruturado como se fosse um documento Word pronto para impressão.
REGRA CRÍTICA DE FORMATAÇÃO: É terminantemente proibido o uso de formatação markdown. NUNCA, em nenhuma circunstância, utilize asteriscos duplos (**) para aplicar negrito ou qualquer outra ênfase. A única forma de destaque para títulos é o uso de LETRAS MAIÚSCULAS, conforme definido nas regras de formatação. O texto final não deve conter nenhum caractere *.
O idioma deve ser português do Brasil, com linguagem técnica, formal e persuasiva.
A petição deve ser gerada como um texto único e coeso.
`
