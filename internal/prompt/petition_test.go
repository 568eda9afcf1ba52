package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advocacia-backend/internal/config"
)

func testFirm() config.FirmConfig {
	return config.FirmConfig{
		OfficeAddress: "Escritório na Rua Exemplo, 100, Porto Alegre/RS",
		Email:         "contato@exemplo.adv.br",
		Phones:        []string{"(51) 90000-0000"},
		Lawyers:       []string{"FULANO DE TAL OAB/RS 10.000"},
	}
}

func TestPlanForEmptyTemplateSelectsSkeleton(t *testing.T) {
	plan := PlanFor("")
	assert.Equal(t, Skeleton, plan.Kind)

	plan = PlanFor("   \n  ")
	assert.Equal(t, Skeleton, plan.Kind)
}

func TestPlanForTemplateExtractsSpansAndStripsMarkers(t *testing.T) {
	plan := PlanFor("cabeçalho $$LOCKED START$$fixo$$LOCKED END$$ rodapé")

	require.Equal(t, TemplateBased, plan.Kind)
	assert.Equal(t, []string{"fixo"}, plan.LockedSpans)
	assert.Equal(t, "cabeçalho fixo rodapé", plan.Body)
	assert.NotContains(t, plan.Body, LockStartMarker)
}

func TestComposeSkeletonSections(t *testing.T) {
	composer := NewPetitionComposer(testFirm())

	out := composer.Compose("", Plan{Kind: Skeleton})

	assert.Contains(t, out, Placeholder)
	assert.Contains(t, out, "ENDEREÇAMENTO")
	assert.Contains(t, out, "CÁLCULO ESTIMADO DOS VALORES DA CAUSA")
	assert.Contains(t, out, "DA MULTA DO ART. 477 DA CLT")
	assert.Contains(t, out, "VALOR DA CAUSA")
	assert.Contains(t, out, "FECHAMENTO")
	// Firm identity comes from config, not from a hardcoded block.
	assert.Contains(t, out, "Rua Exemplo")
	assert.Contains(t, out, "contato@exemplo.adv.br")
	assert.Contains(t, out, "FULANO DE TAL OAB/RS 10.000")
}

func TestComposeSkeletonCarriesFullStatutoryBlocks(t *testing.T) {
	composer := NewPetitionComposer(testFirm())

	out := composer.Compose("", Plan{Kind: Skeleton})

	// Art. 477 section quotes both paragraphs and the TST precedent.
	assert.Contains(t, out, "§6º A entrega ao empregado de documentos que comprovem a comunicação da extinção contratual")
	assert.Contains(t, out, "§ 8º - A inobservância do disposto no § 6º deste artigo sujeitará o infrator à multa de 160 BTN")
	assert.Contains(t, out, "RRAg-1001245-64.2019.5.02.0072")
	assert.Contains(t, out, "Relator Ministro Mauricio Godinho Delgado")

	// Liquidation section quotes art. 324 CPC in full and the TRT-4 ruling.
	assert.Contains(t, out, "Art. 324.CPC")
	assert.Contains(t, out, "III - quando a determinação do objeto ou do valor da condenação depender de ato que deva ser praticado pelo réu.")
	assert.Contains(t, out, "Proc. nº 0020054-24.2018.5.04.0000")
	assert.Contains(t, out, "desembargador João Paulo Lucena")
	assert.Contains(t, out, "JORGE SOUTO MAIOR")
}

func TestComposeTemplateListsLockedBlocks(t *testing.T) {
	composer := NewPetitionComposer(testFirm())
	plan := PlanFor("modelo $$LOCKED START$$bloco intocável$$LOCKED END$$ fim")

	out := composer.Compose("", plan)

	assert.Contains(t, out, "BLOCOS DE TEXTO A SEREM PRESERVADOS")
	assert.Contains(t, out, "--- Bloco 1 ---\nbloco intocável")
	assert.Contains(t, out, "--- INÍCIO DO MODELO ---")
	assert.Contains(t, out, "modelo bloco intocável fim")
	assert.NotContains(t, out, LockStartMarker)
}

func TestComposeAppendsFormattingDirective(t *testing.T) {
	composer := NewPetitionComposer(testFirm())

	out := composer.Compose("", Plan{Kind: Skeleton})

	assert.Contains(t, out, "INSTRUÇÃO DE FORMATAÇÃO FINAL")
	assert.Contains(t, out, "Bookman Old Style")
	assert.Contains(t, out, "LETRAS MAIÚSCULAS")
}

func TestComposePrependsExtractedTexts(t *testing.T) {
	composer := NewPetitionComposer(testFirm())
	extracted := "--- INÍCIO DO CONTEÚDO DO ARQUIVO: contrato.txt ---"

	out := composer.Compose(extracted, Plan{Kind: Skeleton})

	assert.True(t, strings.HasPrefix(out, extracted))
}

func TestComposeDeterministic(t *testing.T) {
	composer := NewPetitionComposer(testFirm())
	plan := PlanFor("m $$LOCKED START$$x$$LOCKED END$$")

	assert.Equal(t, composer.Compose("docs", plan), composer.Compose("docs", plan))
}
