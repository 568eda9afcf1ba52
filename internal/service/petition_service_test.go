package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advocacia-backend/internal/config"
	"advocacia-backend/internal/extract"
	"advocacia-backend/internal/model"
	"advocacia-backend/internal/prompt"
)

func newPetitionService(client *fakeClient) *PetitionService {
	firm := config.FirmConfig{
		OfficeAddress: "Escritório na Rua Exemplo, 100, Porto Alegre/RS",
		Email:         "contato@exemplo.adv.br",
		Phones:        []string{"(51) 90000-0000"},
		Lawyers:       []string{"FULANO DE TAL OAB/RS 10.000"},
	}
	return NewPetitionService(client, extract.NewDocumentExtractor(), prompt.NewPetitionComposer(firm))
}

func TestPetitionGenerateRejectsZeroDocumentsBeforeAnyCall(t *testing.T) {
	client := &fakeClient{}
	svc := newPetitionService(client)

	_, err := svc.Generate(context.Background(), nil, nil)

	assert.ErrorIs(t, err, ErrNoDocuments)
	structured, text, image := client.calls()
	assert.Zero(t, structured)
	assert.Zero(t, text)
	assert.Zero(t, image)
}

func TestPetitionGenerateSkeletonWhenNoTemplate(t *testing.T) {
	client := &fakeClient{textResult: "EXCELENTÍSSIMO SENHOR..."}
	svc := newPetitionService(client)

	docs := []model.CaseDocument{{Name: "contrato.txt", Data: []byte("contrato de trabalho")}}

	out, err := svc.Generate(context.Background(), docs, nil)

	require.NoError(t, err)
	assert.Equal(t, "EXCELENTÍSSIMO SENHOR...", out)

	require.Len(t, client.textPrompts, 1)
	p := client.textPrompts[0]
	assert.Contains(t, p, "--- INÍCIO DO CONTEÚDO DO ARQUIVO: contrato.txt ---")
	assert.Contains(t, p, "contrato de trabalho")
	assert.Contains(t, p, "ENDEREÇAMENTO")
	assert.Contains(t, p, prompt.Placeholder)
	assert.True(t, client.textReasoning[0])
}

func TestPetitionGenerateTemplateFlowsIntoPrompt(t *testing.T) {
	client := &fakeClient{textResult: "peça"}
	svc := newPetitionService(client)

	docs := []model.CaseDocument{{Name: "fatos.txt", Data: []byte("fatos do caso")}}
	template := &model.CaseDocument{
		Name: "modelo.txt",
		Data: []byte("timbre $$LOCKED START$$cláusula fixa$$LOCKED END$$ corpo"),
	}

	_, err := svc.Generate(context.Background(), docs, template)

	require.NoError(t, err)
	require.Len(t, client.textPrompts, 1)
	p := client.textPrompts[0]
	assert.Contains(t, p, "BLOCOS DE TEXTO A SEREM PRESERVADOS")
	assert.Contains(t, p, "cláusula fixa")
	assert.NotContains(t, p, "$$LOCKED START$$")
	assert.NotContains(t, p, "ENDEREÇAMENTO")
}

func TestPetitionGenerateForwardsNativeDocuments(t *testing.T) {
	client := &fakeClient{textResult: "peça"}
	svc := newPetitionService(client)

	docs := []model.CaseDocument{
		{Name: "fatos.txt", Data: []byte("fatos")},
		{Name: "prova.pdf", MimeType: "application/pdf", Data: []byte{0x25, 0x50}},
	}

	_, err := svc.Generate(context.Background(), docs, nil)

	require.NoError(t, err)
	require.Len(t, client.textParts, 1)
	require.Len(t, client.textParts[0], 1)
	assert.Equal(t, "application/pdf", client.textParts[0][0].MimeType)
	assert.Equal(t, []byte{0x25, 0x50}, client.textParts[0][0].Data)
}

func TestPetitionGenerateLegacyDocAbortsBeforeModel(t *testing.T) {
	client := &fakeClient{}
	svc := newPetitionService(client)

	docs := []model.CaseDocument{{Name: "antigo.doc", Data: []byte("x")}}

	_, err := svc.Generate(context.Background(), docs, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "antigo.doc")
	_, text, _ := client.calls()
	assert.Zero(t, text)
}

func TestPetitionGenerateBrokenTemplateNamesFile(t *testing.T) {
	client := &fakeClient{}
	svc := newPetitionService(client)

	docs := []model.CaseDocument{{Name: "fatos.txt", Data: []byte("fatos")}}
	template := &model.CaseDocument{Name: "modelo.docx", Data: []byte("not a docx")}

	_, err := svc.Generate(context.Background(), docs, template)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "modelo.docx")
	_, text, _ := client.calls()
	assert.Zero(t, text)
}
