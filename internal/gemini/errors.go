package gemini

import "errors"

// Failure reasons surfaced by the generation client. Nothing here is
// retried; every error is terminal for the current submission.
var (
	ErrBlocked       = errors.New("geração bloqueada pelo serviço")
	ErrEmptyResponse = errors.New("a resposta de texto da IA estava vazia")
	ErrParse         = errors.New("falha ao analisar o conteúdo gerado; a resposta da IA pode não ser um JSON válido")
	ErrNoCandidate   = errors.New("a API não retornou candidatos")
	ErrNoContent     = errors.New("a resposta da IA não continha o conteúdo esperado")
	ErrNoImage       = errors.New("nenhuma imagem encontrada na resposta")
)
