package rag

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// intentTimeout bounds the intent call: it gates the rest of the pipeline,
// so it gets a short budget.
const intentTimeout = 15 * time.Second

const intentPromptTemplate = `Analise a pergunta do usuário e extraia o assunto principal e as palavras-chave de contexto.
O "assunto_principal" deve ser o objeto específico da busca.
O "contexto" deve conter termos mais genéricos.
Retorne o resultado como um objeto JSON com as chaves "assunto_principal" e "contexto".

Exemplo 1:
Pergunta: "licitação ar condicionado 2025"
Resultado: {"assunto_principal": "ar condicionado", "contexto": ["licitação", "2025"]}

Exemplo 2:
Pergunta: "ponto facultativo carnaval"
Resultado: {"assunto_principal": "ponto facultativo", "contexto": ["carnaval"]}
---
Pergunta do usuário: %q
Resultado:
`

// IntentResult distinguishes a model-extracted intent from the degraded
// fallback used when the model call or its output cannot be trusted.
type IntentResult struct {
	Intent   Intent
	Degraded bool
	// Cause is the error behind a degraded result: a call failure means the
	// model was unreachable, a decode failure means it returned garbage.
	Cause error
}

// extractIntent asks the model to split the question into a primary subject
// plus context terms. Any failure degrades to searching for the raw question
// verbatim; degradation is never surfaced to the caller as an error.
func extractIntent(ctx context.Context, llm Generator, question string) IntentResult {
	fallback := Intent{PrimarySubject: question, ContextTerms: []string{}}

	raw, err := llm.Generate(ctx, fmt.Sprintf(intentPromptTemplate, question), intentTimeout)
	if err != nil {
		return IntentResult{Intent: fallback, Degraded: true, Cause: fmt.Errorf("intent call failed: %w", err)}
	}

	var intent Intent
	if err := json.Unmarshal([]byte(stripFences(raw)), &intent); err != nil {
		return IntentResult{Intent: fallback, Degraded: true, Cause: fmt.Errorf("intent response is not valid JSON: %w", err)}
	}
	if strings.TrimSpace(intent.PrimarySubject) == "" {
		intent.PrimarySubject = question
	}
	if intent.ContextTerms == nil {
		intent.ContextTerms = []string{}
	}
	return IntentResult{Intent: intent}
}

// stripFences removes an optional markdown code fence wrapping around a model
// response so the payload can be decoded as JSON.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
