package rag

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// synthesisTimeout bounds the answer call, which processes far more tokens
// than the intent call.
const synthesisTimeout = 45 * time.Second

// noResultsAnswer is returned without consulting the model when retrieval
// produced no candidates.
const noResultsAnswer = "Não encontrei resultados para os termos informados. Dica: tente usar outras palavras-chave ou verificar a ortografia."

// ErrSynthesis marks a failed synthesis call or an undecodable synthesis
// response. Unlike intent extraction there is no fallback here: without the
// model output there is no answer to show.
var ErrSynthesis = errors.New("answer synthesis failed")

const synthesisPromptTemplate = `Sua tarefa é agir como um assistente de busca inteligente. Analise a pergunta do usuário e a lista de documentos fornecida.

**Processo:**
1.  Filtre a Relevância: Selecione APENAS os documentos da lista que são REALMENTE relevantes para a resposta.
2.  Gere a Resposta: Usando SOMENTE os documentos que você filtrou, formule uma resposta clara e concisa.

**Formato da Saída:**
Sua resposta final DEVE ser um objeto JSON com duas chaves:
-   "resposta": Uma string contendo o texto da resposta.
-   "documentos_utilizados": Um array contendo APENAS os IDs numéricos dos documentos que você usou.

**Regras da Saída:**
Sua resposta final não DEVE conter números de documentos:
Exemplo 1:
Saída Incorreta: Processo Seletivo de Contratação Temporária de Motoristas (documento 11)
Saída CORRETA: Processo Seletivo de Contratação Temporária de Motoristas

---
**Pergunta do Usuário:** %q
**Lista de Documentos:**
%s`

// synthesisResult is the strict output contract required from the model.
// Used ids are decoded leniently as json.Number so one malformed element
// drops that element instead of the whole answer.
type synthesisResult struct {
	Answer  string        `json:"resposta"`
	UsedIDs []json.Number `json:"documentos_utilizados"`
}

// synthesize sends the enriched candidate set plus the original question to
// the model, requiring back the answer text and the ids of the candidates it
// actually used, and maps those ids to navigable links.
func synthesize(ctx context.Context, llm Generator, baseURL, question string, candidates []Candidate, views []CandidateView, logger *slog.Logger) (Answer, error) {
	if len(candidates) == 0 {
		logger.InfoContext(ctx, "no candidates retrieved, skipping synthesis")
		return Answer{Answer: noResultsAnswer, Links: []FinalLink{}}, nil
	}

	contextJSON, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return Answer{}, fmt.Errorf("%w: encoding candidates: %v", ErrSynthesis, err)
	}

	prompt := fmt.Sprintf(synthesisPromptTemplate, question, contextJSON)
	raw, err := llm.Generate(ctx, prompt, synthesisTimeout)
	if err != nil {
		return Answer{}, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}

	var result synthesisResult
	if err := json.Unmarshal([]byte(stripFences(raw)), &result); err != nil {
		logger.ErrorContext(ctx, "synthesis response is not valid JSON", "error", err)
		return Answer{}, fmt.Errorf("%w: decoding response: %v", ErrSynthesis, err)
	}

	links := make([]FinalLink, 0, len(result.UsedIDs))
	for _, id := range result.UsedIDs {
		i, err := id.Int64()
		if err != nil || i < 0 || i >= int64(len(candidates)) {
			logger.WarnContext(ctx, "dropping invalid used id from synthesis", "id", id.String())
			continue
		}
		candidate := candidates[i]
		links = append(links, FinalLink{
			Name:   candidate.Title,
			Link:   BuildLink(baseURL, candidate.Document),
			Origin: candidate.Origin,
		})
	}

	return Answer{Answer: result.Answer, Links: links}, nil
}
