package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/barros13/chatbot/internal/contextutil"
	"github.com/barros13/chatbot/internal/metrics"
	"github.com/barros13/chatbot/internal/rag"
	"github.com/barros13/chatbot/internal/service"
)

// User-facing messages. Internal error detail never reaches the response
// body; these fixed texts are all a client sees.
const (
	msgEmptyQuestion  = "Pergunta vazia."
	msgSynthesisError = "Ocorreu um erro ao processar sua solicitação na IA."
	msgInternalError  = "Ocorreu um erro interno ao processar sua solicitação."
)

// AskHandler handles HTTP requests for the question-answering endpoint.
type AskHandler struct {
	svc service.AnswerService
}

// NewAskHandler creates a new AskHandler.
func NewAskHandler(svc service.AnswerService) *AskHandler {
	return &AskHandler{svc: svc}
}

// LinkResponse is one navigable reference in the HTTP response.
type LinkResponse struct {
	Name   string `json:"nome"`
	Link   string `json:"link"`
	Origin string `json:"origem"`
}

// AskResponse is the HTTP response payload. The codigo field mirrors the
// HTTP status so browser clients behind permissive proxies can still branch
// on it.
type AskResponse struct {
	Answer string         `json:"resposta"`
	Links  []LinkResponse `json:"links"`
	Code   int            `json:"codigo"`
}

// ServeHTTP answers the question passed in the q query parameter. Method
// dispatch is the router's job; the handler is registered for GET only.
func (h *AskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	answer, err := h.svc.Answer(ctx, r.URL.Query().Get("q"))
	switch {
	case errors.Is(err, service.ErrEmptyQuestion):
		h.writeResponse(w, AskResponse{Answer: msgEmptyQuestion, Links: []LinkResponse{}, Code: http.StatusBadRequest})
		return
	case errors.Is(err, rag.ErrSynthesis):
		logger.ErrorContext(ctx, "answer synthesis failed", "error", err)
		h.writeResponse(w, AskResponse{Answer: msgSynthesisError, Links: []LinkResponse{}, Code: http.StatusInternalServerError})
		return
	case err != nil:
		logger.ErrorContext(ctx, "failed to answer question", "error", err)
		h.writeResponse(w, AskResponse{Answer: msgInternalError, Links: []LinkResponse{}, Code: http.StatusInternalServerError})
		return
	}

	links := make([]LinkResponse, len(answer.Links))
	for i, link := range answer.Links {
		links[i] = LinkResponse{Name: link.Name, Link: link.Link, Origin: link.Origin}
	}
	h.writeResponse(w, AskResponse{Answer: answer.Text, Links: links, Code: answer.Code})
}

func (h *AskHandler) writeResponse(w http.ResponseWriter, resp AskResponse) {
	metrics.RequestsTotal.WithLabelValues(strconv.Itoa(resp.Code)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Code)
	_ = json.NewEncoder(w).Encode(resp)
}
