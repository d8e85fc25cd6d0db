package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/barros13/chatbot/internal/service"
)

type stubAnswerService struct {
	answer service.Answer
}

func (s *stubAnswerService) Answer(context.Context, string) (service.Answer, error) {
	return s.answer, nil
}

func TestNewRouter_Wiring(t *testing.T) {
	router := NewRouter(&Deps{
		AnswerService: &stubAnswerService{
			answer: service.Answer{Text: "ok", Code: http.StatusOK},
		},
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	t.Run("question endpoint", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/perguntar?q=iptu")
		if err != nil {
			t.Fatalf("GET /api/perguntar: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
		var body struct {
			Answer string `json:"resposta"`
			Code   int    `json:"codigo"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if body.Answer != "ok" || body.Code != http.StatusOK {
			t.Errorf("body = %+v", body)
		}
	})

	t.Run("metrics endpoint", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/metrics")
		if err != nil {
			t.Fatalf("GET /metrics: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/perguntar?q=iptu", "application/json", nil)
		if err != nil {
			t.Fatalf("POST /api/perguntar: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", resp.StatusCode)
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/nada")
		if err != nil {
			t.Fatalf("GET /api/nada: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})
}
