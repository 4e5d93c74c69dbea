package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
)

type stubAnswerer struct {
	answer *domain.ChatAnswer
	err    error
}

func (s *stubAnswerer) Answer(ctx context.Context, question string) (*domain.ChatAnswer, error) {
	return s.answer, s.err
}

func TestAskQuestionValidation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "Corpo inválido",
			body:       "{isso não é json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Pergunta vazia",
			body:       `{"question": "   "}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Pergunta válida",
			body:       `{"question": "qual o ticket médio?"}`,
			wantStatus: http.StatusOK,
		},
	}

	handler := AskQuestion(&stubAnswerer{
		answer: &domain.ChatAnswer{ID: "abc123", Answer: "## Ticket Médio"},
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
