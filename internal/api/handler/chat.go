package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/answering"
	"github.com/vfg2006/dashboard-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/dashboard-analytics-api/pkg/log"
)

func AskQuestion(service answering.Answerer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var question domain.ChatQuestion
		if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
			logger.WithError(err).Warn("chat: corpo da requisição inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if strings.TrimSpace(question.Question) == "" {
			logger.Warn("chat: pergunta vazia")

			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "A pergunta é obrigatória", nil)
			return
		}

		logger.WithField("question", question.Question).Info("chat: respondendo pergunta")

		answer, err := service.Answer(r.Context(), question.Question)
		if err != nil {
			logger.WithError(err).Error("chat: falha ao responder pergunta")

			apiErrors.WriteError(w, apiErrors.ErrDataSource, "Falha ao carregar os dados do dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(answer); err != nil {
			logger.WithError(err).Error("chat: falha ao serializar resposta")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Falha ao serializar a resposta", nil)
		}
	})
}
