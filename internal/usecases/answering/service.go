package answering

import (
	"context"
	"strings"
	"time"

	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/loading"
	"github.com/vfg2006/dashboard-analytics-api/pkg/log"
	"github.com/vfg2006/dashboard-analytics-api/pkg/utils"
)

// Answerer responde perguntas sobre o dashboard com texto pronto. Não há
// compreensão de linguagem: é uma tabela de decisão ordenada de
// (predicado por palavras-chave, modelo de resposta), primeira regra que
// casa vence.
type Answerer interface {
	Answer(ctx context.Context, question string) (*domain.ChatAnswer, error)
}

// rule é um par (predicado, construtor de resposta) avaliado em ordem de
// prioridade
type rule struct {
	keywords []string
	build    func(data *domain.RetailDashboard) string
}

type Service struct {
	loader loading.RetailLoader
	rules  []rule
}

func NewService(loader loading.RetailLoader) Answerer {
	return &Service{
		loader: loader,
		rules:  defaultRules(),
	}
}

// Answer carrega o dashboard (do cache, após a primeira vez) e devolve a
// resposta pronta da primeira regra cujo predicado casa com a pergunta.
func (s *Service) Answer(ctx context.Context, question string) (*domain.ChatAnswer, error) {
	data, err := s.loader.Load(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("answering: falha ao carregar dados do dashboard")
		return nil, err
	}

	normalized := strings.ToLower(question)

	answer := fallbackAnswer(data)
	for _, r := range s.rules {
		if matchesAny(normalized, r.keywords) {
			answer = r.build(data)
			break
		}
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	return &domain.ChatAnswer{
		ID:        id,
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now(),
	}, nil
}

func matchesAny(question string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(question, keyword) {
			return true
		}
	}
	return false
}
