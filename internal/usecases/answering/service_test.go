package answering

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
)

// stubLoader devolve um dashboard fixo sem tocar a rede
type stubLoader struct {
	data *domain.RetailDashboard
	err  error
}

func (s *stubLoader) Load(ctx context.Context) (*domain.RetailDashboard, error) {
	return s.data, s.err
}

func retailDashboardFixture() *domain.RetailDashboard {
	return &domain.RetailDashboard{
		KPIs: domain.RetailKPIs{
			TotalOrders:          100,
			TotalRevenue:         12500.50,
			AverageTicket:        125.01,
			TotalCustomers:       40,
			LateOrders:           10,
			OrdersOnTime:         90,
			LateOrdersPercentage: 10,
			AverageDelay:         3.5,
			RevenueByAgency: []domain.NamedValue{
				{Name: "Centro", Value: 8000},
				{Name: "Norte", Value: 4500.50},
			},
			RevenueByMonth: []domain.MonthlyValue{
				{Month: "2024-01", Value: 6000},
				{Month: "2024-02", Value: 6500.50},
			},
			TopCustomers: []domain.CustomerRevenue{
				{Name: "Ana Silva", Orders: 12, Revenue: 2000},
			},
		},
	}
}

func TestServiceAnswer(t *testing.T) {
	service := NewService(&stubLoader{data: retailDashboardFixture()})

	tests := []struct {
		name     string
		question string
		contains string
	}{
		{
			name:     "Pergunta sobre ticket médio",
			question: "Qual é o ticket médio?",
			contains: "Ticket Médio",
		},
		{
			name:     "Pergunta sobre agências",
			question: "Quais agências faturam mais?",
			contains: "Agências por Faturamento",
		},
		{
			name:     "Pergunta sobre atrasos",
			question: "Como está o atraso nas devoluções?",
			contains: "Métricas de Atraso",
		},
		{
			name:     "Pergunta sobre receita",
			question: "Como evoluiu a receita?",
			contains: "Evolução da Receita",
		},
		{
			name:     "Pedido de recomendações",
			question: "O que você recomenda para melhorar?",
			contains: "Recomendações Estratégicas",
		},
		{
			name:     "Maiúsculas não importam",
			question: "TICKET médio por favor",
			contains: "Ticket Médio",
		},
		{
			name:     "Pergunta sem regra cai no resumo geral",
			question: "Bom dia!",
			contains: "Visão geral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, err := service.Answer(context.Background(), tt.question)
			require.NoError(t, err)

			assert.NotEmpty(t, answer.ID)
			assert.Equal(t, tt.question, answer.Question)
			assert.Contains(t, answer.Answer, tt.contains)
			assert.False(t, answer.CreatedAt.IsZero())
		})
	}
}

func TestServiceAnswerFirstMatchWins(t *testing.T) {
	service := NewService(&stubLoader{data: retailDashboardFixture()})

	// "ticket" e "atraso" casam regras diferentes; a primeira da tabela vence
	answer, err := service.Answer(context.Background(), "ticket médio e atraso")
	require.NoError(t, err)

	assert.Contains(t, answer.Answer, "Ticket Médio")
	assert.NotContains(t, answer.Answer, "Métricas de Atraso")
}

func TestServiceAnswerRendersFormattedValues(t *testing.T) {
	service := NewService(&stubLoader{data: retailDashboardFixture()})

	answer, err := service.Answer(context.Background(), "qual o ticket médio?")
	require.NoError(t, err)

	// Valores monetários saem no formato brasileiro
	assert.Contains(t, answer.Answer, "R$ 125,01")
	assert.Contains(t, answer.Answer, "R$ 12.500,50")
}

func TestServiceAnswerLoaderFailure(t *testing.T) {
	service := NewService(&stubLoader{err: errors.New("fonte indisponível")})

	_, err := service.Answer(context.Background(), "ticket médio")
	assert.Error(t, err)
}
