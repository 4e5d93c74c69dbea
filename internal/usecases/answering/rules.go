package answering

import (
	"fmt"
	"strings"

	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
	"github.com/vfg2006/dashboard-analytics-api/pkg/format"
	"github.com/vfg2006/dashboard-analytics-api/pkg/utils"
)

// defaultRules é a tabela de decisão do chat, em ordem de prioridade.
// Os textos reproduzem o tom do relatório original da Discorama.
func defaultRules() []rule {
	return []rule{
		{
			keywords: []string{"ticket", "médio"},
			build:    buildAverageTicketAnswer,
		},
		{
			keywords: []string{"agência", "agencias", "loja"},
			build:    buildTopAgenciesAnswer,
		},
		{
			keywords: []string{"atraso", "devolução", "pontualidade"},
			build:    buildDelayAnswer,
		},
		{
			keywords: []string{"cliente", "top"},
			build:    buildTopCustomersAnswer,
		},
		{
			keywords: []string{"receita", "evolução", "tendência", "faturamento"},
			build:    buildRevenueAnswer,
		},
		{
			keywords: []string{"recomenda", "sugest", "melhorar", "estratégia"},
			build:    buildRecommendationsAnswer,
		},
	}
}

func buildAverageTicketAnswer(data *domain.RetailDashboard) string {
	kpis := data.KPIs

	return fmt.Sprintf(`## Ticket Médio 🎫

O **ticket médio** atual da Discorama é de **%s**.

### Contexto:
- Total de pedidos: %s
- Receita total: %s

Valores acima do ticket médio indicam locações de múltiplos títulos ou títulos premium.`,
		format.Currency(kpis.AverageTicket),
		format.Number(kpis.TotalOrders),
		format.Currency(kpis.TotalRevenue),
	)
}

func buildTopAgenciesAnswer(data *domain.RetailDashboard) string {
	top := data.KPIs.RevenueByAgency
	if len(top) > 5 {
		top = top[:5]
	}

	var list strings.Builder
	for i, agency := range top {
		fmt.Fprintf(&list, "%d. **%s**: %s\n", i+1, agency.Name, format.Currency(agency.Value))
	}

	return fmt.Sprintf(`## Top 5 Agências por Faturamento 🏪

%s
A concentração de receita nas primeiras posições sugere avaliar o mix de catálogo das demais agências.`,
		list.String(),
	)
}

func buildDelayAnswer(data *domain.RetailDashboard) string {
	kpis := data.KPIs

	return fmt.Sprintf(`## Métricas de Atraso ⏱️

### Situação Atual:
- **Atraso médio**: %.1f dias
- **Pedidos com atraso**: %s (%s)
- **Pedidos no prazo**: %s

O atraso médio considera apenas os pedidos devolvidos fora do prazo.`,
		utils.RoundWithOneDecimalPlace(kpis.AverageDelay),
		format.Number(kpis.LateOrders),
		format.Percent(kpis.LateOrdersPercentage, 1),
		format.Number(kpis.OrdersOnTime),
	)
}

func buildTopCustomersAnswer(data *domain.RetailDashboard) string {
	top := data.KPIs.TopCustomers
	if len(top) > 5 {
		top = top[:5]
	}

	var list strings.Builder
	for i, customer := range top {
		fmt.Fprintf(&list, "%d. **%s**: %s pedidos - %s\n",
			i+1, customer.Name, format.Number(customer.Orders), format.Currency(customer.Revenue))
	}

	return fmt.Sprintf(`## Top 5 Clientes 👥

%s
### Base:
- %s clientes cadastrados

Clientes frequentes são candidatos naturais a um programa de fidelidade.`,
		list.String(),
		format.Number(data.KPIs.TotalCustomers),
	)
}

func buildRevenueAnswer(data *domain.RetailDashboard) string {
	kpis := data.KPIs

	recent := kpis.RevenueByMonth
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}

	trend := "N/A"
	if len(recent) >= 2 && recent[0].Value != 0 {
		change := (recent[len(recent)-1].Value - recent[0].Value) / recent[0].Value * 100
		trend = fmt.Sprintf("%.1f%%", utils.RoundWithOneDecimalPlace(change))
	}

	return fmt.Sprintf(`## Evolução da Receita 📈

### Resumo:
- **Receita Total**: %s
- **Total de Pedidos**: %s
- **Variação nos últimos meses**: %s

A série mensal do dashboard mostra os últimos 12 meses de faturamento.`,
		format.Currency(kpis.TotalRevenue),
		format.Number(kpis.TotalOrders),
		trend,
	)
}

func buildRecommendationsAnswer(data *domain.RetailDashboard) string {
	return `## Recomendações Estratégicas 💡

### Para Aumentar o Ticket Médio:
1. **Bundles e combos** de filmes por categoria
2. **Programa de fidelidade** com benefícios progressivos

### Para Reduzir Atrasos:
1. **Lembretes automáticos** perto da data de devolução
2. **Janela de devolução flexível** nas agências de maior volume

### Para Crescer a Receita:
1. Reforçar o catálogo das agências fora do top 5
2. Campanhas sazonais guiadas pela série mensal de faturamento`
}

func fallbackAnswer(data *domain.RetailDashboard) string {
	kpis := data.KPIs

	return fmt.Sprintf(`## Posso ajudar com os dados da Discorama 📊

Pergunte sobre **ticket médio**, **agências**, **atrasos**, **clientes**, **receita** ou peça **recomendações**.

### Visão geral:
- **%s** pedidos analisados
- **%s** clientes cadastrados
- **Receita total**: %s`,
		format.Number(kpis.TotalOrders),
		format.Number(kpis.TotalCustomers),
		format.Currency(kpis.TotalRevenue),
	)
}
