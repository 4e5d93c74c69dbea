package loading

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-analytics-api/infrastructure/datasource/mocks"
	"github.com/vfg2006/dashboard-analytics-api/internal/config"
	"go.uber.org/mock/gomock"
)

var bankingFixtures = map[string]string{
	"agencias.csv": "cod_agencia,nome,uf\n" +
		"1,Centro,SP\n" +
		"2,Norte,RJ",
	"clientes.csv": "cod_cliente,primeiro_nome,ultimo_nome\n" +
		"10,Ana,Silva\n" +
		"11,Bruno,Souza",
	"colaboradores.csv": "cod_colaborador,primeiro_nome,ultimo_nome\n" +
		"5,Carla,Lima",
	"contas.csv": "num_conta,cod_cliente,cod_agencia,saldo_total\n" +
		"1000,10,1,500.00\n" +
		"1001,11,2,300.00",
	"transacoes.csv": "cod_transacao,num_conta,data_transacao,valor_transacao\n" +
		"1,1000,2024-01-10,200.00\n" +
		"2,1000,2024-01-20,-50.00",
	"propostas_credito.csv": "cod_proposta,cod_cliente,data_entrada_proposta,taxa_juros_mensal,valor_proposta,quantidade_parcelas,status_proposta\n" +
		"1,10,2024-01-05,0.02,10000,24,Aprovada\n" +
		"2,99,2024-02-05,0.03,5000,12,",
}

func bankingConfig() *config.Config {
	return &config.Config{
		DataSource: config.DataSource{
			BaseURL:          "http://localhost:4000/data",
			AgenciesFile:     "agencias.csv",
			CustomersFile:    "clientes.csv",
			EmployeesFile:    "colaboradores.csv",
			AccountsFile:     "contas.csv",
			TransactionsFile: "transacoes.csv",
			ProposalsFile:    "propostas_credito.csv",
			RetailWorkbook:   "pedidos.xlsx",
		},
	}
}

func TestBankingServiceLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockFetcher(ctrl)
	for name, content := range bankingFixtures {
		fetcher.EXPECT().
			Fetch(gomock.Any(), name).
			Return([]byte(content), nil).
			Times(1)
	}

	service := NewBankingService(bankingConfig(), fetcher)

	data, err := service.Load(context.Background())
	require.NoError(t, err)

	kpis := data.KPIs

	assert.Equal(t, 2, kpis.TotalAccounts)
	assert.Equal(t, 800.0, kpis.TotalBalance)
	assert.Equal(t, 400.0, kpis.AverageBalance)

	assert.Equal(t, 2, kpis.TotalTransactions)
	assert.Equal(t, 200.0, kpis.TotalDeposits)
	assert.Equal(t, 50.0, kpis.TotalWithdrawals)
	assert.Equal(t, 150.0, kpis.NetFlow)

	assert.Equal(t, 2, kpis.TotalProposals)
	assert.Equal(t, 15000.0, kpis.TotalCreditValue)
	assert.InDelta(t, 2.5, kpis.AverageInterestRate, 0.0001)

	// Status vazio cai no padrão antes da agregação
	statuses := make(map[string]int)
	for _, breakdown := range kpis.ProposalsByStatus {
		statuses[breakdown.Status] = breakdown.Count
	}
	assert.Equal(t, map[string]int{"Aprovada": 1, "Enviada": 1}, statuses)

	// Proposta de cliente sem conta fica fora do crédito por agência
	require.Len(t, kpis.CreditByAgency, 1)
	assert.Equal(t, "Centro", kpis.CreditByAgency[0].Name)
	assert.Equal(t, 10000.0, kpis.CreditByAgency[0].Value)

	require.Len(t, kpis.BalanceByState, 2)
	assert.Equal(t, "SP", kpis.BalanceByState[0].UF)
	assert.Equal(t, 500.0, kpis.BalanceByState[0].Value)

	// Segunda chamada responde do cache; Times(1) acima garante que não
	// houve nova busca
	cached, err := service.Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, data, cached)
}

func TestBankingServiceLoadFailureIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockFetcher(ctrl)

	// Primeira carga: a busca das agências falha e derruba a carga inteira
	fetcher.EXPECT().
		Fetch(gomock.Any(), "agencias.csv").
		Return(nil, errors.New("fonte indisponível")).
		Times(1)
	fetcher.EXPECT().
		Fetch(gomock.Any(), "agencias.csv").
		Return([]byte(bankingFixtures["agencias.csv"]), nil).
		Times(1)

	for name, content := range bankingFixtures {
		if name == "agencias.csv" {
			continue
		}
		fetcher.EXPECT().
			Fetch(gomock.Any(), name).
			Return([]byte(content), nil).
			Times(2)
	}

	service := NewBankingService(bankingConfig(), fetcher)

	_, err := service.Load(context.Background())
	assert.Error(t, err)

	// A falha não ficou cacheada: a próxima chamada tenta de novo e sucede
	data, err := service.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, data.KPIs.TotalAccounts)
}
