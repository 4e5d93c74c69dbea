package loading

import (
	"context"
	"sync"

	"github.com/vfg2006/dashboard-analytics-api/infrastructure/datasource"
	"github.com/vfg2006/dashboard-analytics-api/internal/config"
	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/dashboard-analytics-api/pkg/log"
)

// BankingService executa o pipeline da variante bancária: busca os seis CSV
// em paralelo, normaliza as entidades, calcula os KPIs e guarda o resultado
// no cache pelo tempo de vida do processo.
type BankingService struct {
	cfg     *config.Config
	fetcher datasource.Fetcher

	mu     sync.Mutex
	cached *domain.BankingDashboard
}

func NewBankingService(cfg *config.Config, fetcher datasource.Fetcher) *BankingService {
	return &BankingService{
		cfg:     cfg,
		fetcher: fetcher,
	}
}

// Load retorna o dashboard bancário completo. A primeira chamada executa o
// pipeline inteiro; as seguintes recebem o valor cacheado sem nova busca.
// Chamadores concorrentes da primeira carga compartilham uma única execução:
// o mutex serializa e ninguém observa um resultado parcialmente montado.
// Uma carga que falhou não é cacheada.
func (s *BankingService) Load(ctx context.Context) (*domain.BankingDashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return s.cached, nil
	}

	ds := s.cfg.DataSource
	sources := []string{
		ds.AgenciesFile,
		ds.CustomersFile,
		ds.EmployeesFile,
		ds.AccountsFile,
		ds.TransactionsFile,
		ds.ProposalsFile,
	}

	payloads, err := fetchAll(ctx, s.fetcher, sources)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("loading: falha ao buscar fontes da variante bancária")
		return nil, err
	}

	diag := newDiagnostics()

	agencies := normalizeAgencies(datasource.ParseCSV(string(payloads[ds.AgenciesFile])), diag)
	customers := normalizeCustomers(datasource.ParseCSV(string(payloads[ds.CustomersFile])), diag)
	employees := normalizeEmployees(datasource.ParseCSV(string(payloads[ds.EmployeesFile])), diag)
	accounts := normalizeAccounts(datasource.ParseCSV(string(payloads[ds.AccountsFile])), diag)
	transactions := normalizeTransactions(datasource.ParseCSV(string(payloads[ds.TransactionsFile])), diag)
	proposals := normalizeProposals(datasource.ParseCSV(string(payloads[ds.ProposalsFile])), diag)

	logDiagnostics(ctx, "banking", diag)

	data := &domain.BankingDashboard{
		Agencies:     agencies,
		Customers:    customers,
		Employees:    employees,
		Accounts:     accounts,
		Transactions: transactions,
		Proposals:    proposals,
		KPIs:         insighting.CalculateBankingKPIs(agencies, customers, employees, accounts, transactions, proposals),
	}

	s.cached = data

	log.ForContext(ctx).WithFields(log.Fields{
		"agencies":     len(agencies),
		"customers":    len(customers),
		"accounts":     len(accounts),
		"transactions": len(transactions),
		"proposals":    len(proposals),
	}).Info("loading: dashboard bancário montado e cacheado")

	return data, nil
}

// fetchAll busca todas as fontes de uma carga em paralelo. A junção é
// tudo-ou-nada: se qualquer busca falhar, a carga inteira falha e os
// resultados parciais são descartados.
func fetchAll(ctx context.Context, fetcher datasource.Fetcher, names []string) (map[string][]byte, error) {
	var wg sync.WaitGroup
	var mu sync.Mutex

	payloads := make(map[string][]byte, len(names))
	var firstErr error

	for _, name := range names {
		wg.Add(1)

		go func(name string) {
			defer wg.Done()

			data, err := fetcher.Fetch(ctx, name)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}

			payloads[name] = data
		}(name)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return payloads, nil
}

func logDiagnostics(ctx context.Context, variant string, diag *Diagnostics) {
	logger := log.ForContext(ctx).WithField("variant", variant)

	if diag.Total() == 0 {
		logger.Debug("loading: nenhuma célula caiu em valor padrão")
		return
	}

	logger.WithFields(log.Fields{
		"total_defaults": diag.Total(),
		"by_column":      diag.Defaults(),
	}).Warn("loading: células malformadas normalizadas para valores padrão")
}
