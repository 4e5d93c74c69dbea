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

// Posições das tabelas lógicas dentro da planilha de varejo. A aba de
// pedidos ainda é procurada pelo nome quando a posição não existe.
const (
	sheetAgencies  = 0
	sheetCustomers = 1
	sheetOrders    = 2

	ordersSheetKeyword = "pedido"
)

// RetailService executa o pipeline da variante varejo a partir de uma única
// planilha multi-abas.
type RetailService struct {
	cfg     *config.Config
	fetcher datasource.Fetcher

	mu     sync.Mutex
	cached *domain.RetailDashboard
}

func NewRetailService(cfg *config.Config, fetcher datasource.Fetcher) *RetailService {
	return &RetailService{
		cfg:     cfg,
		fetcher: fetcher,
	}
}

// Load retorna o dashboard de varejo completo, com o mesmo contrato de cache
// da variante bancária: uma execução por processo, falha não é cacheada.
func (s *RetailService) Load(ctx context.Context) (*domain.RetailDashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return s.cached, nil
	}

	payload, err := s.fetcher.Fetch(ctx, s.cfg.DataSource.RetailWorkbook)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("loading: falha ao buscar planilha de varejo")
		return nil, err
	}

	workbook, err := datasource.OpenWorkbook(payload)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("loading: planilha de varejo inválida")
		return nil, err
	}
	defer workbook.Close()

	diag := newDiagnostics()

	agencies := normalizeAgencies(workbook.Rows(sheetAgencies, ""), diag)
	customers := normalizeCustomers(workbook.Rows(sheetCustomers, ""), diag)
	orders := normalizeOrders(workbook.Rows(sheetOrders, ordersSheetKeyword), diag)

	logDiagnostics(ctx, "retail", diag)

	data := &domain.RetailDashboard{
		Agencies:  agencies,
		Customers: customers,
		Orders:    orders,
		KPIs:      insighting.CalculateRetailKPIs(agencies, customers, orders),
	}

	s.cached = data

	log.ForContext(ctx).WithFields(log.Fields{
		"agencies":  len(agencies),
		"customers": len(customers),
		"orders":    len(orders),
	}).Info("loading: dashboard de varejo montado e cacheado")

	return data, nil
}
