package loading

import (
	"context"

	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
)

// BankingLoader carrega e agrega o dashboard bancário. O resultado da
// primeira carga bem-sucedida é cacheado pelo tempo de vida do processo.
type BankingLoader interface {
	Load(ctx context.Context) (*domain.BankingDashboard, error)
}

// RetailLoader carrega e agrega o dashboard de varejo
type RetailLoader interface {
	Load(ctx context.Context) (*domain.RetailDashboard, error)
}
