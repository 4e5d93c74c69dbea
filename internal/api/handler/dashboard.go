package handler

import (
	"net/http"

	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/loading"
	"github.com/vfg2006/dashboard-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/dashboard-analytics-api/pkg/log"
)

func GetBankingDashboard(service loading.BankingLoader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("dashboard: carregando dados da variante bancária")

		dashboard, err := service.Load(r.Context())
		if err != nil {
			logger.WithError(err).Error("dashboard: falha ao carregar dados bancários")

			apiErrors.WriteError(w, apiErrors.ErrDataSource, "Falha ao carregar os dados do dashboard", nil)
			return
		}

		logger.WithFields(log.Fields{
			"accounts":     dashboard.KPIs.TotalAccounts,
			"transactions": dashboard.KPIs.TotalTransactions,
		}).Info("dashboard: dados bancários carregados")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			logger.WithError(err).Error("dashboard: falha ao serializar resposta")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Falha ao serializar a resposta", nil)
		}
	})
}

func GetRetailDashboard(service loading.RetailLoader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("dashboard: carregando dados da variante varejo")

		dashboard, err := service.Load(r.Context())
		if err != nil {
			logger.WithError(err).Error("dashboard: falha ao carregar dados de varejo")

			apiErrors.WriteError(w, apiErrors.ErrDataSource, "Falha ao carregar os dados do dashboard", nil)
			return
		}

		logger.WithFields(log.Fields{
			"orders":    dashboard.KPIs.TotalOrders,
			"customers": dashboard.KPIs.TotalCustomers,
		}).Info("dashboard: dados de varejo carregados")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			logger.WithError(err).Error("dashboard: falha ao serializar resposta")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Falha ao serializar a resposta", nil)
		}
	})
}
