package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/dashboard-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/answering"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/loading"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboards(banking loading.BankingLoader, retail loading.RetailLoader) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/banking",
			Method:  http.MethodGet,
			Handler: GetBankingDashboard(banking),
		},
		{
			Path:    "/v1/dashboard/retail",
			Method:  http.MethodGet,
			Handler: GetRetailDashboard(retail),
		},
	}
}

func Chat(service answering.Answerer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/chat",
			Method:  http.MethodPost,
			Handler: AskQuestion(service),
		},
	}
}
