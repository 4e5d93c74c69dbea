package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-analytics-api/infrastructure/datasource"
	"github.com/vfg2006/dashboard-analytics-api/internal/api"
	"github.com/vfg2006/dashboard-analytics-api/internal/config"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/answering"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/loading"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fetcher := datasource.NewHTTPFetcher(cfg.DataSource.BaseURL)

	bankingService := loading.NewBankingService(cfg, fetcher)
	retailService := loading.NewRetailService(cfg, fetcher)

	answerer := answering.NewService(retailService)

	server, err := api.New(
		cfg,
		bankingService,
		retailService,
		answerer,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
