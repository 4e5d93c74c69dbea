package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	DataSource DataSource `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// DataSource aponta para as fontes tabulares servidas em caminhos conhecidos
type DataSource struct {
	BaseURL string `mapstructure:"data_base_url"`

	// Arquivos CSV da variante bancária
	AgenciesFile     string `mapstructure:"data_agencies_file"`
	CustomersFile    string `mapstructure:"data_customers_file"`
	EmployeesFile    string `mapstructure:"data_employees_file"`
	AccountsFile     string `mapstructure:"data_accounts_file"`
	TransactionsFile string `mapstructure:"data_transactions_file"`
	ProposalsFile    string `mapstructure:"data_proposals_file"`

	// Planilha da variante varejo
	RetailWorkbook string `mapstructure:"data_retail_workbook"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATA_BASE_URL", "http://localhost:4000/data")
	viper.SetDefault("DATA_AGENCIES_FILE", "agencias.csv")
	viper.SetDefault("DATA_CUSTOMERS_FILE", "clientes.csv")
	viper.SetDefault("DATA_EMPLOYEES_FILE", "colaboradores.csv")
	viper.SetDefault("DATA_ACCOUNTS_FILE", "contas.csv")
	viper.SetDefault("DATA_TRANSACTIONS_FILE", "transacoes.csv")
	viper.SetDefault("DATA_PROPOSALS_FILE", "propostas_credito.csv")
	viper.SetDefault("DATA_RETAIL_WORKBOOK", "pedidos.xlsx")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile tenta carregar o .env das localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
