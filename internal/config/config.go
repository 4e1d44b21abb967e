package config

import (
	"fmt"
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
	Database   Database   `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Fiscal     Fiscal     `mapstructure:",squash"`
	CashFlow   CashFlow   `mapstructure:",squash"`
	BackupSync BackupSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Fiscal configura o proxy de consulta de CNPJ. A BrasilAPI é a fonte
// preferida; a ReceitaWS é o fallback quando a primeira falha.
type Fiscal struct {
	BrasilAPIURL string `mapstructure:"fiscal_brasilapi_url"`
	ReceitaWSURL string `mapstructure:"fiscal_receitaws_url"`
}

// CashFlow configura o movimento de caixa.
type CashFlow struct {
	// Valor padrão do fundo de caixa ao abrir um dia sem dados.
	FundoCaixaPadrao float64 `mapstructure:"cashflow_fundo_caixa_padrao"`
	// Diretório da cópia local dos movimentos.
	LocalDir string `mapstructure:"cashflow_local_dir"`
}

// BackupSync configura o agendador que espelha gravações pendentes no banco.
type BackupSync struct {
	CronSchedule string `mapstructure:"backup_sync_cron"`
	Enabled      bool   `mapstructure:"backup_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 4000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ploutos")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "dev-secret-change-me") // ONLY LOCAL

	viper.SetDefault("FISCAL_BRASILAPI_URL", "https://brasilapi.com.br/api/cnpj/v1")
	viper.SetDefault("FISCAL_RECEITAWS_URL", "https://www.receitaws.com.br/v1/cnpj")

	viper.SetDefault("CASHFLOW_FUNDO_CAIXA_PADRAO", 400.0)
	viper.SetDefault("CASHFLOW_LOCAL_DIR", "data/cashflow")

	viper.SetDefault("BACKUP_SYNC_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("BACKUP_SYNC_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
