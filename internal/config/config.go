package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Synnex          Synnex          `mapstructure:",squash"`
	Redis           Redis           `mapstructure:",squash"`
	Kafka           Kafka           `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	OrderStatusSync OrderStatusSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Migrate  bool   `mapstructure:"database_migrate"`
}

type Synnex struct {
	Environment   string        `mapstructure:"synnex_environment"`
	Country       string        `mapstructure:"synnex_country"`
	Username      string        `mapstructure:"synnex_username"`
	Password      string        `mapstructure:"synnex_password"`
	AccountNumber string        `mapstructure:"synnex_account_number"`
	AccountName   string        `mapstructure:"synnex_account_name"`
	Timeout       time.Duration `mapstructure:"synnex_timeout"`
}

// Redis vazio (sem endereços) desliga o cache de preço e disponibilidade
type Redis struct {
	Addrs         []string      `mapstructure:"redis_addrs"`
	Username      string        `mapstructure:"redis_username"`
	Password      string        `mapstructure:"redis_password"`
	DB            int           `mapstructure:"redis_db"`
	PriceCacheTTL time.Duration `mapstructure:"redis_price_cache_ttl"`
}

// Kafka sem brokers desliga a publicação de eventos
type Kafka struct {
	Brokers          []string `mapstructure:"kafka_brokers"`
	ClientID         string   `mapstructure:"kafka_client_id"`
	OrderStatusTopic string   `mapstructure:"kafka_order_status_topic"`
}

type Auth struct {
	Secret           string        `mapstructure:"auth_secret"`
	ClientID         string        `mapstructure:"auth_client_id"`
	ClientSecretHash string        `mapstructure:"auth_client_secret_hash"`
	ClientScopes     []string      `mapstructure:"auth_client_scopes"`
	TokenTTL         time.Duration `mapstructure:"auth_token_ttl"`
}

type OrderStatusSync struct {
	CronSchedule        string `mapstructure:"order_status_sync_cron"`
	LookbackDays        int    `mapstructure:"order_status_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"order_status_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"order_status_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"order_status_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/synnex?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MIGRATE", true)

	viper.SetDefault("SYNNEX_ENVIRONMENT", string(synnexdomain.EnvironmentSandbox))
	viper.SetDefault("SYNNEX_COUNTRY", string(synnexdomain.CountryUS))
	viper.SetDefault("SYNNEX_USERNAME", "")
	viper.SetDefault("SYNNEX_PASSWORD", "")
	viper.SetDefault("SYNNEX_ACCOUNT_NUMBER", "")
	viper.SetDefault("SYNNEX_ACCOUNT_NAME", "")
	viper.SetDefault("SYNNEX_TIMEOUT", "60s")

	viper.SetDefault("REDIS_ADDRS", "")
	viper.SetDefault("REDIS_USERNAME", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_PRICE_CACHE_TTL", "5m") // Preço muda ao longo do dia

	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_CLIENT_ID", "synnex-gateway")
	viper.SetDefault("KAFKA_ORDER_STATUS_TOPIC", "synnex.order-status")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_CLIENT_ID", "")
	viper.SetDefault("AUTH_CLIENT_SECRET_HASH", "")
	viper.SetDefault("AUTH_CLIENT_SCOPES", "orders:write,orders:read,quotes:read,invoices:read,cron:run")
	viper.SetDefault("AUTH_TOKEN_TTL", "1h")

	// Defaults para sincronização de status dos pedidos
	viper.SetDefault("ORDER_STATUS_SYNC_CRON", "*/30 * * * *")     // A cada 30 minutos
	viper.SetDefault("ORDER_STATUS_SYNC_LOOKBACK_DAYS", 30)        // Pedidos abertos nos últimos 30 dias
	viper.SetDefault("ORDER_STATUS_SYNC_REQUEST_DELAY_SECONDS", 1) // 1 segundo entre requisições
	viper.SetDefault("ORDER_STATUS_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 consultas concorrentes
	viper.SetDefault("ORDER_STATUS_SYNC_ENABLED", false)           // Habilitar sincronização de status

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

	config.Server.AllowedOrigins = compact(config.Server.AllowedOrigins)
	config.Redis.Addrs = compact(config.Redis.Addrs)
	config.Kafka.Brokers = compact(config.Kafka.Brokers)
	config.Auth.ClientScopes = compact(config.Auth.ClientScopes)
	config.Synnex.Country = strings.ToUpper(config.Synnex.Country)
	config.Synnex.Environment = strings.ToLower(config.Synnex.Environment)

	if err := config.validateSynnex(); err != nil {
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

// SynnexClientConfig monta a configuração imutável consumida pelo cliente XML
func (c *Config) SynnexClientConfig() synnexdomain.ClientConfig {
	return synnexdomain.ClientConfig{
		Environment:   synnexdomain.Environment(c.Synnex.Environment),
		Country:       synnexdomain.CountryCode(c.Synnex.Country),
		Username:      c.Synnex.Username,
		Password:      c.Synnex.Password,
		AccountNumber: c.Synnex.AccountNumber,
		AccountName:   c.Synnex.AccountName,
		Timeout:       c.Synnex.Timeout,
	}
}

// validateSynnex barra ambiente e país inválidos já na subida; credenciais são
// conferidas pelo próprio cliente
func (c *Config) validateSynnex() error {
	switch synnexdomain.Environment(c.Synnex.Environment) {
	case synnexdomain.EnvironmentSandbox, synnexdomain.EnvironmentProduction:
	default:
		return fmt.Errorf("%w: %q", synnexdomain.ErrInvalidEnvironment, c.Synnex.Environment)
	}

	switch synnexdomain.CountryCode(c.Synnex.Country) {
	case synnexdomain.CountryUS, synnexdomain.CountryCA:
	default:
		return fmt.Errorf("%w: %q", synnexdomain.ErrInvalidCountry, c.Synnex.Country)
	}

	return nil
}

func compact(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
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
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
