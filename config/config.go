package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	AI        AIConfig
	Health    HealthConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Environment string
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver          string
	DSN             string
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

type AIConfig struct {
	APIKey    string
	Model     string
	MaxTokens int64
	Timeout   time.Duration
}

// Enabled indica se o painel de análise de riscos por IA pode ser usado.
func (c AIConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

type HealthConfig struct {
	Timezone string
}

type RateLimitConfig struct {
	RequestsPerMinute int
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Location resolve o fuso usado para determinar a data de "hoje" no cálculo de saúde.
func (c HealthConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	env := envReader{v: v}
	cfg := &Config{
		App: AppConfig{
			Name:        env.String("app_name"),
			Environment: env.String("app_env"),
		},
		Server: ServerConfig{
			Port:            env.String("server_port"),
			ShutdownTimeout: env.Duration("server_shutdown_timeout"),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(env.String("db_driver")),
			DSN:             env.String("database_url"),
			Host:            env.String("db_host"),
			Port:            env.Int("db_port"),
			User:            env.String("db_user"),
			Password:        env.String("db_password"),
			DBName:          env.String("db_name"),
			SSLMode:         env.String("db_sslmode"),
			MaxOpenConns:    env.Int("db_max_open_conns"),
			MaxIdleConns:    env.Int("db_max_idle_conns"),
			ConnMaxLifetime: env.Duration("db_conn_max_lifetime"),
		},
		Log: LogConfig{
			Level: env.String("log_level"),
		},
		AI: AIConfig{
			APIKey:    env.String("anthropic_api_key"),
			Model:     env.String("anthropic_model"),
			MaxTokens: int64(env.Int("anthropic_max_tokens")),
			Timeout:   env.Duration("anthropic_timeout"),
		},
		Health: HealthConfig{
			Timezone: env.String("health_timezone"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: env.Int("rate_limit_per_minute"),
		},
	}
	if env.err != nil {
		return nil, env.err
	}

	if cfg.Database.DSN == "" && cfg.Database.Driver == DriverPostgres {
		cfg.Database.DSN = fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.DBName,
			cfg.Database.SSLMode,
		)
	}
	if cfg.Database.DSN == "" && cfg.Database.Driver == DriverSQLite {
		cfg.Database.DSN = "planzee.db"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("DB_DRIVER inválido: %q (use postgres ou sqlite)", c.Database.Driver)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT não pode ser vazio")
	}
	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE deve ser maior que zero")
	}
	return nil
}

// setDefaults registra os valores usados quando a variável de ambiente não está definida.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "planzee")
	v.SetDefault("app_env", "development")

	v.SetDefault("server_port", "8080")
	v.SetDefault("server_shutdown_timeout", "10s")

	v.SetDefault("db_driver", DriverPostgres)
	v.SetDefault("database_url", "")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "planzee")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_max_open_conns", 25)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("db_conn_max_lifetime", "5m")

	v.SetDefault("log_level", "info")

	v.SetDefault("anthropic_api_key", "")
	v.SetDefault("anthropic_model", "claude-sonnet-4-20250514")
	v.SetDefault("anthropic_max_tokens", 2048)
	v.SetDefault("anthropic_timeout", "60s")

	v.SetDefault("health_timezone", "America/Sao_Paulo")

	v.SetDefault("rate_limit_per_minute", 120)
}

// envReader lê chaves do viper guardando o primeiro valor malformado,
// para que Load falhe em vez de cair silenciosamente no padrão.
type envReader struct {
	v   *viper.Viper
	err error
}

func (r *envReader) String(key string) string {
	return r.v.GetString(key)
}

func (r *envReader) Int(key string) int {
	n, err := cast.ToIntE(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
	}
	return n
}

func (r *envReader) Duration(key string) time.Duration {
	d, err := cast.ToDurationE(r.v.Get(key))
	if err != nil {
		r.fail(key, err)
	}
	return d
}

func (r *envReader) fail(key string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%s inválido: %w", strings.ToUpper(key), err)
	}
}
