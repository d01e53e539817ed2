package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Log       LogConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type AppConfig struct {
	Name        string
	Environment string
}

func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
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
	Level  string
	Pretty bool
}

type AdminConfig struct {
	// Hash bcrypt da chave enviada em X-Admin-Key.
	APIKeyHash string
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load lê a configuração das variáveis de ambiente (o .env já foi carregado pelo ConfigModule).
func Load() (*Config, error) {
	l := &loader{}

	cfg := &Config{
		App: AppConfig{
			Name:        l.str("APP_NAME", "marketplace-admin"),
			Environment: l.str("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:            l.str("SERVER_PORT", "8080"),
			ShutdownTimeout: l.duration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            l.str("DB_HOST", "localhost"),
			Port:            l.integer("DB_PORT", 5432),
			User:            l.str("DB_USER", "postgres"),
			Password:        l.str("DB_PASSWORD", ""),
			DBName:          l.str("DB_NAME", "marketplace"),
			SSLMode:         l.str("DB_SSLMODE", "disable"),
			MaxOpenConns:    l.integer("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    l.integer("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: l.duration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Log: LogConfig{
			Level:  l.str("LOG_LEVEL", "info"),
			Pretty: l.boolean("LOG_PRETTY", false),
		},
		Admin: AdminConfig{
			APIKeyHash: l.str("ADMIN_API_KEY_HASH", ""),
		},
		RateLimit: RateLimitConfig{
			Requests: l.integer("RATE_LIMIT_REQUESTS", 300),
			Window:   l.duration("RATE_LIMIT_WINDOW", time.Minute),
		},
		CORS: CORSConfig{
			AllowedOrigins: l.list("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
	}

	cfg.Database.DSN = l.str("DB_DSN", cfg.Database.buildDSN())

	if len(l.errs) > 0 {
		return nil, fmt.Errorf("config: %s", strings.Join(l.errs, "; "))
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.App.IsProduction() && c.Admin.APIKeyHash == "" {
		return fmt.Errorf("config: ADMIN_API_KEY_HASH é obrigatório em produção")
	}
	if c.RateLimit.Requests < 1 {
		return fmt.Errorf("config: RATE_LIMIT_REQUESTS deve ser maior que zero")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		c.Database.MaxIdleConns = c.Database.MaxOpenConns
	}
	return nil
}

func (d DatabaseConfig) buildDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type loader struct {
	errs []string
}

func (l *loader) str(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func (l *loader) integer(key string, def int) int {
	raw := l.str(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		l.errs = append(l.errs, fmt.Sprintf("%s: valor inteiro inválido %q", key, raw))
		return def
	}
	return v
}

func (l *loader) boolean(key string, def bool) bool {
	raw := l.str(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		l.errs = append(l.errs, fmt.Sprintf("%s: valor booleano inválido %q", key, raw))
		return def
	}
	return v
}

func (l *loader) duration(key string, def time.Duration) time.Duration {
	raw := l.str(key, "")
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		l.errs = append(l.errs, fmt.Sprintf("%s: duração inválida %q", key, raw))
		return def
	}
	return v
}

func (l *loader) list(key string, def []string) []string {
	raw := l.str(key, "")
	if raw == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
