package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Drivers de banco aceitos em DB_DRIVER
const (
	DriverGorm     = "gorm"
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ErrMissingDatabaseURL é retornado quando nem DATABASE_URL nem DB_HOST/DB_NAME foram definidos
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not defined in the environment")

// Config reúne as configurações do processo lidas do ambiente
type Config struct {
	DatabaseURL           string
	Driver                string
	Host                  string
	Port                  string
	SessionTTL            time.Duration
	RestartClearsIdentity bool
	CORSOrigins           string
	LogLevel              string
}

// Addr retorna o endereço de escuta no formato host:porta
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// LoadDotEnv carrega o arquivo .env quando existir.
// Retorna false quando não há arquivo, o que não é erro.
func LoadDotEnv(files ...string) bool {
	return godotenv.Load(files...) == nil
}

// Load lê a configuração das variáveis de ambiente
func Load() (Config, error) {
	cfg := Config{
		Driver:      strings.ToLower(getEnv("DB_DRIVER", DriverGorm)),
		Host:        os.Getenv("HOST"),
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	switch cfg.Driver {
	case DriverGorm, DriverPgx, DriverPostgres, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("DB_DRIVER inválido: %q", cfg.Driver)
	}

	dbURL, err := databaseURL()
	if err != nil {
		return Config{}, err
	}
	cfg.DatabaseURL = dbURL

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "30m"))
	if err != nil {
		return Config{}, fmt.Errorf("SESSION_TTL inválido: %w", err)
	}
	if ttl <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL deve ser positivo: %s", ttl)
	}
	cfg.SessionTTL = ttl

	if v := os.Getenv("RESTART_CLEARS_IDENTITY"); v != "" {
		clears, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("RESTART_CLEARS_IDENTITY inválido: %w", err)
		}
		cfg.RestartClearsIdentity = clears
	}

	return cfg, nil
}

// databaseURL usa DATABASE_URL diretamente ou monta a URL a partir de DB_HOST, DB_PORT,
// DB_USER, DB_PASSWORD, DB_NAME e DB_SSLMODE
func databaseURL() (string, error) {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL, nil
	}

	host := os.Getenv("DB_HOST")
	name := os.Getenv("DB_NAME")
	if host == "" || name == "" {
		return "", ErrMissingDatabaseURL
	}

	u := url.URL{
		Scheme: "postgresql",
		Host:   net.JoinHostPort(host, getEnv("DB_PORT", "5432")),
		Path:   "/" + name,
	}
	if user := os.Getenv("DB_USER"); user != "" {
		if password, ok := os.LookupEnv("DB_PASSWORD"); ok {
			u.User = url.UserPassword(user, password)
		} else {
			u.User = url.User(user)
		}
	}
	if sslMode := os.Getenv("DB_SSLMODE"); sslMode != "" {
		u.RawQuery = url.Values{"sslmode": {sslMode}}.Encode()
	}

	return u.String(), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
