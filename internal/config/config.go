package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is loaded from the environment. SQLite against a single database
// file is the default; Postgres is selected with DB_DRIVER=postgres.
type Config struct {
	HTTPAddr string

	DBDriver   string // "sqlite" or "postgres"
	SQLitePath string

	// Postgres settings, used only when DBDriver == "postgres".
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // minutes

	JWTSecret string
	JWTTTL    time.Duration

	// SlotInterval is the bookable slot length.
	SlotInterval time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		SQLitePath:      getEnv("SQLITE_PATH", "hospital.db"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnvInt("DB_PORT", 5432),
		DBUser:          getEnv("DB_USER", "hospital"),
		DBPassword:      getEnv("DB_PASSWORD", "hospital"),
		DBName:          getEnv("DB_NAME", "hospital_db"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifeTime: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 30),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTTTL:          time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		SlotInterval:    time.Duration(getEnvInt("SLOT_INTERVAL_MIN", 15)) * time.Minute,
	}

	switch cfg.DBDriver {
	case "sqlite":
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("invalid config: SQLITE_PATH must not be empty")
		}
	case "postgres":
		if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
			return nil, fmt.Errorf("invalid config: DB host/user/name must not be empty")
		}
	default:
		return nil, fmt.Errorf("invalid config: unknown DB_DRIVER %q", cfg.DBDriver)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("invalid config: JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
