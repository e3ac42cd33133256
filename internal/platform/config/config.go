package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type Config struct {
	Addr                 string
	Environment          string
	StoreBackend         string
	SQLiteDSN            string
	JWTSecret            string
	DemoAdminEmail       string
	DemoAdminPassword    string
	DemoEmployeePassword string
	RunSeed              bool
}

func Load() Config {
	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

	return Config{
		Addr:                 getEnv("EMS_ADDR", ":8080"),
		Environment:          getEnv("EMS_ENV", "development"),
		StoreBackend:         getEnv("EMS_STORE", StoreMemory),
		SQLiteDSN:            getEnv("EMS_SQLITE_DSN", "file:ems?mode=memory&cache=shared"),
		JWTSecret:            getEnv("JWT_SECRET", "ems-dev-secret"),
		DemoAdminEmail:       getEnv("DEMO_ADMIN_EMAIL", "admin@ems.com"),
		DemoAdminPassword:    getEnv("DEMO_ADMIN_PASSWORD", "demo_admin"),
		DemoEmployeePassword: getEnv("DEMO_EMP_PASSWORD", "demo_emp"),
		RunSeed:              getEnvBool("RUN_SEED", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	switch c.StoreBackend {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("EMS_STORE must be %q or %q", StoreMemory, StoreSQLite)
	}
	if c.StoreBackend == StoreSQLite && strings.TrimSpace(c.SQLiteDSN) == "" {
		return fmt.Errorf("EMS_SQLITE_DSN is required when EMS_STORE is %q", StoreSQLite)
	}
	if c.Environment == "production" {
		return fmt.Errorf("EMS stores credentials in plain text and must not run in production")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	return nil
}
