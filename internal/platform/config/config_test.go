package config

import "testing"

func validConfig() Config {
	return Config{
		Addr:         ":8080",
		Environment:  "development",
		StoreBackend: StoreMemory,
		JWTSecret:    "secret",
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.StoreBackend = "postgres" }},
		{"sqlite without dsn", func(c *Config) { c.StoreBackend = StoreSQLite; c.SQLiteDSN = " " }},
		{"production", func(c *Config) { c.Environment = "production" }},
		{"empty secret", func(c *Config) { c.JWTSecret = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestValidateSQLite(t *testing.T) {
	cfg := validConfig()
	cfg.StoreBackend = StoreSQLite
	cfg.SQLiteDSN = ":memory:"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sqlite config rejected: %v", err)
	}
}
