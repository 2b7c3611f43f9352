package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("IDENTITY_JWT_SECRET", "dev-secret")
	// vazio equivale a ausente para o viper
	t.Setenv("PORT", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_RUN_MIGRATIONS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("esperava porta padrão 8080, obteve '%s'", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("esperava host do ambiente, obteve '%s'", cfg.Database.Host)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("esperava porta 5432, obteve %d", cfg.Database.Port)
	}
	if !cfg.Database.RunMigrations {
		t.Error("migrations deveriam rodar por padrão")
	}
	if cfg.Identity.JWTSecret != "dev-secret" {
		t.Errorf("segredo não carregado: '%s'", cfg.Identity.JWTSecret)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("exige chave de verificação de sessão", func(t *testing.T) {
		cfg := &Config{Env: "development"}

		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "IDENTITY_JWT") {
			t.Errorf("esperava erro de identidade, obteve %v", err)
		}
	})

	t.Run("desenvolvimento aceita provedores sem segredo", func(t *testing.T) {
		cfg := &Config{Env: "development", Identity: IdentityConfig{JWTSecret: "x"}}

		if err := cfg.Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve %v", err)
		}
	})

	t.Run("produção exige segredos dos provedores", func(t *testing.T) {
		cfg := &Config{Env: "production", Identity: IdentityConfig{JWTSecret: "x"}}

		err := cfg.Validate()
		if err == nil {
			t.Fatal("esperava erro em produção")
		}
		for _, key := range []string{"DB_PASS", "STRIPE_SECRET_KEY", "IDENTITY_WEBHOOK_SECRET"} {
			if !strings.Contains(err.Error(), key) {
				t.Errorf("esperava %s na mensagem: %v", key, err)
			}
		}
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", DBName: "n", SSLMode: "disable"}

	expected := "host=h port=5432 user=u password=p dbname=n sslmode=disable TimeZone=UTC"
	if d.DSN() != expected {
		t.Errorf("esperava '%s', obteve '%s'", expected, d.DSN())
	}
}
