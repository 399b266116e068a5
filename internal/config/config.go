package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string

	// Fuso fixo usado em todos os cortes de dia do dashboard, para alinhar
	// as métricas com o horário comercial local e não com UTC.
	Location *time.Location
}

func Load() *Config {
	// .env é opcional; em produção as variáveis vêm do ambiente
	if err := godotenv.Load(); err != nil {
		log.Debug("arquivo .env não encontrado, usando apenas o ambiente")
	}

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	if cfg.DatabaseDSN == "" {
		log.Fatal("[FATAL] a variável DATABASE_DSN não está definida")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] a variável JWT_SECRET não está definida")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET deve ter pelo menos 32 caracteres")
	}

	tz := getEnv("TIMEZONE", "America/Sao_Paulo")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatalf("[FATAL] TIMEZONE inválida %q: %v", tz, err)
	}
	cfg.Location = loc

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
