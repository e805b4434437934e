package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	AllowOrigins    []string
	LogstashTCPAddr string
	SeedSampleData  bool
	DBMaxOpenConns  int
	EnableSwagger   bool
	SwaggerSpecPath string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	maxOpen := 10
	if v, err := strconv.Atoi(getenv("DB_MAX_OPEN_CONNS", "10")); err == nil && v > 0 {
		maxOpen = v
	}

	return Config{
		Port:            getenv("PORT", "3001"),
		DatabaseURL:     must("DATABASE_URL"),
		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr: getenv("LOGSTASH_TCP_ADDR", ""),
		SeedSampleData:  getenv("SEED_SAMPLE_DATA", "true") == "true",
		DBMaxOpenConns:  maxOpen,
		EnableSwagger:   getenv("ENABLE_SWAGGER", "true") == "true",
		SwaggerSpecPath: getenv("SWAGGER_SPEC_PATH", "docs/swagger.yaml"),
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
