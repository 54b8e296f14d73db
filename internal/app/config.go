package app

import (
	"strings"

	"github.com/penelope-tex/penelope-backend/internal/platform/envutil"
)

type Config struct {
	Addr            string
	DefaultPageSize int
	MaxPageSize     int
	CORSOrigins     []string
	Environment     string
	Version         string
}

func LoadConfig() Config {
	origins := strings.Split(envutil.String("CORS_ALLOW_ORIGINS", "*"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return Config{
		Addr:            envutil.String("API_ADDR", ":8000"),
		DefaultPageSize: envutil.Int("DEFAULT_PAGE_SIZE", 50),
		MaxPageSize:     envutil.Int("MAX_PAGE_SIZE", 100),
		CORSOrigins:     origins,
		Environment:     envutil.String("ENVIRONMENT", "development"),
		Version:         envutil.String("SERVICE_VERSION", "1.0.0"),
	}
}
