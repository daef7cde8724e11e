package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// JWTConfig defines issuer/secret pair for admin auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                 string
	MongoURI             string
	MongoDatabase        string
	ParamsCollection     string
	MultiplierCollection string
	GenreCollection      string
	LocationCollection   string
	Timeout              time.Duration
	Timezone             string
	ServerLog            *log.Logger
	JWTConfigs           []JWTConfig
	JWTAudience          string
	AllowedOrigins       []string
}

// MongoConfigured reports whether an external reference-data source is set.
// 未設定の場合は組み込みのカタログで起動する。
func (c Config) MongoConfigured() bool {
	return strings.TrimSpace(c.MongoURI) != ""
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	allowedOrigins := parseList("API_ALLOWED_ORIGINS", []string{"*"})

	// 管理系ルートは JWT シークレットが設定された場合のみマウントする。
	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("ADMIN_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("ADMIN_JWT_ISSUER", "omise-ai-auth"),
			Secret: []byte(secret),
		})
	}
	if secret := strings.TrimSpace(os.Getenv("OPS_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("OPS_JWT_ISSUER", "omise-ai-ops"),
			Secret: []byte(secret),
		})
	}

	jwtAudience := strings.TrimSpace(os.Getenv("ADMIN_JWT_AUDIENCE"))

	cfg := Config{
		Addr:                 envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:             strings.TrimSpace(os.Getenv("MONGO_URI")),
		MongoDatabase:        envOrDefault("MONGO_DB", "omise-ai"),
		ParamsCollection:     envOrDefault("PARAMS_COLLECTION", "category_params"),
		MultiplierCollection: envOrDefault("MULTIPLIER_COLLECTION", "location_multipliers"),
		GenreCollection:      envOrDefault("GENRE_COLLECTION", "genres"),
		LocationCollection:   envOrDefault("LOCATION_COLLECTION", "location_options"),
		Timeout:              timeout,
		Timezone:             envOrDefault("TIMEZONE", "Asia/Tokyo"),
		ServerLog:            log.New(os.Stdout, "[omise-ai-api] ", log.LstdFlags|log.Lshortfile),
		JWTConfigs:           jwtConfigs,
		JWTAudience:          jwtAudience,
		AllowedOrigins:       allowedOrigins,
	}

	if cfg.MongoConfigured() {
		cfg.ServerLog.Printf("リファレンスデータソース: mongo db=%s", cfg.MongoDatabase)
	} else {
		cfg.ServerLog.Printf("MONGO_URI 未設定のため組み込みカタログで起動します")
	}

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
