package configs

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	AppPort    string
	DBDriver   string
	DBName     string
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBSSLMode  string
	LogLevel   string
	RunSeeds   bool
	SeedFile   string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			Log.Warn("⚠️ .env file not found, using system ENV")
		} else {
			Log.Info("✅ .env file loaded")
		}
	} else {
		Log.Info("🚀 Running in Railway, using system ENV")
	}

	AppPort = GetEnv("PORT", "3000")
	DBDriver = strings.ToLower(GetEnv("DB_DRIVER", "postgres"))
	DBName = GetEnv("DB_NAME")
	DBUser = GetEnv("DB_USER")
	DBPassword = GetEnv("DB_PASSWORD")
	DBHost = GetEnv("DB_HOST", "localhost")
	DBPort = GetEnv("DB_PORT", "5432")
	DBSSLMode = GetEnv("DB_SSLMODE", "require")
	LogLevel = GetEnv("LOG_LEVEL", "info")
	RunSeeds = GetEnvBool("RUN_SEEDS", false)
	SeedFile = GetEnv("SEED_FILE", "internals/seeds/users/data_users.json")

	if DBName == "" {
		Log.Error("❌ DB_NAME is not set!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// GetEnvBool reads key as a bool; unparsable values fall back to def.
func GetEnvBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		Log.Warnf("invalid bool for %s=%q, using %v", key, v, def)
		return def
	}
	return b
}
