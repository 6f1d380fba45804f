package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultSheetURL is the CSV export of the listing sheet.
const DefaultSheetURL = "https://docs.google.com/spreadsheets/d/1OYk_LGiLYb_ayGoVJ-tistDias2VdETdR60SP5ALBlo/export?format=csv&gid=628592557"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	SheetURL       string
	HTTPTimeoutSec int
	MaxRetries     int
	RetryDelayMs   int

	Port          string
	RedisAddr     string
	RedisPassword string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
	SnapshotDB       bool

	CSVOutputPath string
	TuningPath    string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		SheetURL:       getEnv("SHEET_URL", DefaultSheetURL),
		HTTPTimeoutSec: getEnvInt("HTTP_TIMEOUT_SEC", 30),
		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		RetryDelayMs:   getEnvInt("RETRY_DELAY_MS", 500),

		Port:          getEnv("PORT", "8080"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "realestate"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "realestate123"),
		PostgresDB:       getEnv("POSTGRES_DB", "listings_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		SnapshotDB:       getEnvBool("SNAPSHOT_DB", false),

		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", "./output/results.csv"),
		TuningPath:    getEnv("TUNING_PATH", "tuning.yaml"),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
