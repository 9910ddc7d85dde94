package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	InputPath string
	InputType string
	OutputDir string
	DBPath    string

	FallbackYear int
	SampleLimit  int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		InputPath: getEnv("INPUT_PATH", "aclu-legislation-tracker.csv"),
		InputType: getEnv("INPUT_TYPE", "csv"),
		OutputDir: getEnv("OUTPUT_DIR", "."),
		DBPath:    getEnv("DB_PATH", "bill_classification_dict.db"),

		FallbackYear: getEnvInt("FALLBACK_YEAR", 2025),
		SampleLimit:  getEnvInt("SAMPLE_LIMIT", 20),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
