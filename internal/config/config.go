package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env    string
	Server ServerConfig
	Ollama OllamaConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type OllamaConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration

	SummarizeTemperature float64
	SummarizeNumPredict  int
	AdviceTemperature    float64
	AdviceNumPredict     int
}

// Load загружает конфигурацию приложения из окружения и .env.
func Load() (Config, error) {
	cfg := Config{}

	if err := loadEnv(); err != nil {
		return cfg, err
	}

	cfg.Env = getEnv("APP_ENV", "local")

	serverPort, err := parseIntEnv("SERVER_PORT", 8000)
	if err != nil {
		return cfg, err
	}

	readTimeout, err := parseDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second)
	if err != nil {
		return cfg, err
	}

	// Таймаут записи должен превышать таймаут бекенда, иначе 504 не успеет уйти.
	writeTimeout, err := parseDurationEnv("SERVER_WRITE_TIMEOUT", 130*time.Second)
	if err != nil {
		return cfg, err
	}

	idleTimeout, err := parseDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second)
	if err != nil {
		return cfg, err
	}

	cfg.Server = ServerConfig{
		Host:         getEnv("SERVER_HOST", "0.0.0.0"),
		Port:         serverPort,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	ollamaTimeout, err := parseDurationEnv("OLLAMA_TIMEOUT", 120*time.Second)
	if err != nil {
		return cfg, err
	}

	summarizeTemperature, err := parseFloatEnv("SUMMARIZE_TEMPERATURE", 0.7)
	if err != nil {
		return cfg, err
	}

	summarizeNumPredict, err := parseIntEnv("SUMMARIZE_NUM_PREDICT", 200)
	if err != nil {
		return cfg, err
	}

	adviceTemperature, err := parseFloatEnv("ADVICE_TEMPERATURE", 0.7)
	if err != nil {
		return cfg, err
	}

	adviceNumPredict, err := parseIntEnv("ADVICE_NUM_PREDICT", 150)
	if err != nil {
		return cfg, err
	}

	cfg.Ollama = OllamaConfig{
		BaseURL:              getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		Model:                getEnv("OLLAMA_MODEL", "qwen3:1.7b"),
		Timeout:              ollamaTimeout,
		SummarizeTemperature: summarizeTemperature,
		SummarizeNumPredict:  summarizeNumPredict,
		AdviceTemperature:    adviceTemperature,
		AdviceNumPredict:     adviceNumPredict,
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("SERVER_PORT must be greater than 0")
	}

	if strings.TrimSpace(c.Ollama.BaseURL) == "" {
		return fmt.Errorf("OLLAMA_BASE_URL is required")
	}

	if strings.TrimSpace(c.Ollama.Model) == "" {
		return fmt.Errorf("OLLAMA_MODEL is required")
	}

	if c.Ollama.Timeout <= 0 {
		return fmt.Errorf("OLLAMA_TIMEOUT must be greater than 0")
	}

	if c.Ollama.SummarizeNumPredict <= 0 {
		return fmt.Errorf("SUMMARIZE_NUM_PREDICT must be greater than 0")
	}

	if c.Ollama.AdviceNumPredict <= 0 {
		return fmt.Errorf("ADVICE_NUM_PREDICT must be greater than 0")
	}

	if c.Server.WriteTimeout <= c.Ollama.Timeout {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must exceed OLLAMA_TIMEOUT")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func parseFloatEnv(key string, fallback float64) (float64, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}

	if parsed < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}

	return parsed, nil
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}

	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func loadEnv() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}
