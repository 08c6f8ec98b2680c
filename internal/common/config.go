package common

import (
	"os"
	"strconv"
)

// Config holds the engine's tunable extraction constants.
type Config struct {
	Extract ExtractConfig
	Log     LogConfig
}

// ExtractConfig holds heuristic weights and thresholds for field extraction.
type ExtractConfig struct {
	// TotalKeywordBoost is added to the source OCR confidence when a
	// strong total keyword accompanies the selected amount.
	TotalKeywordBoost float32
	// PayeeAdjacency is the maximum vertical gap (in bbox units) for
	// joining adjacent payee fragments.
	PayeeAdjacency float64
	// PayeeMinLength is the minimum rune length of a viable payee fragment.
	PayeeMinLength int
	// FallbackConfidence is reported when usage classification resolves
	// only through the fallback category. Must stay below any positive match.
	FallbackConfidence float32
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			TotalKeywordBoost:  getEnvAsFloat32("EXTRACT_TOTAL_BOOST", 0.10),
			PayeeAdjacency:     getEnvAsFloat64("EXTRACT_PAYEE_ADJACENCY", 12.0),
			PayeeMinLength:     getEnvAsInt("EXTRACT_PAYEE_MIN_LENGTH", 3),
			FallbackConfidence: getEnvAsFloat32("EXTRACT_FALLBACK_CONFIDENCE", 0.10),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.Extract.TotalKeywordBoost < 0 || c.Extract.TotalKeywordBoost > 1 {
		return NewAppError("CONFIG_ERROR", "EXTRACT_TOTAL_BOOST must be in [0,1]", ErrInvalidInput)
	}
	if c.Extract.FallbackConfidence < 0 || c.Extract.FallbackConfidence >= 0.5 {
		return NewAppError("CONFIG_ERROR", "EXTRACT_FALLBACK_CONFIDENCE must be in [0,0.5)", ErrInvalidInput)
	}
	if c.Extract.PayeeMinLength < 1 {
		return NewAppError("CONFIG_ERROR", "EXTRACT_PAYEE_MIN_LENGTH must be positive", ErrInvalidInput)
	}
	return nil
}
