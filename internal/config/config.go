package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds every credential and endpoint the service registry needs.
// Values are read once at startup; a missing .env file is not an error.
type Config struct {
	Port string

	OpenAIAPIKey string

	OllamaBaseURL string
	OllamaModel   string

	GooglePlacesAPIKey string

	// OpenWeatherAPIKey is optional. When empty the weather client still
	// constructs and simply reports no data.
	OpenWeatherAPIKey string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:               envOrDefault("PORT", "8080"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OllamaBaseURL:      envOrDefault("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:        envOrDefault("OLLAMA_MODEL", "llama3.2"),
		GooglePlacesAPIKey: os.Getenv("GOOGLE_PLACES_API_KEY"),
		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
