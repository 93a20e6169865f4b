// Package internal porte la configuration d'environnement partagée
// par les points d'entrée.
package internal

import (
	"fmt"
	"strings"
	"time"
)

// Config couvre le shell HTTP. Les credentials absents ne sont pas des
// erreurs : le backend correspondant est simplement indisponible.
type Config struct {
	Host     string `env:"HOST,default=0.0.0.0"`
	Port     int    `env:"PORT,default=8000"`
	LogLevel string `env:"LOG_LEVEL,default=info"`

	Profile string `env:"PROFILE,default=pharma"`

	PreferRemote bool   `env:"PREFER_REMOTE,default=true"`
	APIType      string `env:"API_TYPE,default=openai"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL,default=gpt-3.5-turbo"`

	LocalEndpoint      string `env:"LOCAL_ENDPOINT,default=http://localhost:11434"`
	LocalModel         string `env:"LOCAL_MODEL,default=mistral:7b"`
	LocalFallbackModel string `env:"LOCAL_FALLBACK_MODEL,default=phi3:mini"`

	RemoteTimeout time.Duration `env:"REMOTE_TIMEOUT,default=30s"`
	LocalTimeout  time.Duration `env:"LOCAL_TIMEOUT,default=60s"`
}

// Addr renvoie l'adresse d'écoute host:port.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate vérifie les valeurs qui ne peuvent pas attendre le runtime.
func (c Config) Validate() error {
	switch strings.ToLower(c.APIType) {
	case "openai", "gemini":
	default:
		return fmt.Errorf("API_TYPE must be openai or gemini, got %q", c.APIType)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}
