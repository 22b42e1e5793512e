package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr      string
	LogFormat string
	LogLevel  string
}

// Assistants configures the conversational reasoning engine.
type Assistants struct {
	APIKey              string
	BaseURL             string
	PolicyAssistantID   string
	SecurityAssistantID string
	PollInterval        time.Duration
}

// Completion configures one single-shot completion endpoint.
type Completion struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Pipeline bounds the analysis stages.
type Pipeline struct {
	WorkerPoolSize int
	StageTimeout   time.Duration
	FetchTimeout   time.Duration
	DiagnosticURL  string
	SearchBaseURL  string
}

// Config is the full process configuration.
type Config struct {
	Server     Server
	Assistants Assistants
	Locator    Completion
	Cohere     Completion
	Pipeline   Pipeline
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr:      getEnv("POLICYGUARD_ADDR", ":5000"),
			LogFormat: getEnv("LOG_FORMAT", "text"),
			LogLevel:  getEnv("LOG_LEVEL", "info"),
		},
		Assistants: Assistants{
			APIKey:              os.Getenv("OPENAI_API_KEY"),
			BaseURL:             getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			PolicyAssistantID:   getEnv("POLICY_ASSISTANT_ID", "asst_v2se6YGN5d3xm4voj2k8eMOb"),
			SecurityAssistantID: getEnv("SECURITY_ASSISTANT_ID", "asst_vZcbERUnnB1DGgz7ase0EZig"),
			PollInterval:        getEnvDuration("POLL_INTERVAL", 0),
		},
		Locator: Completion{
			APIKey:  os.Getenv("GOOGLE_API_KEY"),
			BaseURL: getEnv("LOCATOR_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai"),
			Model:   getEnv("LOCATOR_MODEL", "gemini-2.0-flash"),
		},
		Cohere: Completion{
			APIKey:  os.Getenv("COHERE_API_KEY"),
			BaseURL: getEnv("COHERE_BASE_URL", "https://api.cohere.ai/compatibility/v1"),
			Model:   getEnv("COHERE_MODEL", "command"),
		},
		Pipeline: Pipeline{
			WorkerPoolSize: getEnvInt("WORKER_POOL_SIZE", 5),
			StageTimeout:   getEnvDuration("STAGE_TIMEOUT", 30*time.Second),
			FetchTimeout:   getEnvDuration("FETCH_TIMEOUT", 10*time.Second),
			DiagnosticURL:  getEnv("DIAGNOSTIC_URL", "https://openai.com"),
			SearchBaseURL:  getEnv("SEARCH_BASE_URL", "https://html.duckduckgo.com/html/"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil && parsed >= 0 {
			return parsed
		}
	}
	return fallback
}
