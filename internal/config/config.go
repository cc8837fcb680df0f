package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported LLM providers.
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

const defaultGroqBaseURL = "https://api.groq.com/openai/v1"

type Config struct {
	Server   ServerConfig
	LLM      LLMConfig
	Document DocumentConfig
	Owner    OwnerConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type LLMConfig struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

type DocumentConfig struct {
	// MaxChars bounds the extracted document text; longer documents are
	// rejected rather than truncated.
	MaxChars int
}

type OwnerConfig struct {
	Number string
}

// Load builds the process-wide configuration: defaults, then an optional
// YAML config file, then environment variables (highest precedence).
// API keys are only ever read from the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment values.")
	}

	cfg := defaultConfig()

	if path := resolveConfigFile(); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			log.Printf("⚠️  Failed to load config file %s: %v", path, err)
		}
	}

	cfg.mergeEnv()
	cfg.applyProviderDefaults()

	return cfg
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "3000",
			Env:  "development",
		},
		LLM: LLMConfig{
			Provider:    ProviderGroq,
			Temperature: 0.7,
			MaxTokens:   1024,
			Timeout:     30 * time.Second,
		},
		Document: DocumentConfig{
			MaxChars: 12000,
		},
	}
}

// fileConfig mirrors Config with yaml tags. Zero values mean "not set".
type fileConfig struct {
	Server struct {
		Port string `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`
	LLM struct {
		Provider    string   `yaml:"provider"`
		Model       string   `yaml:"model"`
		BaseURL     string   `yaml:"base_url"`
		Temperature *float64 `yaml:"temperature"`
		MaxTokens   int      `yaml:"max_tokens"`
		Timeout     string   `yaml:"timeout"`
	} `yaml:"llm"`
	Document struct {
		MaxChars int `yaml:"max_chars"`
	} `yaml:"document"`
}

func resolveConfigFile() string {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return path
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}
	return ""
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}

	if fc.Server.Port != "" {
		c.Server.Port = fc.Server.Port
	}
	if fc.Server.Env != "" {
		c.Server.Env = fc.Server.Env
	}
	if fc.LLM.Provider != "" {
		c.LLM.Provider = fc.LLM.Provider
	}
	if fc.LLM.Model != "" {
		c.LLM.Model = fc.LLM.Model
	}
	if fc.LLM.BaseURL != "" {
		c.LLM.BaseURL = fc.LLM.BaseURL
	}
	if fc.LLM.Temperature != nil {
		c.LLM.Temperature = *fc.LLM.Temperature
	}
	if fc.LLM.MaxTokens > 0 {
		c.LLM.MaxTokens = fc.LLM.MaxTokens
	}
	if fc.LLM.Timeout != "" {
		if d, err := time.ParseDuration(fc.LLM.Timeout); err == nil {
			c.LLM.Timeout = d
		}
	}
	if fc.Document.MaxChars > 0 {
		c.Document.MaxChars = fc.Document.MaxChars
	}

	return nil
}

func (c *Config) mergeEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.Env = getEnv("ENV", c.Server.Env)

	c.LLM.Provider = getEnv("LLM_PROVIDER", c.LLM.Provider)
	c.LLM.Model = getEnv("LLM_MODEL", c.LLM.Model)
	c.LLM.BaseURL = getEnv("GROQ_BASE_URL", c.LLM.BaseURL)
	c.LLM.Temperature = getEnvAsFloat("LLM_TEMPERATURE", c.LLM.Temperature)
	c.LLM.MaxTokens = getEnvAsInt("LLM_MAX_TOKENS", c.LLM.MaxTokens)
	c.LLM.Timeout = getEnvAsDuration("LLM_TIMEOUT", c.LLM.Timeout)

	c.Document.MaxChars = getEnvAsInt("MAX_DOC_CHARS", c.Document.MaxChars)
	c.Owner.Number = getEnv("MY_NUMBER", c.Owner.Number)
}

func (c *Config) applyProviderDefaults() {
	switch c.LLM.Provider {
	case ProviderGemini:
		c.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		if c.LLM.Model == "" {
			c.LLM.Model = "gemini-2.5-flash"
		}
	default:
		c.LLM.APIKey = os.Getenv("GROQ_API_KEY")
		if c.LLM.Model == "" {
			c.LLM.Model = "llama-3.1-8b-instant"
		}
		if c.LLM.BaseURL == "" {
			c.LLM.BaseURL = defaultGroqBaseURL
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	return defaultValue
}
