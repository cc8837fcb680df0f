package config

import "fmt"

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if c.LLM.Provider != ProviderGroq && c.LLM.Provider != ProviderGemini {
		errors = append(errors, ValidationError{
			Field:   "llm.provider",
			Message: fmt.Sprintf("unknown provider %q (supported: %s, %s)", c.LLM.Provider, ProviderGroq, ProviderGemini),
		})
	}

	if c.LLM.APIKey == "" {
		errors = append(errors, ValidationError{
			Field:   "llm.api_key",
			Message: "API key for the selected provider is required",
		})
	}

	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		errors = append(errors, ValidationError{
			Field:   "llm.temperature",
			Message: "temperature must be between 0 and 2",
		})
	}

	if c.LLM.MaxTokens < 1 {
		errors = append(errors, ValidationError{
			Field:   "llm.max_tokens",
			Message: "max_tokens must be positive",
		})
	}

	if c.LLM.Timeout <= 0 {
		errors = append(errors, ValidationError{
			Field:   "llm.timeout",
			Message: "timeout must be positive",
		})
	}

	if c.Document.MaxChars < 1 {
		errors = append(errors, ValidationError{
			Field:   "document.max_chars",
			Message: "max_chars must be positive",
		})
	}

	return errors
}
