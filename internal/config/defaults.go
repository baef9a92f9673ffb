package config

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		OpenAI: OpenAIConfig{
			APIKey:            "${OPENAI_API_KEY}",
			Model:             "gpt-4o",
			Temperature:       0.1,
			RequestsPerMinute: 60,
			MaxRetries:        3,
			RetryDelaySeconds: 1,
		},
		Research: ResearchConfig{
			Enabled: true,
			Model:   "gpt-4o-search-preview",
		},
		Batch: BatchConfig{
			PauseMillis: 300,
		},
		Output: OutputConfig{
			Language: "hu",
			Dir:      "output",
		},
	}
}
