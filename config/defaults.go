package config

import "github.com/digitalocean/gradientai-go/provider"

func Default() *Config {
	return &Config{
		BaseURL: provider.DefaultBaseURL,
		Model:   provider.DefaultModel,
	}
}

func GenerateConfigTemplate() string {
	return `# Gradient AI Client Configuration
# Location: ~/.config/gradientai/config.toml
# This file uses TOML format: https://toml.io

[inference]
# Serverless inference endpoint base URL
base_url = "` + provider.DefaultBaseURL + `"

# Default model for chat and completion calls
model = "` + provider.DefaultModel + `"

# Sampling defaults (optional, endpoint defaults apply when omitted)
# temperature = 0.7
# top_p = 0.9

# Access key is read from GRADIENTAI_ACCESS_KEY when unset here
# access_key = ""
`
}
