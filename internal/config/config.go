// Package config loads the logging configuration from the environment,
// optionally seeded by a YAML file. Precedence, lowest to highest:
// built-in defaults, file values, environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v7"
	yaml "go.yaml.in/yaml/v3"

	"github.com/Pedrookas07/LoggingChannels/pkg/logchan"
)

const (
	defaultLogFile  = "logs/app.log"
	defaultLogLevel = "INFO"

	// webhookPrefix is what a Slack incoming webhook URL is expected to
	// start with. The check is advisory; a URL failing it is still used.
	webhookPrefix = "https://hooks.slack.com/"
)

type Config struct {
	LogFile  string `env:"LOG_FILE" yaml:"log_file"`
	LogLevel string `env:"LOG_LEVEL" yaml:"log_level"`

	SlackWebhookURL string `env:"SLACK_WEBHOOK_URL" yaml:"slack_webhook_url"`
	SlackChannel    string `env:"SLACK_CHANNEL" yaml:"slack_channel"`

	// SendWarningsToSlack and SendErrorsToSlack set the webhook defaults
	// for the Warning and Error helpers. Unset means true.
	SendWarningsToSlack *bool `env:"SEND_WARNINGS_TO_SLACK" yaml:"send_warnings_to_slack"`
	SendErrorsToSlack   *bool `env:"SEND_ERRORS_TO_SLACK" yaml:"send_errors_to_slack"`
}

// Load reads the optional YAML file at path (skipped when path is empty),
// overlays environment variables, and fills in defaults.
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.LogFile) == "" {
		c.LogFile = defaultLogFile
	}
	if strings.TrimSpace(c.LogLevel) == "" {
		c.LogLevel = defaultLogLevel
	}
	if strings.TrimSpace(c.SlackChannel) == "" {
		c.SlackChannel = logchan.DefaultChannel
	}
}

// Warnings returns advisory findings for the operator. None of them
// prevent startup.
func (c Config) Warnings() []string {
	var out []string
	if c.SlackWebhookURL != "" && !strings.HasPrefix(c.SlackWebhookURL, webhookPrefix) {
		out = append(out, fmt.Sprintf("SLACK_WEBHOOK_URL does not look like a Slack webhook (want prefix %s): %s", webhookPrefix, c.SlackWebhookURL))
	}
	if _, ok := logchan.ParseSeverity(c.LogLevel); !ok {
		out = append(out, fmt.Sprintf("unknown LOG_LEVEL %q, falling back to %s", c.LogLevel, defaultLogLevel))
	}
	return out
}

// Channel converts the loaded configuration into channel settings.
func (c Config) Channel() logchan.Config {
	level, ok := logchan.ParseSeverity(c.LogLevel)
	if !ok {
		level = logchan.SeverityInfo
	}
	return logchan.Config{
		MinLevel: level,
		File:     logchan.FileConfig{Path: c.LogFile},
		Slack: logchan.SlackConfig{
			WebhookURL:     c.SlackWebhookURL,
			Channel:        c.SlackChannel,
			NotifyWarnings: c.SendWarningsToSlack,
			NotifyErrors:   c.SendErrorsToSlack,
		},
	}
}
