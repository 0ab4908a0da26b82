package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/Pedrookas07/LoggingChannels/internal/config"
	"github.com/Pedrookas07/LoggingChannels/pkg/logchan"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "path to optional yaml config")
	flag.Parse()

	// Operator output goes to stderr so it never mixes with the channel's
	// console sink on stdout.
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	log := zerolog.New(out).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load configuration")
	}
	for _, w := range cfg.Warnings() {
		log.Warn().Msg(w)
	}
	log.Info().
		Str("log_file", cfg.LogFile).
		Str("log_level", cfg.LogLevel).
		Str("slack_channel", cfg.SlackChannel).
		Bool("webhook_configured", cfg.SlackWebhookURL != "").
		Msg("log channel configuration")

	ch, err := logchan.Setup(cfg.Channel())
	if err != nil {
		log.Fatal().Err(err).Msg("construct log channel")
	}
	defer ch.Close()

	_ = ch.Debug("debug message, file and console only")

	_ = ch.Info("application started", logchan.Remote(true), logchan.Extra(map[string]any{
		"version":     "1.0.0",
		"environment": "development",
	}))

	_ = ch.Warning("memory usage is high", logchan.Extra(map[string]any{
		"memory_used": "85%",
		"cpu_used":    "45%",
	}))

	if err := ch.Error("simulated failure", logchan.Extra(map[string]any{
		"code":   "E001",
		"module": "demo",
	})); err != nil {
		log.Error().Err(err).Msg("local sink write failed")
	}

	_ = ch.Critical("maximum urgency test", logchan.Extra(map[string]any{
		"system": "core",
		"impact": "high",
	}))

	log.Info().Str("log_file", cfg.LogFile).Msg("demo complete")
}
