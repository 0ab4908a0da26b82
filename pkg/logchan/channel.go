package logchan

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Config holds the channel settings. It is consumed once by New; changing
// the configuration of a running channel means building a new one.
type Config struct {
	// MinLevel is the minimum severity emitted to the local sinks. It does
	// not gate webhook delivery.
	MinLevel Severity

	File    FileConfig
	Console ConsoleConfig
	Slack   SlackConfig
}

type FileConfig struct {
	// Path of the log file. Empty disables the file sink. The containing
	// directory is created on demand.
	Path string
}

type ConsoleConfig struct {
	// Out receives console lines. Nil means os.Stdout; use io.Discard to
	// silence the console sink.
	Out io.Writer
}

type SlackConfig struct {
	// WebhookURL enables the remote sink when non-empty.
	WebhookURL string

	// Channel overrides the destination channel (default DefaultChannel).
	Channel string

	// Timeout bounds each delivery attempt (default DefaultTimeout).
	Timeout time.Duration

	// NotifyWarnings and NotifyErrors control whether Warning and Error
	// default to webhook delivery. Nil means true.
	NotifyWarnings *bool
	NotifyErrors   *bool
}

// Channel routes log records to a file sink, a console sink and, per call,
// a Slack-compatible webhook.
//
// A Channel is safe for concurrent use: local writes are serialized so
// lines never interleave, while webhook deliveries run unsynchronized on
// the caller's goroutine and may be in flight simultaneously.
type Channel struct {
	minLevel Severity

	mu      sync.Mutex
	file    *os.File
	console io.Writer

	client         *http.Client
	webhookURL     string
	slackChannel   string
	notifyWarnings bool
	notifyErrors   bool
}

// New builds a Channel from cfg, creating the log file's directory and
// opening the file in append mode when a path is configured.
func New(cfg Config) (*Channel, error) {
	c := &Channel{
		minLevel:       cfg.MinLevel,
		console:        cfg.Console.Out,
		webhookURL:     strings.TrimSpace(cfg.Slack.WebhookURL),
		slackChannel:   cfg.Slack.Channel,
		notifyWarnings: cfg.Slack.NotifyWarnings == nil || *cfg.Slack.NotifyWarnings,
		notifyErrors:   cfg.Slack.NotifyErrors == nil || *cfg.Slack.NotifyErrors,
	}
	if c.console == nil {
		c.console = os.Stdout
	}

	timeout := cfg.Slack.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c.client = &http.Client{Timeout: timeout}

	if path := strings.TrimSpace(cfg.File.Path); path != "" {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		c.file = f
	}
	return c, nil
}

// Close releases the file sink. The console and webhook sinks need no
// cleanup.
func (c *Channel) Close() error {
	c.mu.Lock()
	f := c.file
	c.file = nil
	c.mu.Unlock()

	if f != nil {
		return f.Close()
	}
	return nil
}

type callOpts struct {
	remote bool
	extra  map[string]any
}

// Option adjusts a single log call.
type Option func(*callOpts)

// Remote overrides whether the record is forwarded to the webhook.
func Remote(v bool) Option { return func(o *callOpts) { o.remote = v } }

// Extra attaches structured diagnostic data to the record.
func Extra(data map[string]any) Option { return func(o *callOpts) { o.extra = data } }

// Log records msg at sev. Webhook delivery defaults to off here; the
// severity helpers carry their own defaults. The returned error reports
// local sink write failures only — webhook failures never propagate and
// surface as a follow-up ERROR line instead.
func (c *Channel) Log(msg string, sev Severity, opts ...Option) error {
	return c.dispatch(msg, sev, false, opts)
}

func (c *Channel) Debug(msg string, opts ...Option) error {
	return c.dispatch(msg, SeverityDebug, false, opts)
}

func (c *Channel) Info(msg string, opts ...Option) error {
	return c.dispatch(msg, SeverityInfo, false, opts)
}

// Warning records at WARNING severity and, unless configured or overridden
// otherwise, forwards the record to the webhook.
func (c *Channel) Warning(msg string, opts ...Option) error {
	return c.dispatch(msg, SeverityWarning, c.notifyWarnings, opts)
}

// Error records at ERROR severity and, unless configured or overridden
// otherwise, forwards the record to the webhook.
func (c *Channel) Error(msg string, opts ...Option) error {
	return c.dispatch(msg, SeverityError, c.notifyErrors, opts)
}

// Critical records at CRITICAL severity and forwards the record to the
// webhook unless overridden.
func (c *Channel) Critical(msg string, opts ...Option) error {
	return c.dispatch(msg, SeverityCritical, true, opts)
}

func (c *Channel) dispatch(msg string, sev Severity, remoteDefault bool, opts []Option) error {
	o := callOpts{remote: remoteDefault}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	// The severity threshold gates local emission only; the remote gate is
	// the per-call flag plus a configured endpoint. Bail out before building
	// the record when neither sink will see it.
	sendRemote := o.remote && c.webhookURL != ""
	if sev < c.minLevel && !sendRemote {
		return nil
	}

	rec := newRecord(msg, sev, o.extra)

	var err error
	if sev >= c.minLevel {
		err = c.emitLocal(rec)
	}

	if sendRemote {
		if werr := sendWebhook(c.client, c.webhookURL, FormatRemote(rec, c.slackChannel)); werr != nil {
			// Reported through the local sinks only; another webhook attempt
			// here would loop on a failing endpoint.
			_ = c.dispatch(fmt.Sprintf("failed to deliver log to Slack: %v", werr), SeverityError, false, nil)
		}
	}
	return err
}

func (c *Channel) emitLocal(r Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var fileErr, consoleErr error
	if c.file != nil {
		_, fileErr = c.file.WriteString(FormatLocal(r) + "\n")
	}
	if c.console != nil {
		_, consoleErr = io.WriteString(c.console, FormatConsole(r)+"\n")
	}
	return errors.Join(fileErr, consoleErr)
}
