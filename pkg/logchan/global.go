package logchan

import (
	"errors"
	"sync"
)

// ErrNotConfigured is returned by the package-level helpers when no
// default channel has been installed with Setup.
var ErrNotConfigured = errors.New("logchan: not configured, call Setup first")

var (
	defaultMu sync.RWMutex
	defaultCh *Channel
)

// Setup builds a Channel from cfg and installs it as the package default
// used by the package-level helpers. Prefer passing the returned *Channel
// around explicitly; the default exists for small programs and scripts.
func Setup(cfg Config) (*Channel, error) {
	ch, err := New(cfg)
	if err != nil {
		return nil, err
	}
	defaultMu.Lock()
	defaultCh = ch
	defaultMu.Unlock()
	return ch, nil
}

// Default returns the channel installed by Setup, or ErrNotConfigured.
func Default() (*Channel, error) {
	defaultMu.RLock()
	ch := defaultCh
	defaultMu.RUnlock()
	if ch == nil {
		return nil, ErrNotConfigured
	}
	return ch, nil
}

// Log records through the default channel. See Channel.Log.
func Log(msg string, sev Severity, opts ...Option) error {
	ch, err := Default()
	if err != nil {
		return err
	}
	return ch.Log(msg, sev, opts...)
}

func Debug(msg string, opts ...Option) error {
	ch, err := Default()
	if err != nil {
		return err
	}
	return ch.Debug(msg, opts...)
}

func Info(msg string, opts ...Option) error {
	ch, err := Default()
	if err != nil {
		return err
	}
	return ch.Info(msg, opts...)
}

func Warning(msg string, opts ...Option) error {
	ch, err := Default()
	if err != nil {
		return err
	}
	return ch.Warning(msg, opts...)
}

func Error(msg string, opts ...Option) error {
	ch, err := Default()
	if err != nil {
		return err
	}
	return ch.Error(msg, opts...)
}

func Critical(msg string, opts ...Option) error {
	ch, err := Default()
	if err != nil {
		return err
	}
	return ch.Critical(msg, opts...)
}
