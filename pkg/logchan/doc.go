// Package logchan is a leveled logging facade with three sinks: a log
// file, the console, and an optional Slack-compatible incoming webhook.
//
// Local sinks receive every record at or above the configured minimum
// severity. Webhook delivery is decided per call: Debug and Info keep it
// off by default, Warning and Error follow the channel configuration,
// Critical defaults to on, and the Remote option overrides any default.
// The two gates are independent, so an explicitly requested webhook
// delivery still goes out when the severity threshold suppressed the
// local lines.
package logchan
