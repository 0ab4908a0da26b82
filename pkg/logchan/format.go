package logchan

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	timeLayout = "2006-01-02 15:04:05"

	// sourceName is the fixed identity token written to the file sink.
	sourceName = "LogChannel"

	// extraDelim separates the message from its serialized extra data on
	// local sink lines. Splitting a line on it recovers both parts.
	extraDelim = " | Dados: "
)

// FormatLocal renders r as the file sink line:
//
//	2006-01-02 15:04:05 - LogChannel - ERROR - message | Dados: {...}
//
// The extra-data segment is only present when the record carries extra data.
func FormatLocal(r Record) string { return formatLine(r, sourceName) }

// FormatConsole renders the console variant of the line, which drops the
// source token but is otherwise identical to FormatLocal.
func FormatConsole(r Record) string { return formatLine(r, "") }

func formatLine(r Record, source string) string {
	var b strings.Builder
	b.WriteString(r.Time.Format(timeLayout))
	b.WriteString(" - ")
	if source != "" {
		b.WriteString(source)
		b.WriteString(" - ")
	}
	b.WriteString(r.Severity.String())
	b.WriteString(" - ")
	b.WriteString(r.Message)
	if len(r.Extra) > 0 {
		b.WriteString(extraDelim)
		b.WriteString(compactJSON(r.Extra))
	}
	return b.String()
}

func compactJSON(m map[string]any) string {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Sprintf("%v", m)
	}
	return string(b)
}

func prettyJSON(m map[string]any) string {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", m)
	}
	return string(b)
}

const (
	webhookUsername = "LogBot"
	webhookIcon     = ":robot_face:"

	// DefaultChannel receives webhook notifications when no channel is
	// configured.
	DefaultChannel = "#logs"
)

// Payload is the webhook request body, shaped for Slack-compatible
// incoming webhooks.
type Payload struct {
	Channel     string       `json:"channel"`
	Username    string       `json:"username"`
	IconEmoji   string       `json:"icon_emoji"`
	Attachments []Attachment `json:"attachments"`
}

type Attachment struct {
	Color  string            `json:"color"`
	Fields []AttachmentField `json:"fields"`
}

type AttachmentField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// FormatRemote builds the webhook payload for r, addressed to channel
// (DefaultChannel when empty). The payload carries exactly one attachment:
// a severity-colored block with a marker+severity title, the message, a
// timestamp field and, when present, the extra data as a fenced code block.
func FormatRemote(r Record, channel string) Payload {
	if channel == "" {
		channel = DefaultChannel
	}

	fields := []AttachmentField{
		{Title: severityEmoji(r.Severity) + " " + r.Severity.String(), Value: r.Message},
		{Title: "Timestamp", Value: r.Time.Format(timeLayout), Short: true},
	}
	if len(r.Extra) > 0 {
		fields = append(fields, AttachmentField{
			Title: "Extra Data",
			Value: "```" + prettyJSON(r.Extra) + "```",
		})
	}

	return Payload{
		Channel:   channel,
		Username:  webhookUsername,
		IconEmoji: webhookIcon,
		Attachments: []Attachment{{
			Color:  severityColor(r.Severity),
			Fields: fields,
		}},
	}
}

func severityColor(s Severity) string {
	switch s {
	case SeverityDebug:
		return "#36a64f" // green
	case SeverityInfo:
		return "#2196F3" // blue
	case SeverityWarning:
		return "#ff9800" // orange
	case SeverityError:
		return "#f44336" // red
	case SeverityCritical:
		return "#9c27b0" // purple
	default:
		return "#36a64f"
	}
}

func severityEmoji(s Severity) string {
	switch s {
	case SeverityDebug:
		return "🔍"
	case SeverityInfo:
		return "ℹ️"
	case SeverityWarning:
		return "⚠️"
	case SeverityError:
		return "❌"
	case SeverityCritical:
		return "🚨"
	default:
		return "📝"
	}
}
