package logchan

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"
)

func testRecord(sev Severity, msg string, extra map[string]any) Record {
	return Record{
		Time:     time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		Severity: sev,
		Message:  msg,
		Extra:    extra,
	}
}

func TestFormatLocal(t *testing.T) {
	t.Parallel()
	got := FormatLocal(testRecord(SeverityError, "disk almost full", nil))
	want := "2025-03-14 09:26:53 - LogChannel - ERROR - disk almost full"
	if got != want {
		t.Fatalf("FormatLocal = %q, want %q", got, want)
	}
}

func TestFormatConsoleOmitsSource(t *testing.T) {
	t.Parallel()
	got := FormatConsole(testRecord(SeverityInfo, "started", nil))
	want := "2025-03-14 09:26:53 - INFO - started"
	if got != want {
		t.Fatalf("FormatConsole = %q, want %q", got, want)
	}
	if strings.Contains(got, sourceName) {
		t.Fatalf("console line should not carry the source token: %q", got)
	}
}

func TestFormatLocalExtraRoundTrip(t *testing.T) {
	t.Parallel()
	extra := map[string]any{"code": "E001", "attempt": float64(3), "fatal": true}
	line := FormatLocal(testRecord(SeverityWarning, "failure", extra))

	parts := strings.SplitN(line, extraDelim, 2)
	if len(parts) != 2 {
		t.Fatalf("line %q is missing the extra-data segment", line)
	}
	if !strings.HasSuffix(parts[0], "failure") {
		t.Fatalf("first segment %q should end with the message", parts[0])
	}

	var back map[string]any
	if err := json.Unmarshal([]byte(parts[1]), &back); err != nil {
		t.Fatalf("extra-data segment %q is not valid JSON: %v", parts[1], err)
	}
	if !reflect.DeepEqual(back, extra) {
		t.Fatalf("extra data round trip = %#v, want %#v", back, extra)
	}
}

func TestFormatRemotePayload(t *testing.T) {
	t.Parallel()
	extra := map[string]any{"code": "E001"}
	p := FormatRemote(testRecord(SeverityError, "failure", extra), "")

	if p.Channel != DefaultChannel {
		t.Fatalf("Channel = %q, want %q", p.Channel, DefaultChannel)
	}
	if p.Username != "LogBot" || p.IconEmoji != ":robot_face:" {
		t.Fatalf("unexpected sender identity: %q / %q", p.Username, p.IconEmoji)
	}
	if len(p.Attachments) != 1 {
		t.Fatalf("expected exactly one attachment, got %d", len(p.Attachments))
	}

	fields := p.Attachments[0].Fields
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if !strings.Contains(fields[0].Title, "ERROR") {
		t.Fatalf("title %q should contain the severity name", fields[0].Title)
	}
	if fields[0].Value != "failure" {
		t.Fatalf("message field = %q, want %q", fields[0].Value, "failure")
	}
	if fields[1].Title != "Timestamp" || !fields[1].Short {
		t.Fatalf("unexpected timestamp field: %+v", fields[1])
	}
	if fields[1].Value != "2025-03-14 09:26:53" {
		t.Fatalf("timestamp value = %q", fields[1].Value)
	}

	if fields[2].Title != "Extra Data" {
		t.Fatalf("extra field title = %q, want %q", fields[2].Title, "Extra Data")
	}
	if !strings.HasPrefix(fields[2].Value, "```") || !strings.HasSuffix(fields[2].Value, "```") {
		t.Fatalf("extra field should be a fenced code block: %q", fields[2].Value)
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(fields[2].Value, "```"), "```")
	var back map[string]any
	if err := json.Unmarshal([]byte(inner), &back); err != nil {
		t.Fatalf("extra field content is not valid JSON: %v", err)
	}
	if back["code"] != "E001" {
		t.Fatalf("extra field round trip = %#v", back)
	}
}

func TestFormatRemoteWithoutExtra(t *testing.T) {
	t.Parallel()
	p := FormatRemote(testRecord(SeverityInfo, "plain", nil), "#ops")
	if p.Channel != "#ops" {
		t.Fatalf("Channel = %q, want %q", p.Channel, "#ops")
	}
	if got := len(p.Attachments[0].Fields); got != 2 {
		t.Fatalf("expected 2 fields without extra data, got %d", got)
	}
}

func TestSeverityStylesDistinct(t *testing.T) {
	t.Parallel()
	severities := []Severity{SeverityDebug, SeverityInfo, SeverityWarning, SeverityError, SeverityCritical}
	colors := map[string]Severity{}
	markers := map[string]Severity{}

	for _, sev := range severities {
		p := FormatRemote(testRecord(sev, "x", nil), "")
		color := p.Attachments[0].Color
		title := p.Attachments[0].Fields[0].Title
		marker := strings.TrimSuffix(title, " "+sev.String())
		if marker == title || marker == "" {
			t.Fatalf("title %q should be marker + %q", title, sev.String())
		}

		if prev, dup := colors[color]; dup {
			t.Fatalf("color %s used by both %v and %v", color, prev, sev)
		}
		colors[color] = sev

		if prev, dup := markers[marker]; dup {
			t.Fatalf("marker %q used by both %v and %v", marker, prev, sev)
		}
		markers[marker] = sev
	}
}

func TestFormatRemoteDeterministic(t *testing.T) {
	t.Parallel()
	r := testRecord(SeverityCritical, "same", map[string]any{"k": "v"})
	a := FormatRemote(r, "#logs")
	b := FormatRemote(r, "#logs")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("FormatRemote is not deterministic:\n%#v\n%#v", a, b)
	}
}
