package logchan

import "time"

// Record is a single log entry. It is built fresh for every call, carries
// the capture time, and is discarded once dispatched.
type Record struct {
	Time     time.Time
	Severity Severity
	Message  string
	Extra    map[string]any
}

func newRecord(msg string, sev Severity, extra map[string]any) Record {
	return Record{Time: time.Now(), Severity: sev, Message: msg, Extra: extra}
}
