// Package notify delivers transient success/error/info messages to the user.
package notify

import (
	"log"
	"sync"
	"time"
)

// Severity of a notification
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
)

// Notification is one toast
type Notification struct {
	Severity Severity
	Message  string
	Time     time.Time
}

// Notifier shows a message to the user
type Notifier interface {
	Notify(severity Severity, message string)
}

// LogNotifier writes notifications through the standard logger
type LogNotifier struct{}

// Notify logs the message with its severity
func (LogNotifier) Notify(severity Severity, message string) {
	log.Printf("[%s] %s", severity, message)
}

// Recorder keeps the most recent notifications in memory for rendering
type Recorder struct {
	mu    sync.Mutex
	limit int
	items []Notification
	now   func() time.Time
}

// NewRecorder keeps at most limit notifications
func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = 1
	}
	return &Recorder{limit: limit, now: time.Now}
}

// Notify appends a notification, dropping the oldest over the limit
func (r *Recorder) Notify(severity Severity, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, Notification{Severity: severity, Message: message, Time: r.now()})
	if len(r.items) > r.limit {
		r.items = append(r.items[:0], r.items[len(r.items)-r.limit:]...)
	}
}

// Recent returns notifications newest first
func (r *Recorder) Recent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	for i, n := range r.items {
		out[len(r.items)-1-i] = n
	}
	return out
}

// Latest returns the newest notification, if any
func (r *Recorder) Latest() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Multi fans a notification out to several notifiers
type Multi []Notifier

// Notify forwards to every notifier in order
func (m Multi) Notify(severity Severity, message string) {
	for _, n := range m {
		n.Notify(severity, message)
	}
}
