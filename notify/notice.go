// Package notify carries the short user-facing messages the storefront raises
// (toasts) and the order confirmation mail.
package notify

import (
	"sync"

	"github.com/raushankrgupta/skincare-storefront/logx"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notice struct {
	Level       Level  `json:"level"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func Info(title string) Notice    { return Notice{Level: LevelInfo, Title: title} }
func Success(title string) Notice { return Notice{Level: LevelSuccess, Title: title} }

func Error(title, description string) Notice {
	return Notice{Level: LevelError, Title: title, Description: description}
}

type Notifier interface {
	Notify(n Notice)
}

// Recorder buffers notices until they are drained, typically once per request.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	r.notices = append(r.notices, n)
	r.mu.Unlock()
}

// Drain returns the buffered notices and empties the buffer.
func (r *Recorder) Drain() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.notices
	r.notices = nil
	return out
}

// Log writes notices to the structured log.
type Log struct{}

func (Log) Notify(n Notice) {
	ev := logx.Info()
	if n.Level == LevelError {
		ev = logx.Warn()
	}
	ev.Str("level", string(n.Level)).Str("description", n.Description).Msg(n.Title)
}

// Fanout delivers each notice to every notifier in order.
type Fanout []Notifier

func (f Fanout) Notify(n Notice) {
	for _, x := range f {
		if x != nil {
			x.Notify(n)
		}
	}
}

// Discard drops every notice.
type Discard struct{}

func (Discard) Notify(Notice) {}
