// internal/pkg/notify/notify.go
package notify

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Variant classifies a notification for the UI layer
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a user-facing signal the UI layer renders and dismisses.
// The stores only produce these; presentation is out of scope.
type Notification struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant,omitempty"`
}

// Notifier consumes notifications emitted by the stores
type Notifier interface {
	Notify(n Notification)
}

// LogNotifier writes notifications to the application log
type LogNotifier struct {
	log *logrus.Logger
}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify logs the notification at a level matching its variant
func (l *LogNotifier) Notify(n Notification) {
	entry := l.log.WithFields(logrus.Fields{
		"title":       n.Title,
		"description": n.Description,
	})
	if n.Variant == VariantDestructive {
		entry.Warn("notification emitted")
		return
	}
	entry.Info("notification emitted")
}

// Recorder captures notifications for inspection in tests
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

// Notify records the notification
func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

// All returns a copy of every recorded notification
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// Last returns the most recent notification, if any
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notifications) == 0 {
		return Notification{}, false
	}
	return r.notifications[len(r.notifications)-1], true
}

// Discard is a Notifier that drops everything
type Discard struct{}

// Notify drops the notification
func (Discard) Notify(Notification) {}
