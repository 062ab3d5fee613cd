package notification

import (
	"sync"
	"time"

	"therewecome/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier surfaces transient messages to the user.
type Notifier interface {
	Notify(severity models.Severity, message string)
}

// Snackbar keeps the latest notification until it is dismissed or taken,
// the way a snackbar replaces its message.
type Snackbar struct {
	mu      sync.Mutex
	current *models.Notification
	now     func() time.Time
}

func NewSnackbar() *Snackbar {
	return &Snackbar{now: time.Now}
}

// Restore reopens a snackbar with a previously taken notification.
func Restore(n *models.Notification) *Snackbar {
	s := NewSnackbar()
	if n != nil {
		cp := *n
		s.current = &cp
	}
	return s
}

func (s *Snackbar) Notify(severity models.Severity, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &models.Notification{
		ID:        uuid.NewString(),
		Severity:  severity,
		Message:   message,
		CreatedAt: s.now(),
	}
}

// Current returns the open notification, or nil.
func (s *Snackbar) Current() *models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// Dismiss closes the open notification.
func (s *Snackbar) Dismiss() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Take returns the open notification and closes it.
func (s *Snackbar) Take() *models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.current
	s.current = nil
	return n
}

// Logging forwards to next and records every notification.
type Logging struct {
	next   Notifier
	logger *zap.Logger
}

func WithLogging(next Notifier, logger *zap.Logger) *Logging {
	return &Logging{next: next, logger: logger}
}

func (l *Logging) Notify(severity models.Severity, message string) {
	fields := []zap.Field{zap.String("severity", string(severity)), zap.String("message", message)}
	if severity == models.SeverityError {
		l.logger.Warn("User notified of failure", fields...)
	} else {
		l.logger.Debug("User notified", fields...)
	}
	l.next.Notify(severity, message)
}
