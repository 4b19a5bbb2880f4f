package alert

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind is the severity of an alert, matching the console's bootstrap styles
type Kind string

const (
	Success Kind = "success"
	Info    Kind = "info"
	Warning Kind = "warning"
	Danger  Kind = "danger"
)

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	switch k {
	case Success, Info, Warning, Danger:
		return true
	}
	return false
}

// Alert is one message shown at the top of the console
type Alert struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"type"`
	Message   string    `json:"msg"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier collects user facing alerts
type Notifier interface {
	Add(kind Kind, message string) Alert
	Dismiss(id string) bool
	List() []Alert
}

// Board is an in-memory Notifier. It is safe for concurrent use.
type Board struct {
	mu     sync.Mutex
	alerts []Alert
}

func NewBoard() *Board {
	return &Board{}
}

// Add appends an alert. Adding an alert identical to one already on the
// board returns the existing alert instead.
func (b *Board) Add(kind Kind, message string) Alert {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, a := range b.alerts {
		if a.Kind == kind && a.Message == message {
			return a
		}
	}
	a := Alert{
		ID:        uuid.New().String(),
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	b.alerts = append(b.alerts, a)
	if kind == Danger {
		log.Printf("⚠️  %s", message)
	}
	return a
}

// Dismiss removes the alert with the given id
func (b *Board) Dismiss(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, a := range b.alerts {
		if a.ID == id {
			b.alerts = append(b.alerts[:i], b.alerts[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a snapshot of the alerts in the order they were added
func (b *Board) List() []Alert {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Alert, len(b.alerts))
	copy(out, b.alerts)
	return out
}
