package feed

import (
	"sync"

	"github.com/threadchain/threadchain/internal/models"
)

// Notifier is the side-channel the core uses to signal the outcome of
// tip and post-creation actions. The core never renders anything; the
// UI observes this sink.
type Notifier interface {
	Notify(n models.Notification)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

// Notify implements Notifier
func (NopNotifier) Notify(models.Notification) {}

// Inbox holds the viewer's notification list. Notifications are
// mutated only by MarkRead.
type Inbox struct {
	mu    sync.Mutex
	items []models.Notification
}

// NewInbox creates an empty notification inbox
func NewInbox() *Inbox {
	return &Inbox{}
}

// Add appends a notification to the inbox.
func (in *Inbox) Add(n models.Notification) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.items = append(in.items, n)
}

// All returns a copy of the notification list.
func (in *Inbox) All() []models.Notification {
	in.mu.Lock()
	defer in.mu.Unlock()
	items := make([]models.Notification, len(in.items))
	copy(items, in.items)
	return items
}

// Unread returns the number of unread notifications.
func (in *Inbox) Unread() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	count := 0
	for i := range in.items {
		if !in.items[i].IsRead {
			count++
		}
	}
	return count
}

// MarkRead marks a notification as read. Marking an already-read
// notification is a no-op; an unknown ID is an error.
func (in *Inbox) MarkRead(id string) error {
	in.mu.Lock()
	defer in.mu.Unlock()
	for i := range in.items {
		if in.items[i].ID == id {
			in.items[i].IsRead = true
			return nil
		}
	}
	return &NotFoundError{Kind: "notification", ID: id}
}
