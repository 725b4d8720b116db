// Package notification turns the events produced by mutating operations
// into persisted per-user notification records. Mutations never write
// notifications themselves; they return a list of events and the caller
// hands that list to the dispatcher once, which is what keeps delivery
// exactly-once per qualifying interaction.
package notification

import (
	"socialconnect/backend/internal/models"
	"socialconnect/backend/internal/store"
)

// Event describes one notification to be emitted to a user.
type Event struct {
	UserID     uint
	SourceID   uint
	SourceType models.SourceType
	Content    string
}

// Dispatcher persists events and serves notification queries.
type Dispatcher struct {
	store store.Store
}

func NewDispatcher(s store.Store) *Dispatcher {
	return &Dispatcher{store: s}
}

// Dispatch appends one unread notification per event.
func (d *Dispatcher) Dispatch(events []Event) error {
	for _, e := range events {
		n := models.Notification{
			UserID:     e.UserID,
			SourceID:   e.SourceID,
			SourceType: e.SourceType,
			Content:    e.Content,
		}
		if err := d.store.CreateNotification(&n); err != nil {
			return err
		}
	}
	return nil
}

// ForUser returns the user's notifications, newest first.
func (d *Dispatcher) ForUser(userID uint) ([]models.Notification, error) {
	return d.store.NotificationsFor(userID)
}

// MarkRead flips a notification to read and returns the updated record.
// Read is terminal; there is no un-read operation.
func (d *Dispatcher) MarkRead(id uint) (models.Notification, error) {
	return d.store.MarkNotificationRead(id)
}
