package models

import "time"

// RequestStatus defines the state of a friend request.
type RequestStatus string

const (
	// StatusPending means the request has been sent but not yet answered.
	StatusPending RequestStatus = "pending"

	// StatusAccepted means the request was accepted; the record now
	// represents an established friendship.
	StatusAccepted RequestStatus = "accepted"

	// StatusRejected means the request was declined. Terminal.
	StatusRejected RequestStatus = "rejected"
)

// FriendRequest represents the relationship between two users. At most one
// record exists per unordered user pair; once accepted it doubles as the
// friendship record (there is no separate Friendship entity).
type FriendRequest struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	SenderID   uint          `gorm:"not null;index" json:"senderId"`
	ReceiverID uint          `gorm:"not null;index" json:"receiverId"`
	Status     RequestStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`

	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}
