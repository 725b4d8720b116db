package models

import "time"

// SourceType tags the kind of event a notification originates from.
type SourceType string

const (
	SourceLike            SourceType = "like"
	SourceComment         SourceType = "comment"
	SourceFriendRequest   SourceType = "friend_request"
	SourceRequestAccepted SourceType = "friend_request_accepted"
)

// Notification is a per-user feed entry created in response to an
// interaction by another user. The only transition is unread to read.
type Notification struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;index" json:"userId"`
	SourceID   uint       `json:"sourceId,omitempty"`
	SourceType SourceType `gorm:"size:50" json:"sourceType,omitempty"`
	Content    string     `gorm:"not null" json:"content"`
	IsRead     bool       `gorm:"not null;default:false" json:"isRead"`
	CreatedAt  time.Time  `gorm:"index" json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
