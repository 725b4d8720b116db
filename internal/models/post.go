package models

import "time"

// Post is a user-authored publication. Posts are immutable after creation;
// there is no edit or delete operation.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Content   string    `gorm:"not null" json:"content"`
	ImageURL  string    `gorm:"size:512" json:"imageUrl,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
