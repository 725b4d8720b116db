package models

import "time"

// Like marks a user's like of a post. At most one Like exists per
// (PostID, UserID) pair; the interaction engine enforces this, the unique
// index backs it up on the relational store.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"postId"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_user" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`

	Post Post `gorm:"foreignKey:PostID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}
