package models

// User represents a registered account. Username is unique and immutable
// after registration.
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Username       string `gorm:"size:255;unique;not null" json:"username"`
	PasswordHash   string `gorm:"size:255;not null" json:"-"`
	Name           string `gorm:"size:255;not null" json:"name"`
	Bio            string `json:"bio,omitempty"`
	ProfilePicture string `gorm:"size:512" json:"profilePicture,omitempty"`
	CoverPicture   string `gorm:"size:512" json:"coverPicture,omitempty"`
}
