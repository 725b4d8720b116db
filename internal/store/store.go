package store

import (
	"errors"

	"socialconnect/backend/internal/models"
)

// ErrNotFound is returned when an operation references a record that does
// not exist. Callers test for it with errors.Is.
var ErrNotFound = errors.New("record not found")

// Store is the entity store the core components operate over. Creates
// assign the next sequential id per entity type and fill CreatedAt when it
// is zero. The only in-place updates are the friend request status and the
// notification read flag, both full-record replacements keyed by id; the
// only delete is the like removal by composite key.
//
// List operations define their ordering so both backends agree: posts and
// notifications come newest first, comments oldest first, with the id as
// tie breaker.
type Store interface {
	CreateUser(u *models.User) error
	User(id uint) (models.User, error)
	UserByUsername(username string) (models.User, error)
	Users() ([]models.User, error)

	CreatePost(p *models.Post) error
	Post(id uint) (models.Post, error)
	PostsByAuthors(authorIDs []uint) ([]models.Post, error)
	PostsByAuthor(authorID uint) ([]models.Post, error)

	CreateComment(c *models.Comment) error
	CommentsForPost(postID uint) ([]models.Comment, error)

	CreateLike(l *models.Like) error
	LikeByPostUser(postID, userID uint) (models.Like, error)
	LikesForPost(postID uint) ([]models.Like, error)
	DeleteLike(postID, userID uint) error

	CreateFriendRequest(r *models.FriendRequest) error
	FriendRequest(id uint) (models.FriendRequest, error)
	RequestBetween(userA, userB uint) (models.FriendRequest, error)
	AcceptedRequestsFor(userID uint) ([]models.FriendRequest, error)
	PendingRequestsTo(receiverID uint) ([]models.FriendRequest, error)
	SetFriendRequestStatus(id uint, status models.RequestStatus) (models.FriendRequest, error)

	CreateNotification(n *models.Notification) error
	NotificationsFor(userID uint) ([]models.Notification, error)
	MarkNotificationRead(id uint) (models.Notification, error)
}
