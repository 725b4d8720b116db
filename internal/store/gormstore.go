package store

import (
	"errors"

	"gorm.io/gorm"

	"socialconnect/backend/internal/models"
)

// GormStore is the relational Store backed by a gorm connection. Composite
// key uniqueness (likes, friend request pairs) is additionally guarded by
// the unique indices declared on the models.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an established gorm connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *GormStore) CreateUser(u *models.User) error {
	return s.db.Create(u).Error
}

func (s *GormStore) User(id uint) (models.User, error) {
	var u models.User
	err := s.db.First(&u, id).Error
	return u, translate(err)
}

func (s *GormStore) UserByUsername(username string) (models.User, error) {
	var u models.User
	err := s.db.Where("username = ?", username).First(&u).Error
	return u, translate(err)
}

func (s *GormStore) Users() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("id").Find(&users).Error
	return users, err
}

func (s *GormStore) CreatePost(p *models.Post) error {
	return s.db.Create(p).Error
}

func (s *GormStore) Post(id uint) (models.Post, error) {
	var p models.Post
	err := s.db.First(&p, id).Error
	return p, translate(err)
}

func (s *GormStore) PostsByAuthors(authorIDs []uint) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Where("user_id IN ?", authorIDs).
		Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

func (s *GormStore) PostsByAuthor(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Where("user_id = ?", authorID).
		Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

func (s *GormStore) CreateComment(c *models.Comment) error {
	return s.db.Create(c).Error
}

func (s *GormStore) CommentsForPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Where("post_id = ?", postID).
		Order("created_at, id").Find(&comments).Error
	return comments, err
}

func (s *GormStore) CreateLike(l *models.Like) error {
	return s.db.Create(l).Error
}

func (s *GormStore) LikeByPostUser(postID, userID uint) (models.Like, error) {
	var l models.Like
	err := s.db.Where("post_id = ? AND user_id = ?", postID, userID).First(&l).Error
	return l, translate(err)
}

func (s *GormStore) LikesForPost(postID uint) ([]models.Like, error) {
	var likes []models.Like
	err := s.db.Where("post_id = ?", postID).Order("id").Find(&likes).Error
	return likes, err
}

func (s *GormStore) DeleteLike(postID, userID uint) error {
	// Deleting zero rows is fine, removal is a no-op when no like exists.
	return s.db.Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&models.Like{}).Error
}

func (s *GormStore) CreateFriendRequest(r *models.FriendRequest) error {
	return s.db.Create(r).Error
}

func (s *GormStore) FriendRequest(id uint) (models.FriendRequest, error) {
	var r models.FriendRequest
	err := s.db.First(&r, id).Error
	return r, translate(err)
}

func (s *GormStore) RequestBetween(userA, userB uint) (models.FriendRequest, error) {
	var r models.FriendRequest
	err := s.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userA, userB, userB, userA,
	).First(&r).Error
	return r, translate(err)
}

func (s *GormStore) AcceptedRequestsFor(userID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := s.db.Where(
		"(sender_id = ? OR receiver_id = ?) AND status = ?",
		userID, userID, models.StatusAccepted,
	).Order("id").Find(&requests).Error
	return requests, err
}

func (s *GormStore) PendingRequestsTo(receiverID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := s.db.Where(
		"receiver_id = ? AND status = ?", receiverID, models.StatusPending,
	).Order("id").Find(&requests).Error
	return requests, err
}

func (s *GormStore) SetFriendRequestStatus(id uint, status models.RequestStatus) (models.FriendRequest, error) {
	var r models.FriendRequest
	if err := s.db.First(&r, id).Error; err != nil {
		return models.FriendRequest{}, translate(err)
	}
	if err := s.db.Model(&r).Update("status", status).Error; err != nil {
		return models.FriendRequest{}, err
	}
	r.Status = status
	return r, nil
}

func (s *GormStore) CreateNotification(n *models.Notification) error {
	return s.db.Create(n).Error
}

func (s *GormStore) NotificationsFor(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").Find(&notifications).Error
	return notifications, err
}

func (s *GormStore) MarkNotificationRead(id uint) (models.Notification, error) {
	var n models.Notification
	if err := s.db.First(&n, id).Error; err != nil {
		return models.Notification{}, translate(err)
	}
	if err := s.db.Model(&n).Update("is_read", true).Error; err != nil {
		return models.Notification{}, err
	}
	n.IsRead = true
	return n, nil
}
