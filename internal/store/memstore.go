package store

import (
	"sort"
	"sync"
	"time"

	"socialconnect/backend/internal/models"
)

type likeKey struct {
	postID uint
	userID uint
}

// pairKey identifies the unordered user pair of a friend request.
type pairKey struct {
	low  uint
	high uint
}

func pairOf(a, b uint) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{low: a, high: b}
}

// MemStore is an in-memory Store. Each collection is a map keyed by id with
// secondary indices maintained on write, so reads stay proportional to
// their result size. A single RWMutex keeps the single-writer semantics the
// core relies on.
type MemStore struct {
	mu sync.RWMutex

	users         map[uint]models.User
	posts         map[uint]models.Post
	comments      map[uint]models.Comment
	likes         map[uint]models.Like
	requests      map[uint]models.FriendRequest
	notifications map[uint]models.Notification

	usernames      map[string]uint
	postsByAuthor  map[uint][]uint
	commentsByPost map[uint][]uint
	likesByPost    map[uint][]uint
	likeKeys       map[likeKey]uint
	requestsByUser map[uint][]uint
	requestPairs   map[pairKey]uint
	notifsByUser   map[uint][]uint

	nextUserID    uint
	nextPostID    uint
	nextCommentID uint
	nextLikeID    uint
	nextRequestID uint
	nextNotifID   uint
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		users:          make(map[uint]models.User),
		posts:          make(map[uint]models.Post),
		comments:       make(map[uint]models.Comment),
		likes:          make(map[uint]models.Like),
		requests:       make(map[uint]models.FriendRequest),
		notifications:  make(map[uint]models.Notification),
		usernames:      make(map[string]uint),
		postsByAuthor:  make(map[uint][]uint),
		commentsByPost: make(map[uint][]uint),
		likesByPost:    make(map[uint][]uint),
		likeKeys:       make(map[likeKey]uint),
		requestsByUser: make(map[uint][]uint),
		requestPairs:   make(map[pairKey]uint),
		notifsByUser:   make(map[uint][]uint),
	}
}

func stamp(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

func (s *MemStore) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID++
	u.ID = s.nextUserID
	s.users[u.ID] = *u
	s.usernames[u.Username] = u.ID
	return nil
}

func (s *MemStore) User(id uint) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemStore) UserByUsername(username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return s.users[id], nil
}

func (s *MemStore) Users() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) CreatePost(p *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPostID++
	p.ID = s.nextPostID
	p.CreatedAt = stamp(p.CreatedAt)
	s.posts[p.ID] = *p
	s.postsByAuthor[p.UserID] = append(s.postsByAuthor[p.UserID], p.ID)
	return nil
}

func (s *MemStore) Post(id uint) (models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return models.Post{}, ErrNotFound
	}
	return p, nil
}

// newestFirst orders posts by creation time descending, id as tie breaker.
func newestFirst(posts []models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
}

func (s *MemStore) PostsByAuthors(authorIDs []uint) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Post
	for _, authorID := range authorIDs {
		for _, postID := range s.postsByAuthor[authorID] {
			out = append(out, s.posts[postID])
		}
	}
	newestFirst(out)
	return out, nil
}

func (s *MemStore) PostsByAuthor(authorID uint) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, 0, len(s.postsByAuthor[authorID]))
	for _, postID := range s.postsByAuthor[authorID] {
		out = append(out, s.posts[postID])
	}
	newestFirst(out)
	return out, nil
}

func (s *MemStore) CreateComment(c *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCommentID++
	c.ID = s.nextCommentID
	c.CreatedAt = stamp(c.CreatedAt)
	s.comments[c.ID] = *c
	s.commentsByPost[c.PostID] = append(s.commentsByPost[c.PostID], c.ID)
	return nil
}

func (s *MemStore) CommentsForPost(postID uint) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Comment, 0, len(s.commentsByPost[postID]))
	for _, commentID := range s.commentsByPost[postID] {
		out = append(out, s.comments[commentID])
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemStore) CreateLike(l *models.Like) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextLikeID++
	l.ID = s.nextLikeID
	l.CreatedAt = stamp(l.CreatedAt)
	s.likes[l.ID] = *l
	s.likesByPost[l.PostID] = append(s.likesByPost[l.PostID], l.ID)
	s.likeKeys[likeKey{postID: l.PostID, userID: l.UserID}] = l.ID
	return nil
}

func (s *MemStore) LikeByPostUser(postID, userID uint) (models.Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.likeKeys[likeKey{postID: postID, userID: userID}]
	if !ok {
		return models.Like{}, ErrNotFound
	}
	return s.likes[id], nil
}

func (s *MemStore) LikesForPost(postID uint) ([]models.Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Like, 0, len(s.likesByPost[postID]))
	for _, likeID := range s.likesByPost[postID] {
		out = append(out, s.likes[likeID])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) DeleteLike(postID, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := likeKey{postID: postID, userID: userID}
	id, ok := s.likeKeys[key]
	if !ok {
		return nil
	}
	delete(s.likes, id)
	delete(s.likeKeys, key)

	ids := s.likesByPost[postID]
	for i, likeID := range ids {
		if likeID == id {
			s.likesByPost[postID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemStore) CreateFriendRequest(r *models.FriendRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextRequestID++
	r.ID = s.nextRequestID
	r.CreatedAt = stamp(r.CreatedAt)
	s.requests[r.ID] = *r
	s.requestsByUser[r.SenderID] = append(s.requestsByUser[r.SenderID], r.ID)
	s.requestsByUser[r.ReceiverID] = append(s.requestsByUser[r.ReceiverID], r.ID)
	s.requestPairs[pairOf(r.SenderID, r.ReceiverID)] = r.ID
	return nil
}

func (s *MemStore) FriendRequest(id uint) (models.FriendRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.requests[id]
	if !ok {
		return models.FriendRequest{}, ErrNotFound
	}
	return r, nil
}

func (s *MemStore) RequestBetween(userA, userB uint) (models.FriendRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.requestPairs[pairOf(userA, userB)]
	if !ok {
		return models.FriendRequest{}, ErrNotFound
	}
	return s.requests[id], nil
}

func (s *MemStore) AcceptedRequestsFor(userID uint) ([]models.FriendRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.FriendRequest
	for _, requestID := range s.requestsByUser[userID] {
		if r := s.requests[requestID]; r.Status == models.StatusAccepted {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) PendingRequestsTo(receiverID uint) ([]models.FriendRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.FriendRequest
	for _, requestID := range s.requestsByUser[receiverID] {
		r := s.requests[requestID]
		if r.ReceiverID == receiverID && r.Status == models.StatusPending {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) SetFriendRequestStatus(id uint, status models.RequestStatus) (models.FriendRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok {
		return models.FriendRequest{}, ErrNotFound
	}
	r.Status = status
	s.requests[id] = r
	return r, nil
}

func (s *MemStore) CreateNotification(n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextNotifID++
	n.ID = s.nextNotifID
	n.CreatedAt = stamp(n.CreatedAt)
	s.notifications[n.ID] = *n
	s.notifsByUser[n.UserID] = append(s.notifsByUser[n.UserID], n.ID)
	return nil
}

func (s *MemStore) NotificationsFor(userID uint) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Notification, 0, len(s.notifsByUser[userID]))
	for _, notifID := range s.notifsByUser[userID] {
		out = append(out, s.notifications[notifID])
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemStore) MarkNotificationRead(id uint) (models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return models.Notification{}, ErrNotFound
	}
	n.IsRead = true
	s.notifications[id] = n
	return n, nil
}
