// Package interaction handles comments and likes, producing the
// notification events those mutations owe the post author.
package interaction

import (
	"errors"
	"fmt"

	"socialconnect/backend/internal/models"
	"socialconnect/backend/internal/notification"
	"socialconnect/backend/internal/store"
)

// Engine mutates comments and likes over the store.
type Engine struct {
	store store.Store
}

func NewEngine(s store.Store) *Engine {
	return &Engine{store: s}
}

// CreateComment appends a comment and, when the commenter is not the post
// author, produces a comment event for the author. The comment itself is
// persisted before the post is resolved for notification dispatch, so an
// unknown post id surfaces ErrNotFound with the comment already written.
// That asymmetry is deliberate and mirrors the system this replaces.
func (e *Engine) CreateComment(postID, userID uint, content string) (models.Comment, []notification.Event, error) {
	comment := models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := e.store.CreateComment(&comment); err != nil {
		return models.Comment{}, nil, err
	}

	post, err := e.store.Post(postID)
	if err != nil {
		return comment, nil, err
	}

	var events []notification.Event
	if post.UserID != userID {
		if commenter, err := e.store.User(userID); err == nil {
			events = append(events, notification.Event{
				UserID:     post.UserID,
				SourceID:   comment.ID,
				SourceType: models.SourceComment,
				Content:    fmt.Sprintf("%s commented on your post", commenter.Name),
			})
		}
	}
	return comment, events, nil
}

// CreateLike records a like for (postID, userID). Liking twice is a soft
// conflict: the existing like comes back unchanged and no event is
// produced. A fresh like by someone other than the post author produces a
// like event for the author.
func (e *Engine) CreateLike(postID, userID uint) (models.Like, []notification.Event, error) {
	existing, err := e.store.LikeByPostUser(postID, userID)
	if err == nil {
		return existing, nil, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.Like{}, nil, err
	}

	like := models.Like{PostID: postID, UserID: userID}
	if err := e.store.CreateLike(&like); err != nil {
		return models.Like{}, nil, err
	}

	var events []notification.Event
	if post, err := e.store.Post(postID); err == nil && post.UserID != userID {
		if liker, err := e.store.User(userID); err == nil {
			events = append(events, notification.Event{
				UserID:     post.UserID,
				SourceID:   like.ID,
				SourceType: models.SourceLike,
				Content:    fmt.Sprintf("%s liked your post", liker.Name),
			})
		}
	}
	return like, events, nil
}

// RemoveLike deletes the like for (postID, userID). Removing a like that
// does not exist is a no-op, not an error.
func (e *Engine) RemoveLike(postID, userID uint) error {
	return e.store.DeleteLike(postID, userID)
}
