// Package feed assembles read-only post projections: a post joined with
// its author, ordered comments, likes and a counts summary.
package feed

import (
	"errors"

	"socialconnect/backend/internal/models"
	"socialconnect/backend/internal/social"
	"socialconnect/backend/internal/store"
)

// Counts summarizes a post's engagement.
type Counts struct {
	Comments int `json:"comments"`
	Likes    int `json:"likes"`
}

// CommentView is a comment joined with its author.
type CommentView struct {
	models.Comment
	User models.User `json:"user"`
}

// PostView is a post joined with its author, full comment and like lists,
// and the counts summary the clients render.
type PostView struct {
	models.Post
	User     models.User   `json:"user"`
	Comments []CommentView `json:"comments"`
	Likes    []models.Like `json:"likes"`
	Count    Counts        `json:"_count"`
}

// Composer builds feeds over the store and the social graph.
type Composer struct {
	store store.Store
	graph *social.Graph
}

func NewComposer(s store.Store, g *social.Graph) *Composer {
	return &Composer{store: s, graph: g}
}

func (c *Composer) project(post models.Post, author models.User) (PostView, error) {
	comments, err := c.store.CommentsForPost(post.ID)
	if err != nil {
		return PostView{}, err
	}
	likes, err := c.store.LikesForPost(post.ID)
	if err != nil {
		return PostView{}, err
	}

	commentViews := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		commenter, err := c.store.User(comment.UserID)
		if err != nil {
			return PostView{}, err
		}
		commentViews = append(commentViews, CommentView{Comment: comment, User: commenter})
	}

	return PostView{
		Post:     post,
		User:     author,
		Comments: commentViews,
		Likes:    likes,
		Count:    Counts{Comments: len(commentViews), Likes: len(likes)},
	}, nil
}

// Post returns the full projection for a single post.
func (c *Composer) Post(id uint) (PostView, error) {
	post, err := c.store.Post(id)
	if err != nil {
		return PostView{}, err
	}
	author, err := c.store.User(post.UserID)
	if err != nil {
		return PostView{}, err
	}
	return c.project(post, author)
}

// HomeFeed returns the posts visible to the viewer, newest first. The
// visibility set is the viewer plus their friends; nobody else's posts
// appear regardless of timestamp.
func (c *Composer) HomeFeed(viewerID uint) ([]PostView, error) {
	friends, err := c.graph.Friends(viewerID)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]uint, 0, len(friends)+1)
	for _, friend := range friends {
		authorIDs = append(authorIDs, friend.ID)
	}
	authorIDs = append(authorIDs, viewerID)

	posts, err := c.store.PostsByAuthors(authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		author, err := c.store.User(post.UserID)
		if err != nil {
			return nil, err
		}
		view, err := c.project(post, author)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// UserPosts returns every post authored by the given user, newest first.
// Profile posts are not gated on friendship; only the home feed applies
// the visibility set.
func (c *Composer) UserPosts(userID uint) ([]PostView, error) {
	author, err := c.store.User(userID)
	if errors.Is(err, store.ErrNotFound) {
		return []PostView{}, nil
	}
	if err != nil {
		return nil, err
	}

	posts, err := c.store.PostsByAuthor(userID)
	if err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		view, err := c.project(post, author)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
