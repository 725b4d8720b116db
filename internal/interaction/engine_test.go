package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialconnect/backend/internal/models"
	"socialconnect/backend/internal/store"
)

// fixture returns an engine whose store holds two users and a post by the
// first one.
func fixture(t *testing.T) (*Engine, *store.MemStore, models.Post) {
	t.Helper()
	s := store.NewMemStore()

	author := models.User{Username: "author", Name: "Post Author"}
	viewer := models.User{Username: "viewer", Name: "Viewer"}
	require.NoError(t, s.CreateUser(&author))
	require.NoError(t, s.CreateUser(&viewer))

	post := models.Post{UserID: author.ID, Content: "hello"}
	require.NoError(t, s.CreatePost(&post))

	return NewEngine(s), s, post
}

func TestCreateLike_Idempotent(t *testing.T) {
	e, s, post := fixture(t)

	first, events, err := e.CreateLike(post.ID, 2)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, uint(1), events[0].UserID)
	assert.Equal(t, models.SourceLike, events[0].SourceType)
	assert.Equal(t, "Viewer liked your post", events[0].Content)

	// A second like returns the existing record and produces no event.
	second, events, err := e.CreateLike(post.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Empty(t, events)

	likes, err := s.LikesForPost(post.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 1)
}

func TestCreateLike_OwnPostNoEvent(t *testing.T) {
	e, _, post := fixture(t)

	_, events, err := e.CreateLike(post.ID, post.UserID)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCreateLike_MissingPostSkipsEvent(t *testing.T) {
	e, s, _ := fixture(t)

	like, events, err := e.CreateLike(99, 2)
	require.NoError(t, err)
	assert.Empty(t, events)

	// The like itself is recorded.
	found, err := s.LikeByPostUser(99, 2)
	require.NoError(t, err)
	assert.Equal(t, like.ID, found.ID)
}

func TestRemoveLike(t *testing.T) {
	e, s, post := fixture(t)

	_, _, err := e.CreateLike(post.ID, 2)
	require.NoError(t, err)

	require.NoError(t, e.RemoveLike(post.ID, 2))
	likes, err := s.LikesForPost(post.ID)
	require.NoError(t, err)
	assert.Empty(t, likes)

	// Removing a like that does not exist is a no-op.
	assert.NoError(t, e.RemoveLike(post.ID, 2))
}

func TestCreateComment_NotifiesAuthor(t *testing.T) {
	e, s, post := fixture(t)

	comment, events, err := e.CreateComment(post.ID, 2, "nice one")
	require.NoError(t, err)
	assert.Equal(t, "nice one", comment.Content)

	require.Len(t, events, 1)
	assert.Equal(t, uint(1), events[0].UserID)
	assert.Equal(t, models.SourceComment, events[0].SourceType)
	assert.Equal(t, comment.ID, events[0].SourceID)
	assert.Equal(t, "Viewer commented on your post", events[0].Content)

	comments, err := s.CommentsForPost(post.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestCreateComment_OwnPostNoEvent(t *testing.T) {
	e, _, post := fixture(t)

	_, events, err := e.CreateComment(post.ID, post.UserID, "me again")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCreateComment_MissingPost(t *testing.T) {
	e, s, _ := fixture(t)

	// The comment is appended before the post is resolved for notification
	// dispatch, so the record exists even though the call reports NotFound.
	comment, events, err := e.CreateComment(99, 2, "orphan")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, events)

	comments, err := s.CommentsForPost(99)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, comment.ID, comments[0].ID)
}
