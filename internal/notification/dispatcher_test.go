package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialconnect/backend/internal/models"
	"socialconnect/backend/internal/store"
)

func TestDispatch_CreatesUnreadRecords(t *testing.T) {
	s := store.NewMemStore()
	d := NewDispatcher(s)

	events := []Event{
		{UserID: 1, SourceID: 10, SourceType: models.SourceLike, Content: "Viewer liked your post"},
		{UserID: 1, SourceID: 11, SourceType: models.SourceComment, Content: "Viewer commented on your post"},
		{UserID: 2, SourceID: 12, SourceType: models.SourceFriendRequest, Content: "Viewer sent you a friend request"},
	}
	require.NoError(t, d.Dispatch(events))

	mine, err := d.ForUser(1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, n := range mine {
		assert.False(t, n.IsRead)
	}

	theirs, err := d.ForUser(2)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, models.SourceFriendRequest, theirs[0].SourceType)
}

func TestDispatch_EmptyIsNoop(t *testing.T) {
	s := store.NewMemStore()
	d := NewDispatcher(s)

	require.NoError(t, d.Dispatch(nil))

	notifications, err := d.ForUser(1)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestForUser_NewestFirst(t *testing.T) {
	s := store.NewMemStore()
	d := NewDispatcher(s)

	require.NoError(t, d.Dispatch([]Event{{UserID: 1, Content: "first"}}))
	require.NoError(t, d.Dispatch([]Event{{UserID: 1, Content: "second"}}))

	notifications, err := d.ForUser(1)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "second", notifications[0].Content)
	assert.Equal(t, "first", notifications[1].Content)
}

func TestMarkRead(t *testing.T) {
	s := store.NewMemStore()
	d := NewDispatcher(s)

	require.NoError(t, d.Dispatch([]Event{{UserID: 1, Content: "hello"}}))
	notifications, err := d.ForUser(1)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	read, err := d.MarkRead(notifications[0].ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	// Marking again keeps it read; there is no un-read transition.
	again, err := d.MarkRead(notifications[0].ID)
	require.NoError(t, err)
	assert.True(t, again.IsRead)

	_, err = d.MarkRead(99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
