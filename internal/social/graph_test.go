package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialconnect/backend/internal/models"
	"socialconnect/backend/internal/store"
)

func newGraph(t *testing.T, usernames ...string) (*Graph, *store.MemStore) {
	t.Helper()
	s := store.NewMemStore()
	for _, username := range usernames {
		u := models.User{Username: username, Name: username}
		require.NoError(t, s.CreateUser(&u))
	}
	return NewGraph(s), s
}

func TestFriendshipStatus_NoneWithoutRequest(t *testing.T) {
	g, _ := newGraph(t, "a", "b")

	status, err := g.FriendshipStatus(1, 2)
	require.NoError(t, err)
	assert.Equal(t, StatusNone, status)
}

func TestFriendshipStatus_PendingDirections(t *testing.T) {
	g, _ := newGraph(t, "a", "b")

	r, events, err := g.CreateFriendRequest(1, 2, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, r.Status)
	assert.Equal(t, uint(1), r.SenderID)
	assert.Equal(t, uint(2), r.ReceiverID)

	require.Len(t, events, 1)
	assert.Equal(t, uint(2), events[0].UserID)
	assert.Equal(t, models.SourceFriendRequest, events[0].SourceType)
	assert.Equal(t, "a sent you a friend request", events[0].Content)

	sent, err := g.FriendshipStatus(1, 2)
	require.NoError(t, err)
	assert.Equal(t, StatusPendingSent, sent)

	received, err := g.FriendshipStatus(2, 1)
	require.NoError(t, err)
	assert.Equal(t, StatusPendingReceived, received)
}

func TestFriendshipStatus_Symmetric(t *testing.T) {
	g, _ := newGraph(t, "a", "b")

	r, _, err := g.CreateFriendRequest(1, 2, models.StatusPending)
	require.NoError(t, err)
	_, _, err = g.UpdateFriendRequest(r.ID, models.StatusAccepted)
	require.NoError(t, err)

	ab, err := g.FriendshipStatus(1, 2)
	require.NoError(t, err)
	ba, err := g.FriendshipStatus(2, 1)
	require.NoError(t, err)
	assert.Equal(t, StatusFriends, ab)
	assert.Equal(t, StatusFriends, ba)
}

func TestFriendshipStatus_RejectedReadsAsNone(t *testing.T) {
	g, _ := newGraph(t, "a", "b")

	r, _, err := g.CreateFriendRequest(1, 2, models.StatusPending)
	require.NoError(t, err)
	_, events, err := g.UpdateFriendRequest(r.ID, models.StatusRejected)
	require.NoError(t, err)
	assert.Empty(t, events)

	status, err := g.FriendshipStatus(1, 2)
	require.NoError(t, err)
	assert.Equal(t, StatusNone, status)
}

func TestCreateFriendRequest_IdempotentRepeat(t *testing.T) {
	g, s := newGraph(t, "a", "b")

	first, _, err := g.CreateFriendRequest(1, 2, models.StatusPending)
	require.NoError(t, err)

	again, events, err := g.CreateFriendRequest(1, 2, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, models.StatusPending, again.Status)
	assert.Empty(t, events)

	// Still a single record between the pair.
	r, err := s.RequestBetween(1, 2)
	require.NoError(t, err)
	assert.Equal(t, first.ID, r.ID)
}

func TestCreateFriendRequest_MutualAutoAccept(t *testing.T) {
	g, s := newGraph(t, "a", "b")

	first, _, err := g.CreateFriendRequest(1, 2, models.StatusPending)
	require.NoError(t, err)

	// The reverse request counts as mutual consent: the original record is
	// accepted, no second record appears.
	accepted, events, err := g.CreateFriendRequest(2, 1, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, first.ID, accepted.ID)
	assert.Equal(t, models.StatusAccepted, accepted.Status)

	require.Len(t, events, 1)
	assert.Equal(t, uint(1), events[0].UserID)
	assert.Equal(t, models.SourceRequestAccepted, events[0].SourceType)

	r, err := s.RequestBetween(1, 2)
	require.NoError(t, err)
	assert.Equal(t, first.ID, r.ID)

	aFriends, err := g.Friends(1)
	require.NoError(t, err)
	bFriends, err := g.Friends(2)
	require.NoError(t, err)
	require.Len(t, aFriends, 1)
	require.Len(t, bFriends, 1)
	assert.Equal(t, uint(2), aFriends[0].ID)
	assert.Equal(t, uint(1), bFriends[0].ID)
}

func TestCreateFriendRequest_DirectAcceptedEmitsNothing(t *testing.T) {
	g, _ := newGraph(t, "a", "b")

	r, events, err := g.CreateFriendRequest(1, 2, models.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, r.Status)
	assert.Empty(t, events)

	status, err := g.FriendshipStatus(1, 2)
	require.NoError(t, err)
	assert.Equal(t, StatusFriends, status)
}

func TestUpdateFriendRequest_NotFound(t *testing.T) {
	g, _ := newGraph(t, "a")

	_, _, err := g.UpdateFriendRequest(42, models.StatusAccepted)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateFriendRequest_AcceptScenario(t *testing.T) {
	g, _ := newGraph(t, "a", "b")

	r, _, err := g.CreateFriendRequest(1, 2, models.StatusPending)
	require.NoError(t, err)

	updated, events, err := g.UpdateFriendRequest(r.ID, models.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)

	require.Len(t, events, 1)
	assert.Equal(t, uint(1), events[0].UserID)
	assert.Equal(t, models.SourceRequestAccepted, events[0].SourceType)
	assert.Equal(t, "b accepted your friend request", events[0].Content)

	aFriends, err := g.Friends(1)
	require.NoError(t, err)
	require.Len(t, aFriends, 1)
	assert.Equal(t, "b", aFriends[0].Username)
}

func TestFriends_SortedByID(t *testing.T) {
	g, _ := newGraph(t, "a", "b", "c", "d")

	// Friendships arrive in an order that differs from user id order.
	_, _, err := g.CreateFriendRequest(4, 1, models.StatusAccepted)
	require.NoError(t, err)
	_, _, err = g.CreateFriendRequest(1, 2, models.StatusAccepted)
	require.NoError(t, err)
	_, _, err = g.CreateFriendRequest(3, 1, models.StatusAccepted)
	require.NoError(t, err)

	friends, err := g.Friends(1)
	require.NoError(t, err)
	require.Len(t, friends, 3)
	assert.Equal(t, uint(2), friends[0].ID)
	assert.Equal(t, uint(3), friends[1].ID)
	assert.Equal(t, uint(4), friends[2].ID)
}

func TestPendingRequests_JoinsUsers(t *testing.T) {
	g, _ := newGraph(t, "a", "b", "c")

	_, _, err := g.CreateFriendRequest(2, 1, models.StatusPending)
	require.NoError(t, err)
	_, _, err = g.CreateFriendRequest(3, 1, models.StatusPending)
	require.NoError(t, err)
	_, _, err = g.CreateFriendRequest(2, 1, models.StatusPending) // idempotent repeat, ignored
	require.NoError(t, err)

	views, err := g.PendingRequests(1)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "b", views[0].Sender.Username)
	assert.Equal(t, "a", views[0].Receiver.Username)
	assert.Equal(t, "c", views[1].Sender.Username)
}
