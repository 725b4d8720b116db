// Package social resolves friendship state from the friend request
// collection. A single request record per unordered user pair carries the
// whole relationship: pending in one direction, accepted as the friendship
// itself, rejected as a dead end.
package social

import (
	"errors"
	"fmt"
	"sort"

	"socialconnect/backend/internal/models"
	"socialconnect/backend/internal/notification"
	"socialconnect/backend/internal/store"
)

// Status is the friendship state between two users as seen from the first
// user's side.
type Status string

const (
	StatusNone            Status = "none"
	StatusFriends         Status = "friends"
	StatusPendingSent     Status = "pending_sent"
	StatusPendingReceived Status = "pending_received"
)

// RequestView is a friend request joined with both users.
type RequestView struct {
	models.FriendRequest
	Sender   models.User `json:"sender"`
	Receiver models.User `json:"receiver"`
}

// Graph answers friendship queries and mutates friend requests.
type Graph struct {
	store store.Store
}

func NewGraph(s store.Store) *Graph {
	return &Graph{store: s}
}

// FriendshipStatus reports the relationship between userA and userB from
// userA's point of view. The result is symmetric for "friends" and "none";
// a pending request resolves to sent or received depending on direction.
func (g *Graph) FriendshipStatus(userA, userB uint) (Status, error) {
	r, err := g.store.RequestBetween(userA, userB)
	if errors.Is(err, store.ErrNotFound) {
		return StatusNone, nil
	}
	if err != nil {
		return StatusNone, err
	}

	switch r.Status {
	case models.StatusAccepted:
		return StatusFriends, nil
	case models.StatusPending:
		if r.SenderID == userA {
			return StatusPendingSent, nil
		}
		return StatusPendingReceived, nil
	}
	return StatusNone, nil
}

// Friends returns the users on the other end of every accepted request
// involving userID, sorted by id for deterministic output.
func (g *Graph) Friends(userID uint) ([]models.User, error) {
	accepted, err := g.store.AcceptedRequestsFor(userID)
	if err != nil {
		return nil, err
	}

	friends := make([]models.User, 0, len(accepted))
	for _, r := range accepted {
		friendID := r.SenderID
		if friendID == userID {
			friendID = r.ReceiverID
		}
		friend, err := g.store.User(friendID)
		if err != nil {
			return nil, err
		}
		friends = append(friends, friend)
	}
	sort.Slice(friends, func(i, j int) bool { return friends[i].ID < friends[j].ID })
	return friends, nil
}

// CreateFriendRequest records a request from sender to receiver. Duplicate
// attempts are soft conflicts: an existing request between the pair is
// returned unchanged, except when the reverse request is still pending, in
// which case the attempt counts as mutual consent and the existing record
// is accepted instead. A fresh pending request yields a friend_request
// event for the receiver. Seeding may pass StatusAccepted directly to
// record a historical friendship; that path emits nothing.
func (g *Graph) CreateFriendRequest(senderID, receiverID uint, status models.RequestStatus) (models.FriendRequest, []notification.Event, error) {
	existing, err := g.store.RequestBetween(senderID, receiverID)
	if err == nil {
		if existing.SenderID == receiverID && existing.Status == models.StatusPending {
			return g.UpdateFriendRequest(existing.ID, models.StatusAccepted)
		}
		return existing, nil, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.FriendRequest{}, nil, err
	}

	r := models.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     status,
	}
	if err := g.store.CreateFriendRequest(&r); err != nil {
		return models.FriendRequest{}, nil, err
	}

	var events []notification.Event
	if status == models.StatusPending {
		if sender, err := g.store.User(senderID); err == nil {
			events = append(events, notification.Event{
				UserID:     receiverID,
				SourceID:   r.ID,
				SourceType: models.SourceFriendRequest,
				Content:    fmt.Sprintf("%s sent you a friend request", sender.Name),
			})
		}
	}
	return r, events, nil
}

// UpdateFriendRequest replaces the status of the request with the given id.
// Accepting yields a friend_request_accepted event for the original sender.
func (g *Graph) UpdateFriendRequest(id uint, status models.RequestStatus) (models.FriendRequest, []notification.Event, error) {
	updated, err := g.store.SetFriendRequestStatus(id, status)
	if err != nil {
		return models.FriendRequest{}, nil, err
	}

	var events []notification.Event
	if status == models.StatusAccepted {
		if receiver, err := g.store.User(updated.ReceiverID); err == nil {
			events = append(events, notification.Event{
				UserID:     updated.SenderID,
				SourceID:   updated.ID,
				SourceType: models.SourceRequestAccepted,
				Content:    fmt.Sprintf("%s accepted your friend request", receiver.Name),
			})
		}
	}
	return updated, events, nil
}

// PendingRequests returns the pending requests addressed to userID, each
// joined with its sender and receiver.
func (g *Graph) PendingRequests(userID uint) ([]RequestView, error) {
	pending, err := g.store.PendingRequestsTo(userID)
	if err != nil {
		return nil, err
	}

	views := make([]RequestView, 0, len(pending))
	for _, r := range pending {
		sender, err := g.store.User(r.SenderID)
		if err != nil {
			return nil, err
		}
		receiver, err := g.store.User(r.ReceiverID)
		if err != nil {
			return nil, err
		}
		views = append(views, RequestView{FriendRequest: r, Sender: sender, Receiver: receiver})
	}
	return views, nil
}
