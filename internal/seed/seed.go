// Package seed loads the demo dataset used with the in-memory backend.
package seed

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"socialconnect/backend/internal/handler"
	"socialconnect/backend/internal/models"
)

type demoUser struct {
	username string
	name     string
	bio      string
	picture  string
}

var demoUsers = []demoUser{
	{"johndoe", "John Doe", "Software developer and tech enthusiast", "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=256"},
	{"sarahjohnson", "Sarah Johnson", "Photographer and art lover", "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=256"},
	{"michaelchen", "Michael Chen", "Tech professional and foodie", "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=256"},
	{"sophialee", "Sophia Lee", "Travel enthusiast and blogger", "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=256"},
	{"jameswilson", "James Wilson", "Sports fan and fitness enthusiast", "https://images.unsplash.com/photo-1539571696357-5a69c17a67c6?w=256"},
	{"alexrodriguez", "Alex Rodriguez", "Foodie and restaurant critic", "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=256"},
}

const demoCover = "https://images.unsplash.com/photo-1579546929518-9e396f3cc809?w=1200"

// Demo populates the store with a handful of users, friendships, posts,
// comments and likes. Interactions run through the normal engines and the
// dispatcher, so the seeded notifications come from the same exactly-once
// path the handlers use.
func Demo(h *handler.Handler) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := make([]models.User, 0, len(demoUsers))
	for _, d := range demoUsers {
		u := models.User{
			Username:       d.username,
			PasswordHash:   string(hash),
			Name:           d.name,
			Bio:            d.bio,
			ProfilePicture: d.picture,
			CoverPicture:   demoCover,
		}
		if err := h.Store.CreateUser(&u); err != nil {
			return fmt.Errorf("seed user %s: %w", d.username, err)
		}
		users = append(users, u)
	}
	john, sarah, michael, sophia, james, alex := users[0], users[1], users[2], users[3], users[4], users[5]

	// Established friendships are seeded as directly accepted records.
	for _, friend := range []models.User{sarah, michael, sophia, james} {
		if _, _, err := h.Graph.CreateFriendRequest(john.ID, friend.ID, models.StatusAccepted); err != nil {
			return err
		}
	}

	// One pending request toward John, notifying him.
	if err := dispatchRequest(h, alex.ID, john.ID); err != nil {
		return err
	}

	sarahPost := models.Post{
		UserID:   sarah.ID,
		Content:  "Just visited the most amazing art exhibition! The creativity on display was absolutely mind-blowing! #ArtLovers #WeekendVibes",
		ImageURL: "https://images.unsplash.com/photo-1531913764164-f85c52e6e654?w=1024",
	}
	michaelPost := models.Post{
		UserID:  michael.ID,
		Content: "Big news! Just accepted a position as Senior Developer at TechCorp. So excited to start this new journey! #NewJob #TechCareers",
	}
	alexPost := models.Post{
		UserID:  alex.ID,
		Content: "Has anyone tried the new restaurant downtown? Thinking of checking it out this weekend. Looking for recommendations!",
	}
	for _, p := range []*models.Post{&sarahPost, &michaelPost, &alexPost} {
		if err := h.Store.CreatePost(p); err != nil {
			return err
		}
	}

	comments := []struct {
		postID  uint
		userID  uint
		content string
	}{
		{sarahPost.ID, james.ID, "Looks amazing! Which exhibition was this? I love modern art."},
		{michaelPost.ID, sarah.ID, "Congratulations! So happy for you! They're lucky to have you on the team."},
		{alexPost.ID, sophia.ID, "I went there last week! The pasta is amazing, but it gets pretty crowded on weekends. Try to make a reservation!"},
	}
	for _, cm := range comments {
		_, events, err := h.Interactions.CreateComment(cm.postID, cm.userID, cm.content)
		if err != nil {
			return err
		}
		if err := h.Notifier.Dispatch(events); err != nil {
			return err
		}
	}

	likes := []struct{ postID, userID uint }{
		{sarahPost.ID, john.ID},
		{sarahPost.ID, michael.ID},
		{michaelPost.ID, sarah.ID},
		{michaelPost.ID, john.ID},
		{alexPost.ID, james.ID},
	}
	for _, lk := range likes {
		_, events, err := h.Interactions.CreateLike(lk.postID, lk.userID)
		if err != nil {
			return err
		}
		if err := h.Notifier.Dispatch(events); err != nil {
			return err
		}
	}
	return nil
}

func dispatchRequest(h *handler.Handler, senderID, receiverID uint) error {
	_, events, err := h.Graph.CreateFriendRequest(senderID, receiverID, models.StatusPending)
	if err != nil {
		return err
	}
	return h.Notifier.Dispatch(events)
}
