package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"socialconnect/backend/internal/feed"
	"socialconnect/backend/internal/interaction"
	"socialconnect/backend/internal/notification"
	"socialconnect/backend/internal/social"
	"socialconnect/backend/internal/store"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// Handler carries the core components the HTTP layer calls into. All state
// flows through the injected store; the handlers themselves are stateless.
type Handler struct {
	Store        store.Store
	Graph        *social.Graph
	Feed         *feed.Composer
	Interactions *interaction.Engine
	Notifier     *notification.Dispatcher
	JWTSecret    string
}

// New wires the core components over a single store.
func New(s store.Store, jwtSecret string) *Handler {
	graph := social.NewGraph(s)
	return &Handler{
		Store:        s,
		Graph:        graph,
		Feed:         feed.NewComposer(s, graph),
		Interactions: interaction.NewEngine(s),
		Notifier:     notification.NewDispatcher(s),
		JWTSecret:    jwtSecret,
	}
}

// actorID returns the authenticated user id set by the auth middleware.
func actorID(c *gin.Context) uint {
	id, _ := c.Get("userID")
	return id.(uint)
}

// pathID parses the named path parameter as an entity id. On failure it
// writes the 400 response and reports ok=false.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
