package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"socialconnect/backend/internal/models"
	"socialconnect/backend/internal/social"
	"socialconnect/backend/pkg/jwt"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Username       string `json:"username" binding:"required" example:"johndoe"`
	Password       string `json:"password" binding:"required,min=8" example:"password123"`
	Name           string `json:"name" binding:"required" example:"John Doe"`
	Bio            string `json:"bio" example:"Software developer and tech enthusiast"`
	ProfilePicture string `json:"profilePicture" example:"https://example.com/me.jpg"`
	CoverPicture   string `json:"coverPicture" example:"https://example.com/cover.jpg"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Username string `json:"username" binding:"required" example:"johndoe"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	ID             uint   `json:"id" example:"1"`
	Username       string `json:"username" example:"johndoe"`
	Name           string `json:"name" example:"John Doe"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// ProfileResponse is a full user profile including the friendship status
// relative to the viewer.
type ProfileResponse struct {
	ID             uint          `json:"id" example:"1"`
	Username       string        `json:"username" example:"johndoe"`
	Name           string        `json:"name" example:"John Doe"`
	Bio            string        `json:"bio,omitempty"`
	ProfilePicture string        `json:"profilePicture,omitempty"`
	CoverPicture   string        `json:"coverPicture,omitempty"`
	FriendStatus   social.Status `json:"friendStatus"`
}

// AuthResponse carries the token handed out on register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// endregion

func publicUser(u models.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Name:           u.Name,
		ProfilePicture: u.ProfilePicture,
	}
}

// region --- Auth Handlers ---

// Register godoc
// @Summary      Register a new user
// @Description  Creates a new user and returns an authentication token. Logout is client-side token disposal.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Store.UserByUsername(input.Username); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Username:       input.Username,
		PasswordHash:   string(hashedPassword),
		Name:           input.Name,
		Bio:            input.Bio,
		ProfilePicture: input.ProfilePicture,
		CoverPicture:   input.CoverPicture,
	}
	if err := h.Store.CreateUser(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := jwt.GenerateToken(user.ID, h.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: publicUser(user)})
}

// Login godoc
// @Summary      Log in a user
// @Description  Authenticates a user with username and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Store.UserByUsername(input.Username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := jwt.GenerateToken(user.ID, h.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: publicUser(user)})
}

// GetMe godoc
// @Summary      Get current user's info
// @Description  Retrieves the profile of the currently authenticated user.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /auth/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	user, err := h.Store.User(actorID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, publicUser(user))
}

// endregion

// region --- User Handlers ---

// GetUsers godoc
// @Summary      List users
// @Description  Returns the public projection of every registered user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   UserResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users [get]
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.Store.Users()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, publicUser(user))
	}
	c.JSON(http.StatusOK, responses)
}

// GetUserByID godoc
// @Summary      Get user by ID
// @Description  Retrieves a user's profile including the friendship status relative to the viewer.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  ProfileResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (h *Handler) GetUserByID(c *gin.Context) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.Store.User(targetID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	status, err := h.Graph.FriendshipStatus(actorID(c), targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve friendship status"})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		ID:             user.ID,
		Username:       user.Username,
		Name:           user.Name,
		Bio:            user.Bio,
		ProfilePicture: user.ProfilePicture,
		CoverPicture:   user.CoverPicture,
		FriendStatus:   status,
	})
}

// endregion
