package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"todo-app/pkg/auth"
	"todo-app/pkg/config"
	"todo-app/pkg/models"
	"todo-app/pkg/store"

	"github.com/gin-gonic/gin"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	config *config.Config
	store  store.Store
	auth   *auth.Auth

	// dummyHash is compared against on login attempts for unknown
	// usernames so those requests cost a bcrypt verification too.
	dummyHash string
}

// New creates a new Handlers instance
func New(cfg *config.Config, store store.Store, auth *auth.Auth) *Handlers {
	dummyHash, _ := auth.HashPassword("-")
	return &Handlers{
		config:    cfg,
		store:     store,
		auth:      auth,
		dummyHash: dummyHash,
	}
}

// storeTimeout bounds every store operation so a stalled backend cannot
// hold a request open indefinitely.
func (h *Handlers) storeTimeout(c *gin.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(h.config.Store.TimeoutSeconds) * time.Second
	return context.WithTimeout(c.Request.Context(), timeout)
}

// storeError translates a store failure into a status code
func storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// ============== Auth Handlers ==============

// Register creates a new user account and returns a token for it
func (h *Handlers) Register(c *gin.Context) {
	var req models.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	hash, err := h.auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	user := models.User{
		Username:  req.Username,
		Password:  hash,
		CreatedAt: time.Now(),
	}

	ctx, cancel := h.storeTimeout(c)
	defer cancel()

	if err := h.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username already taken"})
			return
		}
		storeError(c, err)
		return
	}

	token, err := h.auth.GenerateToken(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}

// Login verifies credentials against the stored hash and returns a token
func (h *Handlers) Login(c *gin.Context) {
	var req models.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx, cancel := h.storeTimeout(c)
	defer cancel()

	user, err := h.store.GetUser(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Same response and roughly the same bcrypt cost as a bad
			// password, so usernames can't be probed by body or timing
			h.auth.CheckPassword(h.dummyHash, req.Password)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		storeError(c, err)
		return
	}

	if err := h.auth.CheckPassword(user.Password, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.auth.GenerateToken(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}

// ============== Todo Handlers ==============

// AddList creates a todo owned by the caller
func (h *Handlers) AddList(c *gin.Context) {
	var req models.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	todo := models.Todo{
		Title:       req.Title,
		Date:        req.Date,
		Description: req.Description,
		Checked:     false,
		UserID:      auth.Identity(c),
	}

	ctx, cancel := h.storeTimeout(c)
	defer cancel()

	created, err := h.store.CreateTodo(ctx, todo)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, created)
}

// GetLists returns all todos owned by the caller
func (h *Handlers) GetLists(c *gin.Context) {
	ctx, cancel := h.storeTimeout(c)
	defer cancel()

	todos, err := h.store.ListTodos(ctx, auth.Identity(c))
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, todos)
}

// ownedTodo loads a todo and checks it belongs to the caller. On failure
// the response has already been written.
func (h *Handlers) ownedTodo(ctx context.Context, c *gin.Context, id string) (models.Todo, bool) {
	todo, err := h.store.GetTodo(ctx, id)
	if err != nil {
		storeError(c, err)
		return models.Todo{}, false
	}
	if todo.UserID != auth.Identity(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return models.Todo{}, false
	}
	return todo, true
}

// EditList applies a partial update to a todo owned by the caller
func (h *Handlers) EditList(c *gin.Context) {
	var req models.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx, cancel := h.storeTimeout(c)
	defer cancel()

	id := c.Param("id")
	if _, ok := h.ownedTodo(ctx, c, id); !ok {
		return
	}

	updated, err := h.store.UpdateTodo(ctx, id, req)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// RemoveList deletes a todo owned by the caller
func (h *Handlers) RemoveList(c *gin.Context) {
	ctx, cancel := h.storeTimeout(c)
	defer cancel()

	id := c.Param("id")
	if _, ok := h.ownedTodo(ctx, c, id); !ok {
		return
	}

	if err := h.store.DeleteTodo(ctx, id); err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "list removed successfully"})
}
