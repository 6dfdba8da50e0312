package store

import (
	"context"
	"errors"

	"todo-app/pkg/models"
)

var (
	// ErrNotFound is returned when no record matches the given key.
	ErrNotFound = errors.New("not found")
	// ErrUserExists is returned when registering an already-taken username.
	ErrUserExists = errors.New("username already taken")
	// ErrUnavailable is returned when the backend times out.
	ErrUnavailable = errors.New("store unavailable")
)

// Store provides persistence for user accounts and todo items. Every
// operation touches a single document; callers needing an ownership check
// read the item first and compare owners themselves.
type Store interface {
	CreateUser(ctx context.Context, user models.User) error
	GetUser(ctx context.Context, username string) (models.User, error)

	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	ListTodos(ctx context.Context, userID string) ([]models.Todo, error)
	GetTodo(ctx context.Context, id string) (models.Todo, error)
	UpdateTodo(ctx context.Context, id string, update models.UpdateTodoRequest) (models.Todo, error)
	DeleteTodo(ctx context.Context, id string) error

	Close(ctx context.Context) error
}
