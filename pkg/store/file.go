package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"todo-app/pkg/models"

	"github.com/google/uuid"
)

// FileStore provides JSON file-based storage for users and todos. It is
// meant for development and tests; production deployments use MongoStore.
type FileStore struct {
	dataDir string
	mu      sync.RWMutex
	users   map[string]userRecord
	todos   []models.Todo
}

// userRecord is the persisted shape of a user. models.User hides the
// password hash from JSON, so the store keeps its own serializable form.
type userRecord struct {
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFileStore creates a new FileStore instance rooted at dataDir
func NewFileStore(dataDir string) (*FileStore, error) {
	// Ensure data directory exists
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	s := &FileStore{
		dataDir: dataDir,
		users:   make(map[string]userRecord),
		todos:   make([]models.Todo, 0),
	}

	// Load existing data
	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FileStore) usersFile() string {
	return filepath.Join(s.dataDir, "users.json")
}

func (s *FileStore) todosFile() string {
	return filepath.Join(s.dataDir, "todos.json")
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := readJSON(s.usersFile(), &s.users); err != nil {
		return err
	}
	return readJSON(s.todosFile(), &s.todos)
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No data yet
		}
		return err
	}
	return json.Unmarshal(data, v)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CreateUser persists a new user, rejecting duplicate usernames
func (s *FileStore) CreateUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Username]; ok {
		return ErrUserExists
	}
	s.users[user.Username] = userRecord{
		Username:  user.Username,
		Password:  user.Password,
		CreatedAt: user.CreatedAt,
	}
	return writeJSON(s.usersFile(), s.users)
}

// GetUser returns a user by username
func (s *FileStore) GetUser(ctx context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[username]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return models.User{
		Username:  rec.Username,
		Password:  rec.Password,
		CreatedAt: rec.CreatedAt,
	}, nil
}

// CreateTodo persists a new todo and returns it with its assigned id
func (s *FileStore) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	s.todos = append(s.todos, todo)
	if err := writeJSON(s.todosFile(), s.todos); err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

// ListTodos returns all todos owned by the given user
func (s *FileStore) ListTodos(ctx context.Context, userID string) ([]models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Todo, 0)
	for _, t := range s.todos {
		if t.UserID == userID {
			result = append(result, t)
		}
	}
	return result, nil
}

// GetTodo returns a todo by id
func (s *FileStore) GetTodo(ctx context.Context, id string) (models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.todos {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Todo{}, ErrNotFound
}

// UpdateTodo applies a partial update and returns the post-update todo
func (s *FileStore) UpdateTodo(ctx context.Context, id string, update models.UpdateTodoRequest) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.todos {
		if t.ID != id {
			continue
		}
		if update.Title != nil {
			t.Title = *update.Title
		}
		if update.Date != nil {
			t.Date = *update.Date
		}
		if update.Description != nil {
			t.Description = *update.Description
		}
		if update.Checked != nil {
			t.Checked = *update.Checked
		}
		s.todos[i] = t
		if err := writeJSON(s.todosFile(), s.todos); err != nil {
			return models.Todo{}, err
		}
		return t, nil
	}
	return models.Todo{}, ErrNotFound
}

// DeleteTodo removes a todo by id
func (s *FileStore) DeleteTodo(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.todos {
		if t.ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return writeJSON(s.todosFile(), s.todos)
		}
	}
	return ErrNotFound
}

// Close is a no-op for the file store
func (s *FileStore) Close(ctx context.Context) error {
	return nil
}
