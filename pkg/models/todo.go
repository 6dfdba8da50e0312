package models

// Todo represents a single todo item owned by one user. UserID is set from
// the verified caller identity and never changes after creation.
type Todo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Checked     bool   `json:"checked"`
	UserID      string `json:"userId"`
}

// CreateTodoRequest represents the add-list request body
type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
}

// UpdateTodoRequest represents the edit-list request body. Nil fields are
// left untouched.
type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
	Checked     *bool   `json:"checked"`
}
