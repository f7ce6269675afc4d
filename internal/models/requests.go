package models

// Request payloads sent to the backend. None of them carry server-assigned
// fields (id, timestamps, owning user); the server is the source of truth for those.

// BoardInput is the payload for creating a board
type BoardInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []string `json:"members,omitempty"`
}

// BoardUpdate is a partial board update; nil fields are left unchanged
type BoardUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Members     *[]string `json:"members,omitempty"`
}

// TaskInput is the payload for creating a task
type TaskInput struct {
	BoardID     string   `json:"boardId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	DueDate     string   `json:"dueDate,omitempty"`
	AssignedTo  string   `json:"assignedTo,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

// TaskUpdate is a partial task update; nil fields are left unchanged.
// An empty DueDate pointer value clears the due date.
type TaskUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	DueDate     *string   `json:"dueDate,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Attachments *[]string `json:"attachments,omitempty"`
}

// AssignRequest is the body of POST /api/tasks/:id/assign. An empty AssignedTo unassigns.
type AssignRequest struct {
	AssignedTo string `json:"assignedTo"`
}

// CommentInput is the payload for creating a comment
type CommentInput struct {
	TaskID  string `json:"taskId"`
	Content string `json:"content"`
}

// CommentUpdate edits a comment's text; the parent task cannot change
type CommentUpdate struct {
	Content string `json:"content"`
}

// ActivityInput is the payload for appending to the activity log
type ActivityInput struct {
	BoardID string `json:"boardId"`
	TaskID  string `json:"taskId,omitempty"`
	Action  Action `json:"action"`
	Details string `json:"details"`
}

// RegisterRequest creates a new account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest exchanges credentials for a token
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ChangePasswordRequest is the body of POST /api/auth/change-password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ProfileUpdate is the body of PUT /api/users/me
type ProfileUpdate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// MessageResponse is the generic {"message": "..."} body used for errors and acknowledgements
type MessageResponse struct {
	Message string `json:"message"`
}

// Ptr returns a pointer to v, for building partial updates
func Ptr[T any](v T) *T {
	return &v
}
