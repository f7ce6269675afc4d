package models

import "time"

// Comment is a note left by a user on a task. It is never moved to another task.
type Comment struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"taskId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntityID implements Entity
func (c *Comment) EntityID() string { return c.ID }

// EntityKind implements Entity
func (c *Comment) EntityKind() Kind { return KindComment }
