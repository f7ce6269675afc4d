package models

import "time"

// Board is a named collection of tasks owned by one user
type Board struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UserID      string    `json:"userId"`
	Members     []string  `json:"members,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EntityID implements Entity
func (b *Board) EntityID() string { return b.ID }

// EntityKind implements Entity
func (b *Board) EntityKind() Kind { return KindBoard }

// HasMember reports whether userID owns the board or is listed as a member
func (b *Board) HasMember(userID string) bool {
	if b.UserID == userID {
		return true
	}
	for _, m := range b.Members {
		if m == userID {
			return true
		}
	}
	return false
}
