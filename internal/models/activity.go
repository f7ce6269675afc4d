package models

import "time"

// Activity is one entry of a board's append-only audit trail
type Activity struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	BoardID   string    `json:"boardId"`
	TaskID    string    `json:"taskId,omitempty"`
	Action    Action    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"createdAt"`
}
