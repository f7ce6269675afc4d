package models

import (
	"strings"
	"time"
)

// User is an account known to the backend
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	Avatar    string    `json:"avatar,omitempty"`
	Role      Role      `json:"role,omitempty"`
}

// Initials returns the first two letters of the username, upper-cased
func (u *User) Initials() string {
	runes := []rune(u.Username)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}
