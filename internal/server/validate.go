package server

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

const (
	maxBoardName        = 100
	maxBoardDescription = 500
	maxTaskTitle        = 255
	maxComment          = 1000
	maxUsername         = 50
	minPassword         = 6
)

func tooLong(s string, limit int) bool {
	return utf8.RuneCountInString(s) > limit
}

func validateBoardName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return badRequest("Board name is required")
	case tooLong(name, maxBoardName):
		return badRequest("Board name is too long")
	}
	return nil
}

func validateBoardDescription(description string) error {
	if tooLong(description, maxBoardDescription) {
		return badRequest("Board description is too long")
	}
	return nil
}

func validateTaskTitle(title string) error {
	switch {
	case strings.TrimSpace(title) == "":
		return badRequest("Task title is required")
	case tooLong(title, maxTaskTitle):
		return badRequest("Task title is too long")
	}
	return nil
}

func validateStatus(status models.Status) error {
	if !status.Valid() {
		return badRequest("Invalid status")
	}
	return nil
}

func validatePriority(priority models.Priority) error {
	if !priority.Valid() {
		return badRequest("Invalid priority")
	}
	return nil
}

func validateDueDate(due string) error {
	if due == "" {
		return nil
	}
	if _, err := time.Parse(models.DueDateLayout, due); err != nil {
		return badRequest("Due date must be YYYY-MM-DD")
	}
	return nil
}

func validateComment(content string) error {
	switch {
	case strings.TrimSpace(content) == "":
		return badRequest("Comment content is required")
	case tooLong(content, maxComment):
		return badRequest("Comment is too long")
	}
	return nil
}

func validateProfile(username, email string) error {
	switch {
	case strings.TrimSpace(username) == "":
		return badRequest("Username is required")
	case tooLong(username, maxUsername):
		return badRequest("Username is too long")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return badRequest("Invalid email address")
	}
	return nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPassword {
		return badRequest("Password must be at least 6 characters")
	}
	return nil
}
