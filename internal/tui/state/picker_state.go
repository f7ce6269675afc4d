package state

import "github.com/thenoetrevino/taskdeck/internal/models"

// PickerState is the assignee list of the assign dialog. Row 0 is
// "Unassigned"; row i > 0 is users[i-1].
type PickerState struct {
	users  []models.User
	cursor int
	loaded bool
}

// NewPickerState creates an empty picker waiting for its users.
func NewPickerState() *PickerState {
	return &PickerState{}
}

// SetUsers fills the picker and puts the cursor on the current assignee.
func (p *PickerState) SetUsers(users []models.User, current string) {
	p.users = users
	p.loaded = true
	p.cursor = 0
	for i, u := range users {
		if u.ID == current {
			p.cursor = i + 1
			break
		}
	}
}

// Loaded reports whether the users have arrived.
func (p *PickerState) Loaded() bool {
	return p.loaded
}

// Users returns the users listed after "Unassigned".
func (p *PickerState) Users() []models.User {
	return p.users
}

// Cursor returns the highlighted row.
func (p *PickerState) Cursor() int {
	return p.cursor
}

// Up moves the cursor up one row.
func (p *PickerState) Up() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// Down moves the cursor down one row.
func (p *PickerState) Down() {
	if p.cursor < len(p.users) {
		p.cursor++
	}
}

// Selected returns the highlighted user, or nil for "Unassigned".
func (p *PickerState) Selected() *models.User {
	if p.cursor == 0 || p.cursor > len(p.users) {
		return nil
	}
	u := p.users[p.cursor-1]
	return &u
}
