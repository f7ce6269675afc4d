package models

// Kind names the entity types a dialog can target
type Kind string

const (
	KindBoard   Kind = "board"
	KindTask    Kind = "task"
	KindComment Kind = "comment"
)

// Title returns the capitalized kind name
func (k Kind) Title() string {
	switch k {
	case KindBoard:
		return "Board"
	case KindTask:
		return "Task"
	case KindComment:
		return "Comment"
	}
	return string(k)
}

// Entity is implemented by the entities a dialog can act on
type Entity interface {
	EntityID() string
	EntityKind() Kind
}

var (
	_ Entity = (*Board)(nil)
	_ Entity = (*Task)(nil)
	_ Entity = (*Comment)(nil)
)
