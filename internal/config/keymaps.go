package config

// KeyMappings defines all configurable key bindings of the board view
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task"`
	EditTask      string `yaml:"edit_task"`
	DeleteTask    string `yaml:"delete_task"`
	AssignTask    string `yaml:"assign_task"`
	CommentTask   string `yaml:"comment_task"`
	ViewTask      string `yaml:"view_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`

	// Drag and drop
	Grab string `yaml:"grab"`
	Drop string `yaml:"drop"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`
	Back       string `yaml:"back"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Other
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:       "a",
		EditTask:      "e",
		DeleteTask:    "d",
		AssignTask:    "s",
		CommentTask:   "c",
		ViewTask:      "v",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",

		Grab: " ",
		Drop: "enter",

		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",
		Back:       "esc",

		SaveForm: "ctrl+s",

		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(value *string, fallback string) {
		if *value == "" {
			*value = fallback
		}
	}

	fill(&k.AddTask, defaults.AddTask)
	fill(&k.EditTask, defaults.EditTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.AssignTask, defaults.AssignTask)
	fill(&k.CommentTask, defaults.CommentTask)
	fill(&k.ViewTask, defaults.ViewTask)
	fill(&k.MoveTaskLeft, defaults.MoveTaskLeft)
	fill(&k.MoveTaskRight, defaults.MoveTaskRight)
	fill(&k.Grab, defaults.Grab)
	fill(&k.Drop, defaults.Drop)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.Back, defaults.Back)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
