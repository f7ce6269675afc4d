// Package colors holds the color presets used by the terminal views.
package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Column header colors, one per task status
	Todo       string `yaml:"todo"`
	InProgress string `yaml:"in_progress"`
	Done       string `yaml:"done"`

	// Priority badge colors
	PriorityLow    string `yaml:"priority_low"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityHigh   string `yaml:"priority_high"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	SelectedBorder string `yaml:"selected_border"`
	DragBorder     string `yaml:"drag_border"`

	// Text colors
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// fields lists every color slot so defaults and merges stay in sync
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent,
		&c.Todo, &c.InProgress, &c.Done,
		&c.PriorityLow, &c.PriorityMedium, &c.PriorityHigh,
		&c.ColumnBorder, &c.SelectedBorder, &c.DragBorder,
		&c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
	}
}

// ApplyDefaults fills in missing color values from the selected preset.
// An empty preset becomes "default".
func (c *ColorScheme) ApplyDefaults() {
	if c.Preset == "" {
		c.Preset = "default"
	}
	preset := GetPreset(c.Preset).fields()
	for i, field := range c.fields() {
		if *field == "" {
			*field = *preset[i]
		}
	}
}

// MergeFrom copies every non-empty color of other over c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	theirs := other.fields()
	for i, field := range c.fields() {
		if *theirs[i] != "" {
			*field = *theirs[i]
		}
	}
}
