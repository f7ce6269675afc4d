package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Todo:       "#FFFFFF",
		InProgress: "#D0D0D0",
		Done:       "#A8A8A8",

		PriorityLow:    "#A8A8A8",
		PriorityMedium: "#D0D0D0",
		PriorityHigh:   "#FFFFFF",

		ColumnBorder:   "#585858",
		SelectedBorder: "#FFFFFF",
		DragBorder:     "#D0D0D0",

		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",
	}
}
