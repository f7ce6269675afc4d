package colors

// Default returns the default color scheme (purple accent)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		// Columns
		Todo:       "#5F87D7",
		InProgress: "#FFD700",
		Done:       "#5FD75F",

		// Priorities
		PriorityLow:    "#5FD75F",
		PriorityMedium: "#FFAF00",
		PriorityHigh:   "#FF5F5F",

		// UI elements
		ColumnBorder:   "#585858",
		SelectedBorder: "#D75FD7",
		DragBorder:     "#FFD700",

		// Text
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}
