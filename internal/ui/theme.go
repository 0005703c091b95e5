package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the grid.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Accent  string
	Success string
	Danger  string

	SelectionBg   string
	SelectionText string
	TodayBg       string
}

// DefaultTheme is a dark palette in the Dracula family.
func DefaultTheme() Theme {
	return Theme{
		Name:          "Dracula",
		Text:          "#f8f8f2",
		Muted:         "#6272a4",
		Accent:        "#bd93f9",
		Success:       "#50fa7b",
		Danger:        "#ff5555",
		SelectionBg:   "#44475a",
		SelectionText: "#f8f8f2",
		TodayBg:       "#3b3d57",
	}
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		TodayHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Background(lipgloss.Color(t.TodayBg)).
			Bold(true),

		ItemLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Cell: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		ZeroCell: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		SelectedCell: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectionText)).
			Background(lipgloss.Color(t.SelectionBg)).
			Bold(true),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
	}
}

// Styles holds the rendered lipgloss styles for the active theme.
type Styles struct {
	Title        lipgloss.Style
	Text         lipgloss.Style
	MutedText    lipgloss.Style
	ColumnHeader lipgloss.Style
	TodayHeader  lipgloss.Style
	ItemLabel    lipgloss.Style
	Cell         lipgloss.Style
	ZeroCell     lipgloss.Style
	SelectedCell lipgloss.Style
	SuccessText  lipgloss.Style
	DangerText   lipgloss.Style
	StatusBar    lipgloss.Style
}
