package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header    HeaderTheme
	Tab       TabTheme
	Timeline  TimelineTheme
	Footer    lipgloss.Style
	FooterDim lipgloss.Style
}

// HeaderTheme styles the title bar and the countdown readout.
type HeaderTheme struct {
	Title     lipgloss.Style
	Date      lipgloss.Style
	Countdown lipgloss.Style
	Arrived   lipgloss.Style
}

// TabTheme styles the tab strip.
type TabTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// TimelineTheme styles the schedule rows.
type TimelineTheme struct {
	Selected  lipgloss.Style
	Normal    lipgloss.Style
	Completed lipgloss.Style
	Critical  lipgloss.Style
	Meta      lipgloss.Style
	Transfer  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header: HeaderTheme{
			Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
			Date:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Countdown: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
			Arrived:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		},
		Tab: TabTheme{
			Active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Underline(true),
			Inactive: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Timeline: TimelineTheme{
			Selected:  lipgloss.NewStyle().Bold(true),
			Normal:    lipgloss.NewStyle(),
			Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Strikethrough(true),
			Critical:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			Meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Transfer:  lipgloss.NewStyle().Foreground(lipgloss.Color("67")),
		},
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FooterDim: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
