package browser

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("245")
	colorError   = lipgloss.Color("160")
	colorSuccess = lipgloss.Color("35")
	colorBorder  = lipgloss.Color("240")

	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	objectTabStyle = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	selectedCardStyle = cardStyle.
				BorderForeground(colorAccent)

	sectionHeaderStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	hiddenFieldStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	cursorStyle        = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	swapMarkStyle      = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)

	fieldLabelStyle = lipgloss.NewStyle().Foreground(colorMuted)

	statusStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError)
	helpStyle      = lipgloss.NewStyle().Foreground(colorMuted)
)
