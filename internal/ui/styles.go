package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))

	panelOKStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(0, 1)

	panelBadStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("110"))
	faintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	linkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true)

	badgeAvailable = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	badgeTaken     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)

	toastInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	toastSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	toastErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

func toastStyle(kind ToastKind) lipgloss.Style {
	switch kind {
	case ToastSuccess:
		return toastSuccessStyle
	case ToastError:
		return toastErrorStyle
	}
	return toastInfoStyle
}
