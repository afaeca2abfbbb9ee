package app

import "github.com/charmbracelet/lipgloss"

var (
	textPrimaryColor = lipgloss.AdaptiveColor{Light: "#1F1F1F", Dark: "#CCCCCC"}
	textMutedColor   = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"}
	borderColor      = lipgloss.AdaptiveColor{Light: "#B8B8B8", Dark: "#5A4A78"}
	arcaneColor      = lipgloss.AdaptiveColor{Light: "#6B2FBF", Dark: "#B48EF0"}
	successColor     = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	warningColor     = lipgloss.AdaptiveColor{Light: "#C48A00", Dark: "#FECA57"}
	errorColor       = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#FF8787"}
	infoColor        = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}

	navigationModeColor = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
	insertionModeColor  = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"}

	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(arcaneColor)
	scoreStyle       = lipgloss.NewStyle().Bold(true).Foreground(warningColor)
	descriptionStyle = lipgloss.NewStyle().Foreground(textPrimaryColor)
	hintStyle        = lipgloss.NewStyle().Italic(true).Foreground(textMutedColor)
	mutedStyle       = lipgloss.NewStyle().Foreground(textMutedColor)

	remarkStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(arcaneColor).
			Padding(0, 1)

	editorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	cursorBlockStyle  = lipgloss.NewStyle().Reverse(true)
	cursorInsertStyle = lipgloss.NewStyle().Underline(true).Bold(true)

	modeBadgeStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#1E1E2E"))
	statusStyle    = lipgloss.NewStyle().Foreground(textMutedColor).Padding(0, 1)

	previewMatchStyle   = lipgloss.NewStyle().Foreground(textPrimaryColor)
	previewMissingStyle = lipgloss.NewStyle().Foreground(successColor).Underline(true)
	previewExtraStyle   = lipgloss.NewStyle().Foreground(errorColor).Strikethrough(true)
	previewDoneStyle    = lipgloss.NewStyle().Foreground(successColor)

	winStyle = lipgloss.NewStyle().Bold(true).Foreground(successColor)

	sheetStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(arcaneColor).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().Foreground(arcaneColor).Bold(true)

	toastBaseStyle = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
)
