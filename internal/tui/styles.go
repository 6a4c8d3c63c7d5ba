package tui

import "github.com/charmbracelet/lipgloss"

// Dark palette
var (
	bgColor      = lipgloss.Color("#0a0a0a") // main background
	bgPanelColor = lipgloss.Color("#141414") // panel background

	borderSubtleColor = lipgloss.Color("#3c3c3c")
	borderActiveColor = lipgloss.Color("#606060")

	primaryColor   = lipgloss.Color("#7fd88f") // leaf green
	secondaryColor = lipgloss.Color("#5c9cf5") // blue

	errorColor   = lipgloss.Color("#e06c75")
	warningColor = lipgloss.Color("#f5a742")
	successColor = lipgloss.Color("#7fd88f")

	textColor      = lipgloss.Color("#eeeeee")
	textMutedColor = lipgloss.Color("#808080")
)

var baseStyle = lipgloss.NewStyle().Background(bgColor)

var logoStyle = baseStyle.
	Foreground(primaryColor).
	Bold(true)

var logoDimStyle = baseStyle.
	Foreground(textMutedColor)

var panelBaseStyle = lipgloss.NewStyle().Background(bgPanelColor)

// Tab styles
var (
	activeTabStyle = panelBaseStyle.
			Foreground(primaryColor).
			Bold(true).
			Padding(0, 2)

	inactiveTabStyle = panelBaseStyle.
				Foreground(textMutedColor).
				Padding(0, 2)

	tabBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(borderSubtleColor)
)

// Content styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(textMutedColor)

	contentStyle = lipgloss.NewStyle().
			Padding(1, 2)

	// Form field label, peach when focused
	labelStyle = lipgloss.NewStyle().
			Foreground(textMutedColor)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(warningColor).
				Bold(true)

	formStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(borderActiveColor)

	keyStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Bold(true)

	keyDescStyle = lipgloss.NewStyle().
			Foreground(textMutedColor)

	toastStyle = lipgloss.NewStyle().
			Foreground(successColor).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1)

	toastErrorStyle = toastStyle.
			Foreground(errorColor).
			BorderForeground(errorColor)
)
