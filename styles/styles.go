package styles

import "github.com/charmbracelet/lipgloss"

// Theme colors
var (
	CBg      = lipgloss.Color("#081120") // navy
	CPanel   = lipgloss.Color("#0E1A2E")
	CBorder  = lipgloss.Color("#1F7A63")
	CMuted   = lipgloss.Color("#8AA0B6")
	CText    = lipgloss.Color("#D6E2F0")
	CAccent  = lipgloss.Color("#34D399") // emerald
	CAccent2 = lipgloss.Color("#22D3EE") // cyan
	CGold    = lipgloss.Color("#F5C451")
	CWarn    = lipgloss.Color("#FFA657")
	CError   = lipgloss.Color("#F87171")
)

// Gradient endpoints for FadeString titles.
const (
	FadeFrom = "#34D399"
	FadeTo   = "#22D3EE"
)

// Shared styles
var (
	AppStyle = lipgloss.NewStyle().
			Background(CBg).
			Foreground(CText)

	TitleStyle = lipgloss.NewStyle().
			Foreground(CAccent2).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(CMuted)

	PanelStyle = lipgloss.NewStyle().
			Background(CPanel).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(CBorder).
			Padding(1, 2)

	CardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(CBorder).
			Padding(0, 1)

	NavStyle = lipgloss.NewStyle().
			Background(CPanel).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(CBorder).
			Padding(0, 1)

	HotkeyStyle = lipgloss.NewStyle().
			Foreground(CMuted)

	HotkeyKeyStyle = lipgloss.NewStyle().
			Foreground(CAccent).
			Bold(true)

	HelpRightStyle = lipgloss.NewStyle().
			Foreground(CMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(CError).
			Bold(true)
)

// Key renders a key with accent styling
func Key(s string) string {
	return HotkeyKeyStyle.Render(s)
}

// Muted renders s in the muted foreground.
func Muted(s string) string {
	return SubtitleStyle.Render(s)
}

// StatCard renders a bordered label/value pair tinted with accent.
func StatCard(label, value string, accent lipgloss.Color, width int) string {
	v := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(value)
	return CardStyle.
		BorderForeground(accent).
		Width(width).
		Render(Muted(label) + "\n" + v)
}
