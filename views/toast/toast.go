package toast

import (
	"landshare-tui/notify"
	"landshare-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Render renders a toast box. Destructive toasts use the error color.
func Render(n notify.Notification, width int) string {
	accent := styles.CAccent
	if n.Variant == notify.VariantDestructive {
		accent = styles.CError
	}

	title := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(n.Title)
	body := title
	if n.Description != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(styles.CText).Render(n.Description)
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		MaxWidth(width).
		Render(body)
}
