package landing

import (
	"fmt"
	"strings"

	"landshare-tui/config"
	"landshare-tui/helpers"
	"landshare-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Feature is one card of the landing grid.
type Feature struct {
	Title       string
	Description string
}

// Features lists the platform pitch cards.
var Features = []Feature{
	{"Tokenize Land", "Convert physical land assets into digital fractions"},
	{"Trade Fractions", "Buy and sell land fractions on the marketplace"},
	{"Secure Ownership", "Blockchain-verified ownership and transparent transactions"},
	{"Shared Investment", "Democratize land investment for everyone"},
}

// Stat is a headline platform figure.
type Stat struct {
	Value string
	Label string
}

// Stats are the headline figures under the feature grid.
var Stats = []Stat{
	{"$10M+", "Total Value Locked"},
	{"500+", "Land Parcels Tokenized"},
	{"1,200+", "Active Investors"},
}

// Nav returns the navigation bar for the landing view
func Nav(width int, adding bool) string {
	var left string
	if adding {
		left = strings.Join([]string{
			styles.Key("Enter") + " connect",
			styles.Key("Ctrl+v") + " paste",
			styles.Key("Esc") + " cancel",
		}, "   ")
	} else {
		left = strings.Join([]string{
			styles.Key("↑/↓") + " select",
			styles.Key("Enter") + " connect",
			styles.Key("a") + " new address",
			styles.Key("l") + " logger",
			styles.Key("q") + " quit",
		}, "   ")
	}
	return styles.NavStyle.Width(width).Render(left)
}

// RenderWallets renders the saved wallets offered by the connect prompt.
func RenderWallets(wallets []config.WalletEntry, selectedIdx int) string {
	if len(wallets) == 0 {
		return styles.Muted("No saved wallets. Press 'a' to connect an address.")
	}

	var items []string
	for i, w := range wallets {
		var line string
		if i == selectedIdx {
			marker := lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("▶ ")
			line = marker + lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render(helpers.ShortenAddr(w.Address)) +
				"\n  " + lipgloss.NewStyle().Foreground(styles.CText).Render(w.Address)
		} else {
			line = "  " + helpers.FadeString(helpers.ShortenAddr(w.Address), styles.FadeFrom, styles.FadeTo) +
				"\n  " + styles.Muted(w.Address)
		}
		if w.Active {
			line += styles.Muted("  (last used)")
		}
		items = append(items, line)
	}
	return strings.Join(items, "\n\n")
}

// Render renders the landing page. connectBox is the connect prompt (saved
// wallets or the address input); it is omitted when empty.
func Render(width int, connectBox string) string {
	hero := lipgloss.NewStyle().Bold(true).Render(helpers.FadeString("Fractionalize Land Assets", styles.FadeFrom, styles.FadeTo))
	blurb := lipgloss.NewStyle().Width(helpers.Max(20, width-8)).Foreground(styles.CMuted).Render(
		"Revolutionize land ownership through blockchain technology. " +
			"Tokenize, trade, and democratize real estate investments with transparent, secure smart contracts.")

	cardWidth := helpers.Max(18, (width-16)/len(Features))
	var cards []string
	for _, f := range Features {
		body := styles.TitleStyle.Render(f.Title) + "\n" +
			lipgloss.NewStyle().Foreground(styles.CText).Render(f.Description)
		cards = append(cards, styles.CardStyle.Width(cardWidth).Render(body))
	}

	var stats []string
	for _, s := range Stats {
		stats = append(stats, lipgloss.NewStyle().Width(helpers.Max(16, (width-8)/len(Stats))).Align(lipgloss.Center).Render(
			lipgloss.NewStyle().Foreground(styles.CGold).Bold(true).Render(s.Value)+"\n"+styles.Muted(s.Label)))
	}

	sections := []string{
		hero,
		blurb,
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		lipgloss.JoinHorizontal(lipgloss.Top, stats...),
	}
	if connectBox != "" {
		cta := styles.TitleStyle.Render("Ready to Start?") + "\n" +
			styles.Muted("Connect your wallet to access the land fractionalization platform and start your investment journey.") +
			"\n\n" + connectBox
		sections = append(sections, cta)
	}

	return strings.Join(sections, "\n\n")
}

// Summary is the one-line footer under the connect prompt.
func Summary(wallets int) string {
	return styles.Muted(fmt.Sprintf("%d saved wallets", wallets))
}
