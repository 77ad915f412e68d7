package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"landshare-tui/helpers"
	"landshare-tui/market"
	"landshare-tui/styles"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Nav returns the navigation bar for the investor dashboard
func Nav(width int, formOpen bool) string {
	var left string
	if formOpen {
		left = strings.Join([]string{
			styles.Key("Tab") + " next field",
			styles.Key("Enter") + " submit",
			styles.Key("Esc") + " cancel",
		}, "   ")
	} else {
		left = strings.Join([]string{
			styles.Key("b") + " buy",
			styles.Key("s") + " sell",
			styles.Key("m") + " token metadata",
			styles.Key("f") + " fraction metadata",
			styles.Key("c") + " copy address",
			styles.Key("d") + " disconnect",
			styles.Key("l") + " logger",
			styles.Key("q") + " quit",
		}, "   ")
	}
	return styles.NavStyle.Width(width).Render(left)
}

// BuyForm builds the Buy From Admin form bound to req.
func BuyForm(req *market.BuyRequest) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Land ID").
				Value(&req.LandID).
				Placeholder("1"),

			huh.NewInput().
				Title("Units").
				Value(&req.Units).
				Placeholder("100"),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// ListForm builds the List For Sale form bound to req.
func ListForm(req *market.ListingRequest) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Land ID").
				Value(&req.LandID).
				Placeholder("1"),

			huh.NewInput().
				Title("Units").
				Value(&req.Units).
				Placeholder("50"),

			huh.NewInput().
				Title("Price per Unit ($)").
				Value(&req.PricePerUnit).
				Placeholder("45"),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// Holdings renders the portfolio lines with an ownership bar.
func Holdings(holdings []market.Holding, width int) string {
	barWidth := helpers.Max(10, helpers.Min(30, width/3))
	var lines []string
	for _, h := range holdings {
		filled := barWidth * h.Percentage / 100
		bar := lipgloss.NewStyle().Foreground(styles.CAccent).Render(strings.Repeat("█", filled)) +
			styles.Muted(strings.Repeat("░", barWidth-filled))
		lines = append(lines,
			lipgloss.NewStyle().Foreground(styles.CText).Bold(true).Render(fmt.Sprintf("Land #%d  %s", h.LandID, h.Location))+
				"  "+lipgloss.NewStyle().Foreground(styles.CAccent).Render(h.TotalValue)+"\n"+
				styles.Muted(fmt.Sprintf("%d units  ", h.Units))+bar+styles.Muted(fmt.Sprintf(" %d%%", h.Percentage)))
	}
	return strings.Join(lines, "\n")
}

// Marketplace renders the open sale listings.
func Marketplace(listings []market.Listing) string {
	var lines []string
	for _, l := range listings {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(styles.CText).Bold(true).Render(fmt.Sprintf("Land #%d", l.LandID))+
				"  "+styles.Muted("Seller: "+l.Seller)+"  "+
				styles.Muted(fmt.Sprintf("%d units @ %s", l.Units, l.PricePerUnit))+"  "+
				lipgloss.NewStyle().Foreground(styles.CGold).Bold(true).Render(l.Total))
	}
	return strings.Join(lines, "\n")
}

// Transactions renders the history list; purchases in emerald, sales in gold.
func Transactions(txs []market.Transaction) string {
	var lines []string
	for _, tx := range txs {
		accent := styles.CGold
		if tx.Type == "Purchase" {
			accent = styles.CAccent
		}
		lines = append(lines,
			lipgloss.NewStyle().Foreground(accent).Bold(true).Width(9).Render(tx.Type)+
				styles.Muted(fmt.Sprintf("Land #%d • %s • %s  ", tx.LandID, tx.Amount, tx.Date))+
				lipgloss.NewStyle().Foreground(accent).Render(tx.Value))
	}
	return strings.Join(lines, "\n")
}

// Render renders the investor dashboard. form is the open form view, if any.
func Render(width int, address string, form string) string {
	portfolio := market.Portfolio()

	header := styles.TitleStyle.Render("Investment Dashboard") + "\n" +
		styles.Muted("Manage your land investments")
	who := styles.Muted("Wallet Address") + "\n" +
		lipgloss.NewStyle().Foreground(styles.CAccent).Bold(true).Render(helpers.DashboardAddr(address))

	cardWidth := helpers.Max(14, (width-16)/4)
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.StatCard("Portfolio Value", market.FormatDollars(market.PortfolioValue(portfolio)), styles.CAccent, cardWidth),
		styles.StatCard("LAND Tokens", "750", styles.CAccent2, cardWidth),
		styles.StatCard("Land Parcels", strconv.Itoa(len(portfolio)), styles.CGold, cardWidth),
		styles.StatCard("Total Returns", "+12.5%", styles.CAccent, cardWidth),
	)

	sections := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, header, "    ", who),
		stats,
	}
	if form != "" {
		sections = append(sections, form)
	}
	sections = append(sections,
		styles.TitleStyle.Render("My Portfolio")+"\n"+Holdings(portfolio, width),
		styles.TitleStyle.Render("Marketplace")+"\n"+Marketplace(market.Marketplace()),
		styles.TitleStyle.Render("Recent Transactions")+"\n"+Transactions(market.Transactions()),
	)

	return strings.Join(sections, "\n\n")
}
