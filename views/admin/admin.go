package admin

import (
	"fmt"
	"strings"

	"landshare-tui/helpers"
	"landshare-tui/market"
	"landshare-tui/styles"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Action is a console operation offered by the admin menu.
type Action struct {
	Key         string
	Title       string
	Description string
}

// Actions lists the admin operations in menu order.
var Actions = []Action{
	{"t", "Tokenize Land", "Convert physical land into digital fractions"},
	{"p", "Platform Settings", "Configure platform fees and parameters"},
	{"w", "Withdraw Fees", "Collect accumulated platform fees"},
}

// Nav returns the navigation bar for the admin console
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
			styles.Key("t") + " tokenize",
			styles.Key("p") + " fee",
			styles.Key("w") + " withdraw",
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

// TokenizeForm builds the Tokenize Land form bound to req.
func TokenizeForm(req *market.TokenizeRequest) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Land Location").
				Value(&req.Location).
				Placeholder("e.g., Chennai Downtown"),

			huh.NewInput().
				Title("Total Acres").
				Value(&req.Acres).
				Placeholder("e.g., 5.5"),

			huh.NewInput().
				Title("Metadata URI (optional)").
				Value(&req.MetadataURI).
				Placeholder("ipfs://..."),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// FeeForm builds the Platform Fee form bound to req.
func FeeForm(req *market.FeeRequest) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Platform Fee (%)").
				Description("Percentage charged on marketplace trades").
				Value(&req.FeePercentage).
				Placeholder("e.g., 2.5"),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// ParcelTable renders the land management table.
func ParcelTable(parcels []market.Parcel) string {
	rows := make([]table.Row, 0, len(parcels))
	for _, p := range parcels {
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", p.ID),
			p.Location,
			fmt.Sprintf("%g", p.Acres),
			p.Status,
			p.Value,
		})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 4},
			{Title: "Location", Width: 22},
			{Title: "Acres", Width: 6},
			{Title: "Status", Width: 8},
			{Title: "Value", Width: 10},
		}),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Foreground(styles.CAccent).Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(styles.CBorder)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t.View()
}

// Render renders the admin console. form is the open form view, if any;
// side is the right-hand panel (metadata).
func Render(width int, address string, form string) string {
	header := styles.TitleStyle.Render("Admin Dashboard") + "\n" +
		styles.Muted("Manage land tokenization platform")
	who := lipgloss.NewStyle().Foreground(styles.CAccent2).Render("Connected as Admin") + "\n" +
		lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render(helpers.DashboardAddr(address))

	cardWidth := helpers.Max(14, (width-16)/4)
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.StatCard("Total Lands", "23", styles.CAccent, cardWidth),
		styles.StatCard("Active Users", "1,247", styles.CAccent2, cardWidth),
		styles.StatCard("Total Value", "$12.4M", styles.CGold, cardWidth),
		styles.StatCard("Platform Fees", "$24,680", styles.CAccent, cardWidth),
	)

	var actions []string
	for _, a := range Actions {
		actions = append(actions, styles.Key(a.Key)+"  "+lipgloss.NewStyle().Foreground(styles.CText).Bold(true).Render(a.Title)+"  "+styles.Muted(a.Description))
	}

	body := form
	if body == "" {
		body = strings.Join(actions, "\n")
	}

	return strings.Join([]string{
		lipgloss.JoinHorizontal(lipgloss.Top, header, "    ", who),
		stats,
		body,
		styles.TitleStyle.Render("Land Management") + "\n" + ParcelTable(market.Parcels()),
	}, "\n\n")
}
