package main

import (
	"fmt"
	"strings"

	"landshare-tui/helpers"
	"landshare-tui/router"
	"landshare-tui/styles"
	"landshare-tui/views/admin"
	"landshare-tui/views/dashboard"
	"landshare-tui/views/landing"
	logview "landshare-tui/views/log"
	metaview "landshare-tui/views/metadata"
	"landshare-tui/views/toast"

	"github.com/charmbracelet/lipgloss"
)

// -------------------- VIEW --------------------

var formTitles = map[formKind]string{
	formTokenize: "Tokenize Land",
	formFee:      "Platform Settings",
	formBuy:      "Buy From Admin",
	formSell:     "List For Sale",
}

func roleLabel(r router.Role) string {
	switch r {
	case router.RoleAdmin:
		return "Admin"
	case router.RoleInvestor:
		return "Investor"
	}
	return "Guest"
}

// chainStatus describes the RPC connection and network for the header.
func (m *model) chainStatus() (string, lipgloss.Color) {
	switch {
	case m.rpcURL == "":
		return "○ No RPC", cError
	case m.rpcConnecting:
		return "○ Connecting...", cError
	case !m.rpcConnected:
		return "○ Connection Failed", cError
	case m.account.WrongNetwork:
		return fmt.Sprintf("● Wrong network (chain %d)", m.account.ChainID), cWarn
	case m.account.ChainID != 0:
		return fmt.Sprintf("● Chain %d", m.account.ChainID), cAccent
	default:
		return "● Connected", cAccent
	}
}

func (m *model) globalHeader() string {
	availableWidth := max(0, m.w-8)

	session := m.wallet.Session()
	role := m.router.Role(session)

	var addrDisplay string
	if session.Connected {
		addrDisplay = lipgloss.NewStyle().Foreground(cAccent2).Bold(true).Render(
			roleLabel(role)+": "+helpers.FadeString(helpers.ShortenAddr(session.Address), styles.FadeFrom, styles.FadeTo))
		switch {
		case m.accountLoading:
			addrDisplay += " " + m.spin.View()
		case m.account.ErrMessage != "":
			addrDisplay += " " + lipgloss.NewStyle().Foreground(cWarn).Render(m.account.ErrMessage)
		case m.account.EthWei != nil:
			addrDisplay += " " + lipgloss.NewStyle().Foreground(cText).Render(helpers.FormatETH(m.account.EthWei))
		}
	} else {
		addrDisplay = lipgloss.NewStyle().Foreground(cMuted).Render("Not connected")
	}

	statusText, statusColor := m.chainStatus()
	rpcDisplay := lipgloss.NewStyle().Foreground(statusColor).Bold(true).Render(statusText)

	titleText := lipgloss.NewStyle().Bold(true).Render(helpers.FadeString("LandShare Protocol", styles.FadeFrom, styles.FadeTo))

	addrWidth := lipgloss.Width(addrDisplay)
	rpcWidth := lipgloss.Width(rpcDisplay)
	titleWidth := lipgloss.Width(titleText)
	totalOtherWidth := addrWidth + rpcWidth + titleWidth

	var headerLine string
	if totalOtherWidth+4 > availableWidth {
		headerLine = addrDisplay + "\n" + titleText + "\n" + rpcDisplay
	} else {
		remainingSpace := availableWidth - totalOtherWidth
		leftPadding := remainingSpace / 2
		rightPadding := remainingSpace - leftPadding
		headerLine = addrDisplay + strings.Repeat(" ", max(1, leftPadding)) + titleText + strings.Repeat(" ", max(1, rightPadding)) + rpcDisplay
	}

	separator := lipgloss.NewStyle().
		Foreground(cBorder).
		Render(strings.Repeat("─", availableWidth))

	return headerLine + "\n" + separator
}

// connectBox is the landing page's connect prompt.
func (m *model) connectBox() string {
	if m.adding {
		box := m.input.View() + "\n" +
			hotkeyStyle.Render("Enter") + " connect   " +
			hotkeyStyle.Render("Esc") + " cancel   " +
			hotkeyStyle.Render("Ctrl+v") + " paste"
		if m.addError != "" {
			box += "\n" + styles.ErrorStyle.Render(m.addError)
		}
		return panelStyle.BorderForeground(cAccent2).Render(box)
	}
	return landing.RenderWallets(m.cfg.Wallets, m.selectedWallet) + "\n\n" + landing.Summary(len(m.cfg.Wallets))
}

func (m *model) formView() string {
	if m.form == nil {
		return ""
	}
	return styles.TitleStyle.Render(formTitles[m.formKind]) + "\n\n" + m.form.View()
}

// sessionPage renders a dashboard next to the metadata panel.
func (m *model) sessionPage(main string) string {
	mainWidth := max(0, (m.w*6)/10-2)
	sideWidth := max(0, (m.w*4)/10-2)

	side := metaview.Render(sideWidth, m.tracker.Loading(), m.tracker.Metadata(), m.tracker.IPFSURL(), m.spin.View(), m.showQR)
	if m.lastContract != "" {
		side += "\n\n" + styles.Muted("last request: "+helpers.ShortenAddr(m.lastContract))
	}
	if m.copiedMsg != "" {
		main += "\n\n" + lipgloss.NewStyle().Foreground(cAccent).Bold(true).Render(m.copiedMsg)
	}

	left := panelStyle.Width(mainWidth).Render(main)
	right := panelStyle.Width(sideWidth + 1).Height(max(0, lipgloss.Height(left)-2)).Render(side)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *model) View() string {
	headerPanel := panelStyle.Width(max(0, m.w-2)).Render(m.globalHeader())
	address := m.wallet.Session().Address

	var pageContent, nav string
	switch m.activePage {
	case router.RouteAdmin:
		pageContent = m.sessionPage(admin.Render(max(0, (m.w*6)/10-8), address, m.formView()))
		nav = admin.Nav(m.w-2, m.form != nil)
	case router.RouteDashboard:
		pageContent = m.sessionPage(dashboard.Render(max(0, (m.w*6)/10-8), address, m.formView()))
		nav = dashboard.Nav(m.w-2, m.form != nil)
	default:
		box := ""
		if !m.wallet.Session().Connected {
			box = m.connectBox()
		}
		pageContent = panelStyle.Width(max(0, m.w-2)).Render(landing.Render(max(0, m.w-8), box))
		nav = landing.Nav(m.w-2, m.adding)
	}

	sections := []string{headerPanel}
	if m.toast != nil {
		sections = append(sections, lipgloss.PlaceHorizontal(max(0, m.w-2), lipgloss.Right, toast.Render(*m.toast, max(20, m.w/2))))
	}
	sections = append(sections, pageContent, nav)

	if m.logEnabled {
		sections = append(sections, logview.Render(m.w, m.h, m.logReady, m.logSpinner.View(), m.logViewport))
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
