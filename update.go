package main

import (
	"context"
	"fmt"
	"strings"

	"landshare-tui/config"
	"landshare-tui/helpers"
	"landshare-tui/market"
	"landshare-tui/metadata"
	"landshare-tui/router"
	"landshare-tui/rpc"
	"landshare-tui/views/admin"
	"landshare-tui/views/dashboard"
	logview "landshare-tui/views/log"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/ethereum/go-ethereum/common"
)

// -------------------- FORMS --------------------

// openForm opens the form of the given kind, keeping any values entered
// before a failed submit.
func (m *model) openForm(kind formKind) {
	switch kind {
	case formTokenize:
		if m.tokenizeReq == nil {
			m.tokenizeReq = &market.TokenizeRequest{}
		}
		m.form = admin.TokenizeForm(m.tokenizeReq)
	case formFee:
		if m.feeReq == nil {
			m.feeReq = &market.FeeRequest{}
		}
		m.form = admin.FeeForm(m.feeReq)
	case formBuy:
		if m.buyReq == nil {
			m.buyReq = &market.BuyRequest{}
		}
		m.form = dashboard.BuyForm(m.buyReq)
	case formSell:
		if m.sellReq == nil {
			m.sellReq = &market.ListingRequest{}
		}
		m.form = dashboard.ListForm(m.sellReq)
	default:
		return
	}
	m.formKind = kind
}

// closeForm closes the open form without submitting.
func (m *model) closeForm() {
	m.form = nil
	m.formKind = formNone
}

// currentRequest returns the request bound to the open form.
func (m *model) currentRequest() market.Form {
	switch m.formKind {
	case formTokenize:
		return *m.tokenizeReq
	case formFee:
		return *m.feeReq
	case formBuy:
		return *m.buyReq
	case formSell:
		return *m.sellReq
	}
	return nil
}

// submitForm validates the open form and toasts the outcome. An incomplete
// form is reopened with its values; an accepted one is cleared.
func (m *model) submitForm() {
	kind := m.formKind
	req := m.currentRequest()
	m.closeForm()
	if req == nil {
		return
	}

	n, err := market.Submit(req)
	m.toasts.Notify(n)
	if err != nil {
		m.addLog("warning", n.Description)
		m.openForm(kind)
		return
	}

	m.addLog("success", n.Title+": "+n.Description)
	switch kind {
	case formTokenize:
		m.tokenizeReq = nil
	case formFee:
		m.feeReq = nil
	case formBuy:
		m.buyReq = nil
	case formSell:
		m.sellReq = nil
	}
}

func (m *model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	f, ok := form.(*huh.Form)
	if !ok {
		return m, cmd
	}
	m.form = f

	switch m.form.State {
	case huh.StateCompleted:
		m.submitForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

// -------------------- SESSION --------------------

// connectWallet connects addr, remembers it in the config and loads its
// chain state. Routing happens synchronously through the wallet subscription.
func (m *model) connectWallet(addr string) tea.Cmd {
	m.wallet.Connect(addr)
	session := m.wallet.Session()

	m.cfg.RememberWallet(session.Address)
	if err := config.Save(m.settings.ConfigPath, m.cfg); err != nil {
		m.addLog("error", fmt.Sprintf("Failed to save config: %s", err))
	}

	m.addLog("success", fmt.Sprintf("Connected `%s` as %s", helpers.ShortenAddr(session.Address), m.router.Role(session)))
	return m.refreshAccount()
}

// disconnectWallet clears the session and returns to the landing page.
func (m *model) disconnectWallet() {
	addr := m.wallet.Session().Address
	m.router.Disconnect(m.wallet)
	m.account = rpc.AccountInfo{}
	m.accountLoading = false
	m.resetMetadata()
	m.addLog("info", fmt.Sprintf("Disconnected `%s`", helpers.ShortenAddr(addr)))
}

// refreshAccount reloads chain id and balance for the connected wallet.
func (m *model) refreshAccount() tea.Cmd {
	session := m.wallet.Session()
	if !session.Connected || m.ethClient == nil {
		return nil
	}
	if !common.IsHexAddress(session.Address) {
		m.addLog("warning", fmt.Sprintf("Not a hex address, skipping balance: `%s`", session.Address))
		return nil
	}
	m.accountLoading = true
	return loadAccount(m.ethClient, session.Address, m.settings.ChainID)
}

// fetch starts a metadata fetch for one of the platform contracts.
func (m *model) fetch(contract string, fetch func(context.Context) metadata.Metadata) tea.Cmd {
	m.lastContract = contract
	m.addLog("info", fmt.Sprintf("Fetching metadata for `%s`", helpers.ShortenAddr(contract)))
	return fetchMetadata(contract, fetch)
}

// -------------------- UPDATE --------------------

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case logInitMsg:
		if !m.logEnabled {
			return m, nil
		}
		m.logReady = true
		m.addLog("info", "Logger enabled")
		m.updateLogViewport()
		return m, nil

	case rpcConnectedMsg:
		m.rpcConnecting = false
		if msg.err != nil {
			m.ethClient = nil
			m.rpcConnected = false
			m.addLog("error", fmt.Sprintf("RPC connection failed: `%s`", msg.err.Error()))
			return m, nil
		}
		m.ethClient = msg.client
		m.rpcConnected = true
		m.addLog("success", fmt.Sprintf("RPC connected to `%s`", msg.client.URL))
		return m, m.refreshAccount()

	case accountLoadedMsg:
		m.accountLoading = false
		// a late result for a wallet that has since disconnected or changed
		session := m.wallet.Session()
		if !session.Connected || !strings.EqualFold(session.Address, msg.info.Address) {
			return m, nil
		}
		m.account = msg.info
		switch {
		case m.account.ErrMessage != "":
			m.addLog("error", fmt.Sprintf("Wallet `%s`: %s", helpers.ShortenAddr(m.account.Address), m.account.ErrMessage))
		case m.account.WrongNetwork:
			m.addLog("warning", fmt.Sprintf("Wrong network: chain %d, expected %d", m.account.ChainID, m.settings.ChainID))
		default:
			m.addLog("success", fmt.Sprintf("Loaded `%s` - ETH: %s", helpers.ShortenAddr(m.account.Address), helpers.FormatETH(m.account.EthWei)))
		}
		return m, nil

	case metadataFetchedMsg:
		if msg.md == nil {
			m.addLog("debug", fmt.Sprintf("No metadata for `%s`", helpers.ShortenAddr(msg.contract)))
		} else {
			m.addLog("debug", fmt.Sprintf("Metadata for `%s`: %d fields", helpers.ShortenAddr(msg.contract), len(msg.md)))
		}
		return m, nil

	case toastMsg:
		m.toastSeq++
		n := msg.n
		m.toast = &n
		return m, tea.Batch(waitForToast(m.toasts), clearToast(m.toastSeq))

	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case clipboardCopiedMsg:
		m.copiedMsg = "Address copied to clipboard"
		return m, clearClipboard()

	case clearClipboardMsg:
		m.copiedMsg = ""
		return m, nil

	case clipboardPastedMsg:
		if m.adding {
			m.input.SetValue(msg.text)
			m.input.CursorEnd()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		m.logViewport.Width = max(0, msg.Width-6)
		m.logViewport.Height = logview.PanelHeight(msg.Height)
		m.updateLogViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		var cmds []tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		if m.logEnabled && !m.logReady {
			m.logSpinner, cmd = m.logSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		// keep the log panel current with entries written by commands
		m.updateLogViewport()
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)

	default:
		if m.form != nil {
			return m.updateForm(msg)
		}
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if !m.textInputActive() {
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case "l", "L":
			m.logEnabled = !m.logEnabled
			m.cfg.Logger = m.logEnabled
			if err := config.Save(m.settings.ConfigPath, m.cfg); err != nil {
				m.addLog("error", fmt.Sprintf("Failed to save config: %s", err))
			}
			if m.logEnabled {
				m.logReady = false
				return m, tea.Batch(initLogViewport(), m.logSpinner.Tick)
			}
			m.logBuffer.Reset()
			m.logReady = false
			return m, nil

		case "pageup", "pagedown":
			if m.logEnabled && m.logReady {
				var cmd tea.Cmd
				m.logViewport, cmd = m.logViewport.Update(msg)
				return m, cmd
			}
			return m, nil
		}
	}

	switch m.activePage {
	case router.RouteAdmin:
		return m.handleAdminKey(msg)
	case router.RouteDashboard:
		return m.handleDashboardKey(msg)
	default:
		return m.handleLandingKey(msg)
	}
}

func (m *model) handleLandingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adding {
		switch msg.String() {
		case "esc":
			m.adding = false
			m.addError = ""
			m.input.Blur()
			m.input.SetValue("")
			return m, nil
		case "ctrl+v":
			return m, pasteFromClipboard()
		case "enter":
			addr := strings.TrimSpace(m.input.Value())
			if addr == "" {
				m.addError = "Enter an address to connect"
				return m, nil
			}
			m.adding = false
			m.addError = ""
			m.input.Blur()
			m.input.SetValue("")
			return m, m.connectWallet(addr)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.selectedWallet > 0 {
			m.selectedWallet--
		}
	case "down", "j":
		if m.selectedWallet < len(m.cfg.Wallets)-1 {
			m.selectedWallet++
		}
	case "a", "A":
		m.adding = true
		m.addError = ""
		return m, m.input.Focus()
	case "enter":
		if m.selectedWallet >= 0 && m.selectedWallet < len(m.cfg.Wallets) {
			return m, m.connectWallet(m.cfg.Wallets[m.selectedWallet].Address)
		}
		m.adding = true
		return m, m.input.Focus()
	}
	return m, nil
}

// handleSessionKey handles the keys shared by both dashboards.
func (m *model) handleSessionKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "m", "M":
		return m.fetch(metadata.LandTokenContract, m.tracker.FetchLandToken), true
	case "f", "F":
		return m.fetch(metadata.FractionalizationContract, m.tracker.FetchFractionalization), true
	case "v", "V":
		m.showQR = !m.showQR
		return nil, true
	case "c", "C":
		if addr := m.wallet.Session().Address; addr != "" {
			m.addLog("info", fmt.Sprintf("Copied `%s` to clipboard", helpers.ShortenAddr(addr)))
			return copyToClipboard(addr), true
		}
		return nil, true
	case "r", "R":
		return m.refreshAccount(), true
	case "d", "D":
		m.disconnectWallet()
		return nil, true
	}
	return nil, false
}

func (m *model) handleAdminKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.handleSessionKey(msg); ok {
		return m, cmd
	}
	switch msg.String() {
	case "t", "T":
		m.openForm(formTokenize)
		return m, m.form.Init()
	case "p", "P":
		m.openForm(formFee)
		return m, m.form.Init()
	case "w", "W":
		n := market.Withdraw()
		m.toasts.Notify(n)
		m.addLog("info", n.Title)
	}
	return m, nil
}

func (m *model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.handleSessionKey(msg); ok {
		return m, cmd
	}
	switch msg.String() {
	case "b", "B":
		m.openForm(formBuy)
		return m, m.form.Init()
	case "s", "S":
		m.openForm(formSell)
		return m, m.form.Init()
	}
	return m, nil
}

// -------------------- LOG --------------------

// addLog adds a log entry of the given kind
func (m *model) addLog(logType, message string) {
	if m.logger == nil {
		return
	}

	switch logType {
	case "info":
		m.logger.Info(message)
	case "success":
		m.logger.Info("✓", "msg", message)
	case "error":
		m.logger.Error(message)
	case "warning":
		m.logger.Warn(message)
	case "debug":
		m.logger.Debug(message)
	default:
		m.logger.Print(message)
	}

	m.updateLogViewport()
}

func (m *model) updateLogViewport() {
	if !m.logReady || m.logBuffer == nil {
		return
	}
	m.logViewport.SetContent(m.logBuffer.String())
	m.logViewport.GotoBottom()
}

// textInputActive returns true if any text input is currently active
func (m *model) textInputActive() bool {
	return m.adding || m.form != nil
}
