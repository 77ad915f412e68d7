package main

import (
	"landshare-tui/config"
	"landshare-tui/market"
	"landshare-tui/metadata"
	"landshare-tui/notify"
	"landshare-tui/router"
	"landshare-tui/rpc"
	"landshare-tui/styles"
	"landshare-tui/wallet"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- MODEL --------------------

// formKind identifies the open dashboard form.
type formKind int

const (
	formNone formKind = iota
	formTokenize
	formFee
	formBuy
	formSell
)

// model represents the application state following The Elm Architecture
type model struct {
	w, h int

	settings   config.Settings
	cfg        config.Config
	activePage router.Route

	wallet  *wallet.Provider
	router  *router.Router
	metaSvc metadata.Service
	tracker *metadata.Tracker
	toasts  *notify.Queue

	// connect prompt
	selectedWallet int
	adding         bool
	input          textinput.Model
	addError       string

	// chain state
	spin           spinner.Model
	rpcURL         string
	ethClient      *rpc.Client
	rpcConnected   bool
	rpcConnecting  bool
	account        rpc.AccountInfo
	accountLoading bool

	// dashboard forms
	form        *huh.Form
	formKind    formKind
	tokenizeReq *market.TokenizeRequest
	feeReq      *market.FeeRequest
	buyReq      *market.BuyRequest
	sellReq     *market.ListingRequest

	// metadata panel
	lastContract string
	showQR       bool

	// toasts
	toast    *notify.Notification
	toastSeq int

	// clipboard feedback
	copiedMsg string

	// logger panel
	logEnabled  bool
	logger      *log.Logger
	logBuffer   *logBuffer
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model
}

// -------------------- INIT --------------------

// newModel wires the session, routing and metadata components around the
// resolved settings and the on-disk config.
func newModel(settings config.Settings, cfg config.Config) *model {
	in := textinput.New()
	in.Placeholder = "Paste Public Address 0x…"
	in.Prompt = "Address: "
	in.PromptStyle = lipgloss.NewStyle().Foreground(styles.CAccent)
	in.TextStyle = lipgloss.NewStyle().Foreground(styles.CText)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)
	in.CharLimit = 42
	in.Width = 48

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	vp := viewport.New(0, 20) // resized on first WindowSizeMsg
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	// environment wins over the config file
	rpcURL := settings.RPCURL
	if rpcURL == "" {
		rpcURL = cfg.ActiveRPC()
	}

	if cfg.Wallets == nil {
		cfg.Wallets = []config.WalletEntry{}
	}
	selectedIdx := 0
	for i, w := range cfg.Wallets {
		if w.Active {
			selectedIdx = i
			break
		}
	}

	buf := &logBuffer{}
	logger := newLogger(buf)
	toasts := notify.NewQueue(notify.DefaultQueueSize)

	m := &model{
		settings:       settings,
		cfg:            cfg,
		activePage:     router.RouteLanding,
		wallet:         wallet.NewProvider(),
		toasts:         toasts,
		selectedWallet: selectedIdx,
		input:          in,
		spin:           sp,
		rpcURL:         rpcURL,
		logEnabled:     cfg.Logger,
		logger:         logger,
		logBuffer:      buf,
		logViewport:    vp,
		logSpinner:     logSpin,
		showQR:         true,
	}

	m.metaSvc = metadata.NewClient(settings.FunctionsURL, settings.FunctionsKey, nil)
	m.resetMetadata()

	m.router = router.New(settings.AdminAddress, router.NavigatorFunc(m.navigateTo))
	m.wallet.Subscribe(m.router.Observe)

	return m
}

// resetMetadata gives the next session its own tracker.
func (m *model) resetMetadata() {
	m.tracker = metadata.NewTracker(m.metaSvc, m.toasts, m.logger.WithPrefix("metadata"))
	m.lastContract = ""
}

// newLogger builds the logger shown in the log panel
func newLogger(w *logBuffer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	logger.SetLevel(log.DebugLevel)
	logger.SetStyles(&log.Styles{
		Timestamp: lipgloss.NewStyle().Foreground(cMuted),
		Caller:    lipgloss.NewStyle().Faint(true),
		Prefix:    lipgloss.NewStyle().Bold(true).Foreground(cAccent2),
		Message:   lipgloss.NewStyle().Foreground(cText),
		Key:       lipgloss.NewStyle().Foreground(cAccent),
		Value:     lipgloss.NewStyle().Foreground(cText),
		Separator: lipgloss.NewStyle().Faint(true),
		Levels: map[log.Level]lipgloss.Style{
			log.DebugLevel: lipgloss.NewStyle().Foreground(cMuted).SetString("DEBUG"),
			log.InfoLevel:  lipgloss.NewStyle().Foreground(cAccent2).SetString("INFO"),
			log.WarnLevel:  lipgloss.NewStyle().Foreground(cWarn).SetString("WARN"),
			log.ErrorLevel: lipgloss.NewStyle().Foreground(cError).SetString("ERROR"),
		},
	})
	return logger
}

// navigateTo is the router's navigator: it switches the active page and
// closes anything page-specific.
func (m *model) navigateTo(route router.Route) {
	if m.activePage != route {
		m.closeForm()
	}
	m.activePage = route
	m.addLog("debug", "navigate to "+string(route))
}

// Init implements tea.Model interface and returns initial commands
func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick, waitForToast(m.toasts)}
	if m.logEnabled {
		cmds = append(cmds, initLogViewport(), m.logSpinner.Tick)
	}
	if m.rpcURL != "" {
		m.rpcConnecting = true
		cmds = append(cmds, connectRPC(m.rpcURL))
	}
	return tea.Batch(cmds...)
}
