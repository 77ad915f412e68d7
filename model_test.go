package main

import (
	"context"
	"math/big"
	"path/filepath"
	"testing"

	"landshare-tui/config"
	"landshare-tui/metadata"
	"landshare-tui/notify"
	"landshare-tui/router"
	"landshare-tui/rpc"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const (
	testAdmin    = "0x2089cb616333462e0987105f137DD8Af2C190957"
	testInvestor = "0x7eFd92FAB22CAD2a2EBaF5795D43e9eE1367dbf6"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestModel(t *testing.T) *model {
	t.Helper()
	settings := config.Settings{
		AdminAddress: testAdmin,
		ChainID:      config.DefaultChainID,
		ConfigPath:   filepath.Join(t.TempDir(), "config.json"),
	}
	m := newModel(settings, config.DefaultConfig())
	m.rpcURL = ""
	m.w, m.h = 160, 60
	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pendingToast(t *testing.T, q *notify.Queue) notify.Notification {
	t.Helper()
	select {
	case n := <-q.C():
		return n
	default:
		t.Fatal("expected a pending toast")
		return notify.Notification{}
	}
}

func TestConnectRoutesByRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		addr string
		want router.Route
	}{
		{"admin exact", testAdmin, router.RouteAdmin},
		{"admin lowercase", "0x2089cb616333462e0987105f137dd8af2c190957", router.RouteAdmin},
		{"investor", testInvestor, router.RouteDashboard},
		{"malformed", "not-an-address", router.RouteDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newTestModel(t)
			m.connectWallet(tt.addr)
			assert.Equal(t, tt.want, m.activePage)

			saved := config.Load(m.settings.ConfigPath)
			require.Len(t, saved.Wallets, 1)
			assert.Equal(t, tt.addr, saved.Wallets[0].Address)
			assert.True(t, saved.Wallets[0].Active)
		})
	}
}

func TestConnectFromLandingInput(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.Update(key("a"))
	require.True(t, m.adding)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Enter an address to connect", m.addError)
	assert.Equal(t, router.RouteLanding, m.activePage)

	m.input.SetValue(testInvestor)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.adding)
	assert.Equal(t, router.RouteDashboard, m.activePage)
}

func TestDisconnectReturnsToLanding(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.connectWallet(testAdmin)
	m.account = rpc.AccountInfo{Address: testAdmin, EthWei: big.NewInt(1)}

	m.Update(key("d"))
	assert.Equal(t, router.RouteLanding, m.activePage)
	assert.False(t, m.wallet.Session().Connected)
	assert.Nil(t, m.account.EthWei)
	assert.Equal(t, router.StateDisconnected, m.router.State())
}

func TestReconnectSwitchesRole(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.connectWallet(testInvestor)
	assert.Equal(t, router.RouteDashboard, m.activePage)

	m.Update(key("d"))
	m.Update(key("a"))
	m.input.SetValue(testAdmin)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, router.RouteAdmin, m.activePage)
}

func TestFormSubmit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.connectWallet(testAdmin)

	m.Update(key("t"))
	require.NotNil(t, m.form)
	assert.Equal(t, formTokenize, m.formKind)

	m.tokenizeReq.Location = "Chennai Downtown"
	m.submitForm()

	n := pendingToast(t, m.toasts)
	assert.Equal(t, notify.VariantDestructive, n.Variant)
	assert.Equal(t, "Please fill in all required fields", n.Description)
	require.NotNil(t, m.form, "incomplete form is reopened")
	assert.Equal(t, "Chennai Downtown", m.tokenizeReq.Location)

	m.tokenizeReq.Acres = "5"
	m.submitForm()

	n = pendingToast(t, m.toasts)
	assert.Equal(t, "Tokenizing Land", n.Title)
	assert.Equal(t, "Processing tokenization for Chennai Downtown", n.Description)
	assert.Nil(t, m.form)
	assert.Nil(t, m.tokenizeReq)
}

func TestFormEscCloses(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.connectWallet(testInvestor)

	m.Update(key("b"))
	require.NotNil(t, m.form)
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.form)
	assert.Equal(t, router.RouteDashboard, m.activePage)
}

func TestWithdrawToasts(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.connectWallet(testAdmin)
	m.Update(key("w"))

	n := pendingToast(t, m.toasts)
	assert.Equal(t, "Withdrawing Fees", n.Title)
}

func TestToastLifecycle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.Update(toastMsg{n: notify.Info("Metadata Retrieved", "ok")})
	require.NotNil(t, m.toast)
	first := m.toastSeq

	m.Update(toastMsg{n: notify.Error("boom")})
	m.Update(clearToastMsg{seq: first})
	require.NotNil(t, m.toast, "a stale timer does not clear a newer toast")
	assert.Equal(t, "boom", m.toast.Description)

	m.Update(clearToastMsg{seq: m.toastSeq})
	assert.Nil(t, m.toast)
}

func TestAccountLoaded(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.connectWallet(testInvestor)
	m.rpcURL, m.rpcConnected = "http://localhost:8545", true

	m.Update(accountLoadedMsg{info: rpc.AccountInfo{Address: testAdmin, ChainID: 1}})
	assert.Zero(t, m.account.ChainID, "result for another wallet is dropped")

	m.Update(accountLoadedMsg{info: rpc.AccountInfo{Address: testInvestor, ChainID: 1, WrongNetwork: true, EthWei: big.NewInt(0)}})
	assert.True(t, m.account.WrongNetwork)
	status, _ := m.chainStatus()
	assert.Contains(t, status, "Wrong network")
}

func TestViewRendersEveryPage(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	assert.Contains(t, m.View(), "Ready to Start?")

	m.connectWallet(testAdmin)
	out := m.View()
	assert.Contains(t, out, "Admin Dashboard")
	assert.Contains(t, out, "Contract Metadata")

	m.Update(key("d"))
	m.connectWallet(testInvestor)
	out = m.View()
	assert.Contains(t, out, "Investment Dashboard")
	assert.Contains(t, out, "Investor")
}

// withMetadata swaps the metadata backend for one answering from md.
func withMetadata(m *model, md metadata.Metadata, ipfsURL string) *[]string {
	var seen []string
	m.metaSvc = metadata.ServiceFunc(func(_ context.Context, req metadata.Request) (*metadata.Response, error) {
		seen = append(seen, req.ContractAddress)
		return &metadata.Response{Success: true, Metadata: md, IPFSURL: ipfsURL, ContractAddress: req.ContractAddress}, nil
	})
	m.resetMetadata()
	return &seen
}

func TestMetadataHotkey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key      string
		contract string
	}{
		{"m", metadata.LandTokenContract},
		{"f", metadata.FractionalizationContract},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			m := newTestModel(t)
			seen := withMetadata(m, metadata.Metadata{"name": "Parcel 7"}, "")
			m.connectWallet(testAdmin)

			_, cmd := m.Update(key(tt.key))
			require.NotNil(t, cmd)
			msg, ok := cmd().(metadataFetchedMsg)
			require.True(t, ok)
			assert.Equal(t, tt.contract, msg.contract)
			assert.Equal(t, []string{tt.contract}, *seen)
			assert.Equal(t, "Parcel 7", msg.md["name"])
			m.Update(msg)

			n := pendingToast(t, m.toasts)
			assert.Equal(t, "Metadata Retrieved", n.Title)
			m.Update(toastMsg{n: n})
			require.NotNil(t, m.toast)
			assert.Contains(t, m.View(), "Parcel 7")
		})
	}
}

func TestMetadataClearedOnDisconnect(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	withMetadata(m, metadata.Metadata{"name": "Admin Parcel"}, "https://gateway.pinata.cloud/ipfs/QmAdmin")
	m.connectWallet(testAdmin)

	_, cmd := m.Update(key("m"))
	require.NotNil(t, cmd)
	m.Update(cmd())
	pendingToast(t, m.toasts)
	require.Contains(t, m.View(), "Admin Parcel")

	m.Update(key("d"))
	m.connectWallet(testInvestor)

	out := m.View()
	assert.NotContains(t, out, "Admin Parcel")
	assert.NotContains(t, out, "QmAdmin")
	assert.NotContains(t, out, "last request")
	assert.Contains(t, out, "No metadata loaded")
	assert.Empty(t, m.lastContract)
	assert.Nil(t, m.tracker.Metadata())
}

func TestResolveSettings(t *testing.T) {
	t.Setenv("LANDSHARE_ADMIN_ADDRESS", testAdmin)
	t.Setenv("LANDSHARE_CONFIG", filepath.Join(t.TempDir(), "c.json"))

	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Set("rpc", "http://localhost:8545"))

	s, err := resolveSettings(cmd, cliFlags{rpcURL: "http://localhost:8545"})
	require.NoError(t, err)
	assert.Equal(t, testAdmin, s.AdminAddress)
	assert.Equal(t, "http://localhost:8545", s.RPCURL)

	require.NoError(t, cmd.Flags().Set("admin", "nope"))
	_, err = resolveSettings(cmd, cliFlags{admin: "nope"})
	assert.ErrorIs(t, err, config.ErrAdminAddressInvalid)
}
