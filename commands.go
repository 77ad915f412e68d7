package main

import (
	"context"
	"strings"
	"sync"
	"time"

	"landshare-tui/metadata"
	"landshare-tui/notify"
	"landshare-tui/rpc"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/common"
)

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

const toastDuration = 4 * time.Second

// connectRPC establishes an RPC connection to the Ethereum node
func connectRPC(url string) tea.Cmd {
	return func() tea.Msg {
		result := rpc.Connect(url)
		return rpcConnectedMsg{client: result.Client, err: result.Error}
	}
}

// loadAccount reads the chain id and balance for the connected wallet
func loadAccount(client *rpc.Client, addr string, chainID uint64) tea.Cmd {
	return func() tea.Msg {
		return accountLoadedMsg{info: rpc.LoadAccount(client, common.HexToAddress(addr), chainID)}
	}
}

// fetchMetadata runs one tracker fetch. Toasts reach the UI via the queue.
func fetchMetadata(contract string, fetch func(context.Context) metadata.Metadata) tea.Cmd {
	return func() tea.Msg {
		return metadataFetchedMsg{contract: contract, md: fetch(context.Background())}
	}
}

// waitForToast blocks until the queue has a toast
func waitForToast(q *notify.Queue) tea.Cmd {
	return func() tea.Msg {
		return toastMsg{n: q.Next()}
	}
}

// clearToast hides toast seq after toastDuration
func clearToast(seq int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}

// initLogViewport initializes the log viewport
func initLogViewport() tea.Cmd {
	return func() tea.Msg {
		return logInitMsg{}
	}
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(text)
		if err == nil {
			return clipboardCopiedMsg{}
		}
		return nil
	}
}

// pasteFromClipboard reads the clipboard for the address input
func pasteFromClipboard() tea.Cmd {
	return func() tea.Msg {
		text, err := clipboard.ReadAll()
		if err != nil {
			return nil
		}
		return clipboardPastedMsg{text: strings.TrimSpace(text)}
	}
}

// clearClipboard waits 2 seconds then clears clipboard feedback
func clearClipboard() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearClipboardMsg{}
	})
}

// logBuffer is the log sink shown in the log panel. Commands log from their
// own goroutines, so access is locked.
type logBuffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (l *logBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func (l *logBuffer) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.String()
}

func (l *logBuffer) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.b.Reset()
}
