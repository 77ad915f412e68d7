package main

import (
	"landshare-tui/metadata"
	"landshare-tui/notify"
	"landshare-tui/rpc"
)

// -------------------- TEA MESSAGES --------------------

// clipboardCopiedMsg indicates clipboard copy completed
type clipboardCopiedMsg struct{}

// clearClipboardMsg clears the copy feedback
type clearClipboardMsg struct{}

// clipboardPastedMsg carries clipboard text for the address input
type clipboardPastedMsg struct {
	text string
}

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}

// rpcConnectedMsg contains result of RPC connection attempt
type rpcConnectedMsg struct {
	client *rpc.Client
	err    error
}

// accountLoadedMsg carries the chain id and balance of the connected wallet
type accountLoadedMsg struct {
	info rpc.AccountInfo
}

// metadataFetchedMsg is sent when a metadata fetch resolves, successful or not
type metadataFetchedMsg struct {
	contract string
	md       metadata.Metadata
}

// toastMsg is the next toast from the queue
type toastMsg struct {
	n notify.Notification
}

// clearToastMsg hides toast seq if it is still the one shown
type clearToastMsg struct {
	seq int
}
