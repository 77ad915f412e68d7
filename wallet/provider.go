// Package wallet is a watch-only wallet connector. Connecting records an
// address; nothing is signed.
package wallet

import (
	"strings"

	"landshare-tui/router"
)

// Provider holds the wallet session and fans updates out to subscribers.
// It is driven from the UI loop and is not safe for concurrent use.
type Provider struct {
	session router.Session
	subs    []func(router.Session)
}

// NewProvider returns a disconnected Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Connect marks addr as the connected account. The address is not
// validated; routing treats anything that is not the admin as an investor.
func (p *Provider) Connect(addr string) {
	p.session = router.Session{Address: strings.TrimSpace(addr), Connected: true}
	p.publish()
}

// Disconnect clears the session.
func (p *Provider) Disconnect() {
	p.session = router.Session{}
	p.publish()
}

// Session returns the current session.
func (p *Provider) Session() router.Session {
	return p.session
}

// Subscribe registers fn for every session change. Subscribers run in
// registration order, synchronously with Connect and Disconnect.
func (p *Provider) Subscribe(fn func(router.Session)) {
	p.subs = append(p.subs, fn)
}

func (p *Provider) publish() {
	s := p.session
	for _, fn := range p.subs {
		fn(s)
	}
}
