package landing

import (
	"testing"

	"landshare-tui/config"

	"github.com/stretchr/testify/assert"
)

const addr = "0x2089cb616333462e0987105f137DD8Af2C190957"

func TestRender(t *testing.T) {
	t.Parallel()

	out := Render(120, RenderWallets([]config.WalletEntry{{Address: addr, Active: true}}, 0))
	assert.Contains(t, out, "Ready to Start?")
	assert.Contains(t, out, "Total Value Locked")
	assert.Contains(t, out, addr)
	for _, f := range Features {
		assert.Contains(t, out, f.Title)
	}

	connected := Render(120, "")
	assert.NotContains(t, connected, "Ready to Start?")
}

func TestRenderWallets(t *testing.T) {
	t.Parallel()

	assert.Contains(t, RenderWallets(nil, 0), "No saved wallets")
	assert.Contains(t, RenderWallets([]config.WalletEntry{{Address: addr, Active: true}}, 0), "last used")
}
