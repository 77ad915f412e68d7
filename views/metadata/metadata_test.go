package metadata

import (
	"strings"
	"testing"

	"landshare-tui/metadata"

	"github.com/stretchr/testify/assert"
)

func TestRender_SortsFields(t *testing.T) {
	t.Parallel()

	md := metadata.Metadata{
		"name":       "Land #1",
		"acres":      5.0,
		"attributes": []any{map[string]any{"trait": "zone"}},
		"owner":      nil,
	}

	out := Render(80, false, md, "", "*", false)
	assert.Contains(t, out, "  5")
	assert.Contains(t, out, `  [{"trait":"zone"}]`)
	assert.Contains(t, out, "  null")

	acres := strings.Index(out, "acres")
	attributes := strings.Index(out, "attributes")
	name := strings.Index(out, "name")
	owner := strings.Index(out, "owner")
	assert.True(t, acres < attributes && attributes < name && name < owner, "keys are sorted")
	assert.Contains(t, Render(80, false, metadata.Metadata{}, "", "*", false), "(empty metadata)")
}

func TestRender(t *testing.T) {
	t.Parallel()

	loading := Render(80, true, nil, "", "*", false)
	assert.Contains(t, loading, "Fetching metadata")

	empty := Render(80, false, nil, "", "*", false)
	assert.Contains(t, empty, "No metadata loaded")

	out := Render(80, false, metadata.Metadata{"name": "Land #1"}, "https://gateway.pinata.cloud/ipfs/Qm1", "*", true)
	assert.Contains(t, out, "Land #1")
	assert.Contains(t, out, "https://gateway.pinata.cloud/ipfs/Qm1")
	assert.True(t, strings.Count(out, "\n") > 10, "expected a QR code block")
}

func TestQRCode(t *testing.T) {
	t.Parallel()

	assert.Empty(t, QRCode(""))
	assert.NotEmpty(t, QRCode("ipfs://Qm1"))
}
