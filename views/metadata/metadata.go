package metadata

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"landshare-tui/helpers"
	"landshare-tui/metadata"
	"landshare-tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/mdp/qrterminal/v3"
)

// QRCode renders data as a compact half-block QR code.
func QRCode(data string) string {
	if data == "" {
		return ""
	}
	var b strings.Builder
	qrterminal.GenerateWithConfig(data, qrterminal.Config{
		Level:          qrterminal.L,
		Writer:         &b,
		QuietZone:      1,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
	})
	return b.String()
}

// formatValue renders scalars as-is and nested values as compact JSON.
func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case map[string]any, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	default:
		return fmt.Sprint(v)
	}
}

// Render renders the metadata panel. showQR adds a QR code of the IPFS URL.
func Render(width int, loading bool, md metadata.Metadata, ipfsURL string, spinnerView string, showQR bool) string {
	title := styles.TitleStyle.Render("Contract Metadata")

	if loading {
		return title + "\n\n" + spinnerView + " Fetching metadata…"
	}
	if md == nil {
		return title + "\n\n" + styles.Muted("No metadata loaded. Press ") + styles.Key("m") +
			styles.Muted(" (land token) or ") + styles.Key("f") + styles.Muted(" (fractionalization).")
	}

	keyStyle := lipgloss.NewStyle().Foreground(styles.CAccent)
	valStyle := lipgloss.NewStyle().Foreground(styles.CText).Width(helpers.Max(10, width-4))

	var lines []string
	for _, k := range slices.Sorted(maps.Keys(md)) {
		lines = append(lines, keyStyle.Render(k)+"\n"+valStyle.Render("  "+formatValue(md[k])))
	}
	if len(lines) == 0 {
		lines = append(lines, styles.Muted("(empty metadata)"))
	}

	out := title + "\n\n" + strings.Join(lines, "\n")
	if ipfsURL != "" {
		out += "\n\n" + keyStyle.Render("IPFS") + "\n" + valStyle.Render("  "+ipfsURL)
		if showQR {
			out += "\n\n" + QRCode(ipfsURL)
		}
	}
	return out
}
