package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/rf/internal/metrics"
)

// Static nerd-font glyphs prefixed to each report line. Rendering assumes a
// terminal font with these symbols installed; rf does not verify that.
var metricGlyphs = map[metrics.ID]glyph{
	metrics.IDUser:     {"", lipgloss.Color("2")},
	metrics.IDCPU:      {"", lipgloss.Color("4")},
	metrics.IDCPUModel: {"", lipgloss.Color("4")},
	metrics.IDCPUTemp:  {"", lipgloss.Color("1")},
	metrics.IDWM:       {"󰨇", lipgloss.Color("1")},
	metrics.IDUptime:   {"", lipgloss.Color("5")},
	metrics.IDMemory:   {"", lipgloss.Color("2")},
	metrics.IDDisk:     {"", lipgloss.Color("2")},
	metrics.IDLocalIP:  {"󰩩", lipgloss.Color("2")},
	metrics.IDPublicIP: {"󰩩", lipgloss.Color("2")},
	metrics.IDBattery:  {"󱊣", lipgloss.Color("2")},
}

// batteryChargingGlyph replaces the battery glyph while on AC power.
const batteryChargingGlyph = "󰂄"

// glyph is one decorative symbol and its static display color.
type glyph struct {
	Symbol string
	Color  lipgloss.Color
}

// distroLogos maps a lowercase substring of the OS name to its logo glyph.
// Checked in order so the more specific names win.
var distroLogos = []struct {
	match string
	logo  glyph
}{
	{"alpine", glyph{"", lipgloss.Color("4")}},
	{"artix", glyph{"", lipgloss.Color("4")}},
	{"arch", glyph{"󰣇", lipgloss.Color("4")}},
	{"centos", glyph{"", lipgloss.Color("3")}},
	{"debian", glyph{"", lipgloss.Color("1")}},
	{"deepin", glyph{"", lipgloss.Color("4")}},
	{"elementary", glyph{"", lipgloss.Color("4")}},
	{"endeavouros", glyph{"", lipgloss.Color("5")}},
	{"fedora", glyph{"", lipgloss.Color("4")}},
	{"freebsd", glyph{"", lipgloss.Color("1")}},
	{"garuda", glyph{"", lipgloss.Color("3")}},
	{"gentoo", glyph{"󰣨", lipgloss.Color("7")}},
	{"kali", glyph{"", lipgloss.Color("4")}},
	{"macos", glyph{"", lipgloss.Color("7")}},
	{"manjaro", glyph{"", lipgloss.Color("2")}},
	{"mint", glyph{"󰣭", lipgloss.Color("2")}},
	{"nixos", glyph{"", lipgloss.Color("4")}},
	{"opensuse", glyph{"", lipgloss.Color("2")}},
	{"parrot", glyph{"", lipgloss.Color("2")}},
	{"pop!_os", glyph{"", lipgloss.Color("4")}},
	{"raspbian", glyph{"", lipgloss.Color("1")}},
	{"red hat", glyph{"", lipgloss.Color("1")}},
	{"slackware", glyph{"", lipgloss.Color("4")}},
	{"solus", glyph{"", lipgloss.Color("4")}},
	{"ubuntu", glyph{"", lipgloss.Color("3")}},
	{"void", glyph{"", lipgloss.Color("2")}},
	{"windows", glyph{"", lipgloss.Color("4")}},
	{"zorin", glyph{"", lipgloss.Color("4")}},
}

// genericOSLogo is the fallback for distros without a dedicated glyph.
var genericOSLogo = glyph{"", lipgloss.Color("3")}

// osLogo picks the logo glyph for an OS name.
func osLogo(osName string) glyph {
	name := strings.ToLower(osName)
	for _, entry := range distroLogos {
		if strings.Contains(name, entry.match) {
			return entry.logo
		}
	}
	return genericOSLogo
}

// rainbowGlyphs make up the decorative trailing line of the report.
var rainbowGlyphs = []glyph{
	{"󱚝", lipgloss.Color("1")},
	{"󱚟", lipgloss.Color("3")},
	{"󱚣", lipgloss.Color("2")},
	{"󰚩", lipgloss.Color("4")},
	{"󱜙", lipgloss.Color("6")},
	{"󱚥", lipgloss.Color("5")},
}
