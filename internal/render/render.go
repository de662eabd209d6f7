// Package render assembles collected metrics into the final report text.
// Output is a single plain-text block with embedded color escapes; one pass,
// no interactivity.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/rf/internal/classify"
	"github.com/rileyhilliard/rf/internal/metrics"
)

// Line is one assembled display line, consumed immediately by output.
type Line struct {
	Glyph string
	Label string
	Value string
	Color lipgloss.Color
}

// Renderer turns an ordered metric list into the report text block.
type Renderer struct {
	classifier classify.Classifier
}

// New creates a renderer using the given classifier for value coloring.
func New(classifier classify.Classifier) *Renderer {
	return &Renderer{classifier: classifier}
}

// ApplyColorMode pins the lipgloss color profile for the given output.color
// mode. "auto" keeps lipgloss's own TTY detection.
func ApplyColorMode(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Render produces the report: one line per metric in the order given,
// framed by blank lines, with the decorative rainbow line at the bottom.
func (r *Renderer) Render(ms []metrics.Metric) string {
	var b strings.Builder
	b.WriteString("\n")

	for _, m := range ms {
		line := r.buildLine(m)
		glyphStyle := lipgloss.NewStyle().Foreground(line.Color)

		b.WriteString("  ")
		b.WriteString(glyphStyle.Render(line.Glyph))
		b.WriteString("  ")
		b.WriteString(r.renderValue(m, line))
		b.WriteString("\n")
	}

	b.WriteString("   " + rainbowLine() + "\n")
	return b.String()
}

// buildLine picks the glyph and color for a metric. Classified metrics
// (usage, temperature) color the glyph by value; everything else keeps the
// glyph's static color.
func (r *Renderer) buildLine(m metrics.Metric) Line {
	g, ok := metricGlyphs[m.ID]
	if m.ID == metrics.IDOS {
		g = osLogo(m.Value)
	} else if !ok {
		g = glyph{Symbol: " ", Color: classify.ColorNeutral}
	}

	if m.ID == metrics.IDBattery && strings.Contains(m.Value, "charging") {
		g.Symbol = batteryChargingGlyph
	}

	color := g.Color
	if m.Kind == metrics.KindUsage || m.Kind == metrics.KindTemp {
		color = r.classifier.ForMetric(m)
	}

	return Line{
		Glyph: g.Symbol,
		Label: m.Label,
		Value: m.Value,
		Color: color,
	}
}

// renderValue styles the value text. The user line keeps its accent color,
// classified values carry their band color, plain text stays unstyled.
func (r *Renderer) renderValue(m metrics.Metric, line Line) string {
	switch {
	case m.ID == metrics.IDUser && m.Available:
		return lipgloss.NewStyle().Foreground(line.Color).Render(m.Value)
	case m.Available && (m.Kind == metrics.KindUsage || m.Kind == metrics.KindTemp):
		return lipgloss.NewStyle().Foreground(line.Color).Render(m.Value)
	default:
		return m.Value
	}
}

// rainbowLine renders the decorative colored glyph strip.
func rainbowLine() string {
	parts := make([]string, 0, len(rainbowGlyphs))
	for _, g := range rainbowGlyphs {
		parts = append(parts, lipgloss.NewStyle().Foreground(g.Color).Render(g.Symbol))
	}
	return strings.Join(parts, " ")
}
