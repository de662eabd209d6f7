// Package metrics gathers the host attributes shown in the rf report.
// Each provider returns exactly one Metric and resolves its own failures
// to a sentinel value, so a missing sensor or a dead network never aborts
// the run.
package metrics

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// ID identifies a single metric in the report.
type ID string

// Metric identifiers. display.order in .rf.yaml references these.
const (
	IDUser     ID = "user"
	IDOS       ID = "os"
	IDCPU      ID = "cpu"
	IDCPUModel ID = "cpu_model"
	IDCPUTemp  ID = "cpu_temp"
	IDWM       ID = "wm"
	IDUptime   ID = "uptime"
	IDMemory   ID = "memory"
	IDDisk     ID = "disk"
	IDLocalIP  ID = "local_ip"
	IDPublicIP ID = "public_ip"
	IDBattery  ID = "battery"
)

// knownIDs is the full set of metrics rf can collect, in canonical order.
var knownIDs = []ID{
	IDUser,
	IDOS,
	IDCPU,
	IDCPUModel,
	IDCPUTemp,
	IDWM,
	IDUptime,
	IDMemory,
	IDDisk,
	IDLocalIP,
	IDPublicIP,
	IDBattery,
}

// KnownIDs returns every metric identifier rf understands.
func KnownIDs() []string {
	ids := make([]string, len(knownIDs))
	for i, id := range knownIDs {
		ids[i] = string(id)
	}
	return ids
}

// IsValidID reports whether id names a metric rf can collect.
func IsValidID(id string) bool {
	for _, known := range knownIDs {
		if string(known) == id {
			return true
		}
	}
	return false
}

// Sentinel display values substituted when a metric cannot be obtained.
const (
	SentinelNA          = "N/A"
	SentinelUnknown     = "Unknown"
	SentinelUnavailable = "unavailable"
	SentinelDisabled    = "disabled"
)

// Kind says how a metric's numeric value participates in color classification.
type Kind int

const (
	// KindText metrics carry no number and always render in the neutral color.
	KindText Kind = iota
	// KindUsage metrics carry a percentage in [0,100].
	KindUsage
	// KindTemp metrics carry a temperature in °C.
	KindTemp
)

// Metric is one measured or queried host attribute.
// Immutable once produced; consumed by the renderer and discarded.
type Metric struct {
	ID    ID     `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`

	// Percent holds the numeric value for KindUsage and KindTemp metrics.
	Percent float64 `json:"percent,omitempty"`
	Kind    Kind    `json:"-"`

	// Available is false when Value holds a sentinel.
	Available bool `json:"available"`
}

// unavailable builds the sentinel Metric for a provider that came up empty.
func unavailable(id ID, label, sentinel string) Metric {
	return Metric{
		ID:        id,
		Label:     label,
		Value:     sentinel,
		Kind:      KindText,
		Available: false,
	}
}

// UsagePercent computes used/total as a percentage rounded to one decimal.
// Returns false when total is zero (nothing meaningful to report).
func UsagePercent(used, total uint64) (float64, bool) {
	if total == 0 {
		return 0, false
	}
	pct := float64(used) / float64(total) * 100
	pct = math.Round(pct*10) / 10
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct, true
}

// formatUsage renders a used/total byte pair as "3.7 GiB / 7.5 GiB (50.0%)".
func formatUsage(used, total uint64, pct float64) string {
	return fmt.Sprintf("%s / %s (%.1f%%)", humanize.IBytes(used), humanize.IBytes(total), pct)
}
