package metrics

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/host"
)

// Stubbed in tests.
var hostUptime = host.Uptime

// Uptime reports time since boot as days/hours/minutes.
func (c *Collector) Uptime() Metric {
	seconds, err := hostUptime()
	if err != nil {
		return unavailable(IDUptime, "Uptime", SentinelNA)
	}

	return Metric{
		ID:        IDUptime,
		Label:     "Uptime",
		Value:     FormatUptime(seconds),
		Kind:      KindText,
		Available: true,
	}
}

// FormatUptime renders seconds since boot as "3d 4h 23m".
// The day and hour parts are omitted while they are zero.
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := seconds % 86400 / 3600
	minutes := seconds % 3600 / 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
