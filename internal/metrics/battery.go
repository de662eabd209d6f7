package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// powerSupplyDir is the sysfs battery location. Overridden in tests.
var powerSupplyDir = "/sys/class/power_supply"

// Battery reports the first battery's charge level and state. Desktops and
// platforms without sysfs batteries degrade to the "unavailable" sentinel.
// Not part of the default report; enable it by adding "battery" to
// display.order.
func (c *Collector) Battery() Metric {
	entries, err := os.ReadDir(powerSupplyDir)
	if err != nil {
		return unavailable(IDBattery, "Battery", SentinelUnavailable)
	}

	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), "BAT") {
			continue
		}
		dir := filepath.Join(powerSupplyDir, entry.Name())

		capData, err := os.ReadFile(filepath.Join(dir, "capacity"))
		if err != nil {
			continue
		}
		pct, err := strconv.Atoi(strings.TrimSpace(string(capData)))
		if err != nil || pct < 0 || pct > 100 {
			continue
		}

		value := fmt.Sprintf("%d%%", pct)
		if statusData, err := os.ReadFile(filepath.Join(dir, "status")); err == nil {
			status := strings.ToLower(strings.TrimSpace(string(statusData)))
			if status == "charging" || status == "full" {
				value += " (" + status + ")"
			}
		}

		return Metric{
			ID:        IDBattery,
			Label:     "Battery",
			Value:     value,
			Kind:      KindText,
			Available: true,
		}
	}

	return unavailable(IDBattery, "Battery", SentinelUnavailable)
}
