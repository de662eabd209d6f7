package metrics

import (
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stubbed in tests.
var (
	virtualMemory = mem.VirtualMemory
	diskUsage     = disk.Usage
)

// MemoryUsage reports used and total RAM with the usage percentage.
func (c *Collector) MemoryUsage() Metric {
	vm, err := virtualMemory()
	if err != nil || vm == nil {
		return unavailable(IDMemory, "RAM", SentinelNA)
	}

	pct, ok := UsagePercent(vm.Used, vm.Total)
	if !ok {
		return unavailable(IDMemory, "RAM", SentinelNA)
	}

	return Metric{
		ID:        IDMemory,
		Label:     "RAM",
		Value:     formatUsage(vm.Used, vm.Total, pct),
		Percent:   pct,
		Kind:      KindUsage,
		Available: true,
	}
}

// DiskUsage reports used and total space for the configured filesystem.
func (c *Collector) DiskUsage() Metric {
	du, err := diskUsage(c.opts.DiskPath)
	if err != nil || du == nil {
		return unavailable(IDDisk, "Disk", SentinelNA)
	}

	pct, ok := UsagePercent(du.Used, du.Total)
	if !ok {
		return unavailable(IDDisk, "Disk", SentinelNA)
	}

	return Metric{
		ID:        IDDisk,
		Label:     "Disk",
		Value:     formatUsage(du.Used, du.Total, pct),
		Percent:   pct,
		Kind:      KindUsage,
		Available: true,
	}
}
