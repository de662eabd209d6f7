package metrics

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
)

// Stubbed in tests.
var (
	cpuPercent         = cpu.Percent
	cpuInfo            = cpu.Info
	sensorTemperatures = host.SensorsTemperatures
)

// preferredSensors are CPU temperature sensor keys, most specific first.
// The first sensor whose key contains one of these substrings wins.
var preferredSensors = []string{
	"coretemp",
	"k10temp",
	"cpu_thermal",
	"cpu-thermal",
	"acpitz",
	"soc_thermal",
}

// CPUUsage samples CPU utilization over the configured interval.
// The sample blocks for Options.CPUSample.
func (c *Collector) CPUUsage() Metric {
	percents, err := cpuPercent(c.opts.CPUSample, false)
	if err != nil || len(percents) == 0 {
		return unavailable(IDCPU, "CPU", SentinelNA)
	}

	pct := percents[0]
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	return Metric{
		ID:        IDCPU,
		Label:     "CPU",
		Value:     fmt.Sprintf("%.1f%%", pct),
		Percent:   pct,
		Kind:      KindUsage,
		Available: true,
	}
}

// CPUModel reports the processor model name.
func (c *Collector) CPUModel() Metric {
	infos, err := cpuInfo()
	if err != nil || len(infos) == 0 || strings.TrimSpace(infos[0].ModelName) == "" {
		return unavailable(IDCPUModel, "CPU Model", SentinelUnknown)
	}

	return Metric{
		ID:        IDCPUModel,
		Label:     "CPU Model",
		Value:     strings.TrimSpace(infos[0].ModelName),
		Kind:      KindText,
		Available: true,
	}
}

// CPUTemperature reads the CPU temperature from the first matching hardware
// sensor. Preferred sensor keys are tried in order; if none match, the first
// plausible reading wins. Platforms without exposed sensors degrade to the
// "unavailable" sentinel.
func (c *Collector) CPUTemperature() Metric {
	temps, err := sensorTemperatures()
	if err != nil || len(temps) == 0 {
		return unavailable(IDCPUTemp, "Temp", SentinelUnavailable)
	}

	for _, want := range preferredSensors {
		for _, t := range temps {
			if strings.Contains(strings.ToLower(t.SensorKey), want) && plausibleTemp(t.Temperature) {
				return tempMetric(t.Temperature)
			}
		}
	}

	// No preferred sensor; settle for the first plausible reading.
	for _, t := range temps {
		if plausibleTemp(t.Temperature) {
			return tempMetric(t.Temperature)
		}
	}

	return unavailable(IDCPUTemp, "Temp", SentinelUnavailable)
}

// plausibleTemp filters out the zero and absurd readings some sensors report.
func plausibleTemp(t float64) bool {
	return t > 0 && t <= 150
}

func tempMetric(t float64) Metric {
	return Metric{
		ID:        IDCPUTemp,
		Label:     "Temp",
		Value:     fmt.Sprintf("%.1f°C", t),
		Percent:   t,
		Kind:      KindTemp,
		Available: true,
	}
}
