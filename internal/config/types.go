package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .rf.yaml configuration file.
type Config struct {
	Version    int              `yaml:"version" mapstructure:"version"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
	Display    DisplayConfig    `yaml:"display" mapstructure:"display"`
	Network    NetworkConfig    `yaml:"network" mapstructure:"network"`
	Thresholds ThresholdsConfig `yaml:"thresholds" mapstructure:"thresholds"`

	// CPUSample is how long the CPU usage sample blocks for.
	CPUSample time.Duration `yaml:"cpu_sample" mapstructure:"cpu_sample"`

	// DiskPath is the filesystem whose usage is reported.
	DiskPath string `yaml:"disk_path" mapstructure:"disk_path"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DisplayConfig controls which metrics are shown and in what order.
type DisplayConfig struct {
	// Order is the explicit ordered list of metric identifiers.
	// The report prints one line per entry, in this order.
	Order []string `yaml:"order" mapstructure:"order"`
}

// NetworkConfig controls the only outbound network call rf can make.
type NetworkConfig struct {
	// PublicIP toggles the public IP lookup. When false no outbound
	// request is made and the line shows the disabled sentinel.
	PublicIP bool `yaml:"public_ip" mapstructure:"public_ip"`

	// Timeout is the hard deadline for each lookup request.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Endpoints are tried in order until one returns a valid address.
	Endpoints []string `yaml:"endpoints" mapstructure:"endpoints"`
}

// ThresholdsConfig holds the color thresholds per metric class.
type ThresholdsConfig struct {
	// Usage applies to CPU, memory, and disk percentages.
	Usage ThresholdValues `yaml:"usage" mapstructure:"usage"`

	// Temp applies to the CPU temperature in °C.
	Temp ThresholdValues `yaml:"temp" mapstructure:"temp"`
}

// ThresholdValues defines the warning and critical cutoffs for a metric class.
// Values below warning render green, values in [warning, critical) render
// yellow, and values at or above critical render red.
type ThresholdValues struct {
	Warning  int `yaml:"warning" mapstructure:"warning"`
	Critical int `yaml:"critical" mapstructure:"critical"`
}

// DefaultOrder is the documented report order.
var DefaultOrder = []string{
	"user",
	"os",
	"cpu",
	"cpu_temp",
	"wm",
	"uptime",
	"memory",
	"disk",
	"local_ip",
	"public_ip",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	order := make([]string, len(DefaultOrder))
	copy(order, DefaultOrder)

	return &Config{
		Version: CurrentConfigVersion,
		Output: OutputConfig{
			Color: "auto",
		},
		Display: DisplayConfig{
			Order: order,
		},
		Network: NetworkConfig{
			PublicIP: true,
			Timeout:  3 * time.Second,
			Endpoints: []string{
				"https://api.ipify.org",
				"https://icanhazip.com",
			},
		},
		Thresholds: ThresholdsConfig{
			Usage: ThresholdValues{Warning: 60, Critical: 80},
			Temp:  ThresholdValues{Warning: 60, Critical: 70},
		},
		CPUSample: 500 * time.Millisecond,
		DiskPath:  "/",
	}
}
