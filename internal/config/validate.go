package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rileyhilliard/rf/internal/errors"
	"github.com/rileyhilliard/rf/internal/metrics"
)

// MaxNetworkTimeout bounds the public IP lookup so a misconfigured timeout
// can't make the run hang.
const MaxNetworkTimeout = 30 * time.Second

// Validate checks the config for errors and returns structured error messages.
// A config that fails validation aborts the run before any metric is collected.
func Validate(cfg *Config) error {
	// Check version
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but rf only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest rf: https://github.com/rileyhilliard/rf/releases")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .rf.yaml.")
	}

	if err := validateOrder(cfg.Display.Order); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'display.order' list in your .rf.yaml.")
	}

	if err := validateNetwork(cfg.Network); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'network' section in your .rf.yaml.")
	}

	if err := validateThresholds("usage", cfg.Thresholds.Usage); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'thresholds' section in your .rf.yaml.")
	}
	if err := validateThresholds("temp", cfg.Thresholds.Temp); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'thresholds' section in your .rf.yaml.")
	}

	if cfg.CPUSample <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("cpu_sample must be positive (got %v)", cfg.CPUSample),
			"Try something like 500ms or 1s.")
	}
	if cfg.CPUSample > 5*time.Second {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("cpu_sample of %v would make rf feel stuck", cfg.CPUSample),
			"Keep the CPU sample at 5s or below.")
	}

	if strings.TrimSpace(cfg.DiskPath) == "" {
		return errors.New(errors.ErrConfig,
			"disk_path can't be empty",
			"Use '/' for the root filesystem, or point it at another mount.")
	}

	return nil
}

// validateOutput checks the output section.
func validateOutput(out OutputConfig) error {
	switch out.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("output.color '%s' isn't a thing - use 'auto', 'always', or 'never'", out.Color)
	}
}

// validateOrder checks that every entry names a known metric exactly once.
func validateOrder(order []string) error {
	if len(order) == 0 {
		return fmt.Errorf("display.order is empty - there'd be nothing to print")
	}

	seen := make(map[string]bool, len(order))
	for _, id := range order {
		if !metrics.IsValidID(id) {
			return fmt.Errorf("display.order has unknown metric '%s' - known metrics: %s",
				id, strings.Join(metrics.KnownIDs(), ", "))
		}
		if seen[id] {
			return fmt.Errorf("display.order lists '%s' twice - each metric renders one line", id)
		}
		seen[id] = true
	}
	return nil
}

// validateNetwork checks the network section.
func validateNetwork(net NetworkConfig) error {
	if net.Timeout <= 0 {
		return fmt.Errorf("network.timeout must be positive (got %v)", net.Timeout)
	}
	if net.Timeout > MaxNetworkTimeout {
		return fmt.Errorf("network.timeout of %v is longer than the %v cap - the report should never hang that long", net.Timeout, MaxNetworkTimeout)
	}

	if net.PublicIP && len(net.Endpoints) == 0 {
		return fmt.Errorf("network.public_ip is on but network.endpoints is empty - there's nowhere to ask")
	}

	for _, endpoint := range net.Endpoints {
		u, err := url.Parse(endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("network.endpoints entry '%s' doesn't look like an http(s) URL", endpoint)
		}
	}
	return nil
}

// validateThresholds checks a threshold configuration for a single metric class.
func validateThresholds(name string, thresh ThresholdValues) error {
	if thresh.Warning < 0 || thresh.Warning > 100 {
		return fmt.Errorf("thresholds.%s.warning needs to be 0-100 (got %d)", name, thresh.Warning)
	}
	if thresh.Critical < 0 || thresh.Critical > 100 {
		return fmt.Errorf("thresholds.%s.critical needs to be 0-100 (got %d)", name, thresh.Critical)
	}
	if thresh.Warning >= thresh.Critical {
		return fmt.Errorf("thresholds.%s.warning (%d%%) is at or above critical (%d%%) - should be the other way around", name, thresh.Warning, thresh.Critical)
	}
	return nil
}
