package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rileyhilliard/rf/internal/classify"
	"github.com/rileyhilliard/rf/internal/config"
	"github.com/rileyhilliard/rf/internal/errors"
	"github.com/rileyhilliard/rf/internal/metrics"
	"github.com/rileyhilliard/rf/internal/render"
)

// fetchCommand collects every configured metric and prints the report.
// Configuration problems abort before collection; once collection starts
// the command always completes and exits 0.
func fetchCommand() error {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return err
	}

	if err := applyFlagOverrides(cfg); err != nil {
		return err
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	collector := metrics.NewCollector(collectorOptions(cfg))
	collected := collector.Collect(context.Background())

	if jsonFlag {
		return printJSON(collected)
	}

	render.ApplyColorMode(cfg.Output.Color)
	renderer := render.New(classify.Classifier{
		Usage: classify.FromThresholds(cfg.Thresholds.Usage.Warning, cfg.Thresholds.Usage.Critical),
		Temp:  classify.FromThresholds(cfg.Thresholds.Temp.Warning, cfg.Thresholds.Temp.Critical),
	})

	fmt.Print(renderer.Render(collected))
	return nil
}

// applyFlagOverrides layers command-line flags over the loaded config.
// Overrides happen before validation so a bad flag value gets the same
// structured error as a bad config value.
func applyFlagOverrides(cfg *config.Config) error {
	if noPublicIPFlag {
		cfg.Network.PublicIP = false
	}

	if colorFlag != "" {
		cfg.Output.Color = colorFlag
	}

	if timeoutFlag != "" {
		timeout, err := time.ParseDuration(timeoutFlag)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("'%s' doesn't look like a valid timeout", timeoutFlag),
				"Try something like 3s, 500ms, or 10s.")
		}
		cfg.Network.Timeout = timeout
	}

	return nil
}

// collectorOptions converts the validated config into collector options.
func collectorOptions(cfg *config.Config) metrics.Options {
	order := make([]metrics.ID, len(cfg.Display.Order))
	for i, id := range cfg.Display.Order {
		order[i] = metrics.ID(id)
	}

	return metrics.Options{
		Order:     order,
		CPUSample: cfg.CPUSample,
		DiskPath:  cfg.DiskPath,
		PublicIP:  cfg.Network.PublicIP,
		Timeout:   cfg.Network.Timeout,
		Endpoints: cfg.Network.Endpoints,
	}
}

// printJSON writes the collected metrics as indented JSON, no ANSI codes.
func printJSON(collected []metrics.Metric) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(collected); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Failed to encode metrics as JSON",
			"This shouldn't happen - please report this bug")
	}
	return nil
}
