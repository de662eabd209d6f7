package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/rf/internal/config"
	"github.com/rileyhilliard/rf/internal/errors"
	"github.com/rileyhilliard/rf/internal/metrics"
)

// resetFlags restores the package-level flag values after a test mutates them.
func resetFlags(t *testing.T) {
	t.Helper()
	origColor, origJSON, origNoIP, origTimeout := colorFlag, jsonFlag, noPublicIPFlag, timeoutFlag
	t.Cleanup(func() {
		colorFlag, jsonFlag, noPublicIPFlag, timeoutFlag = origColor, origJSON, origNoIP, origTimeout
	})
}

func TestApplyFlagOverrides(t *testing.T) {
	t.Run("no flags leaves config alone", func(t *testing.T) {
		resetFlags(t)
		colorFlag, noPublicIPFlag, timeoutFlag = "", false, ""

		cfg := config.DefaultConfig()
		require.NoError(t, applyFlagOverrides(cfg))
		assert.Equal(t, config.DefaultConfig(), cfg)
	})

	t.Run("no-public-ip disables the lookup", func(t *testing.T) {
		resetFlags(t)
		noPublicIPFlag = true

		cfg := config.DefaultConfig()
		require.NoError(t, applyFlagOverrides(cfg))
		assert.False(t, cfg.Network.PublicIP)
	})

	t.Run("color flag wins over config", func(t *testing.T) {
		resetFlags(t)
		colorFlag = "never"

		cfg := config.DefaultConfig()
		cfg.Output.Color = "always"
		require.NoError(t, applyFlagOverrides(cfg))
		assert.Equal(t, "never", cfg.Output.Color)
	})

	t.Run("timeout flag parses durations", func(t *testing.T) {
		resetFlags(t)
		timeoutFlag = "750ms"

		cfg := config.DefaultConfig()
		require.NoError(t, applyFlagOverrides(cfg))
		assert.Equal(t, 750*time.Millisecond, cfg.Network.Timeout)
	})

	t.Run("garbage timeout is a config error", func(t *testing.T) {
		resetFlags(t)
		timeoutFlag = "soonish"

		err := applyFlagOverrides(config.DefaultConfig())
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
		assert.Contains(t, err.Error(), "soonish")
	})
}

func TestCollectorOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Display.Order = []string{"cpu", "memory"}
	cfg.CPUSample = time.Second
	cfg.DiskPath = "/home"
	cfg.Network.PublicIP = false
	cfg.Network.Timeout = 5 * time.Second
	cfg.Network.Endpoints = []string{"https://ip.example.com"}

	opts := collectorOptions(cfg)

	assert.Equal(t, []metrics.ID{metrics.IDCPU, metrics.IDMemory}, opts.Order)
	assert.Equal(t, time.Second, opts.CPUSample)
	assert.Equal(t, "/home", opts.DiskPath)
	assert.False(t, opts.PublicIP)
	assert.Equal(t, 5*time.Second, opts.Timeout)
	assert.Equal(t, []string{"https://ip.example.com"}, opts.Endpoints)
}
