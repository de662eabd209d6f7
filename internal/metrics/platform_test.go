package metrics

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/stretchr/testify/assert"
)

func TestPrettyPlatform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"darwin", "macOS"},
		{"arch", "Arch Linux"},
		{"ubuntu", "Ubuntu"},
		{"debian", "Debian"},
		{"fedora", "Fedora"},
		{"pop", "Pop!_OS"},
		{"opensuse-tumbleweed", "openSUSE"},
		{"rhel", "Red Hat Enterprise Linux"},
		{"", SentinelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, prettyPlatform(tt.in))
		})
	}
}

func TestOSName(t *testing.T) {
	orig := hostInfo
	defer func() { hostInfo = orig }()

	hostInfo = func() (*host.InfoStat, error) {
		return &host.InfoStat{Platform: "ubuntu", PlatformVersion: "24.04"}, nil
	}
	m := newTestCollector().OSName()
	assert.True(t, m.Available)
	assert.Equal(t, "Ubuntu 24.04", m.Value)
}

func TestOSNameFallsBackToGOOS(t *testing.T) {
	orig := hostInfo
	defer func() { hostInfo = orig }()

	hostInfo = func() (*host.InfoStat, error) { return nil, errors.New("no host info") }
	m := newTestCollector().OSName()

	// The OS is never truly unknown; the bare GOOS name still prints.
	assert.True(t, m.Available)
	assert.Equal(t, runtime.GOOS, m.Value)
}

func TestWindowManager(t *testing.T) {
	clearWM := func(t *testing.T) {
		for _, key := range wmEnvVars {
			t.Setenv(key, "")
		}
	}

	t.Run("DESKTOP_SESSION wins", func(t *testing.T) {
		clearWM(t)
		t.Setenv("DESKTOP_SESSION", "sway")
		t.Setenv("XDG_SESSION_TYPE", "wayland")

		m := newTestCollector().WindowManager()
		assert.True(t, m.Available)
		assert.Equal(t, "sway", m.Value)
	})

	t.Run("falls through to XDG_SESSION_TYPE", func(t *testing.T) {
		clearWM(t)
		t.Setenv("XDG_SESSION_TYPE", "wayland")

		m := newTestCollector().WindowManager()
		assert.True(t, m.Available)
		assert.Equal(t, "wayland", m.Value)
	})

	t.Run("nothing set degrades to Unknown", func(t *testing.T) {
		clearWM(t)

		m := newTestCollector().WindowManager()
		assert.False(t, m.Available)
		assert.Equal(t, SentinelUnknown, m.Value)
	})
}

func TestUserHost(t *testing.T) {
	m := newTestCollector().UserHost()
	if m.Available {
		assert.True(t, strings.Contains(m.Value, "@"), "user metric should be user@host, got %q", m.Value)
	} else {
		assert.Equal(t, SentinelUnknown, m.Value)
	}
}
