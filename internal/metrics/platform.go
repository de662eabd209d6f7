package metrics

import (
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// Stubbed in tests.
var hostInfo = host.Info

// UserHost reports the current user and hostname as "user@host".
func (c *Collector) UserHost() Metric {
	username := currentUsername()
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "localhost"
	}
	if username == "" {
		return unavailable(IDUser, "User", SentinelUnknown)
	}

	return Metric{
		ID:        IDUser,
		Label:     "User",
		Value:     fmt.Sprintf("%s@%s", username, hostname),
		Kind:      KindText,
		Available: true,
	}
}

func currentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		// Strip the DOMAIN\ prefix Windows includes.
		if i := strings.LastIndex(u.Username, `\`); i >= 0 {
			return u.Username[i+1:]
		}
		return u.Username
	}
	if v := os.Getenv("USER"); v != "" {
		return v
	}
	return os.Getenv("USERNAME")
}

// OSName reports the operating system name and version, e.g. "Arch Linux"
// or "macOS 14.4".
func (c *Collector) OSName() Metric {
	info, err := hostInfo()
	if err != nil || info == nil || info.Platform == "" {
		// runtime.GOOS is always known, so degrade to the bare OS name.
		return Metric{
			ID:        IDOS,
			Label:     "OS",
			Value:     runtime.GOOS,
			Kind:      KindText,
			Available: true,
		}
	}

	name := prettyPlatform(info.Platform)
	if info.PlatformVersion != "" {
		name += " " + info.PlatformVersion
	}

	return Metric{
		ID:        IDOS,
		Label:     "OS",
		Value:     name,
		Kind:      KindText,
		Available: true,
	}
}

// prettyPlatform maps gopsutil's lowercase platform identifiers to the
// names users expect on the report.
func prettyPlatform(platform string) string {
	switch platform {
	case "darwin":
		return "macOS"
	case "arch":
		return "Arch Linux"
	case "centos":
		return "CentOS"
	case "opensuse", "opensuse-leap", "opensuse-tumbleweed":
		return "openSUSE"
	case "freebsd":
		return "FreeBSD"
	case "nixos":
		return "NixOS"
	case "pop":
		return "Pop!_OS"
	case "redhat", "rhel":
		return "Red Hat Enterprise Linux"
	case "":
		return SentinelUnknown
	default:
		// Capitalize single-word identifiers: "ubuntu" -> "Ubuntu".
		return strings.ToUpper(platform[:1]) + platform[1:]
	}
}

// wmEnvVars are checked in order for a window manager / session name.
var wmEnvVars = []string{
	"DESKTOP_SESSION",
	"XDG_CURRENT_DESKTOP",
	"XDG_SESSION_TYPE",
}

// WindowManager reports the window manager or desktop session name from the
// environment. There is no portable way to query this, so absence degrades
// to "Unknown".
func (c *Collector) WindowManager() Metric {
	for _, key := range wmEnvVars {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return Metric{
				ID:        IDWM,
				Label:     "WM",
				Value:     v,
				Kind:      KindText,
				Available: true,
			}
		}
	}
	return unavailable(IDWM, "WM", SentinelUnknown)
}
