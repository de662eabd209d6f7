package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/rileyhilliard/rf/internal/logger"
)

// Options configures a Collector. The zero value is not useful;
// build one from the loaded config.
type Options struct {
	// Order lists the metrics to collect, in display order.
	Order []ID

	// CPUSample is how long the CPU usage sample blocks for.
	CPUSample time.Duration

	// DiskPath is the filesystem whose usage is reported.
	DiskPath string

	// PublicIP toggles the public IP lookup. When false the provider
	// returns the disabled sentinel without any outbound call.
	PublicIP bool

	// Timeout is the hard deadline for each public IP request.
	Timeout time.Duration

	// Endpoints are the public IP services, tried in order.
	Endpoints []string
}

// Collector runs each configured provider once, in order, and never
// returns an error: a failed provider degrades to its sentinel value.
type Collector struct {
	opts   Options
	log    logger.Logger
	client *http.Client
}

// NewCollector creates a collector for the given options.
func NewCollector(opts Options) *Collector {
	return &Collector{
		opts:   opts,
		log:    logger.NewEnvLogger("[metrics]"),
		client: &http.Client{},
	}
}

// SetLogger replaces the collector's logger.
func (c *Collector) SetLogger(l logger.Logger) {
	c.log = l
}

// Collect gathers every metric in c.opts.Order, sequentially.
// Collection is deliberately synchronous: the provider count is small,
// and only the public IP lookup can block, bounded by its timeout.
func (c *Collector) Collect(ctx context.Context) []Metric {
	out := make([]Metric, 0, len(c.opts.Order))
	for _, id := range c.opts.Order {
		start := time.Now()
		m := c.collect(ctx, id)
		if !m.Available {
			c.log.Debug("%s unavailable (%v)", id, time.Since(start))
		} else {
			c.log.Debug("%s collected in %v", id, time.Since(start))
		}
		out = append(out, m)
	}
	return out
}

// collect dispatches a single metric ID to its provider.
func (c *Collector) collect(ctx context.Context, id ID) Metric {
	switch id {
	case IDUser:
		return c.UserHost()
	case IDOS:
		return c.OSName()
	case IDCPU:
		return c.CPUUsage()
	case IDCPUModel:
		return c.CPUModel()
	case IDCPUTemp:
		return c.CPUTemperature()
	case IDWM:
		return c.WindowManager()
	case IDUptime:
		return c.Uptime()
	case IDMemory:
		return c.MemoryUsage()
	case IDDisk:
		return c.DiskUsage()
	case IDLocalIP:
		return c.LocalIP()
	case IDPublicIP:
		return c.PublicIP(ctx)
	case IDBattery:
		return c.Battery()
	default:
		return unavailable(id, string(id), SentinelUnknown)
	}
}
