package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// outboundProbeAddr is only used for route selection; no packet is sent.
const outboundProbeAddr = "8.8.8.8:53"

// LocalIP reports the first non-loopback IPv4 address bound to an active
// interface. The default-route address is preferred: dialing a UDP "connection"
// to a public address and reading the chosen source address avoids picking
// virtual adapters that carry no outbound traffic.
func (c *Collector) LocalIP() Metric {
	ip := outboundIP()
	if ip == "" {
		ip = scanInterfacesIPv4()
	}
	if ip == "" {
		return unavailable(IDLocalIP, "Local IP", SentinelNA)
	}

	return Metric{
		ID:        IDLocalIP,
		Label:     "Local IP",
		Value:     ip,
		Kind:      KindText,
		Available: true,
	}
}

// outboundIP returns the source address the kernel picks for outbound traffic.
func outboundIP() string {
	d := net.Dialer{Timeout: 500 * time.Millisecond}
	conn, err := d.Dial("udp", outboundProbeAddr)
	if err != nil {
		return ""
	}
	defer conn.Close()

	ua, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return ""
	}
	ip4 := ua.IP.To4()
	if ip4 == nil || ip4.IsLoopback() {
		return ""
	}
	return ip4.String()
}

// scanInterfacesIPv4 falls back to the first non-loopback IPv4 address on an
// up interface.
func scanInterfacesIPv4() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return ""
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip4 := ipNet.IP.To4()
			if ip4 != nil && !ip4.IsLoopback() {
				return ip4.String()
			}
		}
	}
	return ""
}

// PublicIP looks up the host's public address over HTTP. This is the only
// outbound network call rf makes, and the only provider that can block
// meaningfully, so each request carries a hard timeout. When the lookup is
// disabled by configuration, no request is made at all.
func (c *Collector) PublicIP(ctx context.Context) Metric {
	if !c.opts.PublicIP {
		return unavailable(IDPublicIP, "Public IP", SentinelDisabled)
	}

	for _, endpoint := range c.opts.Endpoints {
		ip, err := c.lookupPublicIP(ctx, endpoint)
		if err != nil {
			c.log.Debug("public IP lookup via %s failed: %v", endpoint, err)
			continue
		}
		return Metric{
			ID:        IDPublicIP,
			Label:     "Public IP",
			Value:     ip,
			Kind:      KindText,
			Available: true,
		}
	}

	return unavailable(IDPublicIP, "Public IP", SentinelUnavailable)
}

// lookupPublicIP queries one endpoint. The body must parse as an IP address;
// anything else (captive portals, error pages) is treated as a failure.
func (c *Collector) lookupPublicIP(ctx context.Context, endpoint string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	// Addresses are tiny; cap the read so a misbehaving endpoint can't flood us.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 256))
	if err != nil {
		return "", err
	}

	ip := strings.TrimSpace(string(body))
	if net.ParseIP(ip) == nil {
		return "", &net.ParseError{Type: "IP address", Text: ip}
	}
	return ip, nil
}
