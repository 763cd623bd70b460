package vault

import (
	"fmt"
	"io"
	"strings"

	"github.com/SemonoffArt/proneta2obsidian/pkg/linkpolicy"
	"github.com/SemonoffArt/proneta2obsidian/pkg/proneta"
	"github.com/SemonoffArt/proneta2obsidian/pkg/station"
)

// fallbackName stands in for display names that normalize to nothing,
// so such a device still gets a reachable note and references to it
// still resolve.
const fallbackName = "unnamed-device"

// NoteStats counts what a single rendered note contains.
type NoteStats struct {
	PortsTotal       int
	PortsConnected   int
	PortsUnconnected int
	LinksRendered    int
	LinksSuppressed  int
}

// Renderer turns device records into Markdown notes. It consults the
// name normalizer for every display string and the link policy for
// each remote-station reference.
type Renderer struct {
	names  *station.Normalizer
	policy *linkpolicy.SuppressionContext
}

// NewRenderer returns a renderer over the given normalizer and
// suppression context.
func NewRenderer(names *station.Normalizer, policy *linkpolicy.SuppressionContext) *Renderer {
	return &Renderer{names: names, policy: policy}
}

// NoteName returns the display name used for the device's note title
// and filename.
func (r *Renderer) NoteName(d *proneta.Device) string {
	return r.display(d.Key())
}

func (r *Renderer) display(raw string) string {
	if name := r.names.Normalize(raw); name != "" {
		return name
	}
	return fallbackName
}

// RenderNote writes the Markdown body for one device to w and returns
// the per-note counters.
func (r *Renderer) RenderNote(w io.Writer, d *proneta.Device) (NoteStats, error) {
	var stats NoteStats
	var b strings.Builder

	name := r.NoteName(d)
	fmt.Fprintf(&b, "# %s\n", name)
	b.WriteString("## Device Information\n")
	fmt.Fprintf(&b, "- **Name of Station**: %s\n", name)
	fmt.Fprintf(&b, "- **IP Address**: %s\n", d.IPAddress)
	fmt.Fprintf(&b, "- **Network Mask**: %s\n", d.NetworkMask)
	fmt.Fprintf(&b, "- **Device Type**: %s\n", d.DeviceType)
	fmt.Fprintf(&b, "- **MAC Address**: %s\n", d.MAC)
	fmt.Fprintf(&b, "- **Manufacturer**: %s\n", d.ManufacturerName)

	ports := d.Ports()
	if len(ports) > 0 {
		b.WriteString("\n## Ports\n")
		for i := range ports {
			r.renderPort(&b, d, &ports[i], &stats)
		}
	}
	stats.PortsTotal = len(ports)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return NoteStats{}, fmt.Errorf("render note %s: %w", name, err)
	}
	return stats, nil
}

func (r *Renderer) renderPort(b *strings.Builder, d *proneta.Device, p *proneta.Port, stats *NoteStats) {
	fmt.Fprintf(b, "\n### Port %s (%s)\n", p.PortGlobalIndex, p.PortID)
	if p.PortDesc != "" {
		fmt.Fprintf(b, "- **Description**: %s\n", p.PortDesc)
	}
	fmt.Fprintf(b, "- **Port ID**: %s\n", p.PortID)
	fmt.Fprintf(b, "- **MAC**: %s\n", p.MAC)

	if !p.Connected() {
		stats.PortsUnconnected++
		b.WriteString("- **Status**: No remote connection\n")
		return
	}
	stats.PortsConnected++

	fmt.Fprintf(b, "- **Remote Port ID**: %s\n", p.RemotePortID)
	remote := r.display(p.RemoteNameOfStation)
	if r.policy.ShouldSuppress(d, p.RemoteNameOfStation) {
		stats.LinksSuppressed++
		fmt.Fprintf(b, "- **Remote Station**: %s\n", remote)
	} else {
		stats.LinksRendered++
		fmt.Fprintf(b, "- **Remote Station**: [[%s]]\n", remote)
	}
	if p.RemoteMAC != "" {
		fmt.Fprintf(b, "- **Remote MAC**: %s\n", p.RemoteMAC)
	}
}
