// Package convert runs the export-to-vault pipeline: decode the
// PRONETA XML, build the link-suppression context over the whole
// dataset, render one note per device, and roll the counters up into a
// run report.
package convert

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/SemonoffArt/proneta2obsidian/pkg/linkpolicy"
	"github.com/SemonoffArt/proneta2obsidian/pkg/proneta"
	"github.com/SemonoffArt/proneta2obsidian/pkg/report"
	"github.com/SemonoffArt/proneta2obsidian/pkg/station"
	"github.com/SemonoffArt/proneta2obsidian/pkg/topology"
	"github.com/SemonoffArt/proneta2obsidian/pkg/vault"
)

// Options select the input, output and rule variants for one run.
type Options struct {
	Input     string
	OutputDir string
	DryRun    bool
	Naming    station.Config
}

// Converter executes conversion runs. Safe to reuse between runs; a
// watch loop builds one Converter and calls Run on every change.
type Converter struct {
	opts Options
	log  *slog.Logger
}

// New returns a converter for the given options. A nil logger
// discards all run logging.
func New(opts Options, log *slog.Logger) *Converter {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Converter{opts: opts, log: log}
}

// Run executes one conversion and returns its report. The returned
// error covers failures that invalidate the whole run; a note that
// fails to write is logged, counted and skipped instead.
func (c *Converter) Run() (*report.Report, error) {
	rep := report.New(c.opts.Input, c.opts.OutputDir)
	rep.DryRun = c.opts.DryRun

	export, err := proneta.DecodeFile(c.opts.Input)
	if err != nil {
		return nil, err
	}
	devices := export.Devices()
	rep.DevicesFound = len(devices)
	c.log.Info("export decoded", "input", c.opts.Input, "devices", len(devices))

	policy := linkpolicy.BuildSuppressionContext(devices)
	c.log.Debug("suppression context built",
		"unmanaged_referenced", policy.UnmanagedReferenced(),
		"scalance_referenced", policy.ScalanceReferenced(),
	)

	renderer := vault.NewRenderer(station.NewNormalizer(c.opts.Naming), policy)
	writer := vault.NewWriter(c.opts.OutputDir, c.opts.DryRun)
	if err := writer.EnsureDir(); err != nil {
		return nil, err
	}

	seen := make(map[string]int, len(devices))
	var buf bytes.Buffer
	for i := range devices {
		d := &devices[i]
		rep.Roles[linkpolicy.ClassifyRole(d.DeviceType).String()]++

		buf.Reset()
		stats, err := renderer.RenderNote(&buf, d)
		if err != nil {
			c.log.Warn("note skipped", "device", d.Key(), "error", err)
			rep.NotesFailed++
			continue
		}

		name := renderer.NoteName(d)
		path, err := writer.WriteNote(name, buf.Bytes())
		if err != nil {
			c.log.Warn("note skipped", "device", d.Key(), "error", err)
			rep.NotesFailed++
			continue
		}
		seen[name]++

		rep.NotesWritten++
		rep.PortsTotal += stats.PortsTotal
		rep.PortsConnected += stats.PortsConnected
		rep.PortsUnconnected += stats.PortsUnconnected
		rep.LinksRendered += stats.LinksRendered
		rep.LinksSuppressed += stats.LinksSuppressed
		c.log.Debug("note rendered",
			"device", name,
			"path", path,
			"links", stats.LinksRendered,
			"suppressed", stats.LinksSuppressed,
		)
	}

	for _, n := range seen {
		if n > 1 {
			rep.NameCollisions += n - 1
		}
	}

	topo := topology.BuildIndex(devices).Summarize()
	rep.Islands = topo.Islands
	rep.LargestIsland = topo.LargestIsland
	rep.DanglingRefs = topo.DanglingRefs
	rep.LinklessDevices = topo.Linkless

	rep.Finish()
	c.log.Info("conversion complete",
		"notes", rep.NotesWritten,
		"failed", rep.NotesFailed,
		"links", rep.LinksRendered,
		"suppressed", rep.LinksSuppressed,
		"duration_ms", rep.DurationMS,
	)
	return rep, nil
}
