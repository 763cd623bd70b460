// Package report captures what a conversion run did and presents it
// as JSON or a console summary.
package report

import (
	"time"

	"github.com/google/uuid"
)

// Report is the full record of one conversion run.
type Report struct {
	RunID      string    `json:"run_id"`
	Input      string    `json:"input"`
	OutputDir  string    `json:"output_dir"`
	DryRun     bool      `json:"dry_run,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	DurationMS int64     `json:"duration_ms"`

	DevicesFound int `json:"devices_found"`
	NotesWritten int `json:"notes_written"`
	NotesFailed  int `json:"notes_failed,omitempty"`

	PortsTotal       int `json:"ports_total"`
	PortsConnected   int `json:"ports_connected"`
	PortsUnconnected int `json:"ports_unconnected"`
	LinksRendered    int `json:"links_rendered"`
	LinksSuppressed  int `json:"links_suppressed"`

	// Roles counts devices per link-policy role.
	Roles map[string]int `json:"roles"`

	Islands         int `json:"islands"`
	LargestIsland   int `json:"largest_island"`
	DanglingRefs    int `json:"dangling_refs"`
	LinklessDevices int `json:"linkless_devices"`
	NameCollisions  int `json:"name_collisions"`
}

// New returns a report stamped with a fresh run ID and start time.
func New(input, outputDir string) *Report {
	return &Report{
		RunID:     uuid.New().String(),
		Input:     input,
		OutputDir: outputDir,
		StartedAt: time.Now(),
		Roles:     make(map[string]int),
	}
}

// Finish records the total run duration.
func (r *Report) Finish() {
	r.DurationMS = time.Since(r.StartedAt).Milliseconds()
}
