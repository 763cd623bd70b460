package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF"))

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(1, 2)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFF00"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// RenderConsole writes the human summary of the run to w.
func (r *Report) RenderConsole(w io.Writer) {
	title := "PRONETA export converted"
	if r.DryRun {
		title += " (dry run)"
	}

	rows := []string{
		row("Devices found", r.DevicesFound),
		row("Notes written", r.NotesWritten),
	}
	if r.NotesFailed > 0 {
		rows = append(rows, warnStyle.Render(row("Notes failed", r.NotesFailed)))
	}
	rows = append(rows,
		row("Ports", r.PortsTotal),
		row("Connected ports", r.PortsConnected),
		row("Links rendered", r.LinksRendered),
		row("Links suppressed", r.LinksSuppressed),
	)

	if len(r.Roles) > 0 {
		rows = append(rows, "")
		for _, role := range sortedRoles(r.Roles) {
			rows = append(rows, row("Role "+role, r.Roles[role]))
		}
	}

	rows = append(rows, "",
		row("Islands", r.Islands),
		row("Largest island", r.LargestIsland),
	)
	if r.DanglingRefs > 0 {
		rows = append(rows, warnStyle.Render(row("Dangling refs", r.DanglingRefs)))
	}
	if r.LinklessDevices > 0 {
		rows = append(rows, row("Link-less devices", r.LinklessDevices))
	}
	if r.NameCollisions > 0 {
		rows = append(rows, warnStyle.Render(row("Name collisions", r.NameCollisions)))
	}

	box := statsBoxStyle.Render(strings.Join(rows, "\n"))
	footer := footerStyle.Render(fmt.Sprintf("run %s completed in %dms", r.RunID, r.DurationMS))

	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, box)
	fmt.Fprintln(w, footer)
}

func row(label string, value int) string {
	return fmt.Sprintf("%-18s %6d", label, value)
}

func sortedRoles(roles map[string]int) []string {
	names := make([]string, 0, len(roles))
	for name := range roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
