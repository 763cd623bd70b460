package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SemonoffArt/proneta2obsidian/pkg/config"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	previewStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(1, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type keyMap struct {
	Reload key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload vault"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reload, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Reload, k.Quit}}
}

// noteItem is one vault note in the browser list.
type noteItem struct {
	name  string
	path  string
	ports int
	links int
	plain int
}

func (n noteItem) Title() string { return n.name }

func (n noteItem) Description() string {
	return fmt.Sprintf("%d ports, %d links, %d plain refs", n.ports, n.links, n.plain)
}

func (n noteItem) FilterValue() string { return n.name }

type model struct {
	vaultDir    string
	notes       list.Model
	help        help.Model
	keys        keyMap
	preview     string
	previewPath string
	err         error
	width       int
	height      int
}

func initialModel(vaultDir string) model {
	items, err := scanVault(vaultDir)

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("Vault %s (%d notes)", vaultDir, len(items))
	l.SetShowHelp(false)

	return model{
		vaultDir: vaultDir,
		notes:    l,
		help:     help.New(),
		keys:     keys,
		err:      err,
	}
}

// scanVault lists the vault's notes with per-note reference counts.
func scanVault(dir string) ([]list.Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read vault dir: %w", err)
	}

	items := make([]list.Item, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read note %s: %w", entry.Name(), err)
		}
		content := string(body)

		links := strings.Count(content, "[[")
		remotes := strings.Count(content, "- **Remote Station**: ")
		items = append(items, noteItem{
			name:  strings.TrimSuffix(entry.Name(), ".md"),
			path:  path,
			ports: strings.Count(content, "### Port "),
			links: links,
			plain: remotes - links,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].(noteItem).name < items[j].(noteItem).name
	})
	return items, nil
}

func loadNote(path string) string {
	body, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("unable to read note: %v", err)
	}
	return string(body)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.notes.SetSize(msg.Width/2, msg.Height-6)

	case tea.KeyMsg:
		// Let the list's filter input see every keystroke.
		if m.notes.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reload):
			items, err := scanVault(m.vaultDir)
			m.err = err
			if err == nil {
				m.notes.SetItems(items)
				m.notes.Title = fmt.Sprintf("Vault %s (%d notes)", m.vaultDir, len(items))
				m.previewPath = ""
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)

	if it, ok := m.notes.SelectedItem().(noteItem); ok && it.path != m.previewPath {
		m.previewPath = it.path
		m.preview = loadNote(it.path)
	}
	return m, cmd
}

func (m model) View() string {
	if m.err != nil {
		return titleStyle.Render("PRONETA Vault Browser") + "\n\n" +
			errorStyle.Render(fmt.Sprintf("  %v", m.err)) + "\n\n" +
			helpStyle.Render(m.help.View(m.keys))
	}

	preview := m.renderPreview()
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.notes.View(), preview)

	return titleStyle.Render("PRONETA Vault Browser") + "\n" +
		body + "\n" +
		helpStyle.Render(m.help.View(m.keys))
}

func (m model) renderPreview() string {
	width := m.width/2 - 4
	if width < 20 {
		width = 20
	}
	maxLines := m.height - 8
	if maxLines < 5 {
		maxLines = 5
	}

	lines := strings.Split(m.preview, "\n")
	if len(lines) > maxLines {
		lines = append(lines[:maxLines], "...")
	}
	return previewStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func main() {
	vaultDir := flag.String("vault", config.DefaultOutputDir, "Vault directory to browse")
	flag.Parse()

	p := tea.NewProgram(initialModel(*vaultDir), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
