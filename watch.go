// ABOUTME: Read-only shot list viewer with live file watching and scrolling
// ABOUTME: Monitors the shot file for changes and displays it with viewport navigation

package main

import (
	"fmt"
	"time"

	"shotlist-editor/config"
	"shotlist-editor/shot"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
)

// watchModel holds the state for the read-only shot list viewer
type watchModel struct {
	shotsPath   string
	shots       []shot.Shot
	limits      config.Limits
	viewport    viewport.Model
	width       int
	height      int
	fileWatcher *fsnotify.Watcher
	lastReload  time.Time
	errorMsg    string
	ready       bool
	cursorPos   int // Currently selected shot index
}

// Key bindings for watch mode
type watchKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

var watchKeys = watchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "go to top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "go to bottom"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Styles for watch mode
var (
	watchTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	watchHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("10"))

	watchStatusStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("15")).
				Padding(0, 1)

	watchHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	watchErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	watchCursorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("240")).
				Foreground(lipgloss.Color("15")).
				Bold(true)
)

// fileChangeMsg is sent when the shot file changes
type fileChangeMsg struct{}

// reloadCompleteMsg is sent after a shot list reload completes
type reloadCompleteMsg struct {
	shots []shot.Shot
	err   error
}

// RunWatchMode starts the read-only viewer with file watching
func RunWatchMode(shotsPath string) error {
	shots, limits, err := loadEditorState(shotsPath, true)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(shotsPath); err != nil {
		watcher.Close()

		return fmt.Errorf("failed to watch shot list file: %w", err)
	}

	m := watchModel{
		shotsPath:   shotsPath,
		shots:       shot.NewList(shots, limits).Shots(),
		limits:      limits,
		fileWatcher: watcher,
		lastReload:  time.Now(),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		watcher.Close()

		return fmt.Errorf("watch mode error: %w", err)
	}

	watcher.Close()

	return nil
}

// Init initializes the watch model
func (m watchModel) Init() tea.Cmd {
	return tea.Batch(
		waitForFileChange(m.fileWatcher),
		tea.EnterAltScreen,
	)
}

// waitForFileChange returns a command that waits for file system events
func waitForFileChange(watcher *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				// Only react to write events
				if event.Op&fsnotify.Write == fsnotify.Write {
					// Debounce: wait a bit for atomic writes to complete
					time.Sleep(100 * time.Millisecond)

					return fileChangeMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				// Log error but continue watching
				debugf("[WATCHER] Error: %v", err)
			}
		}
	}
}

// reloadShots loads the shot list in the background, normalized the same way
// the editor normalizes it
func reloadShots(path string, limits config.Limits) tea.Cmd {
	return func() tea.Msg {
		shots, err := shot.ReadShots(path)
		if err != nil {
			return reloadCompleteMsg{err: err}
		}

		return reloadCompleteMsg{shots: shot.NewList(shots, limits).Shots()}
	}
}

// ensureCursorVisible scrolls viewport to keep cursor in view
func (m *watchModel) ensureCursorVisible() {
	viewportTop := m.viewport.YOffset
	viewportBottom := m.viewport.YOffset + m.viewport.Height - 1

	if m.cursorPos < viewportTop {
		m.viewport.SetYOffset(m.cursorPos)
	} else if m.cursorPos > viewportBottom {
		m.viewport.SetYOffset(m.cursorPos - m.viewport.Height + 1)
	}
}

// Update handles messages and updates the model
func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3 // Title + header row + separator
		footerHeight := 2 // Status + help

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.SetContent(m.renderShotContent())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}

		return m, nil

	case fileChangeMsg:
		// File changed, reload the shot list
		return m, tea.Batch(
			reloadShots(m.shotsPath, m.limits),
			waitForFileChange(m.fileWatcher), // Continue watching
		)

	case reloadCompleteMsg:
		if msg.err != nil {
			m.errorMsg = fmt.Sprintf("Error reloading: %v", msg.err)
		} else {
			m.shots = msg.shots
			m.lastReload = time.Now()
			m.errorMsg = ""

			if m.cursorPos >= len(m.shots) && len(m.shots) > 0 {
				m.cursorPos = len(m.shots) - 1
			}

			m.viewport.SetContent(m.renderShotContent())
		}

		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, watchKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, watchKeys.Up):
			if m.cursorPos > 0 {
				m.cursorPos--
				m.ensureCursorVisible()
				m.viewport.SetContent(m.renderShotContent())
			}

		case key.Matches(msg, watchKeys.Down):
			if m.cursorPos < len(m.shots)-1 {
				m.cursorPos++
				m.ensureCursorVisible()
				m.viewport.SetContent(m.renderShotContent())
			}

		case key.Matches(msg, watchKeys.PageUp):
			m.cursorPos -= m.viewport.Height
			if m.cursorPos < 0 {
				m.cursorPos = 0
			}
			m.ensureCursorVisible()
			m.viewport.SetContent(m.renderShotContent())

		case key.Matches(msg, watchKeys.PageDown):
			m.cursorPos += m.viewport.Height
			if m.cursorPos >= len(m.shots) {
				m.cursorPos = len(m.shots) - 1
			}
			if m.cursorPos < 0 {
				m.cursorPos = 0
			}
			m.ensureCursorVisible()
			m.viewport.SetContent(m.renderShotContent())

		case key.Matches(msg, watchKeys.Top):
			m.cursorPos = 0
			m.viewport.GotoTop()
			m.viewport.SetContent(m.renderShotContent())

		case key.Matches(msg, watchKeys.Bottom):
			if len(m.shots) > 0 {
				m.cursorPos = len(m.shots) - 1
			}
			m.viewport.GotoBottom()
			m.viewport.SetContent(m.renderShotContent())

		case key.Matches(msg, watchKeys.Reload):
			return m, reloadShots(m.shotsPath, m.limits)
		}
	}

	// Update viewport
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// View renders the view
func (m watchModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := watchTitleStyle.Render(fmt.Sprintf("Shot List Viewer: %s", m.shotsPath))

	header := watchHeaderStyle.Render(fmt.Sprintf("%-3s %-8s %-7s %-4s %-50s",
		"#", "ID", "Name", "Dur", "Description"))

	viewportContent := m.viewport.View()

	status := m.renderStatus()
	help := m.renderHelp()

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s", title, header, viewportContent, status, help)
}

// renderShotContent renders the full shot list for the viewport
func (m watchModel) renderShotContent() string {
	var content string

	for i, s := range m.shots {
		line := fmt.Sprintf("%-3d %-8s %-7s %3ds %-50s",
			i+1,
			truncate(s.ID, 8),
			s.Name,
			s.Duration,
			truncate(s.Description, 50),
		)

		// Highlight cursor line
		if i == m.cursorPos {
			line = watchCursorStyle.Render(line)
		}

		if i < len(m.shots)-1 {
			content += line + "\n"
		} else {
			content += line // No trailing newline on last shot
		}
	}

	return content
}

// renderStatus renders the status bar
func (m watchModel) renderStatus() string {
	reloadTime := m.lastReload.Format("15:04:05")

	total := 0
	for _, s := range m.shots {
		total += s.Duration
	}

	var statusText string
	if m.errorMsg != "" {
		statusText = fmt.Sprintf("%d shots | %d/%ds | Cursor: %d | %s",
			len(m.shots),
			total,
			m.limits.MaxTotalDuration,
			m.cursorPos+1,
			watchErrorStyle.Render(m.errorMsg),
		)
	} else {
		statusText = fmt.Sprintf("%d shots | %d/%ds | Cursor: %d | Last reload: %s",
			len(m.shots),
			total,
			m.limits.MaxTotalDuration,
			m.cursorPos+1,
			reloadTime,
		)
	}

	return watchStatusStyle.Width(m.width).Render(statusText)
}

// renderHelp renders the help text
func (m watchModel) renderHelp() string {
	return watchHelpStyle.Render("↑/↓: move cursor | pgup/pgdn: page | g/G: top/bottom | r: reload | q: quit")
}
