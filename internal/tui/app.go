package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/starfishstorage/sfcli/internal/client"
	"github.com/starfishstorage/sfcli/internal/config"
)

// App is the interactive volume browser.
type App struct {
	volumes []client.Volume
	config  *config.Config
}

// New creates a browser over an already-fetched volume list. The list is
// fetched once by the caller; the browser never refreshes it.
func New(volumes []client.Volume, cfg *config.Config) *App {
	return &App{
		volumes: volumes,
		config:  cfg,
	}
}

// Run starts the browser. Bubble Tea owns the terminal state: raw mode,
// the alternate screen and mouse capture are entered before the first
// draw and restored on every exit path, including the error path.
func (a *App) Run() error {
	model := newBrowserModel(a.volumes, a.config.TUI.Icons)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
