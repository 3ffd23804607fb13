package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options holds the optional collaborators of a Model.
type Options struct {
	Store         *storage.Store // Finished runs are recorded here when set
	Logger        *log.Logger    // Defaults to a discarding logger
	ScreenshotDir string         // Defaults to engine.DefaultScreenshotDir()
	Menu          bool           // Enables the back key while paused or after a crash
}

// Model is the Bubble Tea model for playing one game.
type Model struct {
	id         int // Tick chain owned by this model
	loop       *engine.Loop
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	shotDir    string
	quitting   bool
	backToMenu bool
}

// NewModel resets game and wraps it in a model sized from cfg.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = engine.DefaultScreenshotDir()
	}

	game.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH))
	w, h := game.Bounds()
	loop := engine.NewLoop(game, core.NewViewport(screen, w, h))
	loop.OnGameOver(opts.Store.Recorder(game.ID(), cfg.Seed, opts.Logger))

	hm := help.New()
	hm.Width = cfg.ScreenW

	keys := DefaultKeyMap()
	keys.Back.SetEnabled(opts.Menu)

	return Model{
		id:      nextID(),
		loop:    loop,
		screen:  screen,
		config:  cfg,
		keys:    keys,
		help:    hm,
		logger:  opts.Logger,
		shotDir: opts.ScreenshotDir,
	}
}

// playHeight is the screen height left for the playfield.
func playHeight(termHeight int) int {
	return max(termHeight-helpHeight, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.id, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the bound action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if key.Matches(msg, m.keys.Back) {
		// Leaving mid-run is not allowed; the title screen counts as stopped
		if st := m.loop.State(); !st.Started || st.Paused || st.GameOver {
			m.backToMenu = true
		}
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.loop.Press(a)
	}

	return m, nil
}

// handleResize resizes the character buffer. The game keeps running in
// world units, so nothing is reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}
	m.loop.Step()
	return m, tickCmd(m.id, m.config.TickRate)
}

// saveScreenshot saves the current frame as plain text.
func (m Model) saveScreenshot() {
	m.loop.Draw()
	path, err := engine.SaveScreenshot(m.shotDir, m.loop.Game().ID(), m.screen, time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current frame and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.loop.Draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.loop.State()
}

// Run starts the Bubble Tea program for game on the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
