package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// sessionView is the screen a SessionModel currently shows.
type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// the score table reachable from the menu. Used for local menu play and
// for every SSH session.
type SessionModel struct {
	config     core.RuntimeConfig
	opts       Options
	fixedGame  string // Skip the menu and always play this variant
	view       sessionView
	menu       MenuModel
	gameModel  Model
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session. When gameID is set the session plays
// that variant directly and never shows the menu.
func NewSessionModel(cfg core.RuntimeConfig, opts Options, gameID string) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := SessionModel{
		config:    cfg,
		opts:      opts,
		fixedGame: gameID,
		menu:      NewMenuModel(opts.Store, cfg),
	}
	if gameID != "" {
		m.startGame(gameID)
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.view == viewGame {
		return m.gameModel.Init()
	}
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Every screen learns the size, active or not
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard.embedded = true
		m.view = viewScores
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		if !m.startGame(m.menu.Selected().GameID) {
			// Shouldn't happen since the menu only lists registered games
			m.menu = NewMenuModel(m.opts.Store, m.config)
			return m, nil
		}
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// startGame creates the variant and switches to it.
func (m *SessionModel) startGame(gameID string) bool {
	game, err := registry.Create(gameID)
	if err != nil {
		m.opts.Logger.Warn("cannot create game", "game", gameID, "err", err)
		return false
	}

	opts := m.opts
	opts.Menu = m.fixedGame == ""
	m.gameModel = NewModel(game, m.config, opts)
	m.view = viewGame
	return true
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the score table is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// backToMenu rebuilds the menu so best scores are current.
func (m *SessionModel) backToMenu() {
	m.menu = NewMenuModel(m.opts.Store, m.config)
	m.view = viewMenu
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession starts a session on the local terminal.
func RunSession(cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, opts, ""),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
