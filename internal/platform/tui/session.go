package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/registry"
)

type stage int

const (
	stageMenu stage = iota
	stageBoard
	stageGame
	stageResults
)

// SessionModel manages the full flow of one player: menu -> board -> game
// -> menu. Every session creates its own game instances, so sessions never
// share a World.
type SessionModel struct {
	config    core.RuntimeConfig
	username  string
	sessionID string
	results   *Results

	stage      stage
	menu       MenuModel
	board      BoardModel
	resultsVw  ResultsModel
	gameModel  *Model
	selectedID string
	quitting   bool
}

// NewSessionModel creates a new session model with an empty round history.
func NewSessionModel(cfg core.RuntimeConfig, username, sessionID string) SessionModel {
	results := NewResults()
	return SessionModel{
		config:    cfg,
		username:  username,
		sessionID: sessionID,
		results:   results,
		menu:      NewMenuModel(results, cfg),
	}
}

// Results returns the rounds finished in this session.
func (m SessionModel) Results() *Results {
	return m.results
}

// SessionID returns the identifier used in server logs.
func (m SessionModel) SessionID() string {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.stage {
	case stageBoard:
		return m.updateBoard(msg)
	case stageGame:
		return m.updateGame(msg)
	case stageResults:
		return m.updateResults(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.stage = stageMenu
	m.gameModel = nil
	m.menu = NewMenuModel(m.results, m.config)
	return m, m.menu.Init()
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

	case m.menu.WantsResults():
		m.stage = stageResults
		m.resultsVw = NewResultsModel(m.results, m.config.ScreenW, m.config.ScreenH)
		return m, m.resultsVw.Init()

	case m.menu.Selected() != nil:
		m.selectedID = m.menu.Selected().GameID
		m.config = m.menu.Config()

		game, err := registry.Create(m.selectedID)
		if err != nil {
			// Menu only lists registered games
			return m.toMenu()
		}
		if _, ok := game.(BoardSizer); ok {
			m.stage = stageBoard
			m.board = NewBoardModel(m.config.ScreenW, m.config.ScreenH)
			return m, m.board.Init()
		}
		return m.startGame(game)
	}

	return m, cmd
}

// updateBoard handles updates while picking the board size.
func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if boardModel, ok := next.(BoardModel); ok {
		m.board = boardModel
	}

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.board.WantsBack():
		return m.toMenu()
	case m.board.Selected() != nil:
		game, err := registry.Create(m.selectedID)
		if err != nil {
			return m.toMenu()
		}
		if sizer, ok := game.(BoardSizer); ok {
			sizer.SetBoardWidth(m.board.Selected().Width)
		}
		return m.startGame(game)
	}
	return m, cmd
}

func (m SessionModel) startGame(game registry.Game) (tea.Model, tea.Cmd) {
	gameModel := NewModel(game, m.results, m.config)
	m.gameModel = &gameModel
	m.stage = stageGame
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.gameModel.BackToMenu() {
		return m.toMenu()
	}

	return m, cmd
}

// updateResults handles updates on the results screen.
func (m SessionModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.resultsVw.Update(msg)
	if resultsModel, ok := next.(ResultsModel); ok {
		m.resultsVw = resultsModel
	}

	if m.resultsVw.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.resultsVw.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.stage {
	case stageBoard:
		return m.board.View()
	case stageGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case stageResults:
		return m.resultsVw.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, "local", "local"),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
