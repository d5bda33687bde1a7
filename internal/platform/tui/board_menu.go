package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/torus-snake/internal/core"
)

// BoardSizes are the board sides offered by the picker after the config entry.
var BoardSizes = []int{6, 8, 12, 16, 20}

// BoardSizer is implemented by games whose board side can be chosen per
// session before Reset.
type BoardSizer interface {
	SetBoardWidth(width int)
}

// BoardSelection holds the user's choice from the board picker.
type BoardSelection struct {
	Width int // 0 = use the configured width
}

// BoardModel lets users pick the board side before a round starts.
type BoardModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection BoardSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewBoardModel creates a new board picker.
func NewBoardModel(width, height int) BoardModel {
	return BoardModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(BoardSizes) {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		if m.cursor > 0 {
			m.selection = BoardSelection{Width: BoardSizes[m.cursor-1]}
		}
		return m, nil
	case MenuActionBack:
		m.back = true
		return m, nil
	}
	return m, nil
}

// View renders the board picker.
func (m BoardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S N A K E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select board size:", m.width))
	b.WriteString("\n\n")

	options := make([]string, 0, len(BoardSizes)+1)
	options = append(options, "From config")
	for _, w := range BoardSizes {
		options = append(options, fmt.Sprintf("%d x %d", w, w))
	}

	for i, opt := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-12s", cursor, opt), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m BoardModel) Selected() *BoardSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m BoardModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m BoardModel) WantsBack() bool {
	return m.back
}

// boardPicker wraps BoardModel so it exits the program once a choice is made.
type boardPicker struct {
	BoardModel
}

func (p boardPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := p.BoardModel.Update(msg)
	p.BoardModel = next.(BoardModel)
	if !p.choosing || p.back {
		return p, tea.Quit
	}
	return p, cmd
}

// RunBoardSelector runs the board picker on its own and returns the choice.
// A nil selection means the user backed out or quit.
func RunBoardSelector(cfg core.RuntimeConfig) (*BoardSelection, core.RuntimeConfig, error) {
	p := tea.NewProgram(
		boardPicker{NewBoardModel(cfg.ScreenW, cfg.ScreenH)},
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(boardPicker)
	if !ok {
		return nil, cfg, nil
	}
	cfg.ScreenW, cfg.ScreenH = m.width, m.height

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}
	return m.Selected(), cfg, nil
}
