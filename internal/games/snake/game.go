package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/torus-snake/internal/config"
	"github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/registry"
)

// MiniWidth is the board side of the small variant.
const MiniWidth = 4

const hudHeight = 2

// Game adapts a World to the terminal platform. It owns the RNG, paces
// World ticks against platform frames and draws the board.
type Game struct {
	id    string
	title string

	// widthOverride fixes the board size regardless of config. 0 = config.
	widthOverride int
	// boardWidth is the per-session choice from the board picker. 0 = unset.
	boardWidth int

	cfg            config.SnakeConfig
	configErr      error // from the latest Reset, nil when the file was usable
	rng            *rand.Rand
	world          *World
	tick           uint64
	moveEveryTicks int
	moveTicker     int

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// configPath is set once by the CLI before any game is created and only
// read afterwards.
var configPath string

// SetConfigPath sets the YAML config file used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// LoadConfig loads and validates the snake config from the path set with
// SetConfigPath. On error the returned config is the default one.
func LoadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(configPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		return config.DefaultSnakeConfig(), err
	}
	return cfg, nil
}

// New creates the standard Snake game, sized from config.
func New() *Game {
	return &Game{id: "snake", title: "Snake"}
}

// NewMini creates the 4×4 Snake game.
func NewMini() *Game {
	return &Game{id: "snake_mini", title: "Snake (Mini 4x4)", widthOverride: MiniWidth}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_mini", func() registry.Game {
		return NewMini()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// SetBoardWidth picks the board side for the next Reset. It takes priority
// over config but not over a fixed-size variant. 0 keeps the config value.
func (g *Game) SetBoardWidth(width int) {
	g.boardWidth = width
}

// World exposes the underlying engine.
func (g *Game) World() *World {
	return g.world
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg, g.configErr = LoadConfig()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.moveTicker = 0
	g.moveEveryTicks = g.cfg.Timing.MoveEveryTicks
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	width := g.cfg.Board.Width
	switch {
	case g.widthOverride > 0:
		width = g.widthOverride
	case g.boardWidth > 0:
		width = g.boardWidth
	}
	width = max(width, MinWidth)

	size := width * width
	spawn := Cell(g.cfg.Board.SpawnIndex)
	if spawn < InitialLength-1 || int(spawn) >= size {
		spawn = Cell(InitialLength - 1 + g.rng.Intn(size-(InitialLength-1)))
	}

	g.world = NewWorld(width, spawn, g.rng)
	g.Resize(g.screenW, g.screenH)
}

// Resize adapts to a new terminal size without restarting the round.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	if g.world != nil {
		g.tooSmall = g.screenW < g.boardCols()+2 || g.screenH < g.world.Width()+2+hudHeight
	}
}

// boardCols is the board width in terminal columns (two per cell).
func (g *Game) boardCols() int {
	return g.world.Width() * 2
}

// Step advances the platform by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	status := g.world.Status()

	if input.Has(core.ActionRestart) && status.Terminal() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if status == StatusNone && (input.Has(core.ActionConfirm) || input.Has(core.ActionJump)) {
		g.world.StartGame()
	}

	if input.Has(core.ActionPause) && g.world.Status() == StatusPlaying {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.world.Status() != StatusPlaying {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.world.Step()
	}

	return core.StepResult{State: g.State()}
}

// processInput forwards direction keys to the World in the order they were
// pressed, so the last accepted turn of the frame wins.
func (g *Game) processInput(input core.InputFrame) {
	for _, a := range input.Pressed() {
		switch a {
		case core.ActionUp:
			g.world.ChangeDirection(DirUp)
		case core.ActionDown:
			g.world.ChangeDirection(DirDown)
		case core.ActionLeft:
			g.world.ChangeDirection(DirLeft)
		case core.ActionRight:
			g.world.ChangeDirection(DirRight)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Points(),
		GameOver: g.world.Status().Terminal(),
		Won:      g.world.Status() == StatusWon,
		Paused:   g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	originX := (dst.Width() - g.boardCols() - 2) / 2
	originY := hudHeight
	dst.DrawBox(core.NewRect(originX, originY, g.boardCols()+2, g.world.Width()+2))

	g.renderBoard(dst, originX+1, originY+1)

	switch g.world.Status() {
	case StatusNone:
		g.renderOverlay(dst, "S N A K E", "Press Enter to start")
	case StatusWon:
		g.renderOverlay(dst, g.world.StatusText(), fmt.Sprintf("Points: %d  R: restart", g.world.Points()))
	case StatusLost:
		g.renderOverlay(dst, g.world.StatusText(), fmt.Sprintf("Points: %d  R: restart", g.world.Points()))
	default:
		if g.paused {
			g.renderOverlay(dst, "Paused", "Press P to continue")
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Points: %d  Length: %d  %s", g.title, g.world.Points(), g.world.Len(), g.world.StatusText())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws reward and snake with the board's top-left cell at (x0, y0).
func (g *Game) renderBoard(dst *core.Screen, x0, y0 int) {
	width := g.world.Width()
	cellAt := func(c Cell) (int, int) {
		return x0 + int(c)%width*2, y0 + int(c)/width
	}

	if reward, ok := g.world.RewardCell(); ok {
		x, y := cellAt(reward)
		dst.SetColor(x, y, '*', core.ColorBrightRed)
	}

	head := g.world.Head()
	for i, c := range g.world.Cells() {
		// A crashed head overlaps a body cell; keep the head visible.
		if i == 0 || c == head {
			continue
		}
		x, y := cellAt(c)
		dst.SetColor(x, y, '█', core.ColorGreen)
		dst.SetColor(x+1, y, '█', core.ColorGreen)
	}

	x, y := cellAt(head)
	headColor := core.ColorBrightYellow
	if g.world.Status() == StatusLost {
		headColor = core.ColorRed
	}
	dst.SetColor(x, y, '█', headColor)
	dst.SetColor(x+1, y, '█', headColor)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Points: %d, Status: %s\n", g.tick, g.world.Points(), g.world.StatusText())
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Head: %d\n", g.world.Len(), g.world.Direction(), g.world.Head())
	if reward, ok := g.world.RewardCell(); ok {
		fmt.Fprintf(&b, "Reward: %d\n", reward)
	}
	fmt.Fprintf(&b, "Paused: %v\n", g.paused)
	return b.String()
}
