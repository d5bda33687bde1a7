package snake

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/vovakirdan/torus-snake/internal/config"
	"github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/registry"
)

var testCfg = core.RuntimeConfig{
	Seed:    12345,
	ScreenW: 80,
	ScreenH: 24,
}

// isolate keeps user and working-directory configs out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { SetConfigPath("") })
}

// useConfig points the game at a YAML file written for this test.
func useConfig(t *testing.T, yaml string) {
	t.Helper()
	isolate(t)
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	SetConfigPath(path)
}

func press(actions ...core.Action) core.InputFrame {
	input := core.NewInputFrame()
	for _, a := range actions {
		input.Set(a)
	}
	return input
}

func TestDeterminism(t *testing.T) {
	isolate(t)

	g1 := New()
	g1.Reset(testCfg)
	g2 := New()
	g2.Reset(testCfg)

	for i := range 400 {
		var input core.InputFrame
		switch i {
		case 0:
			input = press(core.ActionConfirm)
		case 50:
			input = press(core.ActionDown)
		case 120:
			input = press(core.ActionLeft)
		case 200:
			input = press(core.ActionUp)
		default:
			input = press()
		}
		g1.Step(input)
		g2.Step(input)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestResetUsesConfig(t *testing.T) {
	useConfig(t, "board:\n  width: 8\n  spawn_index: 20\ntiming:\n  move_every_ticks: 2\n")

	g := New()
	g.Reset(testCfg)

	if g.configErr != nil {
		t.Fatalf("config error = %v", g.configErr)
	}
	w := g.World()
	if w.Width() != 8 || w.Head() != 20 || w.Len() != InitialLength {
		t.Errorf("world width %d head %d len %d, expected 8/20/%d", w.Width(), w.Head(), w.Len(), InitialLength)
	}
	if w.Status() != StatusNone {
		t.Errorf("Status = %s, expected No Status before start", w.Status())
	}
}

func TestInvalidConfigFallsBack(t *testing.T) {
	useConfig(t, "board:\n  width: 1\n")

	g := New()
	g.Reset(testCfg)

	if g.configErr == nil {
		t.Error("Reset should keep the config error for the invalid width")
	}
	if g.World().Width() != 16 {
		t.Errorf("Width = %d, expected default 16", g.World().Width())
	}
}

func TestLoadConfig(t *testing.T) {
	useConfig(t, "board:\n  width: 6\n")
	cfg, err := LoadConfig()
	if err != nil || cfg.Board.Width != 6 {
		t.Errorf("LoadConfig() = %+v, %v", cfg.Board, err)
	}

	useConfig(t, "timing:\n  move_every_ticks: 0\n")
	cfg, err = LoadConfig()
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("LoadConfig() error = %v, expected ErrInvalidConfig", err)
	}
	if cfg != config.DefaultSnakeConfig() {
		t.Errorf("invalid file should yield defaults, got %+v", cfg)
	}
}

func TestMiniVariant(t *testing.T) {
	useConfig(t, "board:\n  width: 10\n")

	g := NewMini()
	g.Reset(testCfg)

	if g.ID() != "snake_mini" {
		t.Errorf("ID() = %q", g.ID())
	}
	if g.World().Width() != MiniWidth {
		t.Errorf("Width = %d, expected %d regardless of config", g.World().Width(), MiniWidth)
	}
}

func TestConfirmStartsGame(t *testing.T) {
	useConfig(t, "board:\n  width: 8\n  spawn_index: 20\ntiming:\n  move_every_ticks: 1\n")

	g := New()
	g.Reset(testCfg)

	// Nothing moves before the player starts
	for range 5 {
		g.Step(press())
	}
	if g.World().Head() != 20 || g.World().Status() != StatusNone {
		t.Fatalf("game advanced before start: head %d status %s", g.World().Head(), g.World().Status())
	}

	g.Step(press(core.ActionConfirm))
	if g.World().Status() != StatusPlaying {
		t.Fatalf("Status = %s after Confirm, expected Playing", g.World().Status())
	}
	if g.World().Head() != 21 {
		t.Errorf("Head = %d, expected 21 after the first move", g.World().Head())
	}
}

func TestDirectionInput(t *testing.T) {
	useConfig(t, "board:\n  width: 8\n  spawn_index: 20\ntiming:\n  move_every_ticks: 1\n")

	g := New()
	g.Reset(testCfg)
	g.Step(press(core.ActionJump)) // head 21

	g.Step(press(core.ActionDown))
	if g.World().Head() != 29 || g.World().Direction() != DirDown {
		t.Errorf("after Down: head %d dir %s, expected 29 down", g.World().Head(), g.World().Direction())
	}

	// Reversal is ignored, the snake keeps going down
	g.Step(press(core.ActionUp))
	if g.World().Head() != 37 || g.World().Direction() != DirDown {
		t.Errorf("after Up: head %d dir %s, expected 37 down", g.World().Head(), g.World().Direction())
	}
}

func TestTurnsFollowPressOrder(t *testing.T) {
	tests := []struct {
		name    string
		keys    []core.Action
		wantDir Direction
		wantAt  Cell
	}{
		{"down then up", []core.Action{core.ActionDown, core.ActionUp}, DirUp, 13},
		{"up then down", []core.Action{core.ActionUp, core.ActionDown}, DirDown, 29},
		{"left then up", []core.Action{core.ActionLeft, core.ActionUp}, DirUp, 13},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			useConfig(t, "board:\n  width: 8\n  spawn_index: 20\ntiming:\n  move_every_ticks: 1\n")

			g := New()
			g.Reset(testCfg)
			g.Step(press(core.ActionConfirm)) // head 21

			g.Step(press(tc.keys...))
			if g.World().Direction() != tc.wantDir || g.World().Head() != tc.wantAt {
				t.Errorf("head %d dir %s, expected %d %s", g.World().Head(), g.World().Direction(), tc.wantAt, tc.wantDir)
			}
		})
	}
}

func TestMovePacing(t *testing.T) {
	useConfig(t, "board:\n  width: 8\n  spawn_index: 20\ntiming:\n  move_every_ticks: 4\n")

	g := New()
	g.Reset(testCfg)
	g.Step(press(core.ActionConfirm)) // ticker 1
	for range 2 {
		g.Step(press())
	}
	if g.World().Head() != 20 {
		t.Fatalf("moved early: head %d", g.World().Head())
	}
	g.Step(press())
	if g.World().Head() != 21 {
		t.Errorf("Head = %d, expected 21 on the fourth frame", g.World().Head())
	}
}

func TestPause(t *testing.T) {
	useConfig(t, "board:\n  width: 8\n  spawn_index: 20\ntiming:\n  move_every_ticks: 1\n")

	g := New()
	g.Reset(testCfg)

	// Pause does nothing before the game starts
	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Fatal("pause should be ignored before start")
	}

	g.Step(press(core.ActionConfirm))
	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("State().Paused should be true")
	}
	head := g.World().Head()
	for range 5 {
		g.Step(press())
	}
	if g.World().Head() != head {
		t.Errorf("paused game moved from %d to %d", head, g.World().Head())
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("second Pause should resume")
	}
}

func TestRestartAfterLoss(t *testing.T) {
	isolate(t)

	g := New()
	g.Reset(testCfg)
	g.Step(press(core.ActionConfirm))

	// Restart is ignored while playing
	g.Step(press(core.ActionRestart))
	if g.World().Status() != StatusPlaying {
		t.Fatalf("Status = %s, restart should be ignored mid-game", g.World().Status())
	}

	g.world.status = StatusLost
	if !g.State().GameOver {
		t.Fatal("State().GameOver should be true after a loss")
	}

	g.Step(press(core.ActionRestart))
	if g.World().Status() != StatusNone || g.State().GameOver || g.State().Score != 0 {
		t.Errorf("after restart: status %s state %+v", g.World().Status(), g.State())
	}
	if g.tick != 0 {
		t.Errorf("tick = %d, expected 0 after restart", g.tick)
	}
}

func TestScoreTracksPoints(t *testing.T) {
	useConfig(t, "board:\n  width: 8\n  spawn_index: 20\ntiming:\n  move_every_ticks: 1\n")

	g := New()
	g.Reset(testCfg)
	g.world.reward = 21

	result := g.Step(press(core.ActionConfirm))
	if result.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", result.State.Score)
	}
}

func TestTooSmallScreen(t *testing.T) {
	isolate(t)

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 10})
	g.Step(press(core.ActionConfirm))
	g.Step(press())

	if !g.tooSmall {
		t.Fatal("16-wide board should not fit a 20x10 screen")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}

func TestRender(t *testing.T) {
	useConfig(t, "board:\n  width: 8\n  spawn_index: 20\n")

	g := New()
	g.Reset(testCfg)
	screen := core.NewScreen(testCfg.ScreenW, testCfg.ScreenH)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Snake", "Points: 0", "Press Enter to start", "┌"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	g.Step(press(core.ActionConfirm))
	screen.Clear()
	g.Render(screen)

	var green, heads, rewards int
	for y := range screen.Height() {
		for x := range screen.Width() {
			switch c := screen.GetCell(x, y); {
			case c.Rune == '█' && c.Color == core.ColorGreen:
				green++
			case c.Rune == '█' && c.Color == core.ColorBrightYellow:
				heads++
			case c.Rune == '*' && c.Color == core.ColorBrightRed:
				rewards++
			}
		}
	}
	// Two columns per cell
	if heads != 2 || green != 2*(InitialLength-1) || rewards != 1 {
		t.Errorf("cells drawn: head %d body %d reward %d", heads, green, rewards)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"snake", "snake_mini"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("registry.Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestStateBeforeReset(t *testing.T) {
	if got := New().State(); got != (core.GameState{}) {
		t.Errorf("State() before Reset = %+v, expected zero", got)
	}
}

func TestSetBoardWidth(t *testing.T) {
	useConfig(t, "board:\n  width: 6\n")

	g := New()
	g.SetBoardWidth(10)
	g.Reset(testCfg)
	if g.World().Width() != 10 {
		t.Errorf("Width = %d, board choice should win over config", g.World().Width())
	}

	mini := NewMini()
	mini.SetBoardWidth(10)
	mini.Reset(testCfg)
	if mini.World().Width() != MiniWidth {
		t.Errorf("mini Width = %d, expected fixed %d", mini.World().Width(), MiniWidth)
	}
}

func TestResizeKeepsRound(t *testing.T) {
	useConfig(t, "board:\n  width: 8\n  spawn_index: 20\ntiming:\n  move_every_ticks: 1\n")

	g := New()
	g.Reset(testCfg)
	g.Step(press(core.ActionConfirm))
	head := g.World().Head()

	g.Resize(10, 5)
	if !g.tooSmall {
		t.Fatal("10x5 should be too small for an 8-wide board")
	}
	g.Step(press())
	if g.World().Head() != head {
		t.Error("game should hold while the window is too small")
	}

	g.Resize(80, 24)
	g.Step(press())
	if g.tooSmall || g.World().Head() == head || g.World().Status() != StatusPlaying {
		t.Errorf("round should continue after growing the window: head %d status %s", g.World().Head(), g.World().Status())
	}
}

func TestConcurrentResets(t *testing.T) {
	useConfig(t, "board:\n  width: 1\n")

	games := make([]*Game, 8)
	var wg sync.WaitGroup
	for i := range games {
		games[i] = New()
		games[i].SetBoardWidth(MinWidth + i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			g := games[i]
			g.Reset(core.RuntimeConfig{Seed: int64(i + 1), ScreenW: 80, ScreenH: 24})
			g.Step(press(core.ActionConfirm))
		}()
	}
	wg.Wait()

	for i, g := range games {
		if g.World().Width() != MinWidth+i {
			t.Errorf("game %d width = %d, expected %d", i, g.World().Width(), MinWidth+i)
		}
		if g.configErr == nil {
			t.Errorf("game %d lost its config error", i)
		}
	}
}

func TestDebugState(t *testing.T) {
	useConfig(t, "board:\n  width: 8\n  spawn_index: 20\n")

	g := New()
	g.Reset(testCfg)

	out := g.DebugState()
	for _, want := range []string{"Points: 0", "Status: No Status", "Head: 20", "Direction: right", "Reward: "} {
		if !strings.Contains(out, want) {
			t.Errorf("DebugState() missing %q:\n%s", want, out)
		}
	}
}
