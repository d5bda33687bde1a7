package snake

import (
	"fmt"
	"iter"
	"slices"
)

// MinWidth is the smallest board side that holds the initial snake
// without it wrapping into itself.
const MinWidth = 3

// InitialLength is the body length of a freshly spawned snake.
const InitialLength = 3

// Rand is the external random source. Intn returns a uniformly
// distributed index in [0, n). *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// RandFunc adapts a plain function to Rand.
type RandFunc func(n int) int

// Intn calls f(n).
func (f RandFunc) Intn(n int) int {
	return f(n)
}

// Status is the game state machine. The zero value means the game has
// not started yet.
type Status int

const (
	StatusNone Status = iota
	StatusPlaying
	StatusWon
	StatusLost
)

// String returns the human-readable status line.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusWon:
		return "You have won"
	case StatusLost:
		return "You have lost"
	default:
		return "No Status"
	}
}

// Terminal reports whether no further transitions can happen.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// World is one snake on a width×width toroidal grid, together with the
// reward cell, score and game status. A World is owned by a single driver
// and is not safe for concurrent use.
type World struct {
	width int
	size  int
	snake Snake
	rng   Rand

	reward    Cell
	hasReward bool // false only once the snake fills the grid

	next    Cell // direction change staged for the next tick
	hasNext bool

	status Status
	points int
}

// NewWorld creates a World with a length-3 snake whose head is at spawn.
// width must be at least MinWidth and spawn must lie in [2, width²).
func NewWorld(width int, spawn Cell, rng Rand) *World {
	if width < MinWidth {
		panic(fmt.Sprintf("snake: width %d below minimum %d", width, MinWidth))
	}
	size := width * width
	if int(spawn) < InitialLength-1 || int(spawn) >= size {
		panic(fmt.Sprintf("snake: spawn index %d out of range [%d, %d)", spawn, InitialLength-1, size))
	}
	if rng == nil {
		panic("snake: nil random source")
	}

	s := NewSnake(spawn, InitialLength)
	return &World{
		width:     width,
		size:      size,
		snake:     s,
		rng:       rng,
		reward:    genRewardCell(rng, size, s.body),
		hasReward: true,
	}
}

// Width returns the grid side length.
func (w *World) Width() int {
	return w.width
}

// Size returns the number of cells on the grid.
func (w *World) Size() int {
	return w.size
}

// Points returns the number of rewards eaten.
func (w *World) Points() int {
	return w.points
}

// RewardCell returns the reward position. ok is false once the snake
// covers the whole grid.
func (w *World) RewardCell() (c Cell, ok bool) {
	return w.reward, w.hasReward
}

// Status returns the current game status.
func (w *World) Status() Status {
	return w.status
}

// StatusText returns the status as shown to the player.
func (w *World) StatusText() string {
	return w.status.String()
}

// Head returns the snake's head cell.
func (w *World) Head() Cell {
	return w.snake.Head()
}

// Len returns the snake's body length.
func (w *World) Len() int {
	return w.snake.Len()
}

// Direction returns the snake's heading.
func (w *World) Direction() Direction {
	return w.snake.direction
}

// Body returns a copy of the body cells, head first.
func (w *World) Body() []Cell {
	return slices.Clone(w.snake.body)
}

// Cells iterates the body head to tail without copying. The sequence is
// only valid until the next call to Step.
func (w *World) Cells() iter.Seq2[int, Cell] {
	return slices.All(w.snake.body)
}

// StartGame moves a not-yet-started game to Playing.
func (w *World) StartGame() {
	if w.status == StatusNone {
		w.status = StatusPlaying
	}
}

// ChangeDirection stages a heading change for the next tick. A change
// that would move the head onto the cell right behind it is ignored.
func (w *World) ChangeDirection(d Direction) {
	candidate := nextCell(w.snake.Head(), w.width, d)
	if w.snake.Len() >= 2 && w.snake.body[1] == candidate {
		return
	}
	w.next = candidate
	w.hasNext = true
	w.snake.direction = d
}

// Step advances the game by one tick. It does nothing unless the game is
// Playing.
func (w *World) Step() {
	if w.status != StatusPlaying {
		return
	}

	body := w.snake.body
	prev := slices.Clone(body)

	if w.hasNext {
		body[0] = w.next
		w.hasNext = false
	} else {
		body[0] = nextCell(prev[0], w.width, w.snake.direction)
	}

	// Follow the leader
	for i := 1; i < len(body); i++ {
		body[i] = prev[i-1]
	}

	head := body[0]
	if slices.Contains(body[1:], head) {
		w.status = StatusLost
		return
	}

	if !w.hasReward || head != w.reward {
		return
	}

	if len(body) >= w.size {
		w.hasReward = false
		w.status = StatusWon
		return
	}

	w.points++
	// The duplicate tail is pulled into place by the next shift.
	w.snake.body = append(body, body[len(body)-1])

	// Length is what wins, even while the duplicate tail still leaves one
	// cell uncovered for a tick.
	if w.snake.Len() >= w.size {
		w.hasReward = false
		w.status = StatusWon
		return
	}
	w.reward = genRewardCell(w.rng, w.size, w.snake.body)
}
