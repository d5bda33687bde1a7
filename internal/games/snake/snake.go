package snake

import "fmt"

// Cell is an index into the flattened width×width grid.
type Cell int

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Snake holds the body (head at index 0) and the current heading.
// World mutates the body directly; Snake has no behavior of its own.
type Snake struct {
	body      []Cell
	direction Direction
}

// NewSnake builds a body of length cells counting down from spawn,
// heading right. spawn must be at least length-1.
func NewSnake(spawn Cell, length int) Snake {
	if length < 1 {
		panic(fmt.Sprintf("snake: invalid length %d", length))
	}
	if int(spawn) < length-1 {
		panic(fmt.Sprintf("snake: spawn index %d too small for length %d", spawn, length))
	}

	body := make([]Cell, 0, length)
	for i := range length {
		body = append(body, spawn-Cell(i))
	}
	return Snake{
		body:      body,
		direction: DirRight,
	}
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.body[0]
}
