package snake

import (
	"fmt"
	"slices"
)

// nextCell returns the cell reached from h by moving one step in d on a
// width×width torus. Rows wrap horizontally and columns wrap vertically.
func nextCell(h Cell, width int, d Direction) Cell {
	idx := int(h)
	size := width * width
	row := idx / width
	rowStart := row * width
	col := idx - rowStart

	switch d {
	case DirRight:
		if idx+1 == rowStart+width {
			return Cell(rowStart)
		}
		return Cell(idx + 1)
	case DirLeft:
		if idx == rowStart {
			return Cell(rowStart + width - 1)
		}
		return Cell(idx - 1)
	case DirUp:
		if row == 0 {
			return Cell(size - width + col)
		}
		return Cell(idx - width)
	case DirDown:
		if row == width-1 {
			return Cell(col)
		}
		return Cell(idx + width)
	}
	panic(fmt.Sprintf("snake: unknown direction %d", d))
}

// genRewardCell samples cells uniformly from rng until one outside body is found.
// body must leave at least one of the size cells free.
func genRewardCell(rng Rand, size int, body []Cell) Cell {
	if len(body) >= size {
		panic("snake: no free cell for reward")
	}
	for {
		c := Cell(rng.Intn(size))
		if !slices.Contains(body, c) {
			return c
		}
	}
}
