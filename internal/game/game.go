package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

var (
	ErrBadDimensions = errors.New("field dimensions must be positive")
	ErrTooManyMines  = errors.New("mine count exceeds field size")
)

/*
A Game holds the hidden truth of one minesweeper field: where the mines
are and which cells the player has revealed so far. It knows nothing
about deduction; it only answers questions a real board could answer.
*/
type Game struct {
	Height, Width int
	MineCount     int

	mined    []bool // row-major
	revealed []bool
	opened   int
}

func New(height, width, mineCount int, rnd *rand.Rand) (*Game, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrBadDimensions
	}
	if mineCount < 0 || mineCount > height*width {
		return nil, ErrTooManyMines
	}

	g := &Game{
		Height:    height,
		Width:     width,
		MineCount: mineCount,
		mined:     make([]bool, height*width),
		revealed:  make([]bool, height*width),
	}

	for placed := 0; placed < mineCount; {
		i := rnd.IntN(height * width)
		if !g.mined[i] {
			g.mined[i] = true
			placed++
		}
	}

	return g, nil
}

func (g *Game) index(row, col int) int {
	return row*g.Width + col
}

func (g *Game) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

func (g *Game) IsMine(row, col int) bool {
	return g.mined[g.index(row, col)]
}

func (g *Game) Revealed(row, col int) bool {
	return g.revealed[g.index(row, col)]
}

// NearbyMines counts the mines within one row and column of a cell,
// the cell itself excluded.
func (g *Game) NearbyMines(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if g.InBounds(r, c) && g.mined[g.index(r, c)] {
				count++
			}
		}
	}
	return count
}

/*
Reveal opens a single cell. Opening a mine returns exploded; opening
anything else returns the cell's clue count. There is no flood fill: a
zero clue still opens exactly one cell, the player must come back for
the neighbors.
*/
func (g *Game) Reveal(row, col int) (clue int, exploded bool) {
	i := g.index(row, col)
	if g.mined[i] {
		return 0, true
	}
	if !g.revealed[i] {
		g.revealed[i] = true
		g.opened++
	}
	return g.NearbyMines(row, col), false
}

// RevealedAll reports whether every non-mine cell has been opened.
func (g *Game) RevealedAll() bool {
	return g.opened == g.Height*g.Width-g.MineCount
}

/*
Render draws the player-visible field: clue digits for revealed cells,
`*` for cells the flagged predicate claims, `-` for the rest.
*/
func (g *Game) Render(flagged func(row, col int) bool) string {
	var b strings.Builder
	for row := range g.Height {
		for col := range g.Width {
			var ch string
			switch {
			case g.Revealed(row, col):
				ch = fmt.Sprintf("%d ", g.NearbyMines(row, col))
			case flagged != nil && flagged(row, col):
				ch = "* "
			default:
				ch = "- "
			}
			fmt.Fprint(&b, ch)
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
