package solver

import (
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

/*
An Agent accumulates knowledge about a single minesweeper board and
picks moves from it. Knowledge lives in three places: the monotone sets
of cells proven safe or proven mines, and a list of sentences over the
cells still undetermined. Every clue the board reports becomes a new
sentence; resolving sentences grows the proven sets, which in turn
shrinks every sentence mentioning the resolved cells.

An Agent is not safe for concurrent use; callers that share one must
serialize access themselves.
*/
type Agent struct {
	height, width int

	movesMade map[Cell]struct{}
	safes     map[Cell]struct{}
	mines     map[Cell]struct{}

	knowledge []*Sentence

	rnd *rand.Rand
}

func NewAgent(height, width int, rnd *rand.Rand) *Agent {
	return &Agent{
		height:    height,
		width:     width,
		movesMade: make(map[Cell]struct{}),
		safes:     make(map[Cell]struct{}),
		mines:     make(map[Cell]struct{}),
		rnd:       rnd,
	}
}

func (a *Agent) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < a.height && c.Col >= 0 && c.Col < a.width
}

// markMine records a proven mine and pushes the fact into every
// sentence.
func (a *Agent) markMine(c Cell) {
	a.mines[c] = struct{}{}
	for _, s := range a.knowledge {
		s.MarkMine(c)
	}
}

func (a *Agent) markSafe(c Cell) {
	a.safes[c] = struct{}{}
	for _, s := range a.knowledge {
		s.MarkSafe(c)
	}
}

/*
ReportClue tells the agent that cell was revealed and found to have
count mined neighbors. The cell itself is recorded as played and safe,
a sentence over its undetermined neighbors is added, and inference runs
until no further certain fact or subset-derived sentence can be
produced. Reporting the same cell twice is a no-op.
*/
func (a *Agent) ReportClue(cell Cell, count int) {
	if _, done := a.movesMade[cell]; done {
		return
	}
	a.movesMade[cell] = struct{}{}
	a.markSafe(cell)

	/*
	 * Only undetermined neighbors enter the new sentence: known
	 * safes contribute nothing, and each known mine instead lowers
	 * the count it must explain.
	 */
	var neighbors []Cell
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			n := Cell{Row: cell.Row + dr, Col: cell.Col + dc}
			if n == cell || !a.inBounds(n) {
				continue
			}
			if _, ok := a.mines[n]; ok {
				count--
				continue
			}
			if _, ok := a.safes[n]; ok {
				continue
			}
			if _, ok := a.movesMade[n]; ok {
				continue
			}
			neighbors = append(neighbors, n)
		}
	}
	a.addSentence(NewSentence(neighbors, count))

	a.infer()

	Log.Debug("clue processed",
		slog.String("cell", cell.String()),
		slog.Int("count", count),
		slog.Int("sentences", len(a.knowledge)),
		slog.Int("safes", len(a.safes)),
		slog.Int("mines", len(a.mines)),
	)
}

// addSentence appends s unless an equal sentence is already known.
func (a *Agent) addSentence(s *Sentence) bool {
	for _, k := range a.knowledge {
		if k.Equal(s) {
			return false
		}
	}
	a.knowledge = append(a.knowledge, s)
	return true
}

/*
infer alternates the two deduction steps until neither moves: resolving
conclusive sentences into the proven sets, and deriving difference
sentences from subset pairs. Both steps only ever shrink the pool of
undetermined cells or add a sentence not seen before, and the universe
of distinct sentences over a finite board is finite, so this
terminates.
*/
func (a *Agent) infer() {
	for a.resolveKnown() || a.deriveSubsets() {
	}

	/*
	 * Fully resolved sentences are inert; drop them so the pairwise
	 * pass does not keep revisiting them.
	 */
	kept := a.knowledge[:0]
	for _, s := range a.knowledge {
		if !s.resolved() {
			kept = append(kept, s)
		}
	}
	a.knowledge = kept
}

func (a *Agent) resolveKnown() bool {
	changed := false
	for _, s := range a.knowledge {
		for _, c := range s.KnownMines() {
			if _, ok := a.mines[c]; !ok {
				a.markMine(c)
				changed = true
			}
		}
		for _, c := range s.KnownSafes() {
			if _, ok := a.safes[c]; !ok {
				a.markSafe(c)
				changed = true
			}
		}
	}
	return changed
}

/*
deriveSubsets runs the subset rule over every pair of sentences: when
the cells of one are contained in the cells of another, the cells
unique to the larger hold exactly the difference of the counts.
Overlapping but non-nested pairs yield nothing here.
*/
func (a *Agent) deriveSubsets() bool {
	changed := false
	n := len(a.knowledge)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sa, sb := a.knowledge[i], a.knowledge[j]
			if !sa.intersects(sb) || sa.Size() == sb.Size() {
				continue
			}
			if sa.subsetOf(sb) {
				if a.addSentence(sb.minus(sa)) {
					changed = true
				}
			} else if sb.subsetOf(sa) {
				if a.addSentence(sa.minus(sb)) {
					changed = true
				}
			}
		}
	}
	return changed
}

/*
SafeMove returns the lowest row-then-column cell that is proven safe
and not yet played. The bool result is false when no such cell exists.
The agent's state is left untouched; the board will call ReportClue
once it actually reveals the cell.
*/
func (a *Agent) SafeMove() (Cell, bool) {
	var best Cell
	found := false
	for c := range a.safes {
		if _, played := a.movesMade[c]; played {
			continue
		}
		if !found || cellcmp(c, best) < 0 {
			best, found = c, true
		}
	}
	return best, found
}

/*
RandomMove picks uniformly among the cells that have not been played
and are not proven mines. The bool result is false when every cell on
the board is either played or a known mine.
*/
func (a *Agent) RandomMove() (Cell, bool) {
	var candidates []Cell
	for row := range a.height {
		for col := range a.width {
			c := Cell{Row: row, Col: col}
			if _, ok := a.movesMade[c]; ok {
				continue
			}
			if _, ok := a.mines[c]; ok {
				continue
			}
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[a.rnd.IntN(len(candidates))], true
}

// KnownMines returns the proven mines in row-then-column order.
func (a *Agent) KnownMines() []Cell { return sortedCells(a.mines) }

// KnownSafes returns the proven safe cells in row-then-column order.
func (a *Agent) KnownSafes() []Cell { return sortedCells(a.safes) }

// MovesMade returns the played cells in row-then-column order.
func (a *Agent) MovesMade() []Cell { return sortedCells(a.movesMade) }

// MineAt reports whether the agent has proven c to be a mine.
func (a *Agent) MineAt(c Cell) bool {
	_, ok := a.mines[c]
	return ok
}
