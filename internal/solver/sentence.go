package solver

import (
	"fmt"
	"maps"
	"strings"
)

/*
A Sentence is a logical statement about the board: exactly `count` of
`cells` are mines. Sentences shrink in place as cells are resolved, so a
sentence stays true for the whole of its life; once every cell is
accounted for it is empty with a count of zero and carries no
information.
*/
type Sentence struct {
	cells map[Cell]struct{}
	count int
}

func NewSentence(cells []Cell, count int) *Sentence {
	s := &Sentence{
		cells: make(map[Cell]struct{}, len(cells)),
		count: count,
	}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

func (s *Sentence) Count() int { return s.count }

func (s *Sentence) Size() int { return len(s.cells) }

func (s *Sentence) Has(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Cells returns the remaining cells in row-then-column order.
func (s *Sentence) Cells() []Cell {
	return sortedCells(s.cells)
}

func (s *Sentence) Equal(o *Sentence) bool {
	return s.count == o.count && maps.Equal(s.cells, o.cells)
}

/*
KnownMines returns every cell of the sentence when all of them must be
mines, i.e. when the count equals the number of remaining cells. In any
other position the sentence is not conclusive and the result is nil.
*/
func (s *Sentence) KnownMines() []Cell {
	if s.count > 0 && s.count == len(s.cells) {
		return s.Cells()
	}
	return nil
}

// KnownSafes returns every cell of the sentence when none of them can be
// a mine, i.e. when the count is zero. Otherwise nil.
func (s *Sentence) KnownSafes() []Cell {
	if s.count == 0 {
		return s.Cells()
	}
	return nil
}

/*
MarkMine records that a cell is certainly a mine. If the sentence
mentions the cell, it is dropped and the count goes down by one; the
remaining statement is still exact. Cells the sentence does not mention
are ignored, so repeated calls are harmless.
*/
func (s *Sentence) MarkMine(c Cell) {
	if _, ok := s.cells[c]; ok {
		delete(s.cells, c)
		s.count--
	}
}

// MarkSafe records that a cell is certainly not a mine. A safe cell
// contributes nothing to the count, so it is simply dropped.
func (s *Sentence) MarkSafe(c Cell) {
	delete(s.cells, c)
}

// resolved sentences have nothing left to say.
func (s *Sentence) resolved() bool {
	return len(s.cells) == 0 && s.count == 0
}

func (s *Sentence) intersects(o *Sentence) bool {
	for c := range s.cells {
		if _, ok := o.cells[c]; ok {
			return true
		}
	}
	return false
}

func (s *Sentence) subsetOf(o *Sentence) bool {
	if len(s.cells) > len(o.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := o.cells[c]; !ok {
			return false
		}
	}
	return true
}

// minus builds the sentence over s's cells that sub does not mention,
// counting only the mines sub does not already account for. Only valid
// when sub is a subset of s.
func (s *Sentence) minus(sub *Sentence) *Sentence {
	d := &Sentence{
		cells: make(map[Cell]struct{}, len(s.cells)-len(sub.cells)),
		count: s.count - sub.count,
	}
	for c := range s.cells {
		if _, ok := sub.cells[c]; !ok {
			d.cells[c] = struct{}{}
		}
	}
	return d
}

func (s *Sentence) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, c := range s.Cells() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	fmt.Fprintf(&b, "} = %d", s.count)
	return b.String()
}
