package play

import (
	"fmt"
	"sync"

	"github.com/bmiles/minesweeper-agent/internal/game"
	"github.com/bmiles/minesweeper-agent/internal/solver"
)

type Status int8

const (
	Playing Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "?"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "playing":
		*s = Playing
	case "won":
		*s = Won
	case "lost":
		*s = Lost
	default:
		return fmt.Errorf("unknown status %q", text)
	}
	return nil
}

// Move is one step of agent play.
type Move struct {
	Cell     solver.Cell `json:"cell"`
	Random   bool        `json:"random"`
	Clue     int         `json:"clue"`
	Exploded bool        `json:"exploded"`
}

/*
A Session drives one Agent against one Game, move by move. The agent
and the game never talk to each other directly: the session asks the
agent for a move, applies it to the game and feeds the resulting clue
back. Sessions are safe for concurrent use; agent and game are guarded
by the session mutex.
*/
type Session struct {
	mu     sync.Mutex
	game   *game.Game
	agent  *solver.Agent
	moves  []Move
	status Status
}

func NewSession(g *game.Game, a *solver.Agent) *Session {
	return &Session{game: g, agent: a}
}

/*
Step plays one move: a proven-safe cell when the agent knows one, a
random not-known-mine cell otherwise. The bool result is false when the
game is over or no move is available (only known mines remain
unplayed). A random move may hit a mine and lose the game; a safe move
cannot.
*/
func (s *Session) Step() (Move, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Playing {
		return Move{}, false
	}

	cell, ok := s.agent.SafeMove()
	random := false
	if !ok {
		cell, ok = s.agent.RandomMove()
		random = true
	}
	if !ok {
		return Move{}, false
	}

	clue, exploded := s.game.Reveal(cell.Row, cell.Col)
	move := Move{Cell: cell, Random: random, Clue: clue, Exploded: exploded}

	if exploded {
		s.status = Lost
	} else {
		s.agent.ReportClue(cell, clue)
		if s.game.RevealedAll() {
			s.status = Won
		}
	}

	s.moves = append(s.moves, move)
	return move, true
}

// Play steps until the game ends or the agent runs out of moves,
// returning the final status.
func (s *Session) Play() Status {
	for {
		if _, ok := s.Step(); !ok {
			return s.Status()
		}
	}
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Session) Moves() []Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Move(nil), s.moves...)
}

// Field renders the player-visible field with the agent's proven mines
// drawn as flags.
func (s *Session) Field() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Render(func(row, col int) bool {
		return s.agent.MineAt(solver.Cell{Row: row, Col: col})
	})
}

// Stats summarizes a session for reporting.
type Stats struct {
	Status     Status `json:"status"`
	Moves      int    `json:"moves"`
	Random     int    `json:"random_moves"`
	KnownMines int    `json:"known_mines"`
	KnownSafes int    `json:"known_safes"`
}

func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := Stats{
		Status:     s.status,
		Moves:      len(s.moves),
		KnownMines: len(s.agent.KnownMines()),
		KnownSafes: len(s.agent.KnownSafes()),
	}
	for _, m := range s.moves {
		if m.Random {
			stats.Random++
		}
	}
	return stats
}
