package app

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bmiles/minesweeper-agent/internal/game"
	"github.com/bmiles/minesweeper-agent/internal/play"
	"github.com/bmiles/minesweeper-agent/internal/solver"
)

type NewGameParams struct {
	Height    int    `schema:"height,required"`
	Width     int    `schema:"width,required"`
	MineCount int    `schema:"mine_count,required"`
	Seed      uint64 `schema:"seed"`
}

type SessionDTO struct {
	ID    string      `json:"id"`
	Field string      `json:"field"`
	Stats play.Stats  `json:"stats"`
	Moves []play.Move `json:"moves"`
}

func (a *App) sessionDTO(id string, s *play.Session) SessionDTO {
	return SessionDTO{
		ID:    id,
		Field: s.Field(),
		Stats: s.Stats(),
		Moves: s.Moves(),
	}
}

func (a *App) replyWith(w http.ResponseWriter, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		a.logger.Error("unable to marshal response", slog.Any("error", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

func (a *App) badRequest(w http.ResponseWriter, msg string) {
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte(msg))
}

func (a *App) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var params NewGameParams
	if err := a.decoder.Decode(&params, r.URL.Query()); err != nil {
		a.badRequest(w, err.Error())
		return
	}

	rnd := a.sessionRand(params.Seed)

	g, err := game.New(params.Height, params.Width, params.MineCount, rnd)
	if err != nil {
		a.badRequest(w, err.Error())
		return
	}
	agent := solver.NewAgent(params.Height, params.Width, rnd)
	session := play.NewSession(g, agent)

	id := a.sessions.put(session)
	a.logger.Info("session created",
		slog.String("id", id),
		slog.Int("height", params.Height),
		slog.Int("width", params.Width),
		slog.Int("mineCount", params.MineCount),
	)

	w.WriteHeader(http.StatusCreated)
	a.replyWith(w, a.sessionDTO(id, session))
}

func (a *App) handleFetch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	session, ok := a.sessions.get(id)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	a.replyWith(w, a.sessionDTO(id, session))
}

func (a *App) handleStep(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	session, ok := a.sessions.get(id)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	session.Step()
	a.replyWith(w, a.sessionDTO(id, session))
}
