package app

import (
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/gorilla/schema"

	"github.com/bmiles/minesweeper-agent/internal/config"
	"github.com/bmiles/minesweeper-agent/internal/middleware"
)

/*
App exposes agent play over HTTP: create a game, step the agent through
it, watch it live over a websocket. Sessions live in memory only and
die with the process.
*/
type App struct {
	logger   *slog.Logger
	sessions *sessionStore
	decoder  *schema.Decoder
	ws       *config.WebSocket

	// seed source for per-session generators; sessions must not share
	// one rand.Rand, agents keep using theirs long after creation
	rndMu sync.Mutex
	rnd   *rand.Rand
}

func New(logger *slog.Logger, rnd *rand.Rand) *App {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &App{
		logger:   logger,
		sessions: newSessionStore(),
		decoder:  decoder,
		ws:       config.NewWebSocket(),
		rnd:      rnd,
	}
}

// sessionRand builds the generator one session will own. A zero seed
// draws a fresh one from the app-wide source.
func (a *App) sessionRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, 0))
	}
	a.rndMu.Lock()
	defer a.rndMu.Unlock()
	return rand.New(rand.NewPCG(a.rnd.Uint64(), a.rnd.Uint64()))
}

func (a *App) Handler() http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("POST /game", a.handleNewGame)
	router.HandleFunc("GET /game/{id}", a.handleFetch)
	router.HandleFunc("POST /game/{id}/step", a.handleStep)
	router.HandleFunc("GET /game/{id}/connect", a.handleConnect)

	return middleware.Wrap(
		router,
		middleware.Cors(),
		middleware.Logging(a.logger),
	)
}
