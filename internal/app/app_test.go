package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmiles/minesweeper-agent/internal/play"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := New(logger, rand.New(rand.NewPCG(1, 2)))
	server := httptest.NewServer(a.Handler())
	t.Cleanup(server.Close)
	return server
}

func decodeSession(t *testing.T, r io.Reader) SessionDTO {
	t.Helper()
	var dto SessionDTO
	require.NoError(t, json.NewDecoder(r).Decode(&dto))
	return dto
}

func TestNewGameValidation(t *testing.T) {
	t.Parallel()
	server := newTestServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{name: "missing params", query: ""},
		{name: "bad dimensions", query: "height=0&width=5&mine_count=1"},
		{name: "too many mines", query: "height=3&width=3&mine_count=100"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := http.Post(server.URL+"/game?"+test.query, "", nil)
			require.NoError(t, err)
			defer res.Body.Close()
			assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		})
	}
}

func TestGameLifecycle(t *testing.T) {
	t.Parallel()
	server := newTestServer(t)

	res, err := http.Post(
		server.URL+"/game?height=4&width=4&mine_count=0&seed=7", "", nil,
	)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusCreated, res.StatusCode)

	dto := decodeSession(t, res.Body)
	require.NotEmpty(t, dto.ID)
	assert.Equal(t, play.Playing, dto.Stats.Status)

	// a mineless game must be stepped to a win
	for range 16 {
		res, err := http.Post(server.URL+"/game/"+dto.ID+"/step", "", nil)
		require.NoError(t, err)
		dto = decodeSession(t, res.Body)
		res.Body.Close()
	}
	assert.Equal(t, play.Won, dto.Stats.Status)
	assert.Equal(t, 16, dto.Stats.Moves)

	res, err = http.Get(server.URL + "/game/" + dto.ID)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	dto = decodeSession(t, res.Body)
	assert.Equal(t, 16, dto.Stats.Moves)
	assert.NotContains(t, dto.Field, "-")
}

func TestConnectPlaysOverWebsocket(t *testing.T) {
	t.Parallel()
	server := newTestServer(t)

	res, err := http.Post(
		server.URL+"/game?height=3&width=3&mine_count=0&seed=3", "", nil,
	)
	require.NoError(t, err)
	dto := decodeSession(t, res.Body)
	res.Body.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") +
		"/game/" + dto.ID + "/connect"
	c, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer c.Close()

	for dto.Stats.Status == play.Playing {
		require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte("s")))
		require.NoError(t, c.ReadJSON(&dto))
	}

	assert.Equal(t, play.Won, dto.Stats.Status)
	assert.Equal(t, 9, dto.Stats.Moves)
}

func TestUnknownSession(t *testing.T) {
	t.Parallel()
	server := newTestServer(t)

	res, err := http.Get(server.URL + "/game/nope")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
