package app

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

type wsCommand string

const (
	wsStep  wsCommand = "s"
	wsState wsCommand = "g"
	wsQuit  wsCommand = "q"
)

/*
handleConnect streams agent play over a websocket. The client drives:
each "s" text message plays one move, "g" fetches the state without
moving, "q" hangs up. Every command is answered with the full session
DTO.
*/
func (a *App) handleConnect(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	session, ok := a.sessions.get(id)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	c, err := a.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.logger.Error("unable to upgrade connection", slog.Any("error", err))
		return
	}
	defer c.Close()

	for {
		messageType, payload, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				a.logger.Debug("websocket closed", slog.Any("error", err))
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		switch wsCommand(payload) {
		case wsStep:
			session.Step()
		case wsState:
			// fall through to reply
		case wsQuit:
			c.WriteMessage(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"),
			)
			return
		default:
			continue
		}

		if err := c.WriteJSON(a.sessionDTO(id, session)); err != nil {
			a.logger.Error("unable to write message", slog.Any("error", err))
			return
		}
	}
}
