package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

// @Summary	Open websocket for realtime status information
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		base
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't make websocket: %s", err), 400)
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			log.Printf("could not close websocket: %s\n", err.Error())
		}
	}(ws)
	a.addClient(ws)

	go a.websocketWriter(ws)

	for {
		_, _, err := ws.ReadMessage()
		if err != nil {
			a.removeClient(ws)
			break
		}
	}
}

// websocketWriter pushes a stats snapshot every couple of seconds
// until the peer goes away.
func (a *Api) websocketWriter(ws *websocket.Conn) {
	pingTicker := time.NewTicker(2 * time.Second)
	defer func() {
		pingTicker.Stop()
		err := ws.Close()
		if err != nil {
			return
		}
	}()
	timeout := 10 * time.Second
	for range pingTicker.C {
		packet, err := json.Marshal(a.backend.Stats().Snapshot())
		if err != nil {
			return
		}
		err = ws.SetWriteDeadline(time.Now().Add(timeout))
		if err != nil {
			log.Printf("could not set write deadline: %s\n", err.Error())
			return
		}
		if err := ws.WriteMessage(websocket.TextMessage, packet); err != nil {
			return
		}
	}
}

func (a *Api) addClient(ws *websocket.Conn) {
	a.wsClientsMu.Lock()
	defer a.wsClientsMu.Unlock()
	a.wsClients[ws] = true
	a.backend.Stats().SetWsClients(len(a.wsClients))
}

func (a *Api) removeClient(ws *websocket.Conn) {
	a.wsClientsMu.Lock()
	defer a.wsClientsMu.Unlock()
	delete(a.wsClients, ws)
	a.backend.Stats().SetWsClients(len(a.wsClients))
}
