package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"

	"github.com/gorilla/mux"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const writeTimeout = time.Second

// Server exposes the running game over HTTP: a snapshot endpoint, a
// direction endpoint and a WebSocket stream of snapshots, one per tick.
type Server struct {
	server *http.Server
	game   *game.Game
	hub    *Hub
}

func jsonResponse(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	log.Printf("%d %s %s", status, r.Method, r.URL.Path)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	e := json.NewEncoder(w)
	e.Encode(data)
}

func NewServer(g *game.Game, hub *Hub, listenAddr string) *Server {
	s := &Server{
		game: g,
		hub:  hub,
	}
	s.server = &http.Server{
		Addr:           listenAddr,
		Handler:        s.Router(),
		ReadTimeout:    time.Second,
		MaxHeaderBytes: 1 << 16,
	}
	return s
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/state", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, r, http.StatusOK, s.game.Snapshot())
	}).Methods("GET")

	router.HandleFunc("/direction", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Direction types.Direction `json:"direction"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			jsonResponse(w, r, http.StatusUnprocessableEntity,
				map[string]interface{}{"error": err.Error()})
			return
		}
		// Unknown words decode to None, which SetDirection drops.
		s.game.SetDirection(body.Direction)
		jsonResponse(w, r, http.StatusOK, s.game.Snapshot())
	}).Methods("POST")

	router.HandleFunc("/ws", s.handleStream).Methods("GET")
	router.PathPrefix("/").Handler(http.NotFoundHandler())

	return router
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Printf("connect error: %v", err)
		return
	}
	log.Printf("connect: %s %s", r.URL.Path, r.RemoteAddr)
	defer log.Printf("disconnect: %s", r.RemoteAddr)
	defer c.Close(websocket.StatusInternalError, "")

	ch := s.hub.Subscribe()
	defer s.hub.Unsubscribe(ch)

	// Clients only listen; CloseRead handles their control frames.
	ctx := c.CloseRead(r.Context())

	first := s.game.Snapshot()
	if err := writeSnapshot(ctx, c, first); err != nil {
		return
	}
	if !first.Alive {
		c.Close(websocket.StatusNormalClosure, "game over")
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-ch:
			if err := writeSnapshot(ctx, c, snap); err != nil {
				return
			}
			if !snap.Alive {
				c.Close(websocket.StatusNormalClosure, "game over")
				return
			}
		}
	}
}

func writeSnapshot(ctx context.Context, c *websocket.Conn, snap game.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(ctx, c, snap)
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("Listening on http://%s", s.server.Addr)
	if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
