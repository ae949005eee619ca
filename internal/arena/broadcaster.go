package arena

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Event is one spectator-visible update, grounded on
// _examples/korjavin-virusgame/backend/types.go's tagged Message
// struct — one wire type carrying every optional field a turn update
// might need.
type Event struct {
	MatchID string `json:"matchId"`
	Turn    int    `json:"turn,omitempty"`
	Player  int    `json:"player,omitempty"`
	X       int    `json:"x,omitempty"`
	Y       int    `json:"y,omitempty"`
	Forfeit bool   `json:"forfeit,omitempty"`
	Winner  int    `json:"winner,omitempty"`
	Done    bool   `json:"done,omitempty"`
}

// Broadcaster fans out Events to every attached spectator over
// websocket, grounded on
// _examples/korjavin-virusgame/backend/hub.go's register/unregister/
// broadcast channel loop.
type Broadcaster struct {
	upgrader   websocket.Upgrader
	register   chan *spectator
	unregister chan *spectator
	publish    chan Event

	mu         sync.Mutex
	spectators map[*spectator]bool
}

type spectator struct {
	conn *websocket.Conn
	send chan Event
}

// NewBroadcaster builds a Broadcaster with its channels ready; call Run
// in its own goroutine to start the fan-out loop.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		upgrader:   websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024, CheckOrigin: func(*http.Request) bool { return true }},
		register:   make(chan *spectator),
		unregister: make(chan *spectator),
		publish:    make(chan Event, 256),
		spectators: make(map[*spectator]bool),
	}
}

// Run is the broadcaster's event loop; it never returns (the caller
// typically runs it as `go b.Run()` for the process lifetime of
// cmd/arena).
func (b *Broadcaster) Run() {
	for {
		select {
		case s := <-b.register:
			b.mu.Lock()
			b.spectators[s] = true
			b.mu.Unlock()
		case s := <-b.unregister:
			b.mu.Lock()
			if _, ok := b.spectators[s]; ok {
				delete(b.spectators, s)
				close(s.send)
			}
			b.mu.Unlock()
		case ev := <-b.publish:
			b.mu.Lock()
			for s := range b.spectators {
				select {
				case s.send <- ev:
				default: // slow spectator, drop rather than block the match
				}
			}
			b.mu.Unlock()
		}
	}
}

// Publish enqueues an event for fan-out; it never blocks the match loop
// (the channel is buffered, and Run drains it continuously).
func (b *Broadcaster) Publish(ev Event) {
	b.publish <- ev
}

// ServeWS upgrades an HTTP request to a websocket and streams Events to
// it until the connection closes.
func (b *Broadcaster) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s := &spectator{conn: conn, send: make(chan Event, 32)}
	b.register <- s

	defer func() {
		b.unregister <- s
		conn.Close()
	}()

	for ev := range s.send {
		if err := conn.WriteJSON(ev); err != nil {
			return
		}
	}
}
