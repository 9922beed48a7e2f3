package main

import (
	"net/http"

	"github.com/gorilla/websocket"

	"clutchzone/internal/models"
)

// AdminFeed pushes newly created purchase requests to every connected back
// office session so the requests list updates without polling.
type AdminFeed struct {
	clients    map[*websocket.Conn]bool
	events     chan models.PurchaseRequest
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
}

func NewAdminFeed() *AdminFeed {
	return &AdminFeed{
		clients:    make(map[*websocket.Conn]bool),
		events:     make(chan models.PurchaseRequest, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (f *AdminFeed) Run() {
	for {
		select {
		case conn := <-f.register:
			f.clients[conn] = true
		case conn := <-f.unregister:
			if _, ok := f.clients[conn]; ok {
				conn.Close()
				delete(f.clients, conn)
			}
		case req := <-f.events:
			for conn := range f.clients {
				if err := conn.WriteJSON(req); err != nil {
					conn.Close()
					delete(f.clients, conn)
				}
			}
		}
	}
}

// Publish never blocks the request path; if the buffer is full the event is
// dropped and the admin list catches up on the next refresh.
func (f *AdminFeed) Publish(req models.PurchaseRequest) {
	select {
	case f.events <- req:
	default:
	}
}

var feedUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// AdminFeedHandler upgrades the connection. Browsers cannot set an
// Authorization header on websocket dials, so the access token rides in the
// query string instead.
func (app *application) AdminFeedHandler(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}
	claims, err := app.tokenManager.Parse(token)
	if err != nil || claims["role"] != "admin" {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := feedUpgrader.Upgrade(w, r, nil)
	if err != nil {
		app.errorLog.Printf("websocket upgrade: %v", err)
		return
	}
	app.adminFeed.register <- conn

	go func() {
		defer func() {
			app.adminFeed.unregister <- conn
		}()
		for {
			// Drain control frames; the feed is one-directional.
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
