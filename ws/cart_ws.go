package ws

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yunus-I/Hotel-App/services"
	"github.com/yunus-I/Hotel-App/utils"
)

// CartHub pushes cart change events and toasts to every page the hotel's
// guest has open (badge counts, cart modal re-render).
type CartHub struct {
	clients    map[string]map[*websocket.Conn]bool // hotelID -> set of clients
	broadcast  chan frame
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	log        *slog.Logger
}

type subscription struct {
	Conn    *websocket.Conn
	HotelID string
}

type frame struct {
	HotelID string
	Payload any
}

type cartFrame struct {
	Type    string `json:"type"`
	HotelID string `json:"tenantId"`
	Count   int    `json:"count"`
	Total   string `json:"total"`
}

type toastFrame struct {
	Type    string `json:"type"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

func NewCartHub(log *slog.Logger) *CartHub {
	return &CartHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan frame, 16),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		log:        log,
	}
}

func (h *CartHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.HotelID] == nil {
				h.clients[sub.HotelID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.HotelID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.HotelID][sub.Conn]; ok {
				delete(h.clients[sub.HotelID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case f := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[f.HotelID] {
				if err := conn.WriteJSON(f.Payload); err != nil {
					h.log.Warn("ws write error", "hotelId", f.HotelID, "error", err)
					conn.Close()
					delete(h.clients[f.HotelID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// CartChanged implements services.EventSink. Totals are rounded to two
// places here, at the presentation boundary.
func (h *CartHub) CartChanged(evt services.CartEvent) {
	h.broadcast <- frame{HotelID: evt.HotelID, Payload: cartFrame{
		Type:    "cart",
		HotelID: evt.HotelID,
		Count:   evt.Count,
		Total:   evt.Total.StringFixed(2),
	}}
}

// Toast implements services.Notifier.
func (h *CartHub) Toast(hotelID, level, message string) {
	h.broadcast <- frame{HotelID: hotelID, Payload: toastFrame{
		Type:    "toast",
		Level:   level,
		Message: message,
	}}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/cart?hotel_id=...
func (h *CartHub) HandleWebSocket(c *gin.Context) {
	hotelID := utils.CurrentHotelID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade error", "hotelId", hotelID, "error", err)
		return
	}

	sub := subscription{Conn: conn, HotelID: hotelID}
	h.register <- sub

	go h.listen(sub)
}

// listen drains the connection until it closes; guests only receive.
func (h *CartHub) listen(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
