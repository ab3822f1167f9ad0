package counter

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/delisburger/order-app/models"
	"github.com/delisburger/order-app/utils"
)

const EventOrderPaid = "order_paid"

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// OrderPaid is what counter displays receive for each completed payment.
type OrderPaid struct {
	OrderNumber int               `json:"order_number"`
	Total       float64           `json:"total"`
	TotalLabel  string            `json:"total_label"`
	Lines       []models.CartLine `json:"lines"`
}

// Hub holds the websocket connections of the counter displays and fans paid
// orders out to them. A display that fails a write is dropped; the broadcast
// itself never fails.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// Register adds a display connection.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

// Unregister drops a display connection and closes it.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

// Clients returns the number of connected displays.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// BroadcastOrderPaid pushes a paid order to every connected display.
func (h *Hub) BroadcastOrderPaid(orderNumber int, total float64, lines []models.CartLine) {
	h.broadcast(Message{
		Event: EventOrderPaid,
		Data: OrderPaid{
			OrderNumber: orderNumber,
			Total:       total,
			TotalLabel:  utils.FormatPrice(total),
			Lines:       lines,
		},
	})
}

func (h *Hub) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("counter: marshaling %s event: %v", msg.Event, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("counter: dropping display: %v", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
