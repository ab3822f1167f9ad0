package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/delisburger/order-app/counter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type CounterController struct {
	Hub *counter.Hub
}

func NewCounterController(hub *counter.Hub) *CounterController {
	return &CounterController{Hub: hub}
}

// Feed upgrades a counter display to a websocket and streams paid orders to
// it until it disconnects.
func (cc *CounterController) Feed(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	cc.Hub.Register(ws)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	cc.Hub.Unregister(ws)
}
