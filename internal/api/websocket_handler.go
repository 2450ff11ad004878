package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/qrorder/qr-order-api/internal/api/dto"
	"github.com/qrorder/qr-order-api/internal/service/pubsub"
	"github.com/qrorder/qr-order-api/internal/utils"
	"github.com/qrorder/qr-order-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Client struct {
	conn         *websocket.Conn
	restaurantID string
	send         chan []byte
}

// WebSocketHandler streams incoming orders to connected kitchen displays.
// Fan-out goes through Redis pub/sub, so every API instance sees orders
// created on any other instance.
type WebSocketHandler struct {
	clients           map[*Client]bool
	register          chan *Client
	unregister        chan *Client
	mutex             sync.RWMutex
	logger            *logger.Logger
	pubsub            *pubsub.RedisPubSub
	ctx               context.Context
	cancel            context.CancelFunc
	restaurantClients map[string]int // Count of clients per restaurant
}

func NewWebSocketHandler(logger *logger.Logger, pubsub *pubsub.RedisPubSub) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:           make(map[*Client]bool),
		register:          make(chan *Client),
		unregister:        make(chan *Client),
		logger:            logger,
		pubsub:            pubsub,
		ctx:               ctx,
		cancel:            cancel,
		restaurantClients: make(map[string]int),
	}
}

// HandleWebSocket Stream new orders over a WebSocket
// @Summary Stream orders
// @Description Upgrade to a WebSocket that receives the restaurant's new orders
// @Tags    orders
// @Success 101
// @Failure 401 {object} dto.Error
// @Router  /orders/stream [get]
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	// Requires a restaurant scope; admin tokens have none to stream.
	restaurantID, exists := c.Get(string(utils.RestaurantIDKey))
	if !exists || restaurantID == nil || restaurantID.(string) == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No restaurant ID found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &Client{
		conn:         conn,
		restaurantID: restaurantID.(string),
		send:         make(chan []byte, websocketSendChannelBufferSize),
	}
	h.register <- client

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.restaurantClients[client.restaurantID]++

			// Subscribe to the restaurant's channel on its first client
			if h.restaurantClients[client.restaurantID] == 1 {
				if err := h.pubsub.Subscribe(h.ctx, client.restaurantID, h.handlePubSubMessage); err != nil {
					h.logger.Errorf("Failed to subscribe to restaurant %s: %v", client.restaurantID, err)
				}
			}
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)

				h.restaurantClients[client.restaurantID]--
				if h.restaurantClients[client.restaurantID] == 0 {
					h.pubsub.Unsubscribe(client.restaurantID)
					delete(h.restaurantClients, client.restaurantID)
				}
			}
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.pubsub.Close()
}

// handlePubSubMessage forwards an order from Redis to the restaurant's
// connected clients.
func (h *WebSocketHandler) handlePubSubMessage(restaurantID string, order *dto.OrderResponse) {
	message, err := json.Marshal(order)
	if err != nil {
		h.logger.Errorf("Error marshaling order: %v", err)
		return
	}

	// Full lock: the slow-consumer branch mutates the client maps, and
	// every restaurant subscription delivers from its own goroutine.
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		if client.restaurantID == restaurantID {
			select {
			case client.send <- message:
			default: // Slow consumer, drop the client
				close(client.send)
				delete(h.clients, client)
				h.restaurantClients[client.restaurantID]--

				if h.restaurantClients[client.restaurantID] == 0 {
					h.pubsub.Unsubscribe(client.restaurantID)
					delete(h.restaurantClients, client.restaurantID)
				}
			}
		}
	}
}

func (h *WebSocketHandler) writePump(client *Client) {
	defer func() {
		client.conn.Close()
	}()

	for message := range client.send {
		w, err := client.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}

	// Channel was closed, send close message
	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		h.unregister <- client
		client.conn.Close()
	}()

	for {
		messageType, message, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warnf("Unexpected close error for client %s: %v", client.restaurantID, err)
			} else {
				h.logger.Warnf("Read error for client %s: %v", client.restaurantID, err)
			}
			break
		}

		// Displays are not expected to send anything back
		if messageType == websocket.TextMessage || messageType == websocket.BinaryMessage {
			h.logger.Infof("Received message from client %s: %s", client.restaurantID, string(message))
		}
	}
}

// BroadcastOrder publishes a new order to its restaurant's channel.
func (h *WebSocketHandler) BroadcastOrder(restaurantID string, order *dto.OrderResponse) {
	if err := h.pubsub.Publish(h.ctx, restaurantID, order); err != nil {
		h.logger.Errorf("Failed to publish order: %v", err)
	}
}
