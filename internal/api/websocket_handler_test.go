package api

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qrorder/qr-order-api/internal/api/dto"
	"github.com/qrorder/qr-order-api/pkg/logger"
)

// Each restaurant subscription delivers from its own goroutine, so two
// restaurants broadcasting at once must be able to drop slow consumers
// without corrupting the client maps.
func TestHandlePubSubMessageConcurrentSlowConsumerDrop(t *testing.T) {
	h := NewWebSocketHandler(logger.NewLogger("test"), nil)

	restaurants := []string{"rest1", "rest2"}
	for _, id := range restaurants {
		slow := &Client{restaurantID: id, send: make(chan []byte)}
		fast := &Client{restaurantID: id, send: make(chan []byte, websocketSendChannelBufferSize)}
		h.clients[slow] = true
		h.clients[fast] = true
		h.restaurantClients[id] = 2
	}

	order := &dto.OrderResponse{ID: "order1", Status: "PENDING"}

	var wg sync.WaitGroup
	for _, id := range restaurants {
		wg.Add(1)
		go func(restaurantID string) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				h.handlePubSubMessage(restaurantID, order)
			}
		}(id)
	}
	wg.Wait()

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	assert.Len(t, h.clients, 2)
	for _, id := range restaurants {
		assert.Equal(t, 1, h.restaurantClients[id])
	}
	for client := range h.clients {
		assert.Equal(t, websocketSendChannelBufferSize, cap(client.send))
	}
}
