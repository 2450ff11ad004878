package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/qrorder/qr-order-api/internal/api/dto"
	"github.com/qrorder/qr-order-api/pkg/logger"
)

const (
	channelPrefix = "orders:"
)

// RedisPubSub fans incoming orders out across API instances. Each restaurant
// gets its own channel so a subscriber only ever sees its own orders.
type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscribers  map[string]*redis.PubSub // Map of restaurant ID to subscriber
	subscriberMu sync.RWMutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client:      client,
		logger:      logger,
		subscribers: make(map[string]*redis.PubSub),
	}
}

func (ps *RedisPubSub) getChannelName(restaurantID string) string {
	return channelPrefix + restaurantID
}

// Publish publishes a new order to its restaurant's Redis channel.
func (ps *RedisPubSub) Publish(ctx context.Context, restaurantID string, order *dto.OrderResponse) error {
	message, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	channel := ps.getChannelName(restaurantID)
	if err := ps.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe subscribes to new orders for a specific restaurant.
func (ps *RedisPubSub) Subscribe(ctx context.Context, restaurantID string, callback func(restaurantID string, order *dto.OrderResponse)) error {
	channel := ps.getChannelName(restaurantID)

	ps.subscriberMu.RLock()
	_, exists := ps.subscribers[restaurantID]
	ps.subscriberMu.RUnlock()
	if exists {
		ps.logger.Infof("Already subscribed to restaurant channel: %s", channel)
		return nil
	}

	pubsub := ps.client.Subscribe(ctx, channel)

	ps.subscriberMu.Lock()
	ps.subscribers[restaurantID] = pubsub
	ps.subscriberMu.Unlock()

	go func() {
		defer func() {
			ps.logger.Infof("Closing subscription for restaurant channel: %s", channel)
			pubsub.Close()
			ps.subscriberMu.Lock()
			delete(ps.subscribers, restaurantID)
			ps.subscriberMu.Unlock()
		}()

		ch := pubsub.Channel()
		for {
			select {
			case msg := <-ch:
				var order dto.OrderResponse
				if err := json.Unmarshal([]byte(msg.Payload), &order); err != nil {
					ps.logger.Errorf("Failed to unmarshal order from channel %s: %v", channel, err)
					continue
				}
				callback(restaurantID, &order)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Infof("Subscribed to restaurant channel: %s", channel)
	return nil
}

// Unsubscribe removes the subscription for a restaurant.
func (ps *RedisPubSub) Unsubscribe(restaurantID string) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if pubsub, exists := ps.subscribers[restaurantID]; exists {
		pubsub.Close()
		delete(ps.subscribers, restaurantID)
		ps.logger.Infof("Unsubscribed from restaurant channel: %s", ps.getChannelName(restaurantID))
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for restaurantID, pubsub := range ps.subscribers {
		pubsub.Close()
		delete(ps.subscribers, restaurantID)
		ps.logger.Infof("Closed subscription for restaurant channel: %s", ps.getChannelName(restaurantID))
	}
}
