package handler

import (
	"campus_cms/database"
	"campus_cms/helper"
	"context"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// feedClient is what the broadcast loop needs from a connection.
type feedClient interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

var (
	reviewClients = make(map[feedClient]bool)
	reviewMu      sync.Mutex
	relayOnce     sync.Once
)

// ModerationFeed keeps a reviewer's websocket open and relays submission
// events published on the redis moderation channel, so the review queue UI
// updates without polling. One relay goroutine holds the only redis
// subscription and fans each event out to every registered connection.
func ModerationFeed(c *websocket.Conn) {
	reviewMu.Lock()
	reviewClients[c] = true
	reviewMu.Unlock()

	defer func() {
		reviewMu.Lock()
		delete(reviewClients, c)
		reviewMu.Unlock()
		c.Close()
	}()

	if database.Redis != nil {
		relayOnce.Do(startModerationRelay)
	}

	// Hold the socket; the relay goroutine does the writing.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

func startModerationRelay() {
	pubsub := database.Redis.Subscribe(context.Background(), helper.ModerationChannel())
	go func() {
		defer pubsub.Close()
		for msg := range pubsub.Channel() {
			broadcastModeration([]byte(msg.Payload))
		}
	}()
}

func broadcastModeration(payload []byte) {
	reviewMu.Lock()
	defer reviewMu.Unlock()
	for client := range reviewClients {
		if err := client.WriteMessage(websocket.TextMessage, payload); err != nil {
			client.Close()
			delete(reviewClients, client)
		}
	}
}
