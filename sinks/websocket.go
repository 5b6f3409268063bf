package sinks

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/dmitrymomot/loghandler"
)

// WebSocket returns a handler Descriptor that streams each accepted record
// as a binary frame to a connected collector, using gorilla/websocket the
// same way dmitrymomot-foundation's realtime components do. conn is
// expected to already be an established connection (accepted elsewhere);
// this sink only writes.
func WebSocket(conn *websocket.Conn) loghandler.Descriptor {
	var mu sync.Mutex

	return loghandler.Descriptor{
		Name: "websocket",
		ProcessLog: func(r loghandler.Record, _ *loghandler.Param) error {
			mu.Lock()
			defer mu.Unlock()
			if err := conn.WriteMessage(websocket.BinaryMessage, loghandler.EncodeRecord(r)); err != nil {
				return fmt.Errorf("sinks: websocket write: %w", err)
			}
			return nil
		},
		ProcessExit: func(*loghandler.Param) error {
			mu.Lock()
			defer mu.Unlock()
			return conn.Close()
		},
	}
}
