package sinks

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/loghandler"
)

// Redis returns a handler Descriptor that publishes each accepted record as
// a serialized payload to a Redis pub/sub channel, for fan-out to external
// log collectors — the reference use of dmitrymomot-foundation's go-redis/v9
// dependency in this domain.
func Redis(client *redis.Client, channel string) loghandler.Descriptor {
	return loghandler.Descriptor{
		Name: "redis",
		Init: func(*loghandler.Param) error {
			return client.Ping(context.Background()).Err()
		},
		ProcessLog: func(r loghandler.Record, _ *loghandler.Param) error {
			payload := loghandler.EncodeRecord(r)
			if err := client.Publish(context.Background(), channel, payload).Err(); err != nil {
				return fmt.Errorf("sinks: redis publish: %w", err)
			}
			return nil
		},
		ProcessExit: func(*loghandler.Param) error {
			return client.Close()
		},
	}
}
