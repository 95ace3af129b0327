package messaging

import (
	"context"
	"encoding/json"
)

// SubscribeJSON subscribes to channel and decodes every payload into T.
// Payloads that do not decode are passed to onDrop, when set, and skipped.
func SubscribeJSON[T any](ctx context.Context, client RedisClient, channel string, onDrop func(Message, error)) (<-chan T, error) {
	messages, err := client.Subscribe(ctx, channel)
	if err != nil {
		return nil, err
	}

	out := make(chan T)
	go func() {
		defer close(out)
		for msg := range messages {
			var value T
			if err := json.Unmarshal(msg.Payload, &value); err != nil {
				if onDrop != nil {
					onDrop(msg, err)
				}
				continue
			}
			select {
			case out <- value:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
