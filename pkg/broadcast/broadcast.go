package broadcast

import "context"

// Message wraps broadcast payloads, allowing type-safe delivery of any data type.
type Message[T any] struct {
	Data T
}

// Broadcaster sends messages to multiple subscribers.
type Broadcaster[T any] interface {
	// Broadcast delivers a message to all active subscribers without blocking
	// on slow consumers.
	Broadcast(ctx context.Context, msg Message[T]) error
	// Subscribe registers a new subscriber whose lifetime is bound to ctx.
	Subscribe(ctx context.Context) Subscriber[T]
	// Close shuts down the broadcaster and all its subscribers.
	Close() error
}

// Subscriber receives broadcast messages.
type Subscriber[T any] interface {
	// Receive returns the channel emitting broadcast messages.
	// The channel is closed when the subscriber or broadcaster closes.
	Receive(ctx context.Context) <-chan Message[T]
	// Close unregisters the subscriber and closes its channel.
	Close() error
}
