// Package broadcast provides a generic pub/sub messaging system with pluggable backends.
//
// This package supports in-memory broadcasting with automatic cleanup and non-blocking
// message delivery to prevent slow consumers from affecting the entire system.
//
// # Usage
//
//	// Create a broadcaster with buffer size of 100 messages per subscriber
//	broadcaster := broadcast.NewMemoryBroadcaster[string](100)
//	defer broadcaster.Close()
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	subscriber := broadcaster.Subscribe(ctx)
//	defer subscriber.Close()
//
//	go func() {
//		for msg := range subscriber.Receive(ctx) {
//			fmt.Printf("Received: %s\n", msg.Data)
//		}
//	}()
//
//	broadcaster.Broadcast(ctx, broadcast.Message[string]{Data: "Hello, World!"})
//
// # Slow Consumer Handling
//
// If a subscriber's buffer is full, messages are dropped for that subscriber
// rather than blocking the broadcast operation. This prevents slow consumers
// from affecting other subscribers or blocking the broadcaster.
//
// # Context Integration
//
// Subscriptions are automatically cleaned up when their context is cancelled.
// Operations on closed resources are safe and will not panic.
package broadcast
