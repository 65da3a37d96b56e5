// Package broadcast provides a generic, synchronous observer hub.
//
// Hub keeps observers in registration order and invokes all of them inside
// Publish, so a caller knows every observer has seen a value by the time
// Publish returns. Each invocation runs behind a recover boundary: a
// panicking observer is logged, reported to the optional panic handler and
// skipped, and the remaining observers still receive the value.
//
//	hub := broadcast.NewHub[notifications.Snapshot](
//	    broadcast.WithClone(notifications.Snapshot.Clone),
//	)
//	handle, _ := hub.Subscribe(func(ctx context.Context, snap notifications.Snapshot) {
//	    render(snap)
//	})
//	defer hub.Unsubscribe(handle)
//
// Values are published with a sequence number; stale sequences are dropped.
//
// Stream turns a subscription into a buffered channel for consumers running in
// their own goroutine. Slow streams lose values instead of blocking Publish.
package broadcast
