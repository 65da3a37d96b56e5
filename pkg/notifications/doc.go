// Package notifications holds the in-memory notification store.
//
// A Store keeps at most MaxRetained notifications, newest first. Add inserts
// at the head and silently evicts the oldest entries beyond capacity.
// MarkAsRead, MarkAllAsRead and Remove are idempotent: when nothing changes
// they publish nothing. ClearAll always publishes.
//
// After every committed change the Store hands a fresh Snapshot to its
// Publisher together with a monotonically increasing version. Snapshots are
// copies; mutating one never affects the Store.
//
//	hub := broadcast.NewHub[notifications.Snapshot]()
//	store := notifications.NewStore(
//	    notifications.WithMaxRetained(50),
//	    notifications.WithPublisher(hub),
//	)
//
//	n, err := store.Add(ctx, notifications.CategoryError, "Sync failed", "Check your connection.")
//	if err != nil {
//	    return err
//	}
//	store.MarkAsRead(ctx, n.ID)
//
// # Categories
//
// The category set is closed: info, success, warning and error, declared in
// that order. Categories returns them in declared order.
//
// # Identifiers
//
// Ids are UUIDv7 strings (millisecond timestamp plus random bits). The Store
// also checks the id against retained notifications before inserting.
package notifications
