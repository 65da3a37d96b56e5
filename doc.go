// Package notifykit is an in-memory notification center.
//
// A Center keeps a bounded, newest-first list of notifications and tells its
// observers about every change by handing each of them an independent
// snapshot. A built-in simulator can generate notifications on a timer,
// standing in for a real push source.
//
// Components:
//
//   - pkg/notifications: Notification, Snapshot and the bounded Store
//   - pkg/broadcast: synchronous observer Hub and channel Stream
//   - pkg/content: content tables, Generator and weighted category Picker
//   - pkg/simulator: ticker-driven generation with Start/Stop
//   - pkg/feed: Refresher, Filter, Search and summary views
//
// Basic usage:
//
//	center, err := notifykit.NewFromEnv(notifykit.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	defer center.Close()
//
//	center.Subscribe(func(ctx context.Context, snap notifications.Snapshot) {
//		render(snap, snap.UnreadCount())
//	})
//
//	if err := center.Start(ctx); err != nil {
//		return err
//	}
//
//	n, _ := center.GenerateOnce(ctx, notifications.CategoryWarning)
//	center.MarkAsRead(ctx, n.ID)
//
// Configuration is read from NOTIFY_* environment variables; see Config.
package notifykit
