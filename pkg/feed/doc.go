// Package feed derives consumer-side views from notification snapshots.
//
// Refresher re-reads a snapshot source after a simulated latency, guarded by
// an in-flight flag and a cooldown measured from the last completed refresh.
// Filter performs case-insensitive substring matching over titles and
// descriptions, and Search defers that filtering until its inputs settle.
// Partition and Summarize compute read/unread splits and counts directly from
// a snapshot.
//
// Basic usage:
//
//	r, err := feed.NewRefresher(store)
//	if err != nil {
//	    return err
//	}
//	fut, err := r.Refresh(ctx)
//	if errors.Is(err, feed.ErrRefreshCooldown) {
//	    return nil // too soon, nothing to do
//	}
//	snap, _ := fut.Await()
//
//	search := feed.NewSearch(150*time.Millisecond, func(q string, res notifications.Snapshot) {
//	    render(res)
//	})
//	defer search.Close()
//	_ = search.SetQuery("backup")
package feed
