// Package async provides a minimal generic Future.
//
// Async starts a function in its own goroutine and returns a *Future that
// can be awaited with Await, AwaitContext or AwaitWithTimeout. Abandoning a
// wait never cancels the underlying work; the computation runs to completion
// and the Future keeps its result.
//
//	f := async.Async(ctx, store, func(ctx context.Context, s *notifications.Store) (notifications.Snapshot, error) {
//	    time.Sleep(800 * time.Millisecond)
//	    return s.Snapshot(), nil
//	})
//	snap, err := f.Await()
package async
