// Package simulator generates synthetic notifications on a timer.
//
// Every interval the Simulator draws a category from its CategoryPicker,
// asks its ContentSource for a title and description, and adds the result to
// its Sink. GenerateOnce does the same on demand, optionally for a fixed
// category.
//
// The loop has an explicit lifecycle: Start launches it, Stop (or cancelling
// the Start context) ends it and waits for the goroutine to exit.
//
//	sim, err := simulator.New(store, generator, picker, simulator.WithInterval(20*time.Second))
//	if err != nil {
//	    return err
//	}
//	if err := sim.Start(ctx); err != nil {
//	    return err
//	}
//	defer sim.Stop()
package simulator
