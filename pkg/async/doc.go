// Package async provides a generic Future type for running work in the
// background and collecting its result later.
//
// Basic usage:
//
//	future := async.Async(ctx, 123, fetchUser)
//
//	// Do other work...
//
//	user, err := future.Await()
//
// With a deadline:
//
//	user, err := future.AwaitWithTimeout(50 * time.Millisecond)
//	if errors.Is(err, async.ErrTimeout) {
//		log.Println("operation timed out")
//	}
//
// Resolved builds a future that is already complete, which is handy for
// handlers that sometimes answer synchronously:
//
//	return async.Resolved[any](cached, nil)
package async
