// Package async provides lightweight futures for running operations that
// must outlive the screen or handler that started them.
//
// A Future decouples completion from awaiting: the function passed to Run
// always runs to its end, whether or not anyone is still waiting for the
// result. This matters for state-mutating operations such as a login that
// has already been submitted — the credential write must land even if the
// initiating screen has unmounted. Cancellation is explicit, via the context
// handed to Run.
//
//	future := async.Run(ctx, creds, func(ctx context.Context, c Credentials) (Session, error) {
//		return manager.Login(ctx, c.Identifier, c.Password)
//	})
//
//	// UI side: wait with a deadline, abandoning is safe.
//	sess, err := future.AwaitWithTimeout(5 * time.Second)
package async
