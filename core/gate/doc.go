// Package gate selects the reachable screen partition from the
// authentication status.
//
// Routes are partitioned into public screens (login, signup, email
// verification, forgot password) and authenticated screens (home, profile,
// messages, edit profile). Resolve is the pure decision: while the status
// is unknown only a loading placeholder may render; once it resolves, a
// route outside the reachable partition redirects to that partition's entry
// instead of rendering a broken screen.
//
// Gate wires Resolve to a status source. It is event-driven: transitions
// are pushed by the session manager's broadcast, never polled.
//
//	g := gate.New(manager)
//	g.Start(ctx)
//
//	switch res := g.Navigate(gate.RouteProfile); res.Decision {
//	case gate.DecisionRender:
//		// show profile
//	case gate.DecisionRedirect:
//		// go to res.Route
//	case gate.DecisionLoading:
//		// keep the splash screen up
//	}
package gate
