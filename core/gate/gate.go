package gate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kibraconnect/appkit/core/credentials"
	"github.com/kibraconnect/appkit/core/logger"
	"github.com/kibraconnect/appkit/pkg/broadcast"
)

const decisionBufferSize = 8

// StatusSource provides the authentication status and its transitions.
// *auth.Manager satisfies it.
type StatusSource interface {
	CurrentStatus(ctx context.Context) credentials.AuthStatus
	StatusChanges(ctx context.Context) broadcast.Subscriber[credentials.AuthStatus]
}

// Gate decides which screen partition is reachable. It starts with an
// unknown status (the splash state), resolves it from the status source on
// Start, and re-evaluates the current route on every status transition it
// is pushed. It never polls.
type Gate struct {
	src StatusSource
	log *slog.Logger
	bus *broadcast.MemoryBroadcaster[Resolution]

	mu        sync.Mutex
	status    credentials.AuthStatus
	requested Route
}

// Option configures the gate.
type Option func(*Gate)

// WithLogger attaches a structured logger. Defaults to slog's discard handler.
func WithLogger(log *slog.Logger) Option {
	return func(g *Gate) {
		if log != nil {
			g.log = log
		}
	}
}

// WithInitialRoute sets the route requested at launch. Defaults to the
// authenticated partition's entry, which redirects to login when the status
// resolves to unauthenticated.
func WithInitialRoute(route Route) Option {
	return func(g *Gate) {
		g.requested = route
	}
}

// New creates a gate over the given status source. Call Start to resolve
// the initial status; until then every resolution is a loading decision.
func New(src StatusSource, opts ...Option) *Gate {
	g := &Gate{
		src:       src,
		log:       slog.New(slog.DiscardHandler),
		bus:       broadcast.NewMemoryBroadcaster[Resolution](decisionBufferSize),
		status:    credentials.StatusUnknown,
		requested: AuthenticatedEntry,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Start resolves the initial status and then follows status transitions
// until ctx is cancelled. The subscription is taken before the initial read
// so a login racing the launch cannot slip between them.
func (g *Gate) Start(ctx context.Context) {
	sub := g.src.StatusChanges(ctx)

	g.apply(ctx, g.src.CurrentStatus(ctx))

	go func() {
		for msg := range sub.Receive(ctx) {
			g.apply(ctx, msg.Data)
		}
	}()
}

// Close shuts down the decision broadcaster and all its subscribers.
func (g *Gate) Close() error {
	return g.bus.Close()
}

// Navigate requests a route and returns its resolution against the current
// status. The route is remembered so later status transitions re-evaluate it.
func (g *Gate) Navigate(route Route) Resolution {
	g.mu.Lock()
	g.requested = route
	res := Resolve(g.status, g.requested)
	g.mu.Unlock()
	return res
}

// Current returns the resolution of the most recently requested route.
func (g *Gate) Current() Resolution {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Resolve(g.status, g.requested)
}

// Decisions subscribes to resolution changes driven by status transitions.
// The subscription is removed when ctx is cancelled.
func (g *Gate) Decisions(ctx context.Context) broadcast.Subscriber[Resolution] {
	return g.bus.Subscribe(ctx)
}

func (g *Gate) apply(ctx context.Context, status credentials.AuthStatus) {
	g.mu.Lock()
	if g.status == status {
		g.mu.Unlock()
		return
	}
	g.status = status
	res := Resolve(g.status, g.requested)
	g.mu.Unlock()

	g.log.DebugContext(ctx, "route resolved",
		logger.Component("gate"),
		slog.String("status", status.String()),
		slog.String("decision", res.Decision.String()),
		slog.String("route", string(res.Route)),
	)
	_ = g.bus.Broadcast(context.WithoutCancel(ctx), broadcast.Message[Resolution]{Data: res})
}
