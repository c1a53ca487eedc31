// Package services holds the business rules that sit between the HTTP
// handlers and the store: stock-mutating purchase recording, the ledger,
// returns settlement, catalog queries and dashboard analytics.
package services

import (
	"context"
	"log/slog"
	"time"

	"medstore/models"
	"medstore/store"
)

type actorContextKey struct{}

// Actor is the authenticated caller a request acts on behalf of.
type Actor struct {
	ID   models.UserID
	Role models.Role
}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(Actor)
	return actor, ok
}

type Service struct {
	store   store.Store
	metrics *Metrics
	log     *slog.Logger
	now     func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func New(st store.Store, opts ...Option) *Service {
	s := &Service{
		store: st,
		log:   slog.Default(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}
	return s
}

// Now is the service clock.
func (s *Service) Now() time.Time { return s.now() }

func (s *Service) Ping(ctx context.Context) error { return s.store.Ping(ctx) }
