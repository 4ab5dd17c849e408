package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/stemstr/quotes/internal/clock"
	"github.com/stemstr/quotes/internal/quotestore"
)

// Service implements the quote operations on top of a QuoteStore.
type Service struct {
	store quotestore.QuoteStore
	clock clock.Clock
}

// New returns a Service over store. A nil clock means the system clock.
func New(store quotestore.QuoteStore, clk clock.Clock) (*Service, error) {
	if store == nil {
		return nil, errors.New("service: nil quote store")
	}
	if clk == nil {
		clk = clock.System{}
	}

	return &Service{
		store: store,
		clock: clk,
	}, nil
}

// QuoteRequest carries the caller-supplied fields of create and update.
type QuoteRequest struct {
	Book  string
	Quote string
}

// Create assigns a fresh id and timestamps and inserts the quote.
func (s *Service) Create(ctx context.Context, r QuoteRequest) (*quotestore.Quote, error) {
	now := s.now()
	q := quotestore.Quote{
		ID:         uuid.New().String(),
		Book:       r.Book,
		Quote:      r.Quote,
		InsertedAt: now,
		UpdatedAt:  now,
	}

	if err := s.store.Create(ctx, q); err != nil {
		return nil, storeFailure("create", err)
	}

	return &q, nil
}

// List returns every stored quote, never nil.
func (s *Service) List(ctx context.Context) ([]quotestore.Quote, error) {
	quotes, err := s.store.List(ctx)
	if err != nil {
		return nil, storeFailure("list", err)
	}
	if quotes == nil {
		quotes = []quotestore.Quote{}
	}

	return quotes, nil
}

// Update replaces book and quote and bumps updated_at. inserted_at is left
// untouched.
func (s *Service) Update(ctx context.Context, id string, r QuoteRequest) error {
	err := s.store.Update(ctx, quotestore.UpdateRequest{
		ID:        id,
		Book:      r.Book,
		Quote:     r.Quote,
		UpdatedAt: s.now(),
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, quotestore.ErrNotFound):
		return notFound("update")
	default:
		return storeFailure("update", err)
	}
}

// Delete removes the quote with id.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, quotestore.ErrNotFound):
		return notFound("delete")
	default:
		return storeFailure("delete", err)
	}
}

// now is truncated to the microsecond precision postgres keeps, so a created
// quote reads back unchanged.
func (s *Service) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}
