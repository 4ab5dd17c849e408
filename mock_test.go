package main

import (
	"context"

	"github.com/stemstr/quotes/internal/quotestore"
	"github.com/stemstr/quotes/internal/service"
)

type mockQuoteService struct {
	CreateQuote *quotestore.Quote
	CreateErr   error
	ListQuotes  []quotestore.Quote
	ListErr     error
	UpdateErr   error
	DeleteErr   error
	Panic       bool
}

func (m *mockQuoteService) Create(ctx context.Context, r service.QuoteRequest) (*quotestore.Quote, error) {
	return m.CreateQuote, m.CreateErr
}
func (m *mockQuoteService) List(ctx context.Context) ([]quotestore.Quote, error) {
	if m.Panic {
		panic("list exploded")
	}
	return m.ListQuotes, m.ListErr
}
func (m *mockQuoteService) Update(ctx context.Context, id string, r service.QuoteRequest) error {
	return m.UpdateErr
}
func (m *mockQuoteService) Delete(ctx context.Context, id string) error {
	return m.DeleteErr
}
