package service

import (
	"context"

	"github.com/stemstr/quotes/internal/quotestore"
)

type mockQuoteStore struct {
	CreateErr   error
	ListQuotes  []quotestore.Quote
	ListErr     error
	UpdateErr   error
	DeleteErr   error
	CreateCalls []quotestore.Quote
	UpdateCalls []quotestore.UpdateRequest
	DeleteCalls []string
}

func (m *mockQuoteStore) Create(ctx context.Context, q quotestore.Quote) error {
	m.CreateCalls = append(m.CreateCalls, q)
	return m.CreateErr
}
func (m *mockQuoteStore) List(ctx context.Context) ([]quotestore.Quote, error) {
	return m.ListQuotes, m.ListErr
}
func (m *mockQuoteStore) Update(ctx context.Context, req quotestore.UpdateRequest) error {
	m.UpdateCalls = append(m.UpdateCalls, req)
	return m.UpdateErr
}
func (m *mockQuoteStore) Delete(ctx context.Context, id string) error {
	m.DeleteCalls = append(m.DeleteCalls, id)
	return m.DeleteErr
}
func (m *mockQuoteStore) Close() error {
	return nil
}
