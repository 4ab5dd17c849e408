package quotestore

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(context.TODO(), Options{
		Driver: DriverSQLite,
		URL:    filepath.Join(t.TempDir(), "quotes.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

// newPostgresStore connects to QUOTES_TEST_POSTGRES_URL and empties the quotes table.
func newPostgresStore(t *testing.T, driver string) *Store {
	t.Helper()

	dsn := os.Getenv("QUOTES_TEST_POSTGRES_URL")
	if dsn == "" {
		t.Skip("QUOTES_TEST_POSTGRES_URL not set; skipping postgres store tests")
	}

	s, err := New(context.TODO(), Options{Driver: driver, URL: dsn, MaxOpenConns: 4})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = s.db.Exec(`DELETE FROM quotes`)
	require.NoError(t, err)

	return s
}

func newQuote(book, quote string, at time.Time) Quote {
	return Quote{
		ID:         uuid.New().String(),
		Book:       book,
		Quote:      quote,
		InsertedAt: at,
		UpdatedAt:  at,
	}
}

func TestNewStore(t *testing.T) {
	var tests = []struct {
		name string
		opts Options
		err  error
	}{
		{"missing url", Options{Driver: DriverSQLite}, nil},
		{"unknown driver", Options{Driver: "mysql", URL: "root@/quotes"}, ErrUnsupportedDriver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(context.TODO(), tt.opts)
			assert.Error(t, err)
			assert.Nil(t, s)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestStoreSQLite(t *testing.T) {
	runStoreContract(t, func(t *testing.T) *Store { return newSQLiteStore(t) })
}

func TestStorePostgres(t *testing.T) {
	runStoreContract(t, func(t *testing.T) *Store { return newPostgresStore(t, DriverPostgres) })
}

func TestStorePGX(t *testing.T) {
	runStoreContract(t, func(t *testing.T) *Store { return newPostgresStore(t, DriverPGX) })
}

func TestNewStoreIsIdempotent(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "quotes.db")

	first, err := New(context.TODO(), Options{Driver: DriverSQLite, URL: dbFile})
	require.NoError(t, err)
	require.NoError(t, first.Create(context.TODO(), newQuote("Dune", "Fear is the mind-killer", time.Now().UTC())))
	require.NoError(t, first.Close())

	second, err := New(context.TODO(), Options{Driver: DriverSQLite, URL: dbFile})
	require.NoError(t, err)
	defer second.Close()

	quotes, err := second.List(context.TODO())
	assert.NoError(t, err)
	assert.Len(t, quotes, 1)
}

// runStoreContract exercises the behaviour every QuoteStore backend must share.
func runStoreContract(t *testing.T, open func(t *testing.T) *Store) {
	ctx := context.TODO()
	at := time.Date(2024, 3, 1, 12, 30, 0, 123456000, time.UTC)

	t.Run("list empty", func(t *testing.T) {
		s := open(t)

		quotes, err := s.List(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, quotes)
		assert.Empty(t, quotes)
	})

	t.Run("create then list", func(t *testing.T) {
		s := open(t)
		q := newQuote("Dune", "Fear is the mind-killer", at)

		require.NoError(t, s.Create(ctx, q))

		quotes, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, q.ID, quotes[0].ID)
		assert.Equal(t, q.Book, quotes[0].Book)
		assert.Equal(t, q.Quote, quotes[0].Quote)
		assert.True(t, q.InsertedAt.Equal(quotes[0].InsertedAt))
		assert.True(t, q.UpdatedAt.Equal(quotes[0].UpdatedAt))
		assert.Equal(t, time.UTC, quotes[0].InsertedAt.Location())
	})

	t.Run("create accepts empty strings", func(t *testing.T) {
		s := open(t)

		require.NoError(t, s.Create(ctx, newQuote("", "", at)))

		quotes, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "", quotes[0].Book)
		assert.Equal(t, "", quotes[0].Quote)
	})

	t.Run("create duplicate id", func(t *testing.T) {
		s := open(t)
		q := newQuote("Dune", "Fear is the mind-killer", at)

		require.NoError(t, s.Create(ctx, q))
		assert.Error(t, s.Create(ctx, q))
	})

	t.Run("list many", func(t *testing.T) {
		s := open(t)
		books := []string{"Dune", "Emma", "Ulysses"}

		for _, book := range books {
			require.NoError(t, s.Create(ctx, newQuote(book, "...", at)))
		}

		quotes, err := s.List(ctx)
		require.NoError(t, err)
		assert.Len(t, quotes, len(books))

		var gotBooks []string
		for _, q := range quotes {
			gotBooks = append(gotBooks, q.Book)
		}
		sort.Strings(gotBooks)
		assert.Equal(t, books, gotBooks)
	})

	t.Run("update", func(t *testing.T) {
		s := open(t)
		q := newQuote("Dune", "Fear is the mind-killer", at)
		require.NoError(t, s.Create(ctx, q))

		later := at.Add(time.Minute)
		err := s.Update(ctx, UpdateRequest{ID: q.ID, Book: "Dune Messiah", Quote: "No more", UpdatedAt: later})
		require.NoError(t, err)

		quotes, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, q.ID, quotes[0].ID)
		assert.Equal(t, "Dune Messiah", quotes[0].Book)
		assert.Equal(t, "No more", quotes[0].Quote)
		assert.True(t, q.InsertedAt.Equal(quotes[0].InsertedAt))
		assert.True(t, later.Equal(quotes[0].UpdatedAt))
	})

	t.Run("update with clock behind inserted_at", func(t *testing.T) {
		s := open(t)
		q := newQuote("Dune", "Fear is the mind-killer", at)
		require.NoError(t, s.Create(ctx, q))

		earlier := at.Add(-time.Hour)
		err := s.Update(ctx, UpdateRequest{ID: q.ID, Book: "Dune Messiah", Quote: "No more", UpdatedAt: earlier})
		require.NoError(t, err)

		quotes, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, quotes, 1)
		assert.Equal(t, "Dune Messiah", quotes[0].Book)
		assert.True(t, at.Equal(quotes[0].UpdatedAt), "updated_at %s", quotes[0].UpdatedAt)
	})

	t.Run("update missing", func(t *testing.T) {
		s := open(t)

		err := s.Update(ctx, UpdateRequest{ID: uuid.New().String(), Book: "X", Quote: "Y", UpdatedAt: at})
		assert.ErrorIs(t, err, ErrNotFound)

		quotes, err := s.List(ctx)
		assert.NoError(t, err)
		assert.Empty(t, quotes)
	})

	t.Run("delete twice", func(t *testing.T) {
		s := open(t)
		q := newQuote("Dune", "Fear is the mind-killer", at)
		require.NoError(t, s.Create(ctx, q))

		assert.NoError(t, s.Delete(ctx, q.ID))
		assert.ErrorIs(t, s.Delete(ctx, q.ID), ErrNotFound)

		quotes, err := s.List(ctx)
		assert.NoError(t, err)
		assert.Empty(t, quotes)
	})

	t.Run("closed store fails", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Close())

		_, err := s.List(ctx)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}
