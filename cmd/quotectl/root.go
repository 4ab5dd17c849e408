package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/stemstr/quotes/internal/clock"
	"github.com/stemstr/quotes/internal/quotestore"
	"github.com/stemstr/quotes/internal/service"
)

var (
	verbose  bool
	dbDriver string
	dbURL    string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&dbDriver, "driver", "", envOr("DB_DRIVER", quotestore.DriverPostgres), "db driver: postgres, pgx or sqlite3")
	rootCmd.PersistentFlags().StringVarP(&dbURL, "dburl", "", os.Getenv("DB_URL"), "db url: postgresql://... or /path/to/quotes.db")
}

var rootCmd = &cobra.Command{
	Use:          "quotectl",
	Short:        "quotes database CLI",
	SilenceUsage: true,
}

// openService connects to the configured store. The caller closes the store.
func openService(cmd *cobra.Command) (*service.Service, quotestore.QuoteStore, error) {
	store, err := quotestore.New(cmd.Context(), quotestore.Options{
		Driver:       dbDriver,
		URL:          dbURL,
		MaxOpenConns: 2,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	svc, err := service.New(store, clock.System{})
	if err != nil {
		store.Close()
		return nil, nil, err
	}

	return svc, store, nil
}

// quoteRequest reads the --book and --quote flags of create and update.
func quoteRequest(cmd *cobra.Command) service.QuoteRequest {
	book, _ := cmd.Flags().GetString("book")
	quote, _ := cmd.Flags().GetString("quote")
	return service.QuoteRequest{Book: book, Quote: quote}
}

func logger(w io.Writer) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(lvl).With().Timestamp().Logger()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
