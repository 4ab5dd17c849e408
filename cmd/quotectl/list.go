package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list every quote in the database",
	Args:  cobra.NoArgs,
	RunE:  doList,
}

func doList(cmd *cobra.Command, args []string) error {
	svc, store, err := openService(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	quotes, err := svc.List(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID\tBook\tQuote\tUpdated\n")
	for _, q := range quotes {
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", q.ID, q.Book, q.Quote, q.UpdatedAt.Format(time.RFC3339))
	}

	log := logger(cmd.ErrOrStderr())
	log.Debug().Int("total", len(quotes)).Msg("listed quotes")
	return nil
}
