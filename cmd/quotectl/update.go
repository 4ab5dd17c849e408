package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func init() {
	updateCmd.Flags().String("book", "", "new book")
	updateCmd.Flags().String("quote", "", "new quote text")
	updateCmd.MarkFlagRequired("book")
	updateCmd.MarkFlagRequired("quote")

	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "replace the book and text of a quote",
	Args:  cobra.ExactArgs(1),
	RunE:  doUpdate,
}

func doUpdate(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid quote id %q: %w", args[0], err)
	}

	svc, store, err := openService(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	return svc.Update(cmd.Context(), id.String(), quoteRequest(cmd))
}
