package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	createCmd.Flags().String("book", "", "book the quote is taken from")
	createCmd.Flags().String("quote", "", "quote text")
	createCmd.MarkFlagRequired("book")
	createCmd.MarkFlagRequired("quote")

	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "create a quote and print its id",
	Args:  cobra.NoArgs,
	RunE:  doCreate,
}

func doCreate(cmd *cobra.Command, args []string) error {
	svc, store, err := openService(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	q, err := svc.Create(cmd.Context(), quoteRequest(cmd))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), q.ID)
	return nil
}
