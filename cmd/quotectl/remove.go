package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/stemstr/quotes/internal/service"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove ID...",
	Short: "delete quotes by id",
	Args:  cobra.MinimumNArgs(1),
	RunE:  doRemove,
}

func doRemove(cmd *cobra.Command, args []string) error {
	svc, store, err := openService(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	log := logger(cmd.ErrOrStderr())

	var removed, missing int
	for _, arg := range args {
		id, err := uuid.Parse(arg)
		if err != nil {
			log.Warn().Str("id", arg).Msg("not a quote id")
			missing++
			continue
		}

		err = svc.Delete(cmd.Context(), id.String())
		switch {
		case err == nil:
			removed++
			log.Debug().Str("id", id.String()).Msg("removed")
		case errors.Is(err, service.ErrNotFound):
			missing++
			log.Warn().Str("id", id.String()).Msg("quote not found")
		default:
			return fmt.Errorf("remove %s: %w", id, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "removed: %d\nnot found: %d\n", removed, missing)
	return nil
}
