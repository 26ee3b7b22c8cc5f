package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/binzume/animconv/converter"
	"github.com/binzume/animconv/moviescene"
)

func newResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <sequence.yaml>",
		Short: "Remove all bindings and tracks from a sequence asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := ctx.ensure()
			if err != nil {
				return err
			}
			path := args[0]

			lock, err := moviescene.LockAsset(path)
			if err != nil {
				return err
			}
			defer lock.Unlock()

			seq, err := moviescene.LoadAsset(path)
			if err != nil {
				return err
			}
			converter.ResetMovieScene(seq.MovieScene(), log)
			seq.MarkPackageDirty()
			if err := moviescene.SaveAsset(path, seq); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "reset", path)
			return nil
		},
	}
}
