package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/binzume/animconv/jsonvalue"
)

func newStringsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strings <file.json> <field>",
		Short: "Print the elements of a top-level JSON array field, one per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := jsonvalue.ArrayFieldAsStrings(args[0], nil, args[1])
			if err != nil {
				return err
			}
			for _, v := range values {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
}
