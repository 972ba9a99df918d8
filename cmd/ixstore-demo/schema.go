package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the article key shape's dimension names",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _ := seedStore()
			for _, name := range store.Schema().DimensionNames() {
				fmt.Println(name)
			}
			return nil
		},
	}
}
