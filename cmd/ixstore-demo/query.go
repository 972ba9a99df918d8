package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jfalcon/ixstore"
	"github.com/jfalcon/ixstore/examples/articles"
)

func newQueryCmd() *cobra.Command {
	var tag, name string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Look up seeded articles by tag and/or name",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, dims := seedStore()
			slog.Info("query", "tag", tag, "name", name, "store_size", store.Size())

			sel := ixstore.All[articles.Key]()
			if tag != "" {
				sel = ixstore.EQ(dims.Tags, tag)
			}
			if name != "" {
				nameSel := ixstore.EQ(dims.Name, name)
				if tag != "" {
					sel = ixstore.And(sel, nameSel)
				} else {
					sel = nameSel
				}
			}

			for _, r := range store.Lookup(sel) {
				fmt.Printf("#%v %s by %s\n", r.AutoIDs[0], r.Value.Body, r.Value.Author)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "filter by tag")
	cmd.Flags().StringVar(&name, "name", "", "filter by article name")
	return cmd
}
