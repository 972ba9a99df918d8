package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jfalcon/ixstore"
	"github.com/jfalcon/ixstore/examples/articles"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the seeded store's size and per-dimension bucket fan-out",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _ := seedStore()
			fmt.Printf("size: %d\n", store.Size())
			fmt.Printf("all:  %d\n", len(store.LookupValues(ixstore.All[articles.Key]())))

			counts := store.BucketCounts()
			names := make([]string, 0, len(counts))
			for name := range counts {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Println("buckets:")
			for _, name := range names {
				fmt.Printf("  %-8s %d\n", name, counts[name])
			}
			return nil
		},
	}
}
