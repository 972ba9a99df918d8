// Command ixstore-demo is a throwaway CLI over the examples/articles
// sample domain, wiring cobra for subcommands and viper for flag/env/config
// binding the way the teacher's prototype CLI does, without carrying over
// any of its SQL-backed persistence (spec.md's Non-goals exclude a CLI and
// persistence as core store features; this lives outside the store package
// purely to exercise the domain dependencies end to end).
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jfalcon/ixstore"
	"github.com/jfalcon/ixstore/examples/articles"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ixstore-demo",
		Short: "Seed and query an in-memory article store",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging(viper.GetString("log-level"))
		},
	}

	root.PersistentFlags().String("log-level", "warn", "debug|info|warn|error")
	root.PersistentFlags().Int64("auto-start", 1, "starting value for the id dimension")
	root.PersistentFlags().String("seed-file", "", "YAML seed-data file (defaults to a small built-in set)")
	_ = viper.BindPFlags(root.PersistentFlags())
	_ = viper.BindEnv("log-level", "IXSTORE_LOG_LEVEL")
	_ = viper.BindEnv("auto-start", "IXSTORE_AUTO_START")
	_ = viper.BindEnv("seed-file", "IXSTORE_SEED_FILE")
	viper.SetDefault("log-level", "warn")
	viper.SetDefault("auto-start", 1)

	root.AddCommand(newQueryCmd(), newInsertCmd(), newSchemaCmd(), newStatsCmd())
	return root
}

func seedStore() (*ixstore.Store[articles.Key, articles.Article], articles.Dims) {
	store, dims, err := articles.NewStore(ixstore.WithAutoStart("id", viper.GetInt64("auto-start")))
	if err != nil {
		panic(err)
	}
	rows, err := loadSeed(viper.GetString("seed-file"))
	if err != nil {
		panic(err)
	}
	for _, row := range rows {
		store.InsertDiscard(articles.Key{
			Name:  []string{row.Name},
			Words: strings.Fields(row.Words),
			Tags:  strings.Fields(row.Tags),
		}, articles.NewArticle(row.Author, row.Body))
	}
	return store, dims
}
