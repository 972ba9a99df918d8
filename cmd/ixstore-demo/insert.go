package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jfalcon/ixstore/examples/articles"
)

func newInsertCmd() *cobra.Command {
	var name, words, tags, author, body string

	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Insert one article into a freshly seeded store and print its assigned id",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _ := seedStore()
			auto := store.Insert(articles.Key{
				Name:  []string{name},
				Words: strings.Fields(words),
				Tags:  strings.Fields(tags),
			}, articles.NewArticle(author, body))
			fmt.Printf("inserted #%v\n", auto[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "article name")
	cmd.Flags().StringVar(&words, "words", "", "space-separated body keywords")
	cmd.Flags().StringVar(&tags, "tags", "", "space-separated tags")
	cmd.Flags().StringVar(&author, "author", "", "author")
	cmd.Flags().StringVar(&body, "body", "", "body text")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
