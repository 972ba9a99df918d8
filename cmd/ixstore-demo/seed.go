package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// seedRow is one article in the demo's seed-data file format.
type seedRow struct {
	Name   string `yaml:"name"`
	Words  string `yaml:"words"`
	Tags   string `yaml:"tags"`
	Author string `yaml:"author"`
	Body   string `yaml:"body"`
}

type seedFile struct {
	Articles []seedRow `yaml:"articles"`
}

// defaultSeed is used when no --seed-file is given.
var defaultSeed = []seedRow{
	{"About Haskell", "haskell monads", "functional haskell", "ana", "Haskell is great"},
	{"About Go", "go channels", "concurrent go", "ben", "Go has goroutines"},
	{"Intro to Rust", "rust ownership", "systems rust", "cleo", "Rust tracks ownership"},
}

// loadSeed reads a seed-data YAML file of the form:
//
//	articles:
//	  - name: About Haskell
//	    words: haskell monads
//	    tags: functional haskell
//	    author: ana
//	    body: Haskell is great
//
// An empty path returns defaultSeed.
func loadSeed(path string) ([]seedRow, error) {
	if path == "" {
		return defaultSeed, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ixstore-demo: reading seed file %s: %w", path, err)
	}
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("ixstore-demo: parsing seed file %s: %w", path, err)
	}
	return f.Articles, nil
}
