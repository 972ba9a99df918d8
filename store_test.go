package ixstore_test

import (
	"testing"

	"github.com/jfalcon/ixstore"
)

// articleKey mirrors spec.md §8's end-to-end scenario key shape:
// [auto-Int, multi-Text, multi-Text, multi-Text].
type articleKey struct {
	ID   int      `ixstore:"auto"`
	Name []string `ixstore:"multi"`
	Body []string `ixstore:"multi"`
	Tags []string `ixstore:"multi"`
}

type article struct {
	Author string
}

func newArticleStore(t *testing.T) (*ixstore.Store[articleKey, article], ixstore.Dim[articleKey, int], ixstore.Dim[articleKey, string], ixstore.Dim[articleKey, string]) {
	t.Helper()
	store, err := ixstore.New[articleKey, article]()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	schema := store.Schema()
	id := ixstore.Field[articleKey, int](schema, "id")
	name := ixstore.Field[articleKey, string](schema, "name")
	tags := ixstore.Field[articleKey, string](schema, "tags")
	return store, id, name, tags
}

func TestInsertReturnsAutoProjection(t *testing.T) {
	store, _, _, _ := newArticleStore(t)

	auto := store.Insert(articleKey{
		Name: []string{"About Haskell"},
		Body: []string{"Haskell is great"},
		Tags: []string{"Haskell"},
	}, article{Author: "ana"})

	if store.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", store.Size())
	}
	if len(auto) != 1 || auto[0] != int64(1) {
		t.Fatalf("auto projection = %v, want [1]", auto)
	}
}

func TestLookupByEqOr(t *testing.T) {
	store, _, name, tag := newArticleStore(t)

	store.InsertDiscard(articleKey{Name: []string{"About Haskell"}, Tags: []string{"Haskell"}}, article{Author: "ana"})
	store.InsertDiscard(articleKey{Name: []string{"Intro"}, Tags: []string{"Go"}}, article{Author: "ben"})

	sel := ixstore.Or(ixstore.EQ(name, "About Haskell"), ixstore.EQ(tag, "Go"))
	got := store.LookupValues(sel)
	if len(got) != 2 {
		t.Fatalf("LookupValues returned %d values, want 2", len(got))
	}
}

func TestUpdateDeleteOnNoMatchLeavesStoreUnchanged(t *testing.T) {
	store, _, _, tag := newArticleStore(t)
	store.InsertDiscard(articleKey{Name: []string{"About Haskell"}, Tags: []string{"Haskell"}}, article{Author: "ana"})

	store.Update(ixstore.EQ(tag, "Python"), func(v article) ixstore.UpdateResult[articleKey, article] {
		return ixstore.UpdateResult[articleKey, article]{Delete: true}
	})

	if store.Size() != 1 {
		t.Fatalf("Size() = %d after no-op update, want 1", store.Size())
	}
}

func TestUpdateValueOnlyLeavesIndicesUntouched(t *testing.T) {
	store, id, name, _ := newArticleStore(t)
	store.InsertDiscard(articleKey{Name: []string{"One"}}, article{Author: "a"})
	store.InsertDiscard(articleKey{Name: []string{"Two"}}, article{Author: "b"})
	store.InsertDiscard(articleKey{Name: []string{"Three"}}, article{Author: "c"})

	store.Update(ixstore.EQ(id, 2), func(v article) ixstore.UpdateResult[articleKey, article] {
		return ixstore.UpdateResult[articleKey, article]{Value: article{Author: "b2"}}
	})

	got := store.LookupValues(ixstore.EQ(name, "Two"))
	if len(got) != 1 || got[0].Author != "b2" {
		t.Fatalf("LookupValues(name=Two) = %v, want [{b2}]", got)
	}
}

func TestUpdateKeyMovesIndexBucketAndKeepsAutoID(t *testing.T) {
	store, id, name, _ := newArticleStore(t)
	store.InsertDiscard(articleKey{Name: []string{"One"}}, article{Author: "a"})
	autoID2 := store.Insert(articleKey{Name: []string{"X"}}, article{Author: "b"})
	store.InsertDiscard(articleKey{Name: []string{"Three"}}, article{Author: "c"})

	store.Update(ixstore.EQ(id, 2), func(v article) ixstore.UpdateResult[articleKey, article] {
		newKey := articleKey{Name: []string{"Y"}}
		return ixstore.UpdateResult[articleKey, article]{Value: v, Key: &newKey}
	})

	if got := store.LookupValues(ixstore.EQ(name, "X")); len(got) != 0 {
		t.Fatalf("old bucket X still has a member: %v", got)
	}
	got := store.Lookup(ixstore.EQ(name, "Y"))
	if len(got) != 1 {
		t.Fatalf("LookupValues(name=Y) returned %d results, want 1", len(got))
	}
	if got[0].AutoIDs[0] != autoID2[0] {
		t.Fatalf("auto id changed across key-replacing update: got %v, want %v", got[0].AutoIDs[0], autoID2[0])
	}
}

func TestRangeSelection(t *testing.T) {
	store, id, _, _ := newArticleStore(t)
	for i := 0; i < 6; i++ {
		store.InsertDiscard(articleKey{}, article{Author: "x"})
	}

	sel := ixstore.And(ixstore.GTE(id, 2), ixstore.LT(id, 5))
	got := store.Lookup(sel)
	if len(got) != 3 {
		t.Fatalf("GTE(2) AND LT(5) returned %d, want 3", len(got))
	}
	for _, r := range got {
		v := r.AutoIDs[0].(int64)
		if v < 2 || v >= 5 {
			t.Fatalf("result oid %d outside [2,5)", v)
		}
	}
}

func TestEmptyMultiSetIsLegal(t *testing.T) {
	store, _, name, _ := newArticleStore(t)
	store.InsertDiscard(articleKey{}, article{Author: "nobody"})
	if store.Size() != 1 {
		t.Fatalf("Size() = %d, want 1 for an insert with an empty multi set", store.Size())
	}
	if got := store.LookupValues(ixstore.EQ(name, "")); len(got) != 0 {
		t.Fatalf("empty-set article incorrectly matched EQ(name, \"\"): %v", got)
	}
}

func TestLookupNoneAndAllOnEmptyStore(t *testing.T) {
	store, _, _, _ := newArticleStore(t)

	if got := store.LookupValues(ixstore.None[articleKey]()); len(got) != 0 {
		t.Fatalf("LookupValues(None) = %v, want empty", got)
	}
	if got := store.LookupValues(ixstore.All[articleKey]()); len(got) != 0 {
		t.Fatalf("LookupValues(All) on empty store = %v, want empty", got)
	}
}

func TestSizeIncrementsPerInsert(t *testing.T) {
	store, _, _, _ := newArticleStore(t)
	before := store.Size()
	store.InsertDiscard(articleKey{Name: []string{"A"}}, article{})
	if store.Size() != before+1 {
		t.Fatalf("Size() = %d, want %d", store.Size(), before+1)
	}
}

func TestBucketCountsReflectsDistinctElements(t *testing.T) {
	store, _, _, _ := newArticleStore(t)
	store.InsertDiscard(articleKey{Tags: []string{"go", "go", "backend"}}, article{Author: "a"})
	store.InsertDiscard(articleKey{Tags: []string{"go", "rust"}}, article{Author: "b"})

	counts := store.BucketCounts()
	if counts["id"] != 2 {
		t.Fatalf("BucketCounts()[id] = %d, want 2 (one per auto-assigned id)", counts["id"])
	}
	if counts["tags"] != 3 {
		t.Fatalf("BucketCounts()[tags] = %d, want 3 distinct tags (go, backend, rust)", counts["tags"])
	}
	if counts["name"] != 0 {
		t.Fatalf("BucketCounts()[name] = %d, want 0 for a dimension nothing was inserted under", counts["name"])
	}
}

func TestDeleteMatchingSelectionReducesSizeByMatchCount(t *testing.T) {
	store, _, name, _ := newArticleStore(t)
	store.InsertDiscard(articleKey{Name: []string{"dup"}}, article{Author: "a"})
	store.InsertDiscard(articleKey{Name: []string{"dup"}}, article{Author: "b"})
	store.InsertDiscard(articleKey{Name: []string{"other"}}, article{Author: "c"})

	sel := ixstore.EQ(name, "dup")
	before := store.Size()
	store.Update(sel, func(v article) ixstore.UpdateResult[articleKey, article] {
		return ixstore.UpdateResult[articleKey, article]{Delete: true}
	})
	if got := store.LookupValues(sel); len(got) != 0 {
		t.Fatalf("deleted selection still resolves to %v", got)
	}
	if store.Size() != before-2 {
		t.Fatalf("Size() = %d, want %d", store.Size(), before-2)
	}
}
