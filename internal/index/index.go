// Package index implements the per-dimension ordered map from an element
// value to the set of object identifiers stored under it (spec §4.1): the
// structure every dimension of a Store keeps in lock step with the primary
// value table.
//
// The map is kept as a slice of buckets sorted by key, searched with binary
// search. Lookup, Split and SplitLookup locate their key in O(log n) in the
// number of distinct elements at the dimension, then copy the ids they
// return, so Split and SplitLookup also cost time linear in the buckets
// and ids on each side of the key; Insert and Delete are O(log n) to
// locate the bucket plus O(n) to shift the slice, which is the conventional
// trade-off for a sorted-slice ordered map and is acceptable for the
// in-memory, single-writer container this backs (see spec.md §9, "Id-set
// representation").
package index

import (
	"cmp"
	"sort"

	"github.com/jfalcon/ixstore/internal/idset"
)

// Index is an ordered map from E to a set of object identifiers.
type Index[E cmp.Ordered] struct {
	buckets []bucket[E]
}

type bucket[E cmp.Ordered] struct {
	key E
	ids idset.Set
}

// New returns an empty index.
func New[E cmp.Ordered]() *Index[E] {
	return &Index[E]{}
}

// search returns the position at which key is, or would be, located.
func (ix *Index[E]) search(key E) int {
	return sort.Search(len(ix.buckets), func(i int) bool {
		return ix.buckets[i].key >= key
	})
}

func (ix *Index[E]) find(key E) (pos int, ok bool) {
	pos = ix.search(key)
	ok = pos < len(ix.buckets) && ix.buckets[pos].key == key
	return pos, ok
}

// Insert adds oid to the bucket for key, creating the bucket if absent.
func (ix *Index[E]) Insert(key E, oid uint64) {
	pos, ok := ix.find(key)
	if ok {
		ix.buckets[pos].ids.Add(oid)
		return
	}
	b := bucket[E]{key: key, ids: idset.Of(oid)}
	ix.buckets = append(ix.buckets, bucket[E]{})
	copy(ix.buckets[pos+1:], ix.buckets[pos:])
	ix.buckets[pos] = b
}

// InsertMulti adds oid under every element of keys. An empty keys slice
// leaves the index unchanged; per spec §4.1 the oid is still considered
// present at this dimension by invariant 1, it simply has no bucket
// membership here (see spec.md §9, "Open question — empty multi-dimension
// sets").
func (ix *Index[E]) InsertMulti(keys []E, oid uint64) {
	for _, k := range keys {
		ix.Insert(k, oid)
	}
}

// Delete removes oid from the bucket under each element of keys, dropping
// any bucket that becomes empty.
func (ix *Index[E]) Delete(keys []E, oid uint64) {
	for _, k := range keys {
		pos, ok := ix.find(k)
		if !ok {
			continue
		}
		ix.buckets[pos].ids.Remove(oid)
		if len(ix.buckets[pos].ids) == 0 {
			ix.buckets = append(ix.buckets[:pos], ix.buckets[pos+1:]...)
		}
	}
}

// Lookup returns the bucket at key, or an empty set if absent.
func (ix *Index[E]) Lookup(key E) idset.Set {
	pos, ok := ix.find(key)
	if !ok {
		return idset.Set{}
	}
	return ix.buckets[pos].ids.Clone()
}

// Split returns the union of buckets strictly less than key, and the union
// of buckets strictly greater than key. key itself, if present, is in
// neither.
func (ix *Index[E]) Split(key E) (less, greater idset.Set) {
	less, _, greater = ix.SplitLookup(key)
	return less, greater
}

// SplitLookup returns the same as Split, plus the bucket at key itself
// (empty if absent).
func (ix *Index[E]) SplitLookup(key E) (less, equal, greater idset.Set) {
	pos := ix.search(key)
	less = idset.New(0)
	for _, b := range ix.buckets[:pos] {
		less = idset.Union(less, b.ids)
	}
	equal = idset.Set{}
	rest := ix.buckets[pos:]
	if len(rest) > 0 && rest[0].key == key {
		equal = rest[0].ids.Clone()
		rest = rest[1:]
	}
	greater = idset.New(0)
	for _, b := range rest {
		greater = idset.Union(greater, b.ids)
	}
	return less, equal, greater
}

// Buckets reports the number of distinct populated keys currently tracked.
// It is an observability aid (SPEC_FULL §6) with no bearing on correctness.
func (ix *Index[E]) Buckets() int {
	return len(ix.buckets)
}
