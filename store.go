// Package ixstore implements an in-memory, single-writer, multi-key
// multi-value store: a container that associates each value with a
// composite key made of several independently-indexed dimensions, and
// supports equality/range lookups on any dimension without privileging
// one as primary.
//
// A key's shape is declared once, as a Go struct whose fields carry an
// `ixstore:"multi"` or `ixstore:"auto"` tag:
//
//	type ArticleKey struct {
//		ID   int      `ixstore:"auto"`
//		Name []string `ixstore:"multi"`
//		Tags []string `ixstore:"multi"`
//	}
//
//	store, err := ixstore.New[ArticleKey, Article]()
//	schema := store.Schema()
//	name := ixstore.Field[ArticleKey, string](schema, "name")
//	autoIDs := store.Insert(ArticleKey{Name: []string{"About Go"}}, article)
//	matches := store.LookupValues(ixstore.EQ(name, "About Go"))
package ixstore

import "slices"

// entry is the primary table's payload: the caller's value alongside the
// fully-resolved stored key (spec.md §3, "values: mapping oid ->
// (value, stored-key)").
type entry[K, V any] struct {
	value V
	key   K
}

type dimRuntime struct {
	ops dimOps
}

// Store is the container described by spec.md §4.3. It is not safe for
// concurrent use: spec.md §5 designates it a single-writer, value-like
// structure and leaves synchronization to the caller.
type Store[K, V any] struct {
	schema  *Schema[K]
	values  map[uint64]entry[K, V]
	dims    []dimRuntime
	nextOid uint64
}

// New builds an empty store for key shape K and value type V. It fails
// only if K's `ixstore` struct tags are malformed (spec.md §7's "static
// shape mismatch" class) — once constructed, every Store operation is
// total.
func New[K, V any](opts ...Option) (*Store[K, V], error) {
	schema, err := SchemaOf[K](opts...)
	if err != nil {
		return nil, err
	}
	return FromSchema[K, V](schema), nil
}

// FromSchema builds an empty store from an already-built Schema, letting
// callers share one reflected schema across several stores or acquire
// Dim handles before the first store exists.
func FromSchema[K, V any](schema *Schema[K]) *Store[K, V] {
	dims := make([]dimRuntime, len(schema.fields))
	for i, fs := range schema.fields {
		dims[i] = dimRuntime{ops: buildDimOps(fs.class, fs.mode, schema.autoStart[i])}
	}
	return &Store[K, V]{
		schema:  schema,
		values:  make(map[uint64]entry[K, V]),
		dims:    dims,
		nextOid: 1,
	}
}

// Schema returns the store's key shape descriptor, for acquiring Dim
// handles to build Selections against this store.
func (s *Store[K, V]) Schema() *Schema[K] { return s.schema }

// Size returns the number of values currently stored.
func (s *Store[K, V]) Size() int { return len(s.values) }

// BucketCounts reports, for each dimension by name, the number of
// distinct populated buckets its index currently holds — an
// observability aid with no bearing on correctness, letting a caller see
// index fan-out per dimension (SPEC_FULL.md's "bucket compaction
// accounting" supplement).
func (s *Store[K, V]) BucketCounts() map[string]int {
	out := make(map[string]int, len(s.dims))
	for i, fs := range s.schema.fields {
		out[fs.name] = s.dims[i].ops.buckets()
	}
	return out
}

// Insert allocates a fresh oid, installs key's multi-dimension sets and
// assigns this oid a fresh element at every auto dimension, stores v
// under the resulting stored key, and returns the insert-result
// projection: the auto-assigned elements, in position order (empty, not
// nil, if the schema has no auto dimension).
func (s *Store[K, V]) Insert(key K, v V) []any {
	elems := s.schema.UserElems(key)
	oid := s.nextOid
	s.nextOid++

	stored := make([][]any, len(s.dims))
	for i, fs := range s.schema.fields {
		if fs.mode == modeAuto {
			stored[i] = []any{s.dims[i].ops.assignAuto(oid)}
			continue
		}
		s.dims[i].ops.insertMulti(elems[i], oid)
		stored[i] = elems[i]
	}

	s.values[oid] = entry[K, V]{value: v, key: s.schema.FromElems(stored)}
	return s.schema.AutoProjection(stored)
}

// InsertDiscard is Insert without the projection result.
func (s *Store[K, V]) InsertDiscard(key K, v V) {
	s.Insert(key, v)
}

// KV is one input pair to FromList.
type KV[K, V any] struct {
	Key   K
	Value V
}

// FromList left-folds InsertDiscard over pairs. On a store fresh from New
// or FromSchema, the resulting oids are 1..len(pairs) in input order, and
// auto-assigned elements follow each auto dimension's generator from its
// initial value; on a store that already holds inserts, both continue from
// where those inserts left them.
func (s *Store[K, V]) FromList(pairs []KV[K, V]) {
	for _, p := range pairs {
		s.InsertDiscard(p.Key, p.Value)
	}
}

// UpdateResult is what an UpdateFunc returns for one matched value
// (spec.md §4.3's "f returns..." cases):
//   - Delete == true: remove the oid entirely; Value and Key are ignored.
//   - Key == nil: replace the value in place, key untouched.
//   - Key != nil: replace the value, and replace the stored key's
//     multi-dimension sets with Key's; Key's auto-dimension fields are
//     ignored — auto elements never change once assigned.
type UpdateResult[K, V any] struct {
	Delete bool
	Value  V
	Key    *K
}

// UpdateFunc is the per-value callback Update applies to every oid a
// Selection resolves to.
type UpdateFunc[K, V any] func(v V) UpdateResult[K, V]

// Update resolves sel to a set of oids and applies f to each one's
// current value, in unspecified order (spec.md §4.3 requires only that
// the final state not depend on iteration order, which holds here since
// each oid's delete/replace is independent of every other's).
func (s *Store[K, V]) Update(sel Selection[K], f UpdateFunc[K, V]) {
	ids := s.resolve(sel)
	for oid := range ids {
		e, ok := s.values[oid]
		if !ok {
			continue
		}
		res := f(e.value)

		if res.Delete {
			s.deleteFromIndices(e.key, oid)
			delete(s.values, oid)
			continue
		}

		if res.Key == nil {
			s.values[oid] = entry[K, V]{value: res.Value, key: e.key}
			continue
		}

		oldElems := s.schema.StoredElems(e.key)
		userElems := s.schema.UserElems(*res.Key)
		newElems := make([][]any, len(s.dims))
		for i, fs := range s.schema.fields {
			if fs.mode == modeAuto {
				newElems[i] = oldElems[i]
			} else {
				newElems[i] = userElems[i]
			}
		}

		for i := range s.dims {
			s.dims[i].ops.deleteMulti(oldElems[i], oid)
		}
		for i := range s.dims {
			s.dims[i].ops.insertMulti(newElems[i], oid)
		}

		s.values[oid] = entry[K, V]{value: res.Value, key: s.schema.FromElems(newElems)}
	}
}

func (s *Store[K, V]) deleteFromIndices(key K, oid uint64) {
	elems := s.schema.StoredElems(key)
	for i := range s.dims {
		s.dims[i].ops.deleteMulti(elems[i], oid)
	}
}

// Result pairs a looked-up value with its insert-result projection.
type Result[V any] struct {
	Value   V
	AutoIDs []any
}

// Lookup resolves sel and returns one Result per matching oid, ordered
// by ascending oid — a deliberate, documented choice of the several
// valid deterministic orders spec.md §9 allows.
func (s *Store[K, V]) Lookup(sel Selection[K]) []Result[V] {
	ids := s.resolve(sel).Slice()
	slices.Sort(ids)

	out := make([]Result[V], 0, len(ids))
	for _, oid := range ids {
		e, ok := s.values[oid]
		if !ok {
			continue
		}
		out = append(out, Result[V]{
			Value:   e.value,
			AutoIDs: s.schema.AutoProjection(s.schema.StoredElems(e.key)),
		})
	}
	return out
}

// LookupValues is Lookup without the auto-projection.
func (s *Store[K, V]) LookupValues(sel Selection[K]) []V {
	res := s.Lookup(sel)
	out := make([]V, len(res))
	for i, r := range res {
		out[i] = r.Value
	}
	return out
}
