package ixstore

import (
	"cmp"

	"github.com/jfalcon/ixstore/internal/idset"
	"github.com/jfalcon/ixstore/internal/index"
)

// dimOps is the per-dimension vtable a Store drives the query evaluator
// and mutation paths through. It is built once per Store instance (not
// per Schema — two stores of the same K never share index state) by
// buildDimOps, closing over a concrete internal/index.Index[E] for
// exactly one of the three normalized element classes.
type dimOps struct {
	insertMulti func(elems []any, oid uint64)
	deleteMulti func(elems []any, oid uint64)
	assignAuto  func(oid uint64) any // nil for multi dimensions
	lookup      func(v any) idset.Set
	split       func(v any) (less, greater idset.Set)
	splitLookup func(v any) (less, eq, greater idset.Set)
	buckets     func() int
}

func buildDimOps(class elemClass, md mode, autoStart int64) dimOps {
	switch class {
	case classString:
		return buildOps[string](md, nil, asString, fromString)
	case classFloat:
		return buildOps[float64](md, nil, asFloat64, fromFloat64)
	case classInt:
		var gen *index.Generator[int64]
		if md == modeAuto {
			gen = index.NewGenerator(autoStart, func(e int64) int64 { return e + 1 })
		}
		return buildOps[int64](md, gen, asInt64, fromInt64)
	default:
		panic(&StructuralError{Msg: "buildDimOps: unknown element class"})
	}
}

func asString(v any) string       { return v.(string) }
func fromString(e string) any     { return e }
func asFloat64(v any) float64     { return v.(float64) }
func fromFloat64(e float64) any   { return e }
func asInt64(v any) int64         { return v.(int64) }
func fromInt64(e int64) any       { return e }

func buildOps[E cmp.Ordered](md mode, gen *index.Generator[E], toE func(any) E, fromE func(E) any) dimOps {
	idx := index.New[E]()

	toSlice := func(elems []any) []E {
		es := make([]E, len(elems))
		for i, v := range elems {
			es[i] = toE(v)
		}
		return es
	}

	ops := dimOps{
		insertMulti: func(elems []any, oid uint64) {
			idx.InsertMulti(toSlice(elems), oid)
		},
		deleteMulti: func(elems []any, oid uint64) {
			idx.Delete(toSlice(elems), oid)
		},
		lookup: func(v any) idset.Set {
			return idx.Lookup(toE(v))
		},
		split: func(v any) (idset.Set, idset.Set) {
			return idx.Split(toE(v))
		},
		splitLookup: func(v any) (idset.Set, idset.Set, idset.Set) {
			return idx.SplitLookup(toE(v))
		},
		buckets: func() int {
			return idx.Buckets()
		},
	}

	if md == modeAuto {
		ops.assignAuto = func(oid uint64) any {
			e := gen.AssignNext()
			idx.Insert(e, oid)
			return fromE(e)
		}
	}

	return ops
}
