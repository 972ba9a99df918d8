package ixstore

import "github.com/jfalcon/ixstore/internal/idset"

// resolve is the query evaluator (spec.md §4.5): a pure function of the
// store's current index state and a Selection, producing the set of
// matching oids. It never mutates s.
func (s *Store[K, V]) resolve(sel Selection[K]) idset.Set {
	switch sel.kind {
	case kindAll:
		out := idset.New(len(s.values))
		for oid := range s.values {
			out.Add(oid)
		}
		return out
	case kindNone:
		return idset.Set{}
	case kindEQ:
		return s.dims[sel.pos].ops.lookup(sel.val)
	case kindGT:
		_, greater := s.dims[sel.pos].ops.split(sel.val)
		return greater
	case kindLT:
		less, _ := s.dims[sel.pos].ops.split(sel.val)
		return less
	case kindGTE:
		_, eq, greater := s.dims[sel.pos].ops.splitLookup(sel.val)
		return idset.Union(eq, greater)
	case kindLTE:
		less, eq, _ := s.dims[sel.pos].ops.splitLookup(sel.val)
		return idset.Union(less, eq)
	case kindAnd:
		return idset.Intersect(s.resolve(*sel.a), s.resolve(*sel.b))
	case kindOr:
		return idset.Union(s.resolve(*sel.a), s.resolve(*sel.b))
	default:
		panic(&StructuralError{Msg: "resolve: unknown selection kind"})
	}
}
