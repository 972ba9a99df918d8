package ixstore

import (
	"cmp"
	"fmt"
	"reflect"
)

// Dim is a compile-time-tagged reference to one dimension of a specific
// key shape K with element type E (spec.md §9: "the store-shape tag...
// must prevent a selection built for one store from being evaluated
// against another"). Because Dim is generic over K, a Dim[ArticleKey, X]
// cannot be passed where a Dim[OtherKey, Y] is expected — the Go
// compiler itself is the shape tag. Field element types are checked once,
// when the Dim is acquired via Field, rather than on every Selection.
type Dim[K any, E cmp.Ordered] struct {
	pos int
}

// Field returns a typed handle to the dimension named name on schema s.
// It panics if no such dimension exists, or if its element kind does not
// match E — a structural/config mismatch that spec.md §7 says belongs to
// the "static shape mismatch" class, caught here at acquisition time
// rather than deferred to query evaluation.
func Field[K any, E cmp.Ordered](s *Schema[K], name string) Dim[K, E] {
	idx, ok := s.byName[name]
	if !ok {
		panic(fmt.Sprintf("ixstore: no dimension %q in %s", name, s.typ))
	}
	fs := s.fields[idx]

	var zero E
	wantClass, ok := classify(reflect.TypeOf(zero).Kind())
	if !ok || wantClass != fs.class {
		panic(fmt.Sprintf("ixstore: dimension %q has element class %s, not %s", name, fs.class, wantClass))
	}
	return Dim[K, E]{pos: idx}
}
