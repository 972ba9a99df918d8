package index

import "cmp"

// Generator is the per-auto-dimension element sequence (spec §4.1,
// "assignNext"). It is deterministic: replaying the same number of
// AssignNext calls always yields the same sequence of elements.
type Generator[E cmp.Ordered] struct {
	current E
	succ    func(E) E
}

// NewGenerator returns a generator that starts at initial and advances
// with succ.
func NewGenerator[E cmp.Ordered](initial E, succ func(E) E) *Generator[E] {
	return &Generator[E]{current: initial, succ: succ}
}

// AssignNext returns the generator's current value and advances it.
func (g *Generator[E]) AssignNext() E {
	v := g.current
	g.current = g.succ(g.current)
	return v
}

// Peek returns the value AssignNext would hand out next, without
// advancing the generator.
func (g *Generator[E]) Peek() E {
	return g.current
}
