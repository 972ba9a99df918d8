package ixstore

import (
	"fmt"
	"reflect"
	"strings"
)

type mode int

const (
	modeMulti mode = iota
	modeAuto
)

func (m mode) String() string {
	if m == modeAuto {
		return "auto"
	}
	return "multi"
}

// fieldSpec is the parsed, schema-time description of one dimension:
// which struct field backs it, whether it is multi or auto, and the
// normalized element class the index for it will use.
type fieldSpec struct {
	name       string
	fieldIndex int
	mode       mode
	class      elemClass
	fieldType  reflect.Type // slice type for multi, scalar type for auto
	elemType   reflect.Type // element type: slice elem for multi, field type for auto
}

// Schema is the reflected, runtime shape descriptor for a key type K
// (spec.md §9, "fall back to a runtime shape descriptor... in a weaker
// [generics] system"). It is built once per K via SchemaOf and is safe
// for concurrent reads; building it is the one reflection pass a Store
// pays, not a per-operation cost.
type Schema[K any] struct {
	typ       reflect.Type
	fields    []fieldSpec
	byName    map[string]int
	autoStart []int64
}

// Option configures schema construction.
type Option func(*buildConfig)

type buildConfig struct {
	autoStart map[string]int64
}

// WithAutoStart overrides the initial value an auto dimension's generator
// begins at. Dimensions not named here start at 1, matching spec.md §6's
// integer-auto-dimension example.
func WithAutoStart(dimensionName string, start int64) Option {
	return func(c *buildConfig) { c.autoStart[dimensionName] = start }
}

// SchemaOf reflects over K's exported fields, reading the `ixstore`
// struct tag on each to determine the dimension it backs, and returns
// the resulting shape descriptor. It fails if K is not a struct, if a
// field's `ixstore` tag is malformed, if a multi field is not a slice,
// if an auto field is not an integer kind (spec.md §4.1: "for
// integer-like dimensions the obvious counter" is the only generator
// this package builds automatically), or if two fields claim the same
// dimension name.
//
// A field with no `ixstore` tag at all is treated as ordinary payload
// and ignored by the schema — only tagged fields participate in the key.
func SchemaOf[K any](opts ...Option) (*Schema[K], error) {
	cfg := &buildConfig{autoStart: map[string]int64{}}
	for _, o := range opts {
		o(cfg)
	}

	var zero K
	typ := reflect.TypeOf(zero)
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("ixstore: key type %T must be a struct", zero)
	}

	s := &Schema[K]{typ: typ, byName: map[string]int{}}

	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, ok := f.Tag.Lookup("ixstore")
		if !ok {
			continue
		}

		parts := strings.Split(tag, ",")
		modeTag := strings.TrimSpace(parts[0])
		name := strings.ToLower(f.Name)
		for _, p := range parts[1:] {
			p = strings.TrimSpace(p)
			if rest, found := strings.CutPrefix(p, "name="); found {
				name = rest
			}
		}
		if name == "" {
			return nil, fmt.Errorf("ixstore: field %s: dimension name cannot be empty", f.Name)
		}
		if _, dup := s.byName[name]; dup {
			return nil, fmt.Errorf("ixstore: duplicate dimension name %q", name)
		}

		fs := fieldSpec{name: name, fieldIndex: i, fieldType: f.Type}

		switch modeTag {
		case "multi":
			if f.Type.Kind() != reflect.Slice {
				return nil, fmt.Errorf("ixstore: field %s: multi dimension must be a slice type, found %s", f.Name, f.Type)
			}
			fs.mode = modeMulti
			fs.elemType = f.Type.Elem()
		case "auto":
			fs.mode = modeAuto
			fs.elemType = f.Type
		default:
			return nil, fmt.Errorf("ixstore: field %s: unknown dimension mode %q (want \"multi\" or \"auto\")", f.Name, modeTag)
		}

		class, ok := classify(fs.elemType.Kind())
		if !ok {
			return nil, fmt.Errorf("ixstore: field %s: unsupported dimension element kind %s", f.Name, fs.elemType.Kind())
		}
		if fs.mode == modeAuto && class != classInt {
			return nil, fmt.Errorf("ixstore: field %s: auto dimensions must have an integer element type, found %s", f.Name, fs.elemType)
		}
		fs.class = class

		s.byName[name] = len(s.fields)
		s.fields = append(s.fields, fs)
	}

	if len(s.fields) == 0 {
		return nil, fmt.Errorf("ixstore: key type %s declares no `ixstore` dimensions", typ)
	}

	s.autoStart = make([]int64, len(s.fields))
	for i, fs := range s.fields {
		if fs.mode != modeAuto {
			continue
		}
		if start, ok := cfg.autoStart[fs.name]; ok {
			s.autoStart[i] = start
		} else {
			s.autoStart[i] = 1
		}
	}

	return s, nil
}

// Arity returns the number of dimensions in the schema.
func (s *Schema[K]) Arity() int { return len(s.fields) }

// DimensionNames returns dimension names in position order.
func (s *Schema[K]) DimensionNames() []string {
	out := make([]string, len(s.fields))
	for i, fs := range s.fields {
		out[i] = fs.name
	}
	return out
}

// UserElems reads a user-supplied key (as passed to Insert) into the
// per-position element-list representation indices operate on. Auto
// positions are not read from k — the caller's placeholder there is
// ignored, per spec.md §3 ("user-supplied keys at this position are
// absent").
func (s *Schema[K]) UserElems(k K) [][]any {
	v := reflect.ValueOf(k)
	out := make([][]any, len(s.fields))
	for i, fs := range s.fields {
		if fs.mode == modeAuto {
			continue
		}
		out[i] = sliceElems(v.Field(fs.fieldIndex), fs.class)
	}
	return out
}

// StoredElems reads a stored key (one the store itself produced, with
// auto positions filled in) into the same representation, this time
// including the concrete auto-assigned elements.
func (s *Schema[K]) StoredElems(k K) [][]any {
	v := reflect.ValueOf(k)
	out := make([][]any, len(s.fields))
	for i, fs := range s.fields {
		fv := v.Field(fs.fieldIndex)
		if fs.mode == modeAuto {
			out[i] = []any{normalizeValue(fv, fs.class)}
			continue
		}
		out[i] = sliceElems(fv, fs.class)
	}
	return out
}

func sliceElems(fv reflect.Value, class elemClass) []any {
	n := fv.Len()
	es := make([]any, n)
	for j := 0; j < n; j++ {
		es[j] = normalizeValue(fv.Index(j), class)
	}
	return es
}

// FromElems is UserElems/StoredElems's inverse: given the per-position
// element lists (multi: the stored set; auto: exactly one element),
// build the corresponding K.
func (s *Schema[K]) FromElems(elems [][]any) K {
	var k K
	v := reflect.ValueOf(&k).Elem()
	for i, fs := range s.fields {
		fv := v.Field(fs.fieldIndex)
		switch fs.mode {
		case modeMulti:
			es := elems[i]
			slice := reflect.MakeSlice(fs.fieldType, len(es), len(es))
			for j, e := range es {
				slice.Index(j).Set(denormalize(e, fs.elemType))
			}
			fv.Set(slice)
		case modeAuto:
			if len(elems[i]) != 1 {
				panic(&StructuralError{Msg: fmt.Sprintf("auto dimension %q: expected exactly one assigned element, got %d", fs.name, len(elems[i]))})
			}
			fv.Set(denormalize(elems[i][0], fs.elemType))
		}
	}
	return k
}

// AutoProjection extracts the insert-result projection (spec.md §4.2):
// the tuple, in position order, of only the auto-dimension elements.
// For a schema with no auto dimensions it returns an empty, non-nil
// slice.
func (s *Schema[K]) AutoProjection(elems [][]any) []any {
	out := make([]any, 0)
	for i, fs := range s.fields {
		if fs.mode == modeAuto {
			out = append(out, elems[i][0])
		}
	}
	return out
}
