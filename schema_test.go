package ixstore_test

import (
	"testing"

	"github.com/jfalcon/ixstore"
)

func TestSchemaOfArityAndNames(t *testing.T) {
	schema, err := ixstore.SchemaOf[articleKey]()
	if err != nil {
		t.Fatalf("SchemaOf: %v", err)
	}
	if schema.Arity() != 4 {
		t.Fatalf("Arity() = %d, want 4", schema.Arity())
	}
	want := map[string]bool{"id": true, "name": true, "body": true, "tags": true}
	for _, n := range schema.DimensionNames() {
		if !want[n] {
			t.Errorf("unexpected dimension name %q", n)
		}
		delete(want, n)
	}
	if len(want) != 0 {
		t.Errorf("missing dimension names: %v", want)
	}
}

func TestSchemaOfRejectsNonStruct(t *testing.T) {
	if _, err := ixstore.SchemaOf[int](); err == nil {
		t.Fatal("SchemaOf[int] should fail: key type must be a struct")
	}
}

type untaggedKey struct {
	Payload string
}

func TestSchemaOfRejectsNoDimensions(t *testing.T) {
	if _, err := ixstore.SchemaOf[untaggedKey](); err == nil {
		t.Fatal("SchemaOf should fail for a key struct with no ixstore-tagged fields")
	}
}

type badModeKey struct {
	X string `ixstore:"wat"`
}

func TestSchemaOfRejectsUnknownMode(t *testing.T) {
	if _, err := ixstore.SchemaOf[badModeKey](); err == nil {
		t.Fatal("SchemaOf should reject an unrecognized ixstore tag mode")
	}
}

type nonSliceMultiKey struct {
	X string `ixstore:"multi"`
}

func TestSchemaOfRejectsNonSliceMulti(t *testing.T) {
	if _, err := ixstore.SchemaOf[nonSliceMultiKey](); err == nil {
		t.Fatal("SchemaOf should reject a multi dimension whose field is not a slice")
	}
}

type stringAutoKey struct {
	X string `ixstore:"auto"`
}

func TestSchemaOfRejectsNonIntegerAuto(t *testing.T) {
	if _, err := ixstore.SchemaOf[stringAutoKey](); err == nil {
		t.Fatal("SchemaOf should reject an auto dimension on a non-integer field")
	}
}

type dupNameKey struct {
	A []string `ixstore:"multi,name=x"`
	B []string `ixstore:"multi,name=x"`
}

func TestSchemaOfRejectsDuplicateDimensionName(t *testing.T) {
	if _, err := ixstore.SchemaOf[dupNameKey](); err == nil {
		t.Fatal("SchemaOf should reject two fields claiming the same dimension name")
	}
}

func TestFieldPanicsOnUnknownName(t *testing.T) {
	schema, err := ixstore.SchemaOf[articleKey]()
	if err != nil {
		t.Fatalf("SchemaOf: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("Field should panic for an unknown dimension name")
		}
	}()
	ixstore.Field[articleKey, string](schema, "nope")
}

func TestFieldPanicsOnClassMismatch(t *testing.T) {
	schema, err := ixstore.SchemaOf[articleKey]()
	if err != nil {
		t.Fatalf("SchemaOf: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("Field should panic when E's class does not match the dimension's element class")
		}
	}()
	ixstore.Field[articleKey, string](schema, "id") // id is an integer dimension
}

func TestWithAutoStart(t *testing.T) {
	schema, err := ixstore.SchemaOf[articleKey](ixstore.WithAutoStart("id", 100))
	if err != nil {
		t.Fatalf("SchemaOf: %v", err)
	}
	store := ixstore.FromSchema[articleKey, article](schema)
	auto := store.Insert(articleKey{Name: []string{"first"}}, article{Author: "a"})
	if len(auto) != 1 || auto[0] != int64(100) {
		t.Fatalf("first auto id = %v, want [100]", auto)
	}
}
