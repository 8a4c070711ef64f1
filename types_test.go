package jpoet

import (
	"errors"
	"testing"
)

func TestRegistry(t *testing.T) {
	t.Run("Interning", func(t *testing.T) {
		reg := NewRegistry()
		a := reg.MustType("java.util.List", 0)
		b := reg.MustType("java.util.List", 0)
		if a != b {
			t.Errorf("same name and dimensions produced distinct values: %p != %p", a, b)
		}
		c, err := reg.Intern("java.util.List", true, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c != a {
			t.Errorf("explicit primitive flag produced a distinct value")
		}
		if c.IsPrimitive() {
			t.Errorf("re-interning should not change the existing entry")
		}
		if arr := reg.MustType("java.util.List", 1); arr == a {
			t.Errorf("different dimensions should produce a distinct value")
		}
		if reg.Len() != 2 {
			t.Errorf("wrong number of entries: %d != 2", reg.Len())
		}
		if other := NewRegistry().MustType("java.util.List", 0); other == a {
			t.Errorf("separate registries should not share entries")
		}
	})

	t.Run("ZeroValue", func(t *testing.T) {
		var reg Registry
		if reg.Object() != reg.MustType(ObjectTypeName, 0) {
			t.Errorf("zero registry did not intern java.lang.Object")
		}
	})

	t.Run("Dimensions", func(t *testing.T) {
		reg := NewRegistry()
		for _, dims := range []int{-1, MaxArrayDimensions + 1} {
			if _, err := reg.Type("int", dims); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("dims %d: expected ErrInvalidDimensions, got %v", dims, err)
			}
		}
		deepest := reg.MustType("int", MaxArrayDimensions)
		if _, err := deepest.ArrayOf(); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("ArrayOf at max dimensions: expected ErrInvalidDimensions, got %v", err)
		}
		if _, err := reg.Type("", 0); !errors.Is(err, ErrMissingValue) {
			t.Errorf("empty name: expected ErrMissingValue, got %v", err)
		}
	})

	t.Run("Primitives", func(t *testing.T) {
		reg := NewRegistry()
		for k := Void; k <= Double; k++ {
			p := reg.Primitive(k)
			if !p.IsPrimitive() {
				t.Errorf("%v should be primitive", k)
			}
			if p != reg.MustType(k.String(), 0) {
				t.Errorf("%v: Primitive and Type disagree", k)
			}
			if p.ImportLine() != "" {
				t.Errorf("%v: primitive should have no import line, got %q", k, p.ImportLine())
			}
		}
		if !reg.MustType("boolean", 3).IsPrimitive() {
			t.Errorf("array of primitive should be primitive")
		}
		if reg.Object().IsPrimitive() {
			t.Errorf("java.lang.Object should not be primitive")
		}
		if PrimitiveKind(42).String() != "PrimitiveKind(42)" {
			t.Errorf("wrong string for unknown kind: %q", PrimitiveKind(42).String())
		}
	})
}

func TestTypeName(t *testing.T) {
	reg := NewRegistry()

	t.Run("Names", func(t *testing.T) {
		tn := reg.MustType("com.example.Foo", 2)
		checkString(t, "Name", tn.Name(), "com.example.Foo[][]")
		checkString(t, "SimpleName", tn.SimpleName(), "Foo[][]")
		checkString(t, "ImportName", tn.ImportName(), "com.example.Foo")
		checkString(t, "ImportLine", tn.ImportLine(), "import com.example.Foo;\n")
		checkString(t, "String", tn.String(), "com.example.Foo[][]")
		if !tn.IsArray() || tn.Dimensions() != 2 {
			t.Errorf("wrong dimensions: %d", tn.Dimensions())
		}

		unqualified := reg.MustType("Foo", 0)
		checkString(t, "SimpleName", unqualified.SimpleName(), "Foo")
		if unqualified.IsArray() {
			t.Errorf("Foo should not be an array")
		}
	})

	t.Run("NestedTypes", func(t *testing.T) {
		tn := reg.MustType("java.util.Map$Entry", 0)
		checkString(t, "Name", tn.Name(), "java.util.Map.Entry")
		checkString(t, "SimpleName", tn.SimpleName(), "Entry")
		if tn != reg.MustType("java.util.Map.Entry", 0) {
			t.Errorf("nested type spellings should intern to the same value")
		}
	})

	t.Run("ArrayRoundTrip", func(t *testing.T) {
		tn := reg.MustType("java.lang.String", 3)
		base := tn.ArrayBase()
		if base.Dimensions() != 0 || base != reg.MustType("java.lang.String", 0) {
			t.Fatalf("wrong base type: %v", base)
		}
		if base.ArrayBase() != base {
			t.Errorf("base of a non-array should be itself")
		}
		rebuilt := base
		for i := 0; i < tn.Dimensions(); i++ {
			var err error
			if rebuilt, err = rebuilt.ArrayOf(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if rebuilt != tn {
			t.Errorf("rebuilt array type is not the original: %v != %v", rebuilt, tn)
		}
	})
}

func TestParse(t *testing.T) {
	reg := NewRegistry()
	testCases := []struct {
		in   string
		name string
		dims int
	}{
		{in: "int", name: "int", dims: 0},
		{in: "int[][]", name: "int", dims: 2},
		{in: " java.lang.String [ ] ", name: "java.lang.String", dims: 1},
		{in: "java.util.Map$Entry[]", name: "java.util.Map.Entry", dims: 1},
	}
	for _, tc := range testCases {
		tn, err := reg.Parse(tc.in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tc.in, err)
			continue
		}
		if tn.ImportName() != tc.name || tn.Dimensions() != tc.dims {
			t.Errorf("%q: expected %s with %d dimensions; got %s with %d", tc.in, tc.name, tc.dims, tn.ImportName(), tn.Dimensions())
		}
	}

	for _, bad := range []string{"int]", "", "[]"} {
		if _, err := reg.Parse(bad); err == nil {
			t.Errorf("%q: expected an error", bad)
		}
	}
}

func checkString(t *testing.T, what, actual, expected string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s returned wrong value: %q != %q", what, actual, expected)
	}
}
