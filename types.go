package jpoet

import (
	"fmt"
	"strings"
)

// MaxArrayDimensions is the largest number of array dimensions a TypeName may
// have. This is the same limit the JVM places on array types.
const MaxArrayDimensions = 255

// ObjectTypeName is the fully-qualified name of the root of the Java class
// hierarchy. A class whose superclass is this type is rendered without an
// extends clause.
const ObjectTypeName = "java.lang.Object"

// PrimitiveKind is an enumeration of the Java primitive types. Void is
// included so that method return types can be modeled uniformly.
type PrimitiveKind int

const (
	Void PrimitiveKind = iota
	Boolean
	Byte
	Char
	Short
	Int
	Long
	Float
	Double
)

var primitiveNames = [...]string{
	Void:    "void",
	Boolean: "boolean",
	Byte:    "byte",
	Char:    "char",
	Short:   "short",
	Int:     "int",
	Long:    "long",
	Float:   "float",
	Double:  "double",
}

// String returns the Java keyword for the primitive kind.
func (k PrimitiveKind) String() string {
	if k < 0 || int(k) >= len(primitiveNames) {
		return fmt.Sprintf("PrimitiveKind(%d)", int(k))
	}
	return primitiveNames[k]
}

func isPrimitiveName(name string) bool {
	for _, n := range primitiveNames {
		if n == name {
			return true
		}
	}
	return false
}

// TypeName represents a Java type, nominally: a dotted name, whether that name
// is a primitive, and an array nesting depth. TypeName values are only
// obtained from a Registry, which hands out exactly one *TypeName for each
// distinct name and dimension count. So two type names from the same
// registry are equal if and only if they are the same pointer, and they can
// be used directly as map keys.
type TypeName struct {
	reg       *Registry
	name      string
	primitive bool
	dims      int
}

// Name returns the fully-qualified name of the type, including a "[]" suffix
// for each array dimension. For example "java.lang.String[][]".
func (t *TypeName) Name() string {
	if t.dims == 0 {
		return t.name
	}
	return t.name + strings.Repeat("[]", t.dims)
}

// ImportName returns the fully-qualified name of the type's element type,
// without any array decoration. This is the name that appears in an import
// statement.
func (t *TypeName) ImportName() string {
	return t.name
}

// SimpleName returns the last dot-separated segment of the type's name,
// followed by a "[]" suffix for each array dimension. This is how the type is
// referenced in source once it has been imported.
func (t *TypeName) SimpleName() string {
	simple := t.name
	if pos := strings.LastIndexByte(simple, '.'); pos >= 0 {
		simple = simple[pos+1:]
	}
	if t.dims == 0 {
		return simple
	}
	return simple + strings.Repeat("[]", t.dims)
}

// IsPrimitive returns true if the type's element type is a primitive (or
// void). Arrays of primitives are primitive for this purpose, since they never
// need an import.
func (t *TypeName) IsPrimitive() bool {
	return t.primitive
}

// IsArray returns true if the type has at least one array dimension.
func (t *TypeName) IsArray() bool {
	return t.dims > 0
}

// Dimensions returns the number of array dimensions, from 0 to
// MaxArrayDimensions.
func (t *TypeName) Dimensions() int {
	return t.dims
}

// ArrayOf returns the type of an array whose elements are of this type. It
// fails if this type already has MaxArrayDimensions dimensions.
func (t *TypeName) ArrayOf() (*TypeName, error) {
	if t.dims >= MaxArrayDimensions {
		return nil, fmt.Errorf("array of %s: %w", t.Name(), ErrInvalidDimensions)
	}
	return t.reg.intern(t.name, t.primitive, t.dims+1), nil
}

// ArrayBase returns the element type with all array dimensions removed. If
// this type is not an array, it returns itself.
func (t *TypeName) ArrayBase() *TypeName {
	if t.dims == 0 {
		return t
	}
	return t.reg.intern(t.name, t.primitive, 0)
}

// ImportLine returns the import statement for this type, including the
// trailing newline. Primitives return an empty string since they are never
// imported.
func (t *TypeName) ImportLine() string {
	if t.primitive {
		return ""
	}
	return ImportSpec{TypeName: t.name}.String() + "\n"
}

// String returns the same value as Name.
func (t *TypeName) String() string {
	return t.Name()
}

func (t *TypeName) isVoid() bool {
	return t.primitive && t.dims == 0 && t.name == primitiveNames[Void]
}

func (t *TypeName) isObject() bool {
	return t.dims == 0 && t.name == ObjectTypeName
}

type typeKey struct {
	name string
	dims int
}

// Registry canonicalizes type names. Each code generation session should use
// its own registry, and every TypeName used in a single class model should
// come from the same registry. Entries are created on first request and are
// never removed.
//
// The zero value is ready to use. A Registry is not thread-safe.
type Registry struct {
	types map[typeKey]*TypeName
}

// NewRegistry returns a new, empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Intern returns the canonical TypeName for the given name and number of
// array dimensions. Nested class separators ('$') are converted to dots. If
// the name is one of the Java primitive keywords, the result is primitive
// regardless of the given flag. If the name and dimensions were already
// interned, the existing value is returned and the flag is ignored.
//
// An error is returned if the name is empty or if dims is outside the range
// [0, MaxArrayDimensions].
func (r *Registry) Intern(name string, primitive bool, dims int) (*TypeName, error) {
	if dims < 0 || dims > MaxArrayDimensions {
		return nil, fmt.Errorf("type %s with %d dimensions: %w", name, dims, ErrInvalidDimensions)
	}
	name = normalizeTypeName(name)
	if name == "" {
		return nil, fmt.Errorf("type name: %w", ErrMissingValue)
	}
	return r.intern(name, primitive || isPrimitiveName(name), dims), nil
}

// Type returns the canonical TypeName for the given name and number of array
// dimensions, inferring whether it is primitive from the name.
func (r *Registry) Type(name string, dims int) (*TypeName, error) {
	return r.Intern(name, false, dims)
}

// MustType is like Type but panics on error.
func (r *Registry) MustType(name string, dims int) *TypeName {
	t, err := r.Type(name, dims)
	if err != nil {
		panic(err.Error())
	}
	return t
}

// Parse returns the canonical TypeName for a type as written in Java source,
// with optional trailing "[]" pairs for array dimensions. For example,
// "java.util.Map$Entry[]" or "int[][]".
func (r *Registry) Parse(s string) (*TypeName, error) {
	s = strings.TrimSpace(s)
	dims := 0
	for {
		trimmed := strings.TrimSpace(s)
		if !strings.HasSuffix(trimmed, "]") {
			s = trimmed
			break
		}
		trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "]"))
		if !strings.HasSuffix(trimmed, "[") {
			return nil, fmt.Errorf("malformed type %q: unbalanced brackets", s)
		}
		s = strings.TrimSuffix(trimmed, "[")
		dims++
	}
	return r.Type(s, dims)
}

// Primitive returns the canonical TypeName for the given primitive kind.
func (r *Registry) Primitive(k PrimitiveKind) *TypeName {
	return r.intern(k.String(), true, 0)
}

// Object returns the canonical TypeName for java.lang.Object.
func (r *Registry) Object() *TypeName {
	return r.intern(ObjectTypeName, false, 0)
}

// Len returns the number of distinct type names interned so far.
func (r *Registry) Len() int {
	return len(r.types)
}

func (r *Registry) intern(name string, primitive bool, dims int) *TypeName {
	k := typeKey{name: name, dims: dims}
	if t, ok := r.types[k]; ok {
		return t
	}
	if r.types == nil {
		r.types = map[typeKey]*TypeName{}
	}
	t := &TypeName{reg: r, name: name, primitive: primitive, dims: dims}
	r.types[k] = t
	return t
}

func normalizeTypeName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), "$", ".")
}
