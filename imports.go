package jpoet

import (
	"sort"
)

// TypeSet is a set of type names. Since type names are canonicalized by a
// Registry, membership is by identity. A nil TypeSet can be read but not
// added to.
type TypeSet map[*TypeName]struct{}

// NewTypeSet returns a set containing the given types. Nil types are ignored.
func NewTypeSet(types ...*TypeName) TypeSet {
	s := TypeSet{}
	for _, t := range types {
		s.Add(t)
	}
	return s
}

// Add adds t to the set. A nil type is ignored.
func (s TypeSet) Add(t *TypeName) {
	if t != nil {
		s[t] = struct{}{}
	}
}

// AddAll adds every type in other to the set.
func (s TypeSet) AddAll(other TypeSet) {
	for t := range other {
		s[t] = struct{}{}
	}
}

// Contains returns true if t is in the set.
func (s TypeSet) Contains(t *TypeName) bool {
	_, ok := s[t]
	return ok
}

// Sorted returns the types in the set, sorted by fully-qualified name.
func (s TypeSet) Sorted() []*TypeName {
	ret := make([]*TypeName, 0, len(s))
	for t := range s {
		ret = append(ret, t)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].Name() < ret[j].Name()
	})
	return ret
}

// Imports accumulates the types referenced by a Java source file and computes
// the import statements the file needs.
//
// Imports is not thread-safe.
type Imports struct {
	pkg   string
	types TypeSet
}

// NewImportsFor returns a new Imports for a source file in the given package.
// Types that are in that package do not need an import (see IsLocal).
func NewImportsFor(pkg string) *Imports {
	return &Imports{pkg: pkg, types: TypeSet{}}
}

// Package returns the package of the source file.
func (i *Imports) Package() string {
	return i.pkg
}

// Add registers a referenced type. It is safe to add the same type more than
// once.
func (i *Imports) Add(t *TypeName) *Imports {
	i.types.Add(t)
	return i
}

// AddAll registers all of the given referenced types.
func (i *Imports) AddAll(types TypeSet) *Imports {
	i.types.AddAll(types)
	return i
}

// IsLocal returns true if the given type is declared directly in the source
// file's package, in which case it needs no import. Nested types of a class
// in the same package are not local: they have an extra name segment.
func (i *Imports) IsLocal(t *TypeName) bool {
	return t.Name() == i.pkg+"."+t.SimpleName()
}

// ImportSpecs returns the import statements needed for all referenced types.
// Primitive types and local types are excluded. Types that differ only in
// array dimensions share a single import. The result is sorted by the text of
// the import statement.
func (i *Imports) ImportSpecs() []ImportSpec {
	seen := map[string]struct{}{}
	var specs []ImportSpec
	for t := range i.types {
		if t.IsPrimitive() || i.IsLocal(t) {
			continue
		}
		if _, ok := seen[t.ImportName()]; ok {
			continue
		}
		seen[t.ImportName()] = struct{}{}
		specs = append(specs, ImportSpec{TypeName: t.ImportName()})
	}
	sort.Slice(specs, func(a, b int) bool {
		return specs[a].String() < specs[b].String()
	})
	return specs
}

// ImportSpec describes an import statement in Java source.
type ImportSpec struct {
	TypeName string
}

// String returns the import statement, without a trailing newline. For
// example:
//
//    import java.util.List;
func (i ImportSpec) String() string {
	return "import " + i.TypeName + ";"
}
