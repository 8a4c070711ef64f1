package jpoet

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("jpoet")

// ClassConfig holds the options for NewClass. Package and Name are required.
// The zero Modifiers describe a private, non-static, non-final class. A nil
// Superclass means java.lang.Object, which is rendered without an extends
// clause.
type ClassConfig struct {
	Package string
	Modifiers
	Name        string
	Superclass  *TypeName
	Annotations []*Annotation
}

// Class accumulates the declarations of a single Java class and renders them
// to source, computing the import statements the source needs.
//
// Fields, constructors, and methods are kept in the order they are added and
// are not de-duplicated. Each addition also records the types the member
// references; this set of referenced types only grows.
//
// To construct a Class, use the NewClass factory function. A Class is not
// thread-safe.
type Class struct {
	reg          *Registry
	pkg          string
	mods         Modifiers
	name         string
	superclass   *TypeName
	annotations  []*Annotation
	imports      TypeSet
	fields       []*Field
	constructors []*Constructor
	methods      []*Method
}

// NewClass returns a new, empty class. Its own type, and its superclass when
// none is given, are obtained from reg. An error is returned if the package or
// name is missing.
func NewClass(reg *Registry, cfg ClassConfig) (*Class, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("class: name: %w", ErrMissingValue)
	}
	if cfg.Package == "" {
		return nil, fmt.Errorf("class %s: package: %w", cfg.Name, ErrMissingValue)
	}
	if err := checkAnnotations("class "+cfg.Name, cfg.Annotations); err != nil {
		return nil, err
	}
	super := cfg.Superclass
	if super == nil {
		super = reg.Object()
	}
	c := &Class{
		reg:         reg,
		pkg:         cfg.Package,
		mods:        cfg.Modifiers,
		name:        cfg.Name,
		superclass:  super,
		annotations: append([]*Annotation(nil), cfg.Annotations...),
		imports:     annotationTypes(cfg.Annotations),
	}
	return c, nil
}

// MustClass is like NewClass but panics on error.
func MustClass(reg *Registry, cfg ClassConfig) *Class {
	c, err := NewClass(reg, cfg)
	if err != nil {
		panic(err.Error())
	}
	return c
}

func (c *Class) Package() string            { return c.pkg }
func (c *Class) Name() string               { return c.name }
func (c *Class) Modifiers() Modifiers       { return c.mods }
func (c *Class) Superclass() *TypeName      { return c.superclass }
func (c *Class) Annotations() []*Annotation { return append([]*Annotation(nil), c.annotations...) }
func (c *Class) Fields() []*Field           { return append([]*Field(nil), c.fields...) }
func (c *Class) Methods() []*Method         { return append([]*Method(nil), c.methods...) }

func (c *Class) Constructors() []*Constructor {
	return append([]*Constructor(nil), c.constructors...)
}

// Type returns the TypeName of the class itself, which is always its package
// and name joined by a dot.
func (c *Class) Type() *TypeName {
	return c.reg.intern(normalizeTypeName(c.pkg+"."+c.name), false, 0)
}

// Imports returns a copy of the set of types recorded so far: those of the
// class's annotations, those given to ImportImplicitly, and those referenced
// by every member added.
func (c *Class) Imports() TypeSet {
	s := TypeSet{}
	s.AddAll(c.imports)
	return s
}

// ImportImplicitly records a referenced type without adding a member. This
// can be used to import a type that is only mentioned in a method body.
func (c *Class) ImportImplicitly(t *TypeName) *Class {
	c.imports.Add(t)
	return c
}

// AddField appends a field and records the types it references.
func (c *Class) AddField(f *Field) *Class {
	c.imports.AddAll(f.Types())
	c.fields = append(c.fields, f)
	return c
}

// AddConstructor appends a constructor and records the types it references.
func (c *Class) AddConstructor(ctor *Constructor) *Class {
	c.imports.AddAll(ctor.Types())
	c.constructors = append(c.constructors, ctor)
	return c
}

// AddMethod appends a method and records the types it references.
func (c *Class) AddMethod(m *Method) *Class {
	c.imports.AddAll(m.Types())
	c.methods = append(c.methods, m)
	return c
}

// DeriveConstructorsInto gives other, typically a subclass of c, one
// constructor for each constructor of c that other can access. Private
// constructors are never derived, and package-private constructors are only
// derived when other is in the same package as c. Each derived constructor
// has the same visibility and parameters as its source and a body that passes
// every parameter, in order, to the superclass constructor.
func (c *Class) DeriveConstructorsInto(other *Class) {
	for _, ctor := range c.Constructors() {
		switch {
		case ctor.mods.Visibility == Private:
			log.Debugf("%s(%v): private constructor not derived into %s", c.name, ctor.params, other.name)
			continue
		case ctor.mods.Visibility == PackagePrivate && other.pkg != c.pkg:
			log.Debugf("%s(%v): package-private constructor not visible from %s", c.name, ctor.params, other.pkg)
			continue
		}
		other.AddConstructor(&Constructor{
			mods:   Modifiers{Visibility: ctor.mods.Visibility},
			params: ctor.params,
			body:   "super(" + strings.Join(ctor.params.Names(), ", ") + ");",
		})
	}
}

// ImportSpecs returns the import statements the rendered class needs. These
// are computed from the recorded types, the types referenced by all members,
// and the superclass.
func (c *Class) ImportSpecs() []ImportSpec {
	imports := NewImportsFor(c.pkg).AddAll(c.imports)
	for _, m := range c.members() {
		imports.AddAll(m.Types())
	}
	if !c.superclass.isObject() {
		imports.Add(c.superclass)
	}
	return imports.ImportSpecs()
}

func (c *Class) members() []member {
	ms := make([]member, 0, len(c.fields)+len(c.constructors)+len(c.methods))
	for _, f := range c.fields {
		ms = append(ms, f)
	}
	for _, ctor := range c.constructors {
		ms = append(ms, ctor)
	}
	for _, m := range c.methods {
		ms = append(ms, m)
	}
	return ms
}

// String renders the class as Java source. The result does not end with a
// newline.
func (c *Class) String() string {
	var b bytes.Buffer
	c.writeTo(&b)
	return b.String()
}

func (c *Class) writeTo(b *bytes.Buffer) {
	fields := renderGroup(c.name, c.fields)
	ctors := renderGroup(c.name, c.constructors)
	methods := renderGroup(c.name, c.methods)
	specs := c.ImportSpecs()
	log.Debugf("rendering %s.%s: %d imports, %d fields, %d constructors, %d methods",
		c.pkg, c.name, len(specs), len(c.fields), len(c.constructors), len(c.methods))

	// package and imports pre-amble
	fmt.Fprintf(b, "package %s;\n\n", c.pkg)
	for _, spec := range specs {
		b.WriteString(spec.String())
		b.WriteRune('\n')
	}
	if len(specs) > 0 {
		b.WriteRune('\n')
	}

	writeAnnotations(b, c.annotations)
	fmt.Fprintf(b, "%sclass %s", c.mods, c.name)
	if !c.superclass.isObject() {
		fmt.Fprintf(b, " extends %s", c.superclass.SimpleName())
	}
	b.WriteString(" {\n")

	// groups are separated by a blank line, but only when both are present
	writeIndented(b, fields, IndentWidth)
	if fields != "" && (ctors != "" || methods != "") {
		b.WriteRune('\n')
	}
	writeIndented(b, ctors, IndentWidth)
	if ctors != "" && methods != "" {
		b.WriteRune('\n')
	}
	writeIndented(b, methods, IndentWidth)
	if methods != "" {
		b.WriteRune('\n')
	}
	b.WriteRune('}')
}

func renderGroup[M member](className string, ms []M) string {
	var b bytes.Buffer
	for i, m := range ms {
		if i > 0 {
			b.WriteRune('\n')
		}
		m.writeTo(&b, className)
	}
	return b.String()
}

// JavaFilePath returns the path, relative to a source root, of the file in
// which the given class should be written. For example, class Foo in package
// "com.example" is written to "com/example/Foo.java".
func JavaFilePath(c *Class) string {
	dirs := strings.Split(c.pkg, ".")
	return filepath.Join(append(dirs, c.name+".java")...)
}

// WriteJavaFile renders the given class as Java source to w. A trailing
// newline is written after the closing brace.
func WriteJavaFile(w io.Writer, c *Class) error {
	var buf bytes.Buffer
	c.writeTo(&buf)
	buf.WriteRune('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteJavaFiles renders all of the given classes. The given function is
// called with the relative path of each class's file (see JavaFilePath) and
// returns the writer to which that class is rendered. If the returned writer
// is also an io.Closer, it is closed after the class is written.
func WriteJavaFiles(outFn func(path string) (io.Writer, error), classes ...*Class) error {
	for _, c := range classes {
		p := JavaFilePath(c)
		w, err := outFn(p)
		if err != nil {
			return err
		}
		err = WriteJavaFile(w, c)
		if cl, ok := w.(io.Closer); ok {
			if closeErr := cl.Close(); err == nil {
				err = closeErr
			}
		}
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// WriteJavaFilesToFileSystem renders all of the given classes into files
// under rootDir, creating package directories as needed.
func WriteJavaFilesToFileSystem(rootDir string, classes ...*Class) error {
	return WriteJavaFiles(func(path string) (io.Writer, error) {
		fullPath := filepath.Join(rootDir, path)
		dir := filepath.Dir(fullPath)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
		return os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	}, classes...)
}
