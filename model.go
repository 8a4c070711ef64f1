package jpoet

import (
	"bytes"
	"fmt"
	"strings"
)

// member is the capability a Class relies on to render its fields,
// constructors, and methods: the set of types the member references (so the
// class can compute imports) and the member's source text. The class's simple
// name is supplied because constructors are named after their class.
type member interface {
	Types() TypeSet
	writeTo(b *bytes.Buffer, className string)
}

var (
	_ member = (*Field)(nil)
	_ member = (*Constructor)(nil)
	_ member = (*Method)(nil)
)

// Parameter is a single formal parameter of a constructor or method. Two
// parameters are equal (==) when both their types and names are equal.
type Parameter struct {
	typ  *TypeName
	name string
}

// NewParameter returns a parameter with the given type and name. An error is
// returned if either is missing.
func NewParameter(t *TypeName, name string) (Parameter, error) {
	if t == nil {
		return Parameter{}, fmt.Errorf("parameter %s: type: %w", name, ErrMissingValue)
	}
	if name == "" {
		return Parameter{}, fmt.Errorf("parameter of type %v: name: %w", t, ErrMissingValue)
	}
	return Parameter{typ: t, name: name}, nil
}

// MustParameter is like NewParameter but panics on error.
func MustParameter(t *TypeName, name string) Parameter {
	p, err := NewParameter(t, name)
	if err != nil {
		panic(err.Error())
	}
	return p
}

func (p Parameter) Type() *TypeName { return p.typ }
func (p Parameter) Name() string { return p.name }

// String returns the parameter as it appears in a parameter list, like
// "int count".
func (p Parameter) String() string {
	return p.typ.SimpleName() + " " + p.name
}

// ParamList is an ordered, immutable list of parameters.
type ParamList struct {
	params []Parameter
}

// NewParamList returns a list of the given parameters, in order. The given
// slice is copied.
func NewParamList(params ...Parameter) ParamList {
	return ParamList{params: append([]Parameter(nil), params...)}
}

func (l ParamList) Len() int { return len(l.params) }
func (l ParamList) At(i int) Parameter { return l.params[i] }
func (l ParamList) Params() []Parameter { return append([]Parameter(nil), l.params...) }

// Names returns the names of the parameters, in order.
func (l ParamList) Names() []string {
	names := make([]string, len(l.params))
	for i, p := range l.params {
		names[i] = p.name
	}
	return names
}

// Types returns the types of all parameters in the list.
func (l ParamList) Types() TypeSet {
	s := TypeSet{}
	for _, p := range l.params {
		s.Add(p.typ)
	}
	return s
}

// Equal returns true if both lists have the same parameters in the same
// order.
func (l ParamList) Equal(other ParamList) bool {
	if len(l.params) != len(other.params) {
		return false
	}
	for i := range l.params {
		if l.params[i] != other.params[i] {
			return false
		}
	}
	return true
}

// String returns the parameters joined with ", ", without parentheses.
func (l ParamList) String() string {
	strs := make([]string, len(l.params))
	for i, p := range l.params {
		strs[i] = p.String()
	}
	return strings.Join(strs, ", ")
}

// AnnotationArg is a single named argument of an annotation. The value is
// literal source text, so string values must include their quotes.
type AnnotationArg struct {
	name  string
	value string
}

// NewAnnotationArg returns an annotation argument. An error is returned if
// the name or value is missing.
func NewAnnotationArg(name, value string) (AnnotationArg, error) {
	if name == "" {
		return AnnotationArg{}, fmt.Errorf("annotation argument: name: %w", ErrMissingValue)
	}
	if value == "" {
		return AnnotationArg{}, fmt.Errorf("annotation argument %s: value: %w", name, ErrMissingValue)
	}
	return AnnotationArg{name: name, value: value}, nil
}

func (a AnnotationArg) Name() string { return a.name }
func (a AnnotationArg) Value() string { return a.value }

// String returns the argument as "name = value".
func (a AnnotationArg) String() string {
	return a.name + " = " + a.value
}

// ArgList is an ordered, immutable list of annotation arguments.
type ArgList struct {
	args []AnnotationArg
}

// NewArgList returns a list of the given arguments, in order. The given slice
// is copied.
func NewArgList(args ...AnnotationArg) ArgList {
	return ArgList{args: append([]AnnotationArg(nil), args...)}
}

func (l ArgList) Len() int { return len(l.args) }
func (l ArgList) At(i int) AnnotationArg { return l.args[i] }
func (l ArgList) Args() []AnnotationArg { return append([]AnnotationArg(nil), l.args...) }

// String returns the arguments joined with ", ", without parentheses.
func (l ArgList) String() string {
	strs := make([]string, len(l.args))
	for i, a := range l.args {
		strs[i] = a.String()
	}
	return strings.Join(strs, ", ")
}

// AnnotationConfig holds the options for NewAnnotation. Type is required.
type AnnotationConfig struct {
	Type *TypeName
	Args []AnnotationArg
}

// Annotation is a use of an annotation type on a class or member.
//
// Annotations are identified by their type alone (see Key): a declaration
// should not carry two annotations of the same type. This is not checked when
// annotations are added; it is up to the caller to avoid such duplicates.
type Annotation struct {
	typ  *TypeName
	args ArgList
}

// NewAnnotation returns a new annotation. An error is returned if no type is
// given.
func NewAnnotation(cfg AnnotationConfig) (*Annotation, error) {
	if cfg.Type == nil {
		return nil, fmt.Errorf("annotation: type: %w", ErrMissingValue)
	}
	return &Annotation{typ: cfg.Type, args: NewArgList(cfg.Args...)}, nil
}

func (a *Annotation) Type() *TypeName { return a.typ }
func (a *Annotation) Args() ArgList { return a.args }

// Key returns the value that identifies the annotation: its type.
func (a *Annotation) Key() *TypeName { return a.typ }

// Types returns the annotation's type. Argument values are literal text and
// contribute no types.
func (a *Annotation) Types() TypeSet {
	return NewTypeSet(a.typ)
}

// String returns the annotation as it appears in source, like "@Override" or
// "@Retention(value = RetentionPolicy.RUNTIME)". Parentheses are only present
// when there are arguments.
func (a *Annotation) String() string {
	if a.args.Len() == 0 {
		return "@" + a.typ.SimpleName()
	}
	return "@" + a.typ.SimpleName() + "(" + a.args.String() + ")"
}

func annotationTypes(annotations []*Annotation) TypeSet {
	s := TypeSet{}
	for _, a := range annotations {
		s.AddAll(a.Types())
	}
	return s
}

func writeAnnotations(b *bytes.Buffer, annotations []*Annotation) {
	for _, a := range annotations {
		b.WriteString(a.String())
		b.WriteRune('\n')
	}
}

func checkAnnotations(what string, annotations []*Annotation) error {
	for i, a := range annotations {
		if a == nil {
			return fmt.Errorf("%s: annotation %d: %w", what, i, ErrMissingValue)
		}
	}
	return nil
}

// FieldConfig holds the options for NewField. Type and Name are required.
// The zero Modifiers describe a private, non-static, non-final field. An
// empty Initializer means the field is declared without one.
type FieldConfig struct {
	Modifiers
	Type        *TypeName
	Name        string
	Initializer string
	Annotations []*Annotation
}

// Field is a field declaration.
//
// Fields are identified by name alone (see Key), so that a set of fields
// keyed this way holds at most one field of each name, regardless of type or
// initializer.
type Field struct {
	mods        Modifiers
	typ         *TypeName
	name        string
	initializer string
	annotations []*Annotation
}

// NewField returns a new field. An error is returned if the type or name is
// missing.
func NewField(cfg FieldConfig) (*Field, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("field: name: %w", ErrMissingValue)
	}
	if cfg.Type == nil {
		return nil, fmt.Errorf("field %s: type: %w", cfg.Name, ErrMissingValue)
	}
	if err := checkAnnotations("field "+cfg.Name, cfg.Annotations); err != nil {
		return nil, err
	}
	return &Field{
		mods:        cfg.Modifiers,
		typ:         cfg.Type,
		name:        cfg.Name,
		initializer: cfg.Initializer,
		annotations: append([]*Annotation(nil), cfg.Annotations...),
	}, nil
}

// MustField is like NewField but panics on error.
func MustField(cfg FieldConfig) *Field {
	f, err := NewField(cfg)
	if err != nil {
		panic(err.Error())
	}
	return f
}

func (f *Field) Modifiers() Modifiers { return f.mods }
func (f *Field) Type() *TypeName { return f.typ }
func (f *Field) Name() string { return f.name }
func (f *Field) Initializer() string { return f.initializer }
func (f *Field) Annotations() []*Annotation { return append([]*Annotation(nil), f.annotations...) }

// Key returns the value that identifies the field: its name.
func (f *Field) Key() string { return f.name }

// Types returns the field's type and the types of its annotations.
func (f *Field) Types() TypeSet {
	s := annotationTypes(f.annotations)
	s.Add(f.typ)
	return s
}

// Getter returns a public, no-argument method named "get" plus the
// capitalized field name that returns the field's value. The getter is static
// if the field is.
func (f *Field) Getter() *Method {
	return &Method{
		mods: Modifiers{Visibility: Public, Static: f.mods.Static},
		ret:  f.typ,
		name: "get" + Capitalize(f.name),
		body: "return " + f.name + ";",
	}
}

// Setter returns a public method named "set" plus the capitalized field name
// that assigns its single parameter, named "value", to the field. The setter
// is static if the field is. Final fields cannot be assigned, so an error is
// returned if the field is final.
func (f *Field) Setter() (*Method, error) {
	if f.mods.Final {
		return nil, fmt.Errorf("field %s: %w", f.name, ErrFinalSetter)
	}
	return &Method{
		mods:   Modifiers{Visibility: Public, Static: f.mods.Static},
		name:   "set" + Capitalize(f.name),
		params: NewParamList(Parameter{typ: f.typ, name: "value"}),
		body:   f.name + " = value;",
	}, nil
}

// String returns the field declaration, like "private int count = 0;".
func (f *Field) String() string {
	var b bytes.Buffer
	f.writeTo(&b, "")
	return b.String()
}

func (f *Field) writeTo(b *bytes.Buffer, _ string) {
	writeAnnotations(b, f.annotations)
	fmt.Fprintf(b, "%s%s %s", f.mods, f.typ.SimpleName(), f.name)
	if f.initializer != "" {
		b.WriteString(" = ")
		b.WriteString(f.initializer)
	}
	b.WriteRune(';')
}

// ConstructorConfig holds the options for NewConstructor. All options are
// optional: the zero value describes a private constructor with no
// parameters and an empty body.
type ConstructorConfig struct {
	Modifiers
	Params      ParamList
	Body        string
	Annotations []*Annotation
}

// Constructor is a constructor declaration. It does not know the name of its
// class; that is supplied when rendering.
//
// Constructors are identified by their parameter list alone (see
// SameSignature), irrespective of modifiers and body.
type Constructor struct {
	mods        Modifiers
	params      ParamList
	body        string
	annotations []*Annotation
}

// NewConstructor returns a new constructor. An error is returned if any of
// the given annotations is nil.
func NewConstructor(cfg ConstructorConfig) (*Constructor, error) {
	if err := checkAnnotations("constructor", cfg.Annotations); err != nil {
		return nil, err
	}
	return &Constructor{
		mods:        cfg.Modifiers,
		params:      cfg.Params,
		body:        cfg.Body,
		annotations: append([]*Annotation(nil), cfg.Annotations...),
	}, nil
}

// MustConstructor is like NewConstructor but panics on error.
func MustConstructor(cfg ConstructorConfig) *Constructor {
	c, err := NewConstructor(cfg)
	if err != nil {
		panic(err.Error())
	}
	return c
}

func (c *Constructor) Modifiers() Modifiers { return c.mods }
func (c *Constructor) Params() ParamList { return c.params }
func (c *Constructor) Body() string { return c.body }
func (c *Constructor) Annotations() []*Annotation { return append([]*Annotation(nil), c.annotations...) }

// SameSignature returns true if both constructors have equal parameter lists.
func (c *Constructor) SameSignature(other *Constructor) bool {
	return c.params.Equal(other.params)
}

// Types returns the types of the constructor's parameters and annotations.
func (c *Constructor) Types() TypeSet {
	s := annotationTypes(c.annotations)
	s.AddAll(c.params.Types())
	return s
}

// Render returns the constructor declaration for a class with the given
// simple name.
func (c *Constructor) Render(className string) string {
	var b bytes.Buffer
	c.writeTo(&b, className)
	return b.String()
}

func (c *Constructor) writeTo(b *bytes.Buffer, className string) {
	writeAnnotations(b, c.annotations)
	fmt.Fprintf(b, "%s%s(%v)", c.mods, className, c.params)
	writeBlock(b, c.body)
}

// MethodConfig holds the options for NewMethod. Name is required. A nil
// ReturnType declares a void method.
type MethodConfig struct {
	Modifiers
	ReturnType  *TypeName
	Name        string
	Params      ParamList
	Body        string
	Annotations []*Annotation
}

// Method is a method declaration.
type Method struct {
	mods        Modifiers
	ret         *TypeName
	name        string
	params      ParamList
	body        string
	annotations []*Annotation
}

// NewMethod returns a new method. An error is returned if the name is
// missing.
func NewMethod(cfg MethodConfig) (*Method, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("method: name: %w", ErrMissingValue)
	}
	if err := checkAnnotations("method "+cfg.Name, cfg.Annotations); err != nil {
		return nil, err
	}
	return &Method{
		mods:        cfg.Modifiers,
		ret:         cfg.ReturnType,
		name:        cfg.Name,
		params:      cfg.Params,
		body:        cfg.Body,
		annotations: append([]*Annotation(nil), cfg.Annotations...),
	}, nil
}

// MustMethod is like NewMethod but panics on error.
func MustMethod(cfg MethodConfig) *Method {
	m, err := NewMethod(cfg)
	if err != nil {
		panic(err.Error())
	}
	return m
}

func (m *Method) Modifiers() Modifiers { return m.mods }
func (m *Method) Name() string { return m.name }
func (m *Method) Params() ParamList { return m.params }
func (m *Method) Body() string { return m.body }
func (m *Method) Annotations() []*Annotation { return append([]*Annotation(nil), m.annotations...) }

// ReturnType returns the method's return type, or nil if the method was
// declared void without an explicit type.
func (m *Method) ReturnType() *TypeName { return m.ret }

// IsVoid returns true if the method does not return a value.
func (m *Method) IsVoid() bool {
	return m.ret == nil || m.ret.isVoid()
}

// Types returns the method's return type along with the types of its
// parameters and annotations.
func (m *Method) Types() TypeSet {
	s := annotationTypes(m.annotations)
	s.Add(m.ret)
	s.AddAll(m.params.Types())
	return s
}

// String returns the method declaration.
func (m *Method) String() string {
	var b bytes.Buffer
	m.writeTo(&b, "")
	return b.String()
}

func (m *Method) writeTo(b *bytes.Buffer, _ string) {
	writeAnnotations(b, m.annotations)
	ret := primitiveNames[Void]
	if m.ret != nil {
		ret = m.ret.SimpleName()
	}
	fmt.Fprintf(b, "%s%s %s(%v)", m.mods, ret, m.name, m.params)
	writeBlock(b, m.body)
}
