package classdef

import (
	"errors"
	"fmt"

	"github.com/jhump/jpoet"
)

var (
	// ErrUndefinedSuperclass is returned when a class derives constructors
	// from a superclass that is not defined in the same file.
	ErrUndefinedSuperclass = errors.New("superclass not defined in this file")
	// ErrInheritanceCycle is returned when classes that derive constructors
	// extend one another in a cycle.
	ErrInheritanceCycle = errors.New("inheritance cycle")
)

// Build creates a class for every definition in the file. All type names are
// interned in reg. Classes are returned in the order they are defined.
//
// Constructors are derived after every class has been built, so a class may
// derive constructors from a superclass defined later in the file. A
// superclass that itself derives constructors has them derived first.
func (f *File) Build(reg *jpoet.Registry) ([]*jpoet.Class, error) {
	classes := make([]*jpoet.Class, len(f.Classes))
	byName := map[string]int{}
	for i := range f.Classes {
		def := &f.Classes[i]
		c, err := buildClass(reg, def)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		classes[i] = c
		byName[c.Type().Name()] = i
	}

	const (
		pending = iota
		inProgress
		done
	)
	state := make([]int, len(classes))
	var derive func(i int) error
	derive = func(i int) error {
		switch state[i] {
		case done:
			return nil
		case inProgress:
			return fmt.Errorf("class %s: %w", f.Classes[i].Name, ErrInheritanceCycle)
		}
		state[i] = inProgress
		if f.Classes[i].DeriveConstructors {
			child := classes[i]
			parent, ok := byName[child.Superclass().Name()]
			if !ok {
				return fmt.Errorf("class %s: derive constructors from %s: %w", child.Name(), child.Superclass(), ErrUndefinedSuperclass)
			}
			if err := derive(parent); err != nil {
				return err
			}
			classes[parent].DeriveConstructorsInto(child)
			log.Debugf("derived constructors of %s into %s", classes[parent].Name(), child.Name())
		}
		state[i] = done
		return nil
	}
	for i := range classes {
		if err := derive(i); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return classes, nil
}

func buildClass(reg *jpoet.Registry, def *Class) (*jpoet.Class, error) {
	mods, err := ParseModifiers(def.Modifiers)
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", def.Name, err)
	}
	var super *jpoet.TypeName
	if def.Extends != "" {
		if super, err = reg.Parse(def.Extends); err != nil {
			return nil, fmt.Errorf("class %s: extends: %w", def.Name, err)
		}
	}
	annotations, err := buildAnnotations(reg, def.Annotations)
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", def.Name, err)
	}
	c, err := jpoet.NewClass(reg, jpoet.ClassConfig{
		Package:     def.Package,
		Modifiers:   mods,
		Name:        def.Name,
		Superclass:  super,
		Annotations: annotations,
	})
	if err != nil {
		return nil, err
	}

	for _, imp := range def.Imports {
		t, err := reg.Parse(imp)
		if err != nil {
			return nil, fmt.Errorf("class %s: import %s: %w", def.Name, imp, err)
		}
		c.ImportImplicitly(t)
	}

	var accessors []*jpoet.Method
	for _, fd := range def.Fields {
		fld, err := buildField(reg, fd)
		if err != nil {
			return nil, fmt.Errorf("class %s: field %s: %w", def.Name, fd.Name, err)
		}
		c.AddField(fld)
		if fd.Getter {
			accessors = append(accessors, fld.Getter())
		}
		if fd.Setter {
			setter, err := fld.Setter()
			if err != nil {
				return nil, fmt.Errorf("class %s: %w", def.Name, err)
			}
			accessors = append(accessors, setter)
		}
	}
	for i, cd := range def.Constructors {
		ctor, err := buildCtor(reg, cd)
		if err != nil {
			return nil, fmt.Errorf("class %s: constructor #%d: %w", def.Name, i+1, err)
		}
		c.AddConstructor(ctor)
	}
	for _, md := range def.Methods {
		m, err := buildMethod(reg, md)
		if err != nil {
			return nil, fmt.Errorf("class %s: method %s: %w", def.Name, md.Name, err)
		}
		c.AddMethod(m)
	}
	for _, m := range accessors {
		c.AddMethod(m)
	}

	log.Debugf("built class %s.%s", def.Package, def.Name)
	return c, nil
}

func buildField(reg *jpoet.Registry, fd Field) (*jpoet.Field, error) {
	mods, err := ParseModifiers(fd.Modifiers)
	if err != nil {
		return nil, err
	}
	t, err := parseType(reg, fd.Type)
	if err != nil {
		return nil, err
	}
	annotations, err := buildAnnotations(reg, fd.Annotations)
	if err != nil {
		return nil, err
	}
	return jpoet.NewField(jpoet.FieldConfig{
		Modifiers:   mods,
		Type:        t,
		Name:        fd.Name,
		Initializer: fd.Init,
		Annotations: annotations,
	})
}

func buildCtor(reg *jpoet.Registry, cd Ctor) (*jpoet.Constructor, error) {
	mods, err := ParseModifiers(cd.Modifiers)
	if err != nil {
		return nil, err
	}
	params, err := buildParams(reg, cd.Params)
	if err != nil {
		return nil, err
	}
	annotations, err := buildAnnotations(reg, cd.Annotations)
	if err != nil {
		return nil, err
	}
	return jpoet.NewConstructor(jpoet.ConstructorConfig{
		Modifiers:   mods,
		Params:      params,
		Body:        cd.Body,
		Annotations: annotations,
	})
}

func buildMethod(reg *jpoet.Registry, md Method) (*jpoet.Method, error) {
	mods, err := ParseModifiers(md.Modifiers)
	if err != nil {
		return nil, err
	}
	var ret *jpoet.TypeName
	if md.Returns != "" {
		if ret, err = reg.Parse(md.Returns); err != nil {
			return nil, fmt.Errorf("returns: %w", err)
		}
	}
	params, err := buildParams(reg, md.Params)
	if err != nil {
		return nil, err
	}
	annotations, err := buildAnnotations(reg, md.Annotations)
	if err != nil {
		return nil, err
	}
	return jpoet.NewMethod(jpoet.MethodConfig{
		Modifiers:   mods,
		ReturnType:  ret,
		Name:        md.Name,
		Params:      params,
		Body:        md.Body,
		Annotations: annotations,
	})
}

func buildParams(reg *jpoet.Registry, pds []Param) (jpoet.ParamList, error) {
	params := make([]jpoet.Parameter, len(pds))
	for i, pd := range pds {
		t, err := parseType(reg, pd.Type)
		if err != nil {
			return jpoet.ParamList{}, fmt.Errorf("parameter %s: %w", pd.Name, err)
		}
		if params[i], err = jpoet.NewParameter(t, pd.Name); err != nil {
			return jpoet.ParamList{}, err
		}
	}
	return jpoet.NewParamList(params...), nil
}

func buildAnnotations(reg *jpoet.Registry, ads []Annotation) ([]*jpoet.Annotation, error) {
	var annotations []*jpoet.Annotation
	for _, ad := range ads {
		t, err := parseType(reg, ad.Type)
		if err != nil {
			return nil, fmt.Errorf("annotation: %w", err)
		}
		args := make([]jpoet.AnnotationArg, len(ad.Args))
		for i, a := range ad.Args {
			if args[i], err = jpoet.NewAnnotationArg(a.Name, a.Value); err != nil {
				return nil, fmt.Errorf("annotation @%s: %w", t.SimpleName(), err)
			}
		}
		a, err := jpoet.NewAnnotation(jpoet.AnnotationConfig{Type: t, Args: args})
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, a)
	}
	return annotations, nil
}

func parseType(reg *jpoet.Registry, s string) (*jpoet.TypeName, error) {
	if s == "" {
		return nil, fmt.Errorf("type: %w", jpoet.ErrMissingValue)
	}
	return reg.Parse(s)
}
