// Package jpoet is a library to assist with generating Java code from Go. It
// includes a small model of a Java class (its package, modifiers, superclass,
// annotations, fields, constructors, and methods) and renders that model into
// source text with the correct import statements.
//
// The API is strongly influenced by Java Poet
// (https://github.com/square/javapoet) and by its Go counterpart, Go Poet.
//
// Types
//
// TypeName is the way jpoet represents Java types: a dotted name, whether the
// name is a primitive, and a number of array dimensions. Type names are
// canonicalized by a Registry, which hands out a single *TypeName for each
// distinct name and dimension count. Identity is therefore equality, and type
// names can be used as map keys. Each generation session should create its own
// Registry; a Registry is not safe for concurrent use.
//
//   reg := jpoet.NewRegistry()
//   str := reg.MustType("java.lang.String", 0)
//   grid, _ := reg.Parse("int[][]")
//
// Elements
//
// Class is the root type for building a representation of Java source. Its
// members are Field, Constructor, and Method values. These, along with
// Parameter, Annotation, and AnnotationArg, are immutable: each is created
// from a config struct (FieldConfig, MethodConfig, and so on) whose zero
// values are the defaults. For example, the zero Modifiers describe a
// private, non-static, non-final element.
//
// Statements and expressions are not modeled, so constructor and method bodies
// are plain text. Bodies are indented for the caller and may span multiple
// lines.
//
// Usage involves constructing a Class with NewClass, filling it with members,
// and then either calling its String method or using one of the WriteJavaFile*
// functions to translate the model into Java source.
//
// Imports
//
// Import statements need not be defined manually. Each member reports the
// types it references, and the Class computes the imports it needs from those
// (plus any types given to Class.ImportImplicitly and the superclass).
// Primitive types and types in the class's own package are never imported.
// Array types are imported by their element type, and the statements are
// sorted by their text.
//
// Accessors and Subclasses
//
// A Field can produce a getter and, unless it is final, a setter method. A
// Class can give a subclass a constructor for each of its own constructors
// that the subclass can access, each of which forwards its parameters to the
// superclass constructor. See Class.DeriveConstructorsInto.
//
// Model Limitations
//
// Only a single top-level class declaration per file is supported: there are
// no interfaces, enums, nested classes, or generic type parameters. The model
// does not validate that names are legal Java identifiers or that bodies are
// well-formed, so it is possible to generate source that does not compile.
package jpoet
