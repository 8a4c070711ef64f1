// Package classdef reads declarative class definition files and builds
// jpoet classes from them. Definition files are YAML or TOML, chosen by file
// extension.
//
// A minimal YAML definition looks like this:
//
//	classes:
//	  - package: com.example
//	    name: Point
//	    modifiers: public final
//	    fields:
//	      - {modifiers: private final, type: int, name: x, getter: true}
//	    constructors:
//	      - modifiers: public
//	        params: [{type: int, name: x}]
//	        body: this.x = x;
package classdef

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

var log = commonlog.GetLogger("jpoet.classdef")

var (
	// ErrUnknownFormat is returned when a definition file's extension is not
	// one of .yaml, .yml, or .toml.
	ErrUnknownFormat = errors.New("unknown definition file format")
	// ErrUnknownKey is returned when a definition file contains a key that
	// does not correspond to any definition attribute.
	ErrUnknownKey = errors.New("unknown key")
)

// File is the contents of a single definition file.
type File struct {
	Classes []Class `yaml:"classes" toml:"classes"`

	// Name is the name of the file the definitions were read from (set at
	// load time). It prefixes error messages.
	Name string `yaml:"-" toml:"-"`
}

// Class defines a single class. Extends names the superclass; when empty the
// class extends java.lang.Object. When DeriveConstructors is set, Extends
// must name another class in the same file, whose accessible constructors are
// given to this class.
type Class struct {
	Package            string       `yaml:"package" toml:"package"`
	Name               string       `yaml:"name" toml:"name"`
	Modifiers          string       `yaml:"modifiers" toml:"modifiers"`
	Extends            string       `yaml:"extends" toml:"extends"`
	DeriveConstructors bool         `yaml:"derive_constructors" toml:"derive_constructors"`
	Imports            []string     `yaml:"imports" toml:"imports"`
	Annotations        []Annotation `yaml:"annotations" toml:"annotations"`
	Fields             []Field      `yaml:"fields" toml:"fields"`
	Constructors       []Ctor       `yaml:"constructors" toml:"constructors"`
	Methods            []Method     `yaml:"methods" toml:"methods"`
}

// Annotation defines an annotation use. Argument values are literal Java
// source text.
type Annotation struct {
	Type string `yaml:"type" toml:"type"`
	Args []Arg  `yaml:"args" toml:"args"`
}

type Arg struct {
	Name  string `yaml:"name" toml:"name"`
	Value string `yaml:"value" toml:"value"`
}

type Param struct {
	Type string `yaml:"type" toml:"type"`
	Name string `yaml:"name" toml:"name"`
}

// Field defines a field. Getter and Setter request generated accessor
// methods, which are added after the class's declared methods.
type Field struct {
	Modifiers   string       `yaml:"modifiers" toml:"modifiers"`
	Type        string       `yaml:"type" toml:"type"`
	Name        string       `yaml:"name" toml:"name"`
	Init        string       `yaml:"init" toml:"init"`
	Getter      bool         `yaml:"getter" toml:"getter"`
	Setter      bool         `yaml:"setter" toml:"setter"`
	Annotations []Annotation `yaml:"annotations" toml:"annotations"`
}

type Ctor struct {
	Modifiers   string       `yaml:"modifiers" toml:"modifiers"`
	Params      []Param      `yaml:"params" toml:"params"`
	Body        string       `yaml:"body" toml:"body"`
	Annotations []Annotation `yaml:"annotations" toml:"annotations"`
}

// Method defines a method. An empty Returns declares a void method.
type Method struct {
	Modifiers   string       `yaml:"modifiers" toml:"modifiers"`
	Returns     string       `yaml:"returns" toml:"returns"`
	Name        string       `yaml:"name" toml:"name"`
	Params      []Param      `yaml:"params" toml:"params"`
	Body        string       `yaml:"body" toml:"body"`
	Annotations []Annotation `yaml:"annotations" toml:"annotations"`
}

// Load reads and decodes the definition file at the given location, which
// may be a local path or any URL supported by afs.
func Load(ctx context.Context, URL string) (*File, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", URL, err)
	}
	return Decode(URL, data)
}

// Decode decodes the contents of a definition file. The format is chosen by
// the extension of name.
func Decode(name string, data []byte) (*File, error) {
	var f File
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse error in %s: %w", name, err)
		}
	case ".toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
		if err != nil {
			return nil, fmt.Errorf("parse error in %s: %w", name, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parse error in %s: %w %q", name, ErrUnknownKey, undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%s: %w %q", name, ErrUnknownFormat, ext)
	}
	f.Name = name
	log.Debugf("decoded %d class definitions from %s", len(f.Classes), name)
	return &f, nil
}
