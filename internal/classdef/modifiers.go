package classdef

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jhump/jpoet"
)

var (
	ErrUnknownModifier     = errors.New("unknown modifier")
	ErrConflictingModifier = errors.New("conflicting modifier")
)

var visibilities = map[string]jpoet.Visibility{
	"private":   jpoet.Private,
	"package":   jpoet.PackagePrivate,
	"protected": jpoet.Protected,
	"public":    jpoet.Public,
}

// ParseModifiers parses a whitespace-separated list of modifier keywords,
// such as "public static final". The keyword "package" selects
// package-private visibility, which has no keyword in Java source. When no
// visibility is given the result is private.
func ParseModifiers(s string) (jpoet.Modifiers, error) {
	var mods jpoet.Modifiers
	var vis string
	for _, tok := range strings.Fields(s) {
		switch tok {
		case "static":
			mods.Static = true
		case "final":
			mods.Final = true
		default:
			v, ok := visibilities[tok]
			if !ok {
				return jpoet.Modifiers{}, fmt.Errorf("%w %q", ErrUnknownModifier, tok)
			}
			if vis != "" && vis != tok {
				return jpoet.Modifiers{}, fmt.Errorf("%w %q: visibility already %s", ErrConflictingModifier, tok, vis)
			}
			vis = tok
			mods.Visibility = v
		}
	}
	return mods, nil
}
