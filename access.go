package jpoet

// Visibility is the access level of a class or member. The zero value is
// Private.
type Visibility int

const (
	Private Visibility = iota
	// PackagePrivate is the default Java access level, which has no keyword.
	PackagePrivate
	Protected
	Public
)

// String returns a name for the visibility. Unlike the keyword used in
// source, PackagePrivate is named "package".
func (v Visibility) String() string {
	switch v {
	case Private:
		return "private"
	case PackagePrivate:
		return "package"
	case Protected:
		return "protected"
	case Public:
		return "public"
	default:
		return "unknown"
	}
}

func (v Visibility) keyword() string {
	if v == PackagePrivate {
		return ""
	}
	return v.String()
}

// Modifiers are the access specifier and flags that precede a declaration.
// The zero value describes a private, non-static, non-final element.
type Modifiers struct {
	Visibility Visibility
	Static     bool
	Final      bool
}

// String returns the modifiers as they appear in source. Each keyword is
// followed by a single space, so the result can be directly followed by the
// rest of the declaration. Package-private elements with no flags render as
// an empty string.
func (m Modifiers) String() string {
	s := m.Visibility.keyword()
	if s != "" {
		s += " "
	}
	if m.Static {
		s += "static "
	}
	if m.Final {
		s += "final "
	}
	return s
}
