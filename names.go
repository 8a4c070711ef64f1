package jpoet

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Capitalize returns s with its first character converted to upper case. It
// is used to derive accessor names, so "count" becomes "Count" and a getter
// is named "getCount". It does not try to verify that s is a valid Java
// identifier.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, sz := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		panic(fmt.Sprintf("%q is not valid UTF8", s))
	}
	return string(unicode.ToUpper(r)) + s[sz:]
}

