package jpoet

import "testing"

func TestIndent(t *testing.T) {
	testCases := []struct {
		name, in, out string
		width         int
	}{
		{name: "empty", in: "", out: "", width: 4},
		{name: "single line", in: "return x;", out: "    return x;\n", width: 4},
		{name: "trailing newlines", in: "a;\nb;\n\n", out: "  a;\n  b;\n", width: 2},
		{name: "interior blank line", in: "a;\n\nb;", out: "    a;\n\n    b;\n", width: 4},
		{name: "line endings", in: "a;\r\nb;\rc;", out: " a;\n b;\n c;\n", width: 1},
		{name: "no indent", in: "a;", out: "a;\n", width: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Indent(tc.in, tc.width); got != tc.out {
				t.Errorf("expected %q; got %q", tc.out, got)
			}
		})
	}
}
