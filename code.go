package jpoet

import (
	"bytes"
	"strings"
)

// IndentWidth is the number of spaces by which member declarations and
// bodies are indented relative to their enclosing braces.
const IndentWidth = 4

// Indent prefixes every line of text with width spaces and terminates every
// line with a newline. Trailing empty lines are dropped and blank lines in the
// middle of the text are kept without a prefix. Empty text indents to an
// empty string.
func Indent(text string, width int) string {
	var b bytes.Buffer
	writeIndented(&b, text, width)
	return b.String()
}

func writeIndented(b *bytes.Buffer, text string, width int) {
	lines := splitLines(text)
	prefix := strings.Repeat(" ", width)
	for _, l := range lines {
		if l != "" {
			b.WriteString(prefix)
			b.WriteString(l)
		}
		b.WriteRune('\n')
	}
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// writeBlock writes a brace-delimited body: the opening brace, the indented
// body, and the closing brace.
func writeBlock(b *bytes.Buffer, body string) {
	b.WriteString("{\n")
	writeIndented(b, body, IndentWidth)
	b.WriteRune('}')
}
