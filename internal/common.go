// Package internal contains text helpers shared by the armor and clearsign
// packages.
package internal

import (
	"strings"
)

// Canonicalize normalizes all line endings in text to CRLF.
func Canonicalize(text string) string {
	return strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\n", "\r\n")
}

// TrimEachLine removes trailing spaces, tabs and carriage returns from every
// line of text.
func TrimEachLine(text string) string {
	lines := strings.Split(text, "\n")

	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t\r")
	}

	return strings.Join(lines, "\n")
}
