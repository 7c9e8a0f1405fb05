package internal

import "strings"

// DashEscape protects a cleartext body from colliding with armor markers:
// every line starting with a dash gets a "- " prefix, as does every line
// starting with "From " to survive mail transport mangling.
func DashEscape(text string) string {
	lines := strings.Split(text, "\n")

	for i := range lines {
		if strings.HasPrefix(lines[i], "-") || strings.HasPrefix(lines[i], "From ") {
			lines[i] = "- " + lines[i]
		}
	}

	return strings.Join(lines, "\n")
}

// DashUnescape reverses DashEscape: every line starting with "- " has that
// prefix removed.
func DashUnescape(text string) string {
	lines := strings.Split(text, "\n")

	for i := range lines {
		if strings.HasPrefix(lines[i], "- ") {
			lines[i] = lines[i][2:]
		}
	}

	return strings.Join(lines, "\n")
}
