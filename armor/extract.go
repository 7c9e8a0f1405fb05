package armor

import (
	"strings"

	"github.com/quillmail/pgparmor/constants"
)

const draftLine = "isDraft: true"

// ExtractFirstBlock returns the first armor block embedded in free text,
// such as a quoted mail reply, with any line prefix shared with the
// surrounding text stripped from every line. A SIGNED MESSAGE block runs
// through its END PGP SIGNATURE marker. If no block is found the text is
// returned unchanged.
//
// When a second BEGIN marker appears inside the matched span, the span is
// truncated at the first matching END marker instead of running across
// multiple blocks.
func ExtractFirstBlock(text string) string {
	begin := strings.Index(text, constants.ArmorBeginPrefix)
	if begin == -1 {
		return text
	}
	typeStart := begin + len(constants.ArmorBeginPrefix)
	typeEnd := strings.Index(text[typeStart:], constants.ArmorSuffix)
	if typeEnd == -1 {
		return text
	}

	expected := text[typeStart : typeStart+typeEnd]
	if expected == constants.SignedMessageHeader {
		expected = constants.SignatureHeader
	}
	endMarker := constants.ArmorEndPrefix + expected + constants.ArmorSuffix

	last := strings.LastIndex(text, endMarker)
	if last < begin {
		return text
	}
	block := text[begin : last+len(endMarker)]

	if strings.Count(block, constants.ArmorBeginPrefix) > 1 {
		first := strings.Index(block, endMarker)
		block = block[:first+len(endMarker)]
	}

	// Strip the quoting prefix carried by the line the BEGIN marker sits on.
	lineStart := strings.LastIndexByte(text[:begin], '\n') + 1
	if prefix := text[lineStart:begin]; prefix != "" {
		lines := strings.Split(block, "\n")
		for i := range lines {
			lines[i] = strings.TrimPrefix(lines[i], prefix)
		}
		block = strings.Join(lines, "\n")
	}

	return block
}

// MarkAsDraft flags armored text as a draft by injecting a header line
// right after the BEGIN marker line.
func MarkAsDraft(text string) string {
	idx := strings.IndexByte(text, '\n')
	if idx == -1 {
		return text + "\n" + draftLine + "\n"
	}
	return text[:idx+1] + draftLine + "\n" + text[idx+1:]
}

// IsDraft reports whether text was marked by MarkAsDraft.
func IsDraft(text string) bool {
	return strings.Contains(text, "\n"+draftLine+"\n")
}
