package armor

import (
	stderrors "errors"
	"strings"

	"github.com/quillmail/pgparmor/constants"
)

// errNoBlock marks a candidate BEGIN marker that does not open a well-formed
// block. The scan skips it and keeps seeking; it never reaches callers.
var errNoBlock = stderrors.New("not a well-formed armor block")

// scan walks text for armor blocks. A structural mismatch at one candidate
// BEGIN marker resumes the search after that marker; decode and checksum
// failures abort the whole scan.
func scan(text string, maxBlocks int) ([]*Block, error) {
	var blocks []*Block

	pos := 0
	for {
		if maxBlocks > 0 && len(blocks) >= maxBlocks {
			break
		}
		start := strings.Index(text[pos:], constants.ArmorBeginPrefix)
		if start == -1 {
			break
		}
		start += pos

		block, next, err := scanBlock(text, start)
		if err != nil {
			if stderrors.Is(err, errNoBlock) {
				pos = start + len(constants.ArmorBeginPrefix)
				continue
			}
			return nil, err
		}
		blocks = append(blocks, block)
		pos = next
	}

	return blocks, nil
}

// scanBlock runs the block grammar from the BEGIN marker at start:
// SEEK_BEGIN -> HEADERS -> BODY -> CHECKSUM -> SEEK_END. It returns the
// decoded block and the scan position after the END line.
func scanBlock(text string, start int) (*Block, int, error) {
	s := lineScanner{text: text, pos: start}

	line, terminated, ok := s.next()
	if !ok || !terminated {
		return nil, 0, errNoBlock
	}
	armorType, ok := parseBegin(line)
	if !ok {
		return nil, 0, errNoBlock
	}

	// Header lines up to the single blank separator.
	var charset string
	for {
		line, terminated, ok = s.next()
		if !ok || !terminated {
			return nil, 0, errNoBlock
		}
		if line == "" {
			break
		}
		name, value, headerOK := parseHeader(line)
		if !headerOK {
			return nil, 0, errNoBlock
		}
		if strings.EqualFold(name, "Charset") {
			charset = charsetToken(value)
		}
	}

	// Body lines, an optional checksum line, then blank lines up to END.
	var body strings.Builder
	var checksum string
	bodyEnded := false
	end := 0
	for {
		lineStart := s.pos
		line, terminated, ok = s.next()
		if !ok {
			return nil, 0, errNoBlock
		}
		if endType, isEnd := parseEnd(line); isEnd {
			if endType != armorType {
				return nil, 0, errNoBlock
			}
			end = lineStart + len(line)
			break
		}
		if !terminated {
			return nil, 0, errNoBlock
		}
		switch {
		case line == "":
			bodyEnded = true
		case !bodyEnded && checksum == "" && isChecksumLine(line):
			checksum = line[1:]
			bodyEnded = true
		case !bodyEnded && isBodyLine(line):
			body.WriteString(line)
		default:
			return nil, 0, errNoBlock
		}
	}

	payload, err := decodeRadix64(body.String())
	if err != nil {
		return nil, 0, &ParseError{Reason: "invalid armor body", Err: err}
	}
	if checksum != "" {
		if err := verifyChecksum(payload, checksum); err != nil {
			return nil, 0, err
		}
	}

	return &Block{
		Payload: payload,
		Type:    armorType,
		Charset: charset,
		Start:   start,
		End:     end,
	}, s.pos, nil
}

// verifyChecksum decodes the 4-character checksum field and compares it
// against the CRC24 of payload.
func verifyChecksum(payload []byte, checksum string) error {
	declared, err := decodeRadix64(checksum)
	if err != nil || len(declared) != constants.ArmorChecksumLength {
		return &ParseError{Reason: "invalid armor checksum line", Err: err}
	}
	want := uint32(declared[0])<<16 | uint32(declared[1])<<8 | uint32(declared[2])
	if got := crc24(payload); got != want {
		return &ParseError{
			Reason: "armor checksum failed",
			Err:    &ChecksumError{Declared: want, Computed: got},
		}
	}
	return nil
}

// lineScanner yields lines with the tolerant terminator stripped: an
// optional single tab, space or non-breaking space, an optional CR, and a
// LF. Some producers smear whitespace onto line breaks in transit; the
// grammar absorbs one such character per line.
type lineScanner struct {
	text string
	pos  int
}

// next returns the next line's content and whether it was terminated by a
// newline. The final return is false once the input is exhausted.
func (s *lineScanner) next() (line string, terminated, ok bool) {
	if s.pos >= len(s.text) {
		return "", false, false
	}
	idx := strings.IndexByte(s.text[s.pos:], '\n')
	if idx == -1 {
		line = s.text[s.pos:]
		s.pos = len(s.text)
		return trimTolerant(strings.TrimSuffix(line, "\r")), false, true
	}
	line = s.text[s.pos : s.pos+idx]
	s.pos += idx + 1
	return trimTolerant(strings.TrimSuffix(line, "\r")), true, true
}

// trimTolerant removes the single stray whitespace character the tolerant
// newline grammar accepts before the line break.
func trimTolerant(line string) string {
	if strings.HasSuffix(line, "\u00a0") {
		return line[:len(line)-len("\u00a0")]
	}
	if strings.HasSuffix(line, "\t") || strings.HasSuffix(line, " ") {
		return line[:len(line)-1]
	}
	return line
}

// parseBegin extracts the armor type from a BEGIN marker line. The type may
// contain anything but a dash.
func parseBegin(line string) (string, bool) {
	if !strings.HasPrefix(line, constants.ArmorBeginPrefix) || !strings.HasSuffix(line, constants.ArmorSuffix) {
		return "", false
	}
	armorType := line[len(constants.ArmorBeginPrefix) : len(line)-len(constants.ArmorSuffix)]
	if armorType == "" || strings.Contains(armorType, "-") {
		return "", false
	}
	return armorType, true
}

// parseEnd extracts the armor type from an END marker line.
func parseEnd(line string) (string, bool) {
	if !strings.HasPrefix(line, constants.ArmorEndPrefix) || !strings.HasSuffix(line, constants.ArmorSuffix) {
		return "", false
	}
	armorType := line[len(constants.ArmorEndPrefix) : len(line)-len(constants.ArmorSuffix)]
	if armorType == "" || strings.Contains(armorType, "-") {
		return "", false
	}
	return armorType, true
}

// parseHeader splits a "Name: value" armor header line. Names are strictly
// alphabetic; values run to the end of the line.
func parseHeader(line string) (name, value string, ok bool) {
	idx := strings.Index(line, ": ")
	if idx < 1 {
		return "", "", false
	}
	name = line[:idx]
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return "", "", false
		}
	}
	return name, line[idx+2:], true
}

// isChecksumLine matches "=" followed by exactly four radix-64 characters.
func isChecksumLine(line string) bool {
	if len(line) != 5 || line[0] != '=' {
		return false
	}
	for i := 1; i < len(line); i++ {
		if !isRadix64Char(line[i]) {
			return false
		}
	}
	return true
}

// isBodyLine matches a non-empty run of radix-64 characters, padding
// included.
func isBodyLine(line string) bool {
	if line == "" {
		return false
	}
	for i := 0; i < len(line); i++ {
		if !isRadix64Char(line[i]) && line[i] != '=' {
			return false
		}
	}
	return true
}

// charsetToken lowercases a Charset header value and extracts its first
// word token.
func charsetToken(value string) string {
	value = strings.ToLower(value)

	start := -1
	for i := 0; i < len(value); i++ {
		c := value[i]
		isWord := c == '-' || c == '_' ||
			(c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
		if isWord {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			return value[start:i]
		}
	}
	if start == -1 {
		return ""
	}
	return value[start:]
}
