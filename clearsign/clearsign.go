// Package clearsign parses the RFC 4880 cleartext signature framing: a
// signed plaintext introduced by a SIGNED MESSAGE marker and a mandatory
// Hash header, followed by a detached SIGNATURE armor block.
package clearsign

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/quillmail/pgparmor/armor"
	"github.com/quillmail/pgparmor/constants"
	"github.com/quillmail/pgparmor/internal"
)

const (
	beginSigned    = constants.ArmorBeginPrefix + constants.SignedMessageHeader + constants.ArmorSuffix
	beginSignature = constants.ArmorBeginPrefix + constants.SignatureHeader + constants.ArmorSuffix
)

// Message is a parsed clearsign message.
type Message struct {
	// Body is the canonicalized, dash-unescaped signed text: CRLF line
	// endings, trailing whitespace stripped. Verification must run over
	// these exact bytes.
	Body string

	// Signature holds the decoded payload of the trailing SIGNATURE block.
	Signature []byte

	// HashName is the value of the mandatory Hash header.
	HashName string
}

// IsClearSigned reports whether text carries the clearsign framing: a
// SIGNED MESSAGE marker followed by a SIGNATURE marker.
func IsClearSigned(text string) bool {
	signed := indexAtLineStart(text, beginSigned)
	signature := indexAtLineStart(text, beginSignature)
	return signed != -1 && signature != -1 && signed < signature
}

// indexAtLineStart finds marker only at the start of a line. A dash-escaped
// marker inside a signed body never sits at a line start, so it cannot cut
// the message short.
func indexAtLineStart(text, marker string) int {
	if strings.HasPrefix(text, marker) {
		return 0
	}
	idx := strings.Index(text, "\n"+marker)
	if idx == -1 {
		return -1
	}
	return idx + 1
}

// Parse splits a clearsign message into its canonicalized body, its
// decoded signature payload, and the declared hash algorithm name.
func Parse(text string) (*Message, error) {
	signedAt := indexAtLineStart(text, beginSigned)
	signatureAt := indexAtLineStart(text, beginSignature)
	if signedAt == -1 || signatureAt == -1 || signatureAt < signedAt {
		return nil, &armor.ParseError{Reason: "not a clearsign message"}
	}

	hashName, bodyStart, err := parseHeaderBlock(text, signedAt+len(beginSigned))
	if err != nil {
		return nil, err
	}

	// The line break introducing the SIGNATURE marker is not part of the
	// signed body, nor is a trailing carriage return before it.
	body := text[bodyStart:signatureAt]
	body = strings.TrimSuffix(body, "\n")
	body = strings.TrimSuffix(body, "\r")
	body = internal.Canonicalize(internal.TrimEachLine(internal.DashUnescape(body)))

	block, err := armor.Parse(text[signatureAt:])
	if err != nil {
		return nil, errors.Wrap(err, "pgparmor: invalid clearsign signature block")
	}

	return &Message{
		Body:      body,
		Signature: block.Payload,
		HashName:  hashName,
	}, nil
}

// parseHeaderBlock reads the clearsign header block starting right after
// the SIGNED MESSAGE marker: the marker line break, a mandatory Hash
// header, optional further headers, and exactly one blank line. It returns
// the hash algorithm name and the offset where the body begins.
func parseHeaderBlock(text string, pos int) (string, int, error) {
	line, pos, ok := readLine(text, pos)
	if !ok || line != "" {
		return "", 0, &armor.ParseError{Reason: "malformed clearsign begin marker line"}
	}

	line, pos, ok = readLine(text, pos)
	if !ok || !strings.HasPrefix(line, "Hash: ") {
		return "", 0, &armor.ParseError{Reason: "clearsign message misses a Hash header"}
	}
	hashName := line[len("Hash: "):]

	for {
		line, next, lineOK := readLine(text, pos)
		if !lineOK {
			return "", 0, &armor.ParseError{Reason: "clearsign header block is not terminated"}
		}
		pos = next
		if line == "" {
			return hashName, pos, nil
		}
		if !isHeaderLine(line) {
			return "", 0, &armor.ParseError{Reason: "malformed clearsign header line"}
		}
	}
}

// readLine returns the next LF-terminated line with its CR stripped and the
// position after the terminator.
func readLine(text string, pos int) (line string, next int, ok bool) {
	if pos >= len(text) {
		return "", pos, false
	}
	idx := strings.IndexByte(text[pos:], '\n')
	if idx == -1 {
		return "", pos, false
	}
	line = strings.TrimSuffix(text[pos:pos+idx], "\r")
	return line, pos + idx + 1, true
}

// isHeaderLine matches an optional "Name: value" clearsign header with a
// strictly alphabetic name.
func isHeaderLine(line string) bool {
	idx := strings.Index(line, ": ")
	if idx < 1 {
		return false
	}
	for i := 0; i < idx; i++ {
		c := line[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
