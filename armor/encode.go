package armor

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/quillmail/pgparmor/constants"
	"github.com/quillmail/pgparmor/internal"
)

// Header is one armor header line. Callers supply headers as a slice so
// their order survives into the output.
type Header struct {
	Name  string
	Value string
}

var headerNamePattern = regexp.MustCompile(`^\w+$`)

// validHeader reports whether h can be emitted as a single well-formed
// header line. Invalid headers are dropped on encode, never emitted broken.
func validHeader(h Header) bool {
	return headerNamePattern.MatchString(h.Name) && !strings.ContainsAny(h.Value, "\r\n")
}

// Encode wraps payload in an armor envelope of the given type: BEGIN
// marker, headers, blank separator, wrapped radix-64 body, CRC24 checksum
// line, END marker. Lines are joined by CRLF and the result ends with a
// line break after the END marker.
//
// Every type except SIGNATURE is declared as UTF-8 text via a Charset
// header; a signature payload is not textual content.
func Encode(armorType string, payload []byte, headers ...Header) string {
	lines := make([]string, 0, len(headers)+6)

	lines = append(lines, constants.ArmorBeginPrefix+armorType+constants.ArmorSuffix)
	if armorType != constants.SignatureHeader {
		lines = append(lines, "Charset: UTF-8")
	}
	for _, h := range headers {
		if validHeader(h) {
			lines = append(lines, h.Name+": "+h.Value)
		}
	}
	lines = append(lines, "")
	if body := encodeRadix64(payload); body != "" {
		lines = append(lines, body)
	}
	lines = append(lines, "="+base64.StdEncoding.EncodeToString(crc24Bytes(payload)))
	lines = append(lines, constants.ArmorEndPrefix+armorType+constants.ArmorSuffix)
	lines = append(lines, "")

	return strings.Join(lines, "\r\n")
}

// ArmorSignature is a detached signature that can serialize itself and name
// its hash algorithm.
type ArmorSignature interface {
	HashName() string
	Serialize() ([]byte, error)
}

// Armorable is anything that can be wrapped in armor: it declares its block
// type, exposes its binary body, and lists its detached signatures.
type Armorable interface {
	Header() string
	ArmorBody() ([]byte, error)
	ArmorSignatures() []ArmorSignature
}

// ArmorEntity armors e. Entities with the SIGNED MESSAGE header are emitted
// in the two-part clearsign form and must carry exactly one signature; the
// format has no room for more.
func ArmorEntity(e Armorable, headers ...Header) (string, error) {
	body, err := e.ArmorBody()
	if err != nil {
		return "", errors.Wrap(err, "pgparmor: unable to read armor body")
	}

	if e.Header() != constants.SignedMessageHeader {
		return Encode(e.Header(), body, headers...), nil
	}

	signatures := e.ArmorSignatures()
	if len(signatures) != 1 {
		return "", &SerializationError{
			Reason: fmt.Sprintf("clearsign needs exactly one signature, got %d", len(signatures)),
		}
	}
	return encodeClearSign(string(body), signatures[0], headers...)
}

// ArmorClearSignedMessage emits the clearsign form for body carrying a
// single detached signature.
func ArmorClearSignedMessage(body, hashName string, signature []byte) (string, error) {
	return encodeClearSign(body, detachedSignature{hash: hashName, data: signature})
}

// encodeClearSign emits the SIGNED MESSAGE header block, the canonicalized
// and dash-escaped body, and the trailing SIGNATURE armor block.
func encodeClearSign(body string, signature ArmorSignature, headers ...Header) (string, error) {
	signatureBytes, err := signature.Serialize()
	if err != nil {
		return "", errors.Wrap(err, "pgparmor: unable to serialize signature")
	}

	text := internal.DashEscape(internal.Canonicalize(internal.TrimEachLine(body)))

	var b strings.Builder
	b.WriteString(constants.ArmorBeginPrefix + constants.SignedMessageHeader + constants.ArmorSuffix + "\r\n")
	b.WriteString("Hash: " + signature.HashName() + "\r\n")
	for _, h := range headers {
		if validHeader(h) {
			b.WriteString(h.Name + ": " + h.Value + "\r\n")
		}
	}
	b.WriteString("\r\n")
	b.WriteString(text)
	b.WriteString("\r\n")
	b.WriteString(Encode(constants.SignatureHeader, signatureBytes))

	return b.String(), nil
}

// detachedSignature adapts raw signature bytes to the ArmorSignature
// contract.
type detachedSignature struct {
	hash string
	data []byte
}

func (s detachedSignature) HashName() string {
	return s.hash
}

func (s detachedSignature) Serialize() ([]byte, error) {
	return s.data, nil
}
