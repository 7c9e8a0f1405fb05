package armor

import (
	"encoding/base64"
	"strings"

	"github.com/quillmail/pgparmor/constants"
)

// encodeRadix64 encodes data in the radix-64 alphabet, wrapped at the armor
// line width with CRLF breaks. The result ends at the last data character,
// with no trailing line break.
func encodeRadix64(data []byte) string {
	enc := base64.StdEncoding.EncodeToString(data)

	var b strings.Builder
	for i := 0; i < len(enc); i += constants.ArmorLineLength {
		if i > 0 {
			b.WriteString("\r\n")
		}
		end := i + constants.ArmorLineLength
		if end > len(enc) {
			end = len(enc)
		}
		b.WriteString(enc[i:end])
	}

	return b.String()
}

// decodeRadix64 strips every character outside the radix-64 alphabet before
// decoding, so line breaks mangled in transport do not block the decode.
// Genuinely invalid base64 content still fails: the strict decoder rejects
// non-zero residual bits in the final symbol, which a checksum over decoded
// bytes could never catch.
func decodeRadix64(text string) ([]byte, error) {
	clean := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		if isRadix64Char(text[i]) || text[i] == '=' {
			clean = append(clean, text[i])
		}
	}

	return base64.StdEncoding.Strict().DecodeString(string(clean))
}

// isRadix64Char reports whether c is in the radix-64 alphabet, padding
// excluded.
func isRadix64Char(c byte) bool {
	return (c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9') ||
		c == '+' || c == '/'
}
