// Package constants provides the fixed strings and limits of the armor format.
package constants

// Armor marker fragments. A full marker line reads
// "-----BEGIN PGP <TYPE>-----".
const (
	ArmorBeginPrefix = "-----BEGIN PGP "
	ArmorEndPrefix   = "-----END PGP "
	ArmorSuffix      = "-----"
)

// Armor type names, as they appear between the BEGIN and END markers.
const (
	MessageHeader       = "MESSAGE"
	SignatureHeader     = "SIGNATURE"
	SignedMessageHeader = "SIGNED MESSAGE"
	PublicKeyHeader     = "PUBLIC KEY BLOCK"
	PrivateKeyHeader    = "PRIVATE KEY BLOCK"

	// BinaryHeader is the synthetic type assigned to raw, unarmored input.
	BinaryHeader = "BINARY"
)

const (
	// ArmorLineLength is the radix-64 body wrap width.
	ArmorLineLength = 64

	// ArmorChecksumLength is the serialized CRC24 size in bytes.
	ArmorChecksumLength = 3

	// MaxScanBytes is the default input size cap for the block scanner.
	MaxScanBytes = 8 * 1024 * 1024
)
