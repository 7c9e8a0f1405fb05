// Package armor implements the RFC 4880 ASCII Armor envelope: scanning
// armored text into binary blocks and wrapping binary payloads back into
// armored text, including the CRC24 armor checksum.
package armor

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/quillmail/pgparmor/constants"
)

// Block is one decoded armor unit.
type Block struct {
	// Payload holds the decoded binary content.
	Payload []byte

	// Type is the armor type between the BEGIN and END markers, verbatim.
	Type string

	// Charset is the lowercased token of the Charset header, or "" when the
	// block declares none.
	Charset string

	// Start and End delimit the armor text within the scanned input, markers
	// included and surrounding separator newlines excluded.
	Start int
	End   int
}

// Option configures a scan.
type Option func(*config)

type config struct {
	maxBlocks int
	maxBytes  int
}

func defaultConfig() *config {
	return &config{
		maxBlocks: 0,
		maxBytes:  constants.MaxScanBytes,
	}
}

// WithMaxBlocks stops the scan once n blocks have been parsed.
func WithMaxBlocks(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBlocks = n
		}
	}
}

// WithMaxInputSize caps the accepted input size in bytes.
func WithMaxInputSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

// ParseAll scans text for armor blocks, leaf to root: locate each BEGIN
// marker, run the block grammar, decode the radix-64 body and verify its
// CRC24 checksum.
//
// Input whose first byte has the high bit set cannot be armored text (a raw
// OpenPGP packet tag always sets it), and yields a single BINARY block
// spanning the whole input. Input without any BEGIN marker yields zero
// blocks and no error. A checksum mismatch on any matched block aborts the
// entire scan.
func ParseAll(text string, opts ...Option) ([]*Block, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if len(text) > cfg.maxBytes {
		return nil, errors.Errorf("pgparmor: input too large (%d bytes, limit %d)", len(text), cfg.maxBytes)
	}
	if len(text) > 0 && text[0] >= 0x80 {
		return []*Block{{
			Payload: []byte(text),
			Type:    constants.BinaryHeader,
			Start:   0,
			End:     len(text),
		}}, nil
	}
	if !strings.Contains(text, constants.ArmorBeginPrefix) {
		return nil, nil
	}

	return scan(text, cfg.maxBlocks)
}

// Parse requires exactly one armor block in text and returns it.
func Parse(text string) (*Block, error) {
	blocks, err := ParseAll(text)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, &ParseError{Reason: "no armor block found"}
	}
	if len(blocks) > 1 {
		return nil, &ParseError{Reason: "expected exactly one armor block"}
	}
	return blocks[0], nil
}
