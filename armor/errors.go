package armor

import "fmt"

// ParseError reports malformed armor: a broken BEGIN/END pairing, a bad
// header block, an undecodable body, or an ambiguous block count.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pgparmor: %s: %v", e.Reason, e.Err)
	}
	return "pgparmor: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ChecksumError reports a CRC24 mismatch between the declared armor checksum
// and the decoded payload. It is always wrapped in a ParseError and aborts
// the scan of the whole input.
type ChecksumError struct {
	Declared uint32
	Computed uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("pgparmor: CRC24 mismatch: declared %06x, computed %06x", e.Declared, e.Computed)
}

// SerializationError reports an encode-time contract violation, such as
// clearsign armoring with a signature count other than one.
type SerializationError struct {
	Reason string
}

func (e *SerializationError) Error() string {
	return "pgparmor: " + e.Reason
}
