package armor

import "github.com/quillmail/pgparmor/constants"

// CRC-24 constants from RFC 4880 section 6.1.
const (
	crc24Init = 0xB704CE
	crc24Poly = 0x1864CFB
	crc24Msb  = 0x1000000
	crc24Mask = 0xFFFFFF
)

// crc24 computes the RFC 4880 armor checksum over data. The format defines
// the algorithm bit for bit, so it is reproduced here rather than taken from
// a generic CRC table.
func crc24(data []byte) uint32 {
	crc := uint32(crc24Init)

	for _, b := range data {
		crc ^= uint32(b) << 16
		for i := 0; i < 8; i++ {
			crc <<= 1
			if crc&crc24Msb != 0 {
				crc ^= crc24Poly
			}
		}
	}

	return crc & crc24Mask
}

// crc24Bytes serializes the checksum of data as 3 big-endian bytes.
func crc24Bytes(data []byte) []byte {
	crc := crc24(data)
	out := make([]byte, constants.ArmorChecksumLength)
	out[0] = byte(crc >> 16)
	out[1] = byte(crc >> 8)
	out[2] = byte(crc)
	return out
}
