package armor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrc24EmptyInput(t *testing.T) {
	assert.Equal(t, uint32(crc24Init&crc24Mask), crc24(nil))
	assert.Equal(t, crc24(nil), crc24([]byte{}))
}

func TestCrc24CheckValue(t *testing.T) {
	// Standard CRC-24/OPENPGP check value.
	assert.Equal(t, uint32(0x21CF02), crc24([]byte("123456789")))
}

func TestCrc24DependsOnOrder(t *testing.T) {
	assert.NotEqual(t, crc24([]byte{0x01, 0x02}), crc24([]byte{0x02, 0x01}))
	assert.Equal(t, crc24([]byte{0x01, 0x02}), crc24([]byte{0x01, 0x02}))
}

func TestCrc24Bytes(t *testing.T) {
	sum := crc24Bytes(nil)
	assert.Equal(t, []byte{0xB7, 0x04, 0xCE}, sum)
}
