package armor

import (
	"bytes"
	"io"
	"strings"
	"testing"

	openpgparmor "github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillmail/pgparmor/constants"
)

// The reference OpenPGP implementation acts as the interop oracle: armor
// emitted here must decode there, and vice versa.

func TestInteropReferenceDecodesOurArmor(t *testing.T) {
	payload := []byte("cross-implementation payload")
	armored := Encode(constants.MessageHeader, payload)

	block, err := openpgparmor.Decode(strings.NewReader(armored))
	require.NoError(t, err)
	assert.Equal(t, "PGP MESSAGE", block.Type)

	decoded, err := io.ReadAll(block.Body)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestInteropWeParseReferenceArmor(t *testing.T) {
	payload := []byte("reference-produced payload")

	var buf bytes.Buffer
	w, err := openpgparmor.Encode(&buf, "PGP MESSAGE", nil)
	require.NoError(t, err)
	_, err = w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	blocks, err := ParseAll(buf.String())
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, constants.MessageHeader, blocks[0].Type)
	assert.Equal(t, payload, blocks[0].Payload)
}
