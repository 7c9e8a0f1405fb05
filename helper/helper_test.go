package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillmail/pgparmor/armor"
)

func TestArmorMessageRoundTrip(t *testing.T) {
	payload := []byte("helper payload")

	data, err := Unarmor(ArmorMessage(payload))
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	data, err = Unarmor(ArmorSignature(payload))
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestUnarmorTextUTF8(t *testing.T) {
	text, err := UnarmorText(ArmorMessage([]byte("héllo wörld")))
	require.NoError(t, err)
	assert.Equal(t, "héllo wörld", text)
}

func TestUnarmorTextDeclaredCharset(t *testing.T) {
	// 0xE9 is "é" in latin-1; the payload carries no checksum line, which
	// the armor grammar allows.
	armored := "-----BEGIN PGP MESSAGE-----\r\n" +
		"Charset: ISO-8859-1\r\n" +
		"\r\n" +
		"6Q==\r\n" +
		"-----END PGP MESSAGE-----\r\n"

	text, err := UnarmorText(armored)
	require.NoError(t, err)
	assert.Equal(t, "é", text)
}

func TestUnarmorTextNoCharset(t *testing.T) {
	armored := armor.Encode("SIGNATURE", []byte("raw bytes"))

	text, err := UnarmorText(armored)
	require.NoError(t, err)
	assert.Equal(t, "raw bytes", text)
}

func TestReadClearSignedMessage(t *testing.T) {
	signature := []byte{0x0A, 0x0B}
	armored, err := armor.ArmorClearSignedMessage("cleartext body", "SHA256", signature)
	require.NoError(t, err)

	body, sig, err := ReadClearSignedMessage(armored)
	require.NoError(t, err)
	assert.Equal(t, "cleartext body", body)
	assert.Equal(t, signature, sig)
}

func TestUnarmorRejectsGarbage(t *testing.T) {
	_, err := Unarmor("not armored")
	assert.Error(t, err)
}
