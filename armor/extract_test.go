package armor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillmail/pgparmor/constants"
)

func quoteLines(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func TestExtractFirstBlockFromQuotedReply(t *testing.T) {
	armored := Encode(constants.MessageHeader, []byte("quoted"))
	quoted := "On Friday you wrote:\n" + quoteLines(armored, "> ") + "\nregards\n"

	extracted := ExtractFirstBlock(quoted)

	assert.True(t, strings.HasPrefix(extracted, "-----BEGIN PGP MESSAGE-----"))
	assert.True(t, strings.HasSuffix(extracted, "-----END PGP MESSAGE-----"))
	assert.NotContains(t, extracted, "> ")

	block, err := Parse(extracted)
	require.NoError(t, err)
	assert.Equal(t, []byte("quoted"), block.Payload)
}

func TestExtractFirstBlockNoBlock(t *testing.T) {
	text := "no armor anywhere in this text"
	assert.Equal(t, text, ExtractFirstBlock(text))

	dangling := "-----BEGIN PGP MESSAGE-----\nno end marker follows"
	assert.Equal(t, dangling, ExtractFirstBlock(dangling))
}

func TestExtractFirstBlockSignedMessageSpansSignature(t *testing.T) {
	armored, err := ArmorClearSignedMessage("signed body", "SHA256", []byte{0x01, 0x02})
	require.NoError(t, err)
	text := "intro text\n" + armored + "outro text\n"

	extracted := ExtractFirstBlock(text)

	assert.True(t, strings.HasPrefix(extracted, "-----BEGIN PGP SIGNED MESSAGE-----"))
	assert.True(t, strings.HasSuffix(extracted, "-----END PGP SIGNATURE-----"))
}

func TestExtractFirstBlockTruncatesAtFirstMatchingEnd(t *testing.T) {
	first := Encode(constants.MessageHeader, []byte("first"))
	second := Encode(constants.MessageHeader, []byte("second"))
	text := first + second

	extracted := ExtractFirstBlock(text)

	assert.Equal(t, 1, strings.Count(extracted, "-----BEGIN PGP MESSAGE-----"))
	block, err := Parse(extracted)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), block.Payload)
}

func TestMarkAsDraft(t *testing.T) {
	armored := Encode(constants.MessageHeader, []byte("draft payload"))
	assert.False(t, IsDraft(armored))

	marked := MarkAsDraft(armored)
	assert.True(t, IsDraft(marked))
	assert.Contains(t, marked, "-----BEGIN PGP MESSAGE-----\r\nisDraft: true\n")

	// A draft mark is a regular header line; the block still parses.
	block, err := Parse(marked)
	require.NoError(t, err)
	assert.Equal(t, []byte("draft payload"), block.Payload)
}
