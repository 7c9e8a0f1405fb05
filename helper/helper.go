// Package helper contains string-oriented conveniences over the armor and
// clearsign packages for callers that do not need offsets or options.
package helper

import (
	gomime "github.com/ProtonMail/go-mime"
	"github.com/pkg/errors"

	"github.com/quillmail/pgparmor/armor"
	"github.com/quillmail/pgparmor/clearsign"
	"github.com/quillmail/pgparmor/constants"
)

// ArmorMessage armors payload as a MESSAGE block.
func ArmorMessage(payload []byte) string {
	return armor.Encode(constants.MessageHeader, payload)
}

// ArmorSignature armors payload as a SIGNATURE block.
func ArmorSignature(payload []byte) string {
	return armor.Encode(constants.SignatureHeader, payload)
}

// Unarmor returns the payload of the single armor block in text.
func Unarmor(text string) ([]byte, error) {
	block, err := armor.Parse(text)
	if err != nil {
		return nil, err
	}
	return block.Payload, nil
}

// UnarmorText parses a single armored text block and decodes its payload to
// a string using the block's declared charset. Blocks without a Charset
// header are passed through as-is; absence must not be papered over with a
// guessed encoding.
func UnarmorText(text string) (string, error) {
	block, err := armor.Parse(text)
	if err != nil {
		return "", err
	}
	if block.Charset == "" {
		return string(block.Payload), nil
	}

	decoded, err := gomime.DecodeCharset(block.Payload, "text/plain", map[string]string{"charset": block.Charset})
	if err != nil {
		return "", errors.Wrap(err, "pgparmor: unable to decode payload charset")
	}
	return string(decoded), nil
}

// ReadClearSignedMessage returns the canonicalized text and the decoded
// signature payload of a clearsign message.
func ReadClearSignedMessage(armored string) (string, []byte, error) {
	message, err := clearsign.Parse(armored)
	if err != nil {
		return "", nil, err
	}
	return message.Body, message.Signature, nil
}
