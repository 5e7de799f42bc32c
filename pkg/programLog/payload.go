package programLog

import (
	"encoding/base64"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// Encoding is the text encoding of a raw event payload.
type Encoding string

const (
	Encoding_Base64 Encoding = "base64"
	Encoding_Base58 Encoding = "base58"
	Encoding_Hex    Encoding = "hex"
)

var SupportedEncodings = []Encoding{
	Encoding_Base64,
	Encoding_Base58,
	Encoding_Hex,
}

// DecodePayload turns a text encoded payload into raw event bytes.
// Hex payloads may omit the 0x prefix.
func DecodePayload(payload string, encoding Encoding) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, errors.New("empty payload")
	}

	switch encoding {
	case Encoding_Base64, "":
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode base64 payload")
		}
		return b, nil
	case Encoding_Base58:
		b, err := base58.Decode(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode base58 payload")
		}
		return b, nil
	case Encoding_Hex:
		if !strings.HasPrefix(payload, "0x") && !strings.HasPrefix(payload, "0X") {
			payload = "0x" + payload
		}
		b, err := hexutil.Decode(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode hex payload")
		}
		return b, nil
	default:
		return nil, errors.Errorf("unsupported encoding '%s'", encoding)
	}
}
