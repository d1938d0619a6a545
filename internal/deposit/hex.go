package deposit

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DecodeHex decodes an even length hex string with an optional 0x prefix
func DecodeHex(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	} else {
		s = "0x" + s[2:]
	}
	buf, err := hexutil.Decode(s)
	if err != nil {
		if errors.Is(err, hexutil.ErrOddLength) {
			return nil, &MalformedHexError{Value: s, Err: hexutil.ErrOddLength}
		}
		return nil, &MalformedHexError{Value: s, Err: hexutil.ErrSyntax}
	}
	return buf, nil
}

// EncodeHex returns the lowercase 0x prefixed hex form of b
func EncodeHex(b []byte) string {
	return hexutil.Encode(b)
}

// decodeField decodes a hex field and checks it has the expected size
func decodeField(field, value string, size int) ([]byte, error) {
	buf, err := DecodeHex(value)
	if err != nil {
		var hexErr *MalformedHexError
		if errors.As(err, &hexErr) {
			hexErr.Field = field
		}
		return nil, err
	}
	if len(buf) != size {
		return nil, &InvalidFieldLengthError{Field: field, Got: len(buf), Want: size}
	}
	return buf, nil
}
