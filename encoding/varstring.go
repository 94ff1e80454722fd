package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/interop/endian"
	"github.com/arloliu/interop/errs"
)

// MaxTextLength is the maximum length of a length-prefixed string.
// The length prefix is a uint16.
const MaxTextLength = math.MaxUint16

// VarStringSize returns the encoded size of text: a 2-byte length followed by the bytes.
func VarStringSize(text string) int {
	return 2 + len(text)
}

// AppendVarString appends text with a uint16 length prefix.
//
// Parameters:
//   - engine: Endian engine for the length prefix
//   - dst: Destination slice
//   - text: String to encode (must not exceed MaxTextLength bytes)
//
// Returns:
//   - []byte: dst with the encoded string appended
//   - error: ErrInvalidArgument if text is too long
func AppendVarString(engine endian.EndianEngine, dst []byte, text string) ([]byte, error) {
	if len(text) > MaxTextLength {
		return dst, fmt.Errorf("%w: text length %d exceeds maximum %d", errs.ErrInvalidArgument, len(text), MaxTextLength)
	}

	dst = engine.AppendUint16(dst, uint16(len(text))) //nolint:gosec
	return append(dst, text...), nil
}

// ReadVarString decodes a uint16 length-prefixed string from the start of data.
//
// Returns:
//   - string: Decoded string
//   - int: Number of bytes consumed
//   - error: ErrIncompleteFile if data ends before the declared length
func ReadVarString(engine endian.EndianEngine, data []byte) (string, int, error) {
	if len(data) < 2 {
		return "", 0, fmt.Errorf("%w: missing string length", errs.ErrIncompleteFile)
	}

	n := int(engine.Uint16(data))
	if len(data) < 2+n {
		return "", 0, fmt.Errorf("%w: string declares %d bytes, %d remain", errs.ErrIncompleteFile, n, len(data)-2)
	}

	return string(data[2 : 2+n]), 2 + n, nil
}
