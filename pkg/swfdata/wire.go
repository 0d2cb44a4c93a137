package swfdata

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode uses canonical mode so the same block always encodes to
// the same bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("swfdata: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalFunctionBlock serializes a FunctionBlock to CBOR bytes.
func MarshalFunctionBlock(b *FunctionBlock) ([]byte, error) {
	return cborEncMode.Marshal(b)
}

// UnmarshalFunctionBlock deserializes a FunctionBlock from CBOR bytes.
func UnmarshalFunctionBlock(data []byte) (*FunctionBlock, error) {
	var b FunctionBlock
	if err := cbor.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("swfdata: unmarshal function block: %w", err)
	}
	return &b, nil
}
