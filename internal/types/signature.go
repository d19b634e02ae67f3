package types

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// Signature 交易签名（64 字节原始数据）
type Signature [64]byte

func (s Signature) String() string {
	return base58.Encode(s[:])
}

func (s Signature) IsZero() bool {
	return s == Signature{}
}

func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func SignatureFromBase58(str string) (Signature, error) {
	var sig Signature
	data, err := base58.Decode(str)
	if err != nil {
		return sig, fmt.Errorf("failed to decode base58 signature %q: %w", str, err)
	}
	if len(data) != 64 {
		return sig, fmt.Errorf("invalid signature length: got %d, want 64", len(data))
	}
	copy(sig[:], data)
	return sig, nil
}

func SignatureFromBytes(b []byte) (Signature, bool) {
	var sig Signature
	if len(b) != 64 {
		return sig, false
	}
	copy(sig[:], b)
	return sig, true
}
