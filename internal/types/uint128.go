package types

import (
	"math/big"
)

// Uint128 小端 u128，Lo 为低 64 位。字段顺序与链上 borsh 编码一致。
type Uint128 struct {
	Lo uint64
	Hi uint64
}

func (u Uint128) IsZero() bool {
	return u.Lo == 0 && u.Hi == 0
}

func (u Uint128) Big() *big.Int {
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string {
	if u.Hi == 0 {
		return new(big.Int).SetUint64(u.Lo).String()
	}
	return u.Big().String()
}

func (u Uint128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}
