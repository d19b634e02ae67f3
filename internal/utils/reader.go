package utils

import (
	"encoding/binary"

	"dex-event-parser-sol/internal/types"
)

// 所有读取函数在 offset+size 越界时返回 (零值, false)，不会 panic。
// 调用方拿到 false 应视为"无事件"，而不是把字段当作 0 继续使用。

func inRange(data []byte, offset, size int) bool {
	return offset >= 0 && size >= 0 && offset <= len(data) && size <= len(data)-offset
}

func ReadU8(data []byte, offset int) (uint8, bool) {
	if !inRange(data, offset, 1) {
		return 0, false
	}
	return data[offset], true
}

func ReadU16(data []byte, offset int) (uint16, bool) {
	if !inRange(data, offset, 2) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(data[offset:]), true
}

func ReadU32(data []byte, offset int) (uint32, bool) {
	if !inRange(data, offset, 4) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(data[offset:]), true
}

func ReadU64(data []byte, offset int) (uint64, bool) {
	if !inRange(data, offset, 8) {
		return 0, false
	}
	return binary.LittleEndian.Uint64(data[offset:]), true
}

func ReadU128(data []byte, offset int) (types.Uint128, bool) {
	if !inRange(data, offset, 16) {
		return types.Uint128{}, false
	}
	return types.Uint128{
		Lo: binary.LittleEndian.Uint64(data[offset:]),
		Hi: binary.LittleEndian.Uint64(data[offset+8:]),
	}, true
}

func ReadI32(data []byte, offset int) (int32, bool) {
	v, ok := ReadU32(data, offset)
	return int32(v), ok
}

func ReadI64(data []byte, offset int) (int64, bool) {
	v, ok := ReadU64(data, offset)
	return int64(v), ok
}

// ReadBool 任意非 0 字节视为 true
func ReadBool(data []byte, offset int) (bool, bool) {
	v, ok := ReadU8(data, offset)
	return v != 0, ok
}

func ReadPubkey(data []byte, offset int) (types.Pubkey, bool) {
	var p types.Pubkey
	if !inRange(data, offset, 32) {
		return p, false
	}
	copy(p[:], data[offset:offset+32])
	return p, true
}

// ReadBytes 返回 data 的子切片（不拷贝）
func ReadBytes(data []byte, offset, length int) ([]byte, bool) {
	if !inRange(data, offset, length) {
		return nil, false
	}
	return data[offset : offset+length], true
}

// ReadU64Slice 读取固定个数的 u64（例如 [u64; 3] 数组）
func ReadU64Slice(data []byte, offset, count int) ([]uint64, bool) {
	if count < 0 || count > len(data)/8 || !inRange(data, offset, count*8) {
		return nil, false
	}
	out := make([]uint64, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(data[offset+i*8:])
	}
	return out, true
}

// ReadU64Vec 读取 borsh Vec<u64>：u32 长度前缀 + 元素
func ReadU64Vec(data []byte, offset int) ([]uint64, bool) {
	n, ok := ReadU32(data, offset)
	if !ok || uint64(n) > uint64(len(data)/8) {
		return nil, false
	}
	return ReadU64Slice(data, offset+4, int(n))
}

// ReadString 读取 borsh String：u32 长度前缀 + UTF-8 字节
func ReadString(data []byte, offset int) (string, bool) {
	n, ok := ReadU32(data, offset)
	if !ok || uint64(n) > uint64(len(data)) {
		return "", false
	}
	b, ok := ReadBytes(data, offset+4, int(n))
	if !ok {
		return "", false
	}
	return string(b), true
}

// Reader 顺序读取游标：任意一次越界后 Ok() 永久为 false，
// 后续读取全部返回零值，调用方只需在末尾检查一次。
type Reader struct {
	data []byte
	off  int
	ok   bool
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data, ok: true}
}

func (r *Reader) Ok() bool {
	return r.ok
}

func (r *Reader) Offset() int {
	return r.off
}

// Remaining 返回未读字节数，越界后为 0
func (r *Reader) Remaining() int {
	if !r.ok {
		return 0
	}
	return len(r.data) - r.off
}

func (r *Reader) Skip(n int) {
	if !r.ok || !inRange(r.data, r.off, n) {
		r.ok = false
		return
	}
	r.off += n
}

func (r *Reader) U8() uint8 {
	if !r.ok {
		return 0
	}
	v, ok := ReadU8(r.data, r.off)
	r.advance(ok, 1)
	return v
}

func (r *Reader) U16() uint16 {
	if !r.ok {
		return 0
	}
	v, ok := ReadU16(r.data, r.off)
	r.advance(ok, 2)
	return v
}

func (r *Reader) U32() uint32 {
	if !r.ok {
		return 0
	}
	v, ok := ReadU32(r.data, r.off)
	r.advance(ok, 4)
	return v
}

func (r *Reader) U64() uint64 {
	if !r.ok {
		return 0
	}
	v, ok := ReadU64(r.data, r.off)
	r.advance(ok, 8)
	return v
}

func (r *Reader) U128() types.Uint128 {
	if !r.ok {
		return types.Uint128{}
	}
	v, ok := ReadU128(r.data, r.off)
	r.advance(ok, 16)
	return v
}

func (r *Reader) I32() int32 {
	return int32(r.U32())
}

func (r *Reader) I64() int64 {
	return int64(r.U64())
}

func (r *Reader) Bool() bool {
	return r.U8() != 0
}

func (r *Reader) Pubkey() types.Pubkey {
	if !r.ok {
		return types.Pubkey{}
	}
	v, ok := ReadPubkey(r.data, r.off)
	r.advance(ok, 32)
	return v
}

func (r *Reader) String() string {
	if !r.ok {
		return ""
	}
	v, ok := ReadString(r.data, r.off)
	r.advance(ok, 4+len(v))
	return v
}

func (r *Reader) U64Array(dst []uint64) {
	for i := range dst {
		dst[i] = r.U64()
	}
}

// OptionU64 读取 borsh Option<u64>：tag 0 = None，1 = Some
func (r *Reader) OptionU64() (uint64, bool) {
	switch r.U8() {
	case 1:
		v := r.U64()
		return v, r.ok
	case 0:
		return 0, false
	default:
		r.ok = false
		return 0, false
	}
}

func (r *Reader) advance(ok bool, n int) {
	if !ok {
		r.ok = false
		return
	}
	r.off += n
}
