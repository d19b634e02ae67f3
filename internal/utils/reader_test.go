package utils

import (
	"encoding/binary"
	"testing"

	"dex-event-parser-sol/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOutOfRange(t *testing.T) {
	// 所有宽度、所有越界 offset 都必须返回 false
	for size := 0; size <= 40; size++ {
		data := make([]byte, size)
		for off := -1; off <= size+2; off++ {
			_, ok := ReadU8(data, off)
			assert.Equal(t, off >= 0 && off+1 <= size, ok, "u8 size=%d off=%d", size, off)
			_, ok = ReadU16(data, off)
			assert.Equal(t, off >= 0 && off+2 <= size, ok, "u16 size=%d off=%d", size, off)
			_, ok = ReadU32(data, off)
			assert.Equal(t, off >= 0 && off+4 <= size, ok, "u32 size=%d off=%d", size, off)
			_, ok = ReadU64(data, off)
			assert.Equal(t, off >= 0 && off+8 <= size, ok, "u64 size=%d off=%d", size, off)
			_, ok = ReadU128(data, off)
			assert.Equal(t, off >= 0 && off+16 <= size, ok, "u128 size=%d off=%d", size, off)
			_, ok = ReadI32(data, off)
			assert.Equal(t, off >= 0 && off+4 <= size, ok, "i32 size=%d off=%d", size, off)
			_, ok = ReadI64(data, off)
			assert.Equal(t, off >= 0 && off+8 <= size, ok, "i64 size=%d off=%d", size, off)
			_, ok = ReadBool(data, off)
			assert.Equal(t, off >= 0 && off+1 <= size, ok, "bool size=%d off=%d", size, off)
			_, ok = ReadPubkey(data, off)
			assert.Equal(t, off >= 0 && off+32 <= size, ok, "pubkey size=%d off=%d", size, off)
			_, ok = ReadBytes(data, off, 3)
			assert.Equal(t, off >= 0 && off+3 <= size, ok, "bytes size=%d off=%d", size, off)
			_, ok = ReadU64Slice(data, off, 2)
			assert.Equal(t, off >= 0 && off+16 <= size, ok, "u64 slice size=%d off=%d", size, off)
		}
	}
}

func TestReadLittleEndian(t *testing.T) {
	data := make([]byte, 32)
	binary.LittleEndian.PutUint64(data[0:], 0x0102030405060708)
	binary.LittleEndian.PutUint64(data[8:], 7)
	binary.LittleEndian.PutUint32(data[16:], uint32(0xFFFFFFFE)) // -2

	v, ok := ReadU64(data, 0)
	require.True(t, ok)
	assert.Equal(t, uint64(0x0102030405060708), v)

	u, ok := ReadU128(data, 0)
	require.True(t, ok)
	assert.Equal(t, types.Uint128{Lo: 0x0102030405060708, Hi: 7}, u)

	i, ok := ReadI32(data, 16)
	require.True(t, ok)
	assert.Equal(t, int32(-2), i)

	b, ok := ReadBool(data, 8)
	require.True(t, ok)
	assert.True(t, b)
}

func TestReadStringAndVec(t *testing.T) {
	data := []byte{3, 0, 0, 0, 'a', 'b', 'c'}
	s, ok := ReadString(data, 0)
	require.True(t, ok)
	assert.Equal(t, "abc", s)

	// 长度前缀超出剩余数据
	_, ok = ReadString([]byte{0xFF, 0xFF, 0xFF, 0xFF, 'a'}, 0)
	assert.False(t, ok)

	vec := make([]byte, 4+16)
	binary.LittleEndian.PutUint32(vec, 2)
	binary.LittleEndian.PutUint64(vec[4:], 11)
	binary.LittleEndian.PutUint64(vec[12:], 22)
	got, ok := ReadU64Vec(vec, 0)
	require.True(t, ok)
	assert.Equal(t, []uint64{11, 22}, got)

	binary.LittleEndian.PutUint32(vec, 3)
	_, ok = ReadU64Vec(vec, 0)
	assert.False(t, ok)
}

func TestReaderSticky(t *testing.T) {
	data := make([]byte, 10)
	binary.LittleEndian.PutUint64(data, 99)
	r := NewReader(data)
	assert.Equal(t, uint64(99), r.U64())
	assert.True(t, r.Ok())
	assert.Equal(t, 2, r.Remaining())

	// 越界后所有读取为零值
	assert.Equal(t, uint32(0), r.U32())
	assert.False(t, r.Ok())
	assert.Equal(t, uint8(0), r.U8())
	assert.Equal(t, types.Pubkey{}, r.Pubkey())
	assert.Equal(t, 0, r.Remaining())
}

func TestReaderOptionU64(t *testing.T) {
	r := NewReader([]byte{1, 5, 0, 0, 0, 0, 0, 0, 0})
	v, some := r.OptionU64()
	assert.True(t, some)
	assert.Equal(t, uint64(5), v)
	assert.True(t, r.Ok())

	r = NewReader([]byte{0})
	_, some = r.OptionU64()
	assert.False(t, some)
	assert.True(t, r.Ok())

	r = NewReader([]byte{2})
	_, _ = r.OptionU64()
	assert.False(t, r.Ok())
}
