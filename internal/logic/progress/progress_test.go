package progress

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStatus struct {
	mu     sync.Mutex
	status map[uint64]SlotStatus
	err    error
}

func newMemStatus() *memStatus {
	return &memStatus{status: make(map[uint64]SlotStatus)}
}

func (m *memStatus) GetSlotStatus(_ context.Context, slot uint64) (SlotStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status[slot], m.err
}

func (m *memStatus) MarkSlotStatus(_ context.Context, slot uint64, status SlotStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.status[slot] = status
	return nil
}

type memRecords struct {
	existing map[uint64]bool
	inserted []*SlotRecord
	failNext bool
}

func (m *memRecords) CheckSlotExists(_ context.Context, slot uint64) (bool, error) {
	return m.existing[slot], nil
}

func (m *memRecords) BatchInsertProcessedSlots(_ context.Context, slots []*SlotRecord) error {
	if m.failNext {
		m.failNext = false
		return errors.New("db down")
	}
	m.inserted = append(m.inserted, slots...)
	return nil
}

func (m *memRecords) DeleteOldSlots(context.Context) (int64, error) {
	return 0, nil
}

func TestSlotBuffer(t *testing.T) {
	b := newSlotBuffer()
	b.Add(&SlotRecord{Slot: 1})
	b.Add(&SlotRecord{Slot: 2})
	assert.Equal(t, 2, b.Len())

	flushed := b.Flush()
	require.Len(t, flushed, 2)
	assert.Equal(t, uint64(1), flushed[0].Slot)
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Flush())
}

func TestSlotKey(t *testing.T) {
	assert.Equal(t, "progress:event:slot:123", slotKey(123))
	assert.Equal(t, SlotProcessed, parseSlotStatus(1))
	assert.Equal(t, SlotPending, parseSlotStatus(3))
	assert.Equal(t, SlotUnknown, parseSlotStatus(42))
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "grpc", SourceName(SourceGrpc))
	assert.Equal(t, "rpc", SourceName(SourceRpc))
	assert.Equal(t, "unknown", SourceName(7))
}

func TestShouldProcessSlot(t *testing.T) {
	ctx := context.Background()
	old := time.Now().Add(-time.Hour).Unix()

	status := newMemStatus()
	records := &memRecords{existing: map[uint64]bool{30: true}}
	pm := NewProgressManager(status, records, 60)

	// 近期 block 不查存储
	status.status[1] = SlotProcessed
	ok, err := pm.ShouldProcessSlot(ctx, 1, time.Now().Unix())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = pm.ShouldProcessSlot(ctx, 1, old)
	require.NoError(t, err)
	assert.False(t, ok)

	status.status[2] = SlotInvalid
	ok, _ = pm.ShouldProcessSlot(ctx, 2, old)
	assert.False(t, ok)

	// DB 命中后回填 Redis
	ok, err = pm.ShouldProcessSlot(ctx, 30, old)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, SlotProcessed, status.status[30])

	ok, err = pm.ShouldProcessSlot(ctx, 31, old)
	require.NoError(t, err)
	assert.True(t, ok)

	status.err = errors.New("redis down")
	_, err = pm.ShouldProcessSlot(ctx, 32, old)
	assert.Error(t, err)
}

func TestShouldProcessSlotWithoutDB(t *testing.T) {
	pm := NewProgressManager(newMemStatus(), nil, 0)
	ok, err := pm.ShouldProcessSlot(context.Background(), 5, time.Now().Add(-time.Hour).Unix())
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, pm.MarkSlotStatus(context.Background(), &SlotRecord{Slot: 5, Status: SlotProcessed}))
	assert.Equal(t, 0, pm.Flush(context.Background()))
}

func TestMarkSlotStatusAndFlush(t *testing.T) {
	ctx := context.Background()
	status := newMemStatus()
	records := &memRecords{}
	pm := NewProgressManager(status, records, 60)

	require.NoError(t, pm.MarkSlotStatus(ctx, &SlotRecord{Slot: 10, Status: SlotProcessed, EventCount: 3}))
	require.NoError(t, pm.MarkSlotStatus(ctx, &SlotRecord{Slot: 11, Status: SlotPending}))
	require.NoError(t, pm.MarkSlotStatus(ctx, &SlotRecord{Slot: 12, Status: SlotInvalid}))
	assert.Equal(t, SlotPending, status.status[11])

	assert.Equal(t, 2, pm.Flush(ctx))
	require.Len(t, records.inserted, 2)
	assert.Equal(t, uint64(10), records.inserted[0].Slot)
	assert.Equal(t, uint64(12), records.inserted[1].Slot)

	// 写库失败时丢弃本批
	require.NoError(t, pm.MarkSlotStatus(ctx, &SlotRecord{Slot: 13, Status: SlotProcessed}))
	records.failNext = true
	assert.Equal(t, 0, pm.Flush(ctx))
	assert.Equal(t, 0, pm.buffer.Len())
}

func TestStartFlushLoopFlushesOnExit(t *testing.T) {
	records := &memRecords{}
	pm := NewProgressManager(newMemStatus(), records, 60)
	require.NoError(t, pm.MarkSlotStatus(context.Background(), &SlotRecord{Slot: 1, Status: SlotProcessed}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		pm.StartFlushLoop(ctx, time.Hour)
		close(done)
	}()
	cancel()
	<-done
	assert.Len(t, records.inserted, 1)
}
