package progress

import (
	"sync"
)

type slotBuffer struct {
	mu      sync.Mutex
	records []*SlotRecord
}

func newSlotBuffer() *slotBuffer {
	return &slotBuffer{
		records: make([]*SlotRecord, 0, 64),
	}
}

func (b *slotBuffer) Add(record *SlotRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = append(b.records, record)
}

// Flush 取出全部缓存记录并清空
func (b *slotBuffer) Flush() []*SlotRecord {
	b.mu.Lock()
	defer b.mu.Unlock()

	flushed := b.records
	b.records = make([]*SlotRecord, 0, max(len(flushed), 64))
	return flushed
}

func (b *slotBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.records)
}
