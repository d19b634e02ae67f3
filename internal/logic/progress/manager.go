package progress

import (
	"context"
	"time"

	"dex-event-parser-sol/internal/pkg/logger"
)

// StatusStore 高频 slot 状态（Redis）
type StatusStore interface {
	GetSlotStatus(ctx context.Context, slot uint64) (SlotStatus, error)
	MarkSlotStatus(ctx context.Context, slot uint64, status SlotStatus) error
}

// RecordStore 持久化 slot 记录（PostgreSQL），可选
type RecordStore interface {
	CheckSlotExists(ctx context.Context, slot uint64) (bool, error)
	BatchInsertProcessedSlots(ctx context.Context, slots []*SlotRecord) error
	DeleteOldSlots(ctx context.Context) (int64, error)
}

// ProgressManager 统一封装 Redis + DB + 缓冲，控制 slot 判重与写入。
type ProgressManager struct {
	status          StatusStore
	records         RecordStore
	buffer          *slotBuffer
	recentThreshold time.Duration
}

// NewProgressManager records 为 nil 时只使用 Redis
func NewProgressManager(status StatusStore, records RecordStore, recentThresholdSec int) *ProgressManager {
	return &ProgressManager{
		status:          status,
		records:         records,
		buffer:          newSlotBuffer(),
		recentThreshold: time.Duration(recentThresholdSec) * time.Second,
	}
}

// ShouldProcessSlot 判断是否需要处理该 slot：
//   - 近期 block 直接处理；
//   - 旧 block（重连、回放）先查 Redis，再回落到 DB。
func (pm *ProgressManager) ShouldProcessSlot(ctx context.Context, slot uint64, blockTime int64) (bool, error) {
	if time.Since(time.Unix(blockTime, 0)) <= pm.recentThreshold {
		return true, nil
	}

	status, err := pm.status.GetSlotStatus(ctx, slot)
	if err != nil {
		return false, err
	}
	if status == SlotProcessed || status == SlotInvalid {
		return false, nil
	}
	if pm.records == nil {
		return true, nil
	}

	exists, err := pm.records.CheckSlotExists(ctx, slot)
	if err != nil {
		return false, err
	}
	if exists {
		// 回填 Redis，下次直接命中
		_ = pm.status.MarkSlotStatus(ctx, slot, SlotProcessed)
		return false, nil
	}
	return true, nil
}

// MarkSlotStatus 更新 Redis 状态，并加入缓冲区等待批量落库。
// SlotUnknown / SlotPending 只写 Redis。
func (pm *ProgressManager) MarkSlotStatus(ctx context.Context, record *SlotRecord) error {
	if err := pm.status.MarkSlotStatus(ctx, record.Slot, record.Status); err != nil {
		return err
	}
	if record.Status != SlotProcessed && record.Status != SlotInvalid {
		return nil
	}
	if pm.records != nil {
		pm.buffer.Add(record)
	}
	return nil
}

// Flush 将缓冲区写入 DB，失败的记录直接丢弃（Redis 仍保留状态）
func (pm *ProgressManager) Flush(ctx context.Context) int {
	if pm.records == nil {
		return 0
	}
	list := pm.buffer.Flush()
	if len(list) == 0 {
		return 0
	}
	if err := pm.records.BatchInsertProcessedSlots(ctx, list); err != nil {
		logger.Errorf("[ProgressManager] flush %d slots failed: %v", len(list), err)
		return 0
	}
	return len(list)
}

// StartFlushLoop 定时 flush，阻塞直到 ctx 结束，退出前做最后一次 flush
func (pm *ProgressManager) StartFlushLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// ctx 已取消，改用独立超时完成收尾写入
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pm.Flush(flushCtx)
			cancel()
			return
		case <-ticker.C:
			pm.Flush(ctx)
		}
	}
}

// StartGCLoop 后台定期清理历史 slot 记录
func (pm *ProgressManager) StartGCLoop(ctx context.Context, interval time.Duration) {
	if pm.records == nil {
		return
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := pm.records.DeleteOldSlots(ctx)
				if err != nil {
					logger.Warnf("[ProgressManager] gc failed: %v", err)
					continue
				}
				if n > 0 {
					logger.Infof("[ProgressManager] gc deleted %d old progress rows", n)
				}
			}
		}
	}()
}
