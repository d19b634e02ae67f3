package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBProgressStore 在 PostgreSQL 中持久化 slot 进度，服务重启或 Redis 过期后兜底判重。
type DBProgressStore struct {
	pool *pgxpool.Pool
}

const (
	insertBatchLimit = 1000

	// 7 天 × 每秒约 2.5 slot
	retainSlots = 7 * 24 * 3600 * 5 / 2
)

func NewDBProgressStore(ctx context.Context, dsn string) (*DBProgressStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New error: %w", err)
	}
	return &DBProgressStore{pool: pool}, nil
}

func (d *DBProgressStore) Close() {
	if d.pool != nil {
		d.pool.Close()
	}
}

// CheckSlotExists 判定某 slot 是否已存在于 DB 中
func (d *DBProgressStore) CheckSlotExists(ctx context.Context, slot uint64) (bool, error) {
	var dummy int
	err := d.pool.QueryRow(ctx, `SELECT 1 FROM progress_slot WHERE slot = $1`, int64(slot)).Scan(&dummy)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check slot %d exists error: %w", slot, err)
	}
	return true, nil
}

// BatchInsertProcessedSlots 按 insertBatchLimit 分批写入；slot 冲突时只更新状态与事件数。
func (d *DBProgressStore) BatchInsertProcessedSlots(ctx context.Context, slots []*SlotRecord) error {
	for i := 0; i < len(slots); i += insertBatchLimit {
		end := min(i+insertBatchLimit, len(slots))
		if err := d.insertChunk(ctx, slots[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (d *DBProgressStore) insertChunk(ctx context.Context, slots []*SlotRecord) error {
	batch := &pgx.Batch{}
	for _, s := range slots {
		batch.Queue(`
			INSERT INTO progress_slot (slot, source, block_time, status, event_count, updated_at)
			VALUES ($1, $2, $3, $4, $5, now())
			ON CONFLICT (slot) DO UPDATE SET
				status = EXCLUDED.status,
				event_count = EXCLUDED.event_count,
				updated_at = now()
		`,
			int64(s.Slot),
			s.Source,
			s.BlockTime,
			int16(s.Status),
			s.EventCount,
		)
	}

	br := d.pool.SendBatch(ctx, batch)
	defer br.Close()

	for _, s := range slots {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert slot %d failed: %w", s.Slot, err)
		}
	}
	return nil
}

// DeleteOldSlots 删除 retainSlots 之前的历史记录，分批执行避免长事务，返回删除行数。
func (d *DBProgressStore) DeleteOldSlots(ctx context.Context) (int64, error) {
	var latest *int64
	if err := d.pool.QueryRow(ctx, `SELECT MAX(slot) FROM progress_slot`).Scan(&latest); err != nil {
		return 0, fmt.Errorf("fetch latest slot failed: %w", err)
	}
	if latest == nil || *latest <= retainSlots {
		return 0, nil
	}
	safeSlot := *latest - retainSlots

	var total int64
	for {
		tag, err := d.pool.Exec(ctx,
			`DELETE FROM progress_slot WHERE slot IN (
				SELECT slot FROM progress_slot WHERE slot < $1 ORDER BY slot LIMIT $2
			)`,
			safeSlot, insertBatchLimit,
		)
		if err != nil {
			return total, fmt.Errorf("delete old slots failed: %w", err)
		}
		n := tag.RowsAffected()
		if n == 0 {
			return total, nil
		}
		total += n
	}
}
