package grpc

import (
	"cmp"
	"context"
	"dex-event-parser-sol/internal/logic/progress"
	"dex-event-parser-sol/internal/pkg/logger"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/blocto/solana-go-sdk/rpc"
)

type SlotRange struct {
	From     uint64
	To       uint64
	SubmitAt time.Time
}

// listBlocksFunc 返回 [from, to] 内确认存在的 block slot
type listBlocksFunc func(ctx context.Context, from, to uint64) ([]uint64, error)

// SlotGapHandler 接收 slot 缺口检测结果：
//   - empty：链上确认无 block，可直接视为已处理；
//   - missing：链上有 block 但未收到，疑似漏扫。
type SlotGapHandler func(empty, missing []uint64)

// SlotChecker 对 gRPC 推送中跳过的 slot 延迟做 getBlocks 校验，区分空块和漏扫。
type SlotChecker struct {
	listBlocks       listBlocksFunc
	onGap            SlotGapHandler
	rangeCh          chan SlotRange
	ctx              context.Context
	cancel           context.CancelFunc
	delayBeforeCheck time.Duration
	checkInterval    time.Duration
}

func NewSlotChecker(endpoint string, onGap SlotGapHandler) *SlotChecker {
	client := rpc.NewRpcClient(endpoint)
	return newSlotChecker(func(ctx context.Context, from, to uint64) ([]uint64, error) {
		resp, err := client.GetBlocks(ctx, from, to)
		if err != nil {
			return nil, err
		}
		return resp.Result, nil
	}, onGap)
}

// NewProgressGapHandler 空块直接记为已处理（0 事件）；漏扫 slot 只告警，不写进度，便于后续回放
func NewProgressGapHandler(pm *progress.ProgressManager) SlotGapHandler {
	return func(empty, missing []uint64) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, slot := range empty {
			err := pm.MarkSlotStatus(ctx, &progress.SlotRecord{
				Slot:   slot,
				Source: progress.SourceRpc,
				Status: progress.SlotProcessed,
			})
			if err != nil {
				logger.Warnf("[SlotChecker] mark empty slot %d failed: %v", slot, err)
			}
		}
		if len(missing) > 0 {
			logger.Errorf("[SlotChecker] %d slots missing, first=%d last=%d", len(missing), missing[0], missing[len(missing)-1])
		}
	}
}

func newSlotChecker(listBlocks listBlocksFunc, onGap SlotGapHandler) *SlotChecker {
	ctx, cancel := context.WithCancel(context.Background())
	return &SlotChecker{
		listBlocks:       listBlocks,
		onGap:            onGap,
		rangeCh:          make(chan SlotRange, 300),
		ctx:              ctx,
		cancel:           cancel,
		delayBeforeCheck: 30 * time.Second,
		checkInterval:    10 * time.Second,
	}
}

func (s *SlotChecker) Start() {
	s.run()
}

func (s *SlotChecker) Stop() {
	s.cancel()
}

// Submit 提交一个 slot 范围进行空块检测，闭区间 [from, to]
func (s *SlotChecker) Submit(from, to uint64) {
	if from > to {
		logger.Warnf("[SlotChecker] invalid slot range: from (%d) > to (%d)", from, to)
		return
	}

	r := SlotRange{
		From:     from,
		To:       to,
		SubmitAt: time.Now(),
	}
	select {
	case s.rangeCh <- r:
	default:
		logger.Warnf("[SlotChecker] slot range channel full, dropped: [%d, %d]", from, to)
	}
}

func (s *SlotChecker) run() {
	const maxPendingRanges = 200

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	ranges := make([]SlotRange, 0, 32)

	for {
		select {
		case <-s.ctx.Done():
			logger.Infof("[SlotChecker] stopped")
			return

		case r := <-s.rangeCh:
			if len(ranges) >= maxPendingRanges {
				logger.Warnf("[SlotChecker] too many pending ranges (%d), drop [%d, %d]",
					len(ranges), r.From, r.To)
			} else {
				ranges = append(ranges, r)
			}

		case <-ticker.C:
			drainTicker(ticker)
			if len(ranges) == 0 {
				continue
			}

			var due []SlotRange
			ranges, due = splitDue(ranges, time.Now().Add(-s.delayBeforeCheck))
			if len(due) > 0 {
				// 串行检查，慢 RPC 只会推迟下一轮
				s.checkSlotRanges(due)
			}
		}
	}
}

// splitDue cutoff 之前提交的区间进入本轮检查，其余原地保留
func splitDue(ranges []SlotRange, cutoff time.Time) (pending, due []SlotRange) {
	pending = ranges[:0]
	for _, r := range ranges {
		if r.SubmitAt.After(cutoff) {
			pending = append(pending, r)
		} else {
			due = append(due, r)
		}
	}
	return pending, due
}

func drainTicker(t *time.Ticker) {
	for {
		select {
		case <-t.C:
			// 丢弃多余 tick
		default:
			return
		}
	}
}

// checkSlotRanges 查询链上 block 列表，并把每个 slot 归类为空块或漏扫后交给 onGap
func (s *SlotChecker) checkSlotRanges(ranges []SlotRange) (empty, missing []uint64) {
	merged := mergeRanges(ranges)
	if len(merged) == 0 {
		return nil, nil
	}

	total := 0
	for _, r := range ranges {
		total += int(r.To - r.From + 1)
	}
	confirmedEmptySlots := make(map[uint64]struct{}, total)
	failedRanges := make([]SlotRange, 0)

	for _, r := range merged {
		if s.ctx.Err() != nil {
			logger.Infof("[SlotChecker] stopped while checking slot range [%d, %d]", r.From, r.To)
			return nil, nil
		}

		blocks, err := s.getBlocksWithRetry(r.From, r.To, 3)
		if err != nil {
			logger.Warnf("[SlotChecker] getBlocks [%d, %d] failed after retries: %v", r.From, r.To, err)
			failedRanges = append(failedRanges, r)
			continue
		}
		fillEmptySlots(r.From, r.To, blocks, confirmedEmptySlots)
	}

	seen := make(map[uint64]struct{}, total)
	for _, r := range ranges {
		for slot := r.From; slot <= r.To; slot++ {
			if _, dup := seen[slot]; dup {
				continue
			}
			seen[slot] = struct{}{}

			// merge 后的 range 无交集且有序，可二分
			if len(failedRanges) > 0 && slotInFailedRanges(slot, failedRanges) {
				continue
			}
			if _, ok := confirmedEmptySlots[slot]; ok {
				empty = append(empty, slot)
			} else {
				missing = append(missing, slot)
			}
		}
	}

	if s.onGap != nil && (len(empty) > 0 || len(missing) > 0) {
		s.onGap(empty, missing)
	}
	return empty, missing
}

// slotInFailedRanges failed 有序且互不相交
func slotInFailedRanges(slot uint64, failed []SlotRange) bool {
	i := sort.Search(len(failed), func(i int) bool { return failed[i].To >= slot })
	return i < len(failed) && failed[i].From <= slot
}

func (s *SlotChecker) getBlocksWithRetry(from, to uint64, maxRetries int) (_ []uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[SlotChecker] panic during getBlocks: %v", r)
			err = fmt.Errorf("getBlocks panic: %v", r)
		}
	}()

	var (
		delay   = 300 * time.Millisecond
		attempt int
	)

	for {
		select {
		case <-s.ctx.Done():
			return nil, context.Canceled
		default:
		}

		ctx, cancel := context.WithTimeout(s.ctx, 6*time.Second)
		blocks, err := s.listBlocks(ctx, from, to)
		cancel()

		if err == nil {
			return blocks, nil
		}

		attempt++
		if attempt >= maxRetries {
			return nil, err
		}

		select {
		case <-s.ctx.Done():
			return nil, context.Canceled
		case <-time.After(delay):
		}
		delay *= 2
	}
}

// getBlocks 单次查询的 slot 跨度上限
const maxRangeSize = 10000

// mergeRanges 排序后把区间并入不超过 maxRangeSize 的查询窗口，窗口内允许有间隙。
func mergeRanges(ranges []SlotRange) []SlotRange {
	if len(ranges) == 0 {
		return nil
	}
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b SlotRange) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})

	out := make([]SlotRange, 0, len(sorted))
	for _, r := range sorted {
		from := r.From
		if n := len(out); n > 0 {
			last := &out[n-1]
			if r.To <= last.To {
				continue
			}
			if limit := last.From + maxRangeSize - 1; from <= limit {
				last.To = min(r.To, limit)
				if r.To == last.To {
					continue
				}
				from = last.To + 1
			}
		}
		for {
			to := min(r.To, from+maxRangeSize-1)
			out = append(out, SlotRange{From: from, To: to, SubmitAt: r.SubmitAt})
			if to == r.To {
				break
			}
			from = to + 1
		}
	}
	return out
}

// fillEmptySlots [from, to] 中不在 confirmed 里的 slot 是被跳过的空 slot
func fillEmptySlots(from, to uint64, confirmed []uint64, empty map[uint64]struct{}) {
	slices.Sort(confirmed)
	i := 0
	for slot := from; slot <= to; slot++ {
		for i < len(confirmed) && confirmed[i] < slot {
			i++
		}
		if i < len(confirmed) && confirmed[i] == slot {
			continue
		}
		empty[slot] = struct{}{}
	}
}
