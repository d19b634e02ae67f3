package txadapter

import (
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/types"
	"fmt"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
)

// ValidateGrpcTx 过滤无法解析的交易：缺字段、投票交易、执行失败的交易。
func ValidateGrpcTx(tx *pb.SubscribeUpdateTransactionInfo) error {
	if tx == nil {
		return fmt.Errorf("nil transaction info")
	}
	if tx.Transaction == nil {
		return fmt.Errorf("missing Transaction field")
	}
	if tx.Transaction.Message == nil {
		return fmt.Errorf("missing Message field in transaction")
	}
	if len(tx.Transaction.Signatures) == 0 {
		return fmt.Errorf("missing transaction signature")
	}
	if len(tx.Transaction.Signatures[0]) != 64 {
		return fmt.Errorf("invalid transaction signature length: %d", len(tx.Transaction.Signatures[0]))
	}
	if tx.IsVote {
		return fmt.Errorf("vote transaction skipped")
	}
	if tx.Meta == nil {
		return fmt.Errorf("missing transaction meta data")
	}
	if tx.Meta.Err != nil {
		return fmt.Errorf("transaction execution failed: %v", tx.Meta.Err)
	}
	return nil
}

// buildFullAccountKeys 拼接 message.accountKeys 与 Address Lookup Table 中的 writable / readonly 地址，
// 顺序与链上 accountIndex 一致。
func buildFullAccountKeys(
	accountKeys, loadedWritable, loadedReadonly [][]byte,
) ([]types.Pubkey, error) {
	total := len(accountKeys) + len(loadedWritable) + len(loadedReadonly)
	pubkeys := make([]types.Pubkey, total)

	i := 0
	for _, group := range [3][][]byte{accountKeys, loadedWritable, loadedReadonly} {
		for _, b := range group {
			if len(b) != 32 {
				return nil, fmt.Errorf("invalid pubkey length %d at account index %d", len(b), i)
			}
			copy(pubkeys[i][:], b)
			i++
		}
	}
	return pubkeys, nil
}

// adaptInstruction 按账户表解析 program 与账户下标，任一下标越界返回 error
func adaptInstruction(ixIndex, innerIndex int, programIdx uint32, accountIdx, data []byte, keys []types.Pubkey) (*core.AdaptedInstruction, error) {
	if int(programIdx) >= len(keys) {
		return nil, fmt.Errorf("instruction %d.%d: program index %d out of range", ixIndex, innerIndex, programIdx)
	}
	accounts := make([]types.Pubkey, len(accountIdx))
	for k, idx := range accountIdx {
		if int(idx) >= len(keys) {
			return nil, fmt.Errorf("instruction %d.%d: account index %d out of range", ixIndex, innerIndex, idx)
		}
		accounts[k] = keys[idx]
	}
	return &core.AdaptedInstruction{
		IxIndex:    uint16(ixIndex),
		InnerIndex: uint16(innerIndex),
		ProgramID:  keys[programIdx],
		Accounts:   accounts,
		Data:       data,
	}, nil
}

// buildAdaptedInstructions 按执行顺序展平：每条主指令（InnerIndex=0）后紧跟它的 inner 指令（从 1 开始编号）
func buildAdaptedInstructions(tx *pb.SubscribeUpdateTransactionInfo, keys []types.Pubkey) ([]*core.AdaptedInstruction, error) {
	outer := tx.Transaction.Message.Instructions
	inners := make(map[uint32][]*pb.InnerInstruction, len(tx.Meta.InnerInstructions))
	total := len(outer)
	for _, group := range tx.Meta.InnerInstructions {
		inners[group.Index] = group.Instructions
		total += len(group.Instructions)
	}

	out := make([]*core.AdaptedInstruction, 0, total)
	for i, ix := range outer {
		adapted, err := adaptInstruction(i, 0, ix.ProgramIdIndex, ix.Accounts, ix.Data, keys)
		if err != nil {
			return nil, err
		}
		out = append(out, adapted)

		for j, inner := range inners[uint32(i)] {
			adapted, err := adaptInstruction(i, j+1, inner.ProgramIdIndex, inner.Accounts, inner.Data, keys)
			if err != nil {
				return nil, err
			}
			out = append(out, adapted)
		}
	}
	return out, nil
}

// AdaptGrpcTx 将 gRPC 推送的交易转换为 AdaptedTx（账户表、展平指令、日志）。
// 调用前应先通过 ValidateGrpcTx 校验；内部 panic 会被 recover 成 error。
func AdaptGrpcTx(txCtx *core.TxContext, tx *pb.SubscribeUpdateTransactionInfo) (_ *core.AdaptedTx, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("AdaptGrpcTx panic: %v", r)
		}
	}()

	accountKeys, err := buildFullAccountKeys(
		tx.Transaction.Message.AccountKeys,
		tx.Meta.LoadedWritableAddresses,
		tx.Meta.LoadedReadonlyAddresses,
	)
	if err != nil {
		return nil, fmt.Errorf("buildFullAccountKeys error: %w", err)
	}
	if len(tx.Transaction.Signatures) == 0 || len(accountKeys) == 0 {
		return nil, fmt.Errorf("invalid transaction: missing signature or accountKeys")
	}
	sig, ok := types.SignatureFromBytes(tx.Transaction.Signatures[0])
	if !ok {
		return nil, fmt.Errorf("invalid signature length: %d", len(tx.Transaction.Signatures[0]))
	}

	instructions, err := buildAdaptedInstructions(tx, accountKeys)
	if err != nil {
		return nil, fmt.Errorf("buildAdaptedInstructions error: %w", err)
	}

	return &core.AdaptedTx{
		TxCtx:        txCtx,
		TxIndex:      uint32(tx.Index),
		Signature:    sig,
		Instructions: instructions,
		LogMessages:  tx.Meta.LogMessages,
	}, nil
}
