package txadapter

import (
	"dex-event-parser-sol/internal/logic/core"
	"dex-event-parser-sol/internal/types"
	"fmt"

	"github.com/blocto/solana-go-sdk/client"
	soltypes "github.com/blocto/solana-go-sdk/types"
)

func rpcAccountKeys(tx *client.Transaction) ([]types.Pubkey, error) {
	loaded := tx.Meta.LoadedAddresses
	keys := make([]types.Pubkey, 0, len(tx.Transaction.Message.Accounts)+len(loaded.Writable)+len(loaded.Readonly))
	for _, acc := range tx.Transaction.Message.Accounts {
		keys = append(keys, types.Pubkey(acc))
	}
	for _, group := range [2][]string{loaded.Writable, loaded.Readonly} {
		for _, s := range group {
			pk, err := types.TryPubkeyFromBase58(s)
			if err != nil {
				return nil, err
			}
			keys = append(keys, pk)
		}
	}
	return keys, nil
}

func adaptCompiled(ixIndex, innerIndex int, inst soltypes.CompiledInstruction, accountKeys []types.Pubkey) (*core.AdaptedInstruction, error) {
	if inst.ProgramIDIndex < 0 || inst.ProgramIDIndex >= len(accountKeys) {
		return nil, fmt.Errorf("instruction %d.%d: program index %d out of range", ixIndex, innerIndex, inst.ProgramIDIndex)
	}
	accounts := make([]types.Pubkey, 0, len(inst.Accounts))
	for _, idx := range inst.Accounts {
		if idx < 0 || idx >= len(accountKeys) {
			return nil, fmt.Errorf("instruction %d.%d: account index %d out of range", ixIndex, innerIndex, idx)
		}
		accounts = append(accounts, accountKeys[idx])
	}
	return &core.AdaptedInstruction{
		IxIndex:    uint16(ixIndex),
		InnerIndex: uint16(innerIndex),
		ProgramID:  accountKeys[inst.ProgramIDIndex],
		Accounts:   accounts,
		Data:       inst.Data,
	}, nil
}

// AdaptRpcTx 将 JSON-RPC getTransaction 的结果转换为 AdaptedTx，用于按签名回放。
// RPC 不提供区块内序号，txIndex 由调用方指定。
func AdaptRpcTx(tx *client.Transaction, txIndex uint32, recvUs int64) (*core.AdaptedTx, error) {
	if tx == nil || tx.Meta == nil {
		return nil, fmt.Errorf("missing transaction or meta")
	}
	if tx.Meta.Err != nil {
		return nil, fmt.Errorf("transaction execution failed: %v", tx.Meta.Err)
	}
	if len(tx.Transaction.Signatures) == 0 {
		return nil, fmt.Errorf("missing transaction signature")
	}
	sig, ok := types.SignatureFromBytes(tx.Transaction.Signatures[0])
	if !ok {
		return nil, fmt.Errorf("invalid signature length: %d", len(tx.Transaction.Signatures[0]))
	}

	accountKeys, err := rpcAccountKeys(tx)
	if err != nil {
		return nil, fmt.Errorf("rpcAccountKeys error: %w", err)
	}

	// inner 指令块按主指令索引归组
	inners := make(map[uint64][]soltypes.CompiledInstruction, len(tx.Meta.InnerInstructions))
	for _, block := range tx.Meta.InnerInstructions {
		inners[block.Index] = append(inners[block.Index], block.Instructions...)
	}

	rawInstructions := tx.Transaction.Message.Instructions
	instructions := make([]*core.AdaptedInstruction, 0, max(len(rawInstructions)*2, 32))
	for i, inst := range rawInstructions {
		ix, err := adaptCompiled(i, 0, inst, accountKeys)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, ix)
		for j, inner := range inners[uint64(i)] {
			ix, err := adaptCompiled(i, j+1, inner, accountKeys)
			if err != nil {
				return nil, err
			}
			instructions = append(instructions, ix)
		}
	}

	return &core.AdaptedTx{
		TxCtx: &core.TxContext{
			BlockTime: tx.BlockTime,
			Slot:      tx.Slot,
			RecvUs:    recvUs,
		},
		TxIndex:      txIndex,
		Signature:    sig,
		Instructions: instructions,
		LogMessages:  tx.Meta.LogMessages,
	}, nil
}
