// Package chain 封装与 Solana RPC 节点的交互：取最新 blockhash、提交交易、确认状态。
// 组装器只依赖这里的窄接口，测试可注入固定实现。
package chain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"
)

// ErrBlockhashUnavailable 表示无法从 RPC 节点取得最新 blockhash（交易防重放凭据）
var ErrBlockhashUnavailable = errors.New("latest blockhash unavailable")

// CommitLevel 确认级别
type CommitLevel string

const (
	CommitProcessed CommitLevel = "processed"
	CommitConfirmed CommitLevel = "confirmed"
	CommitFinalized CommitLevel = "finalized"
)

// rank 用于比较确认级别的先后
func (l CommitLevel) rank() int {
	switch l {
	case CommitProcessed:
		return 1
	case CommitConfirmed:
		return 2
	case CommitFinalized:
		return 3
	default:
		return 0
	}
}

// TxStatus 一次确认查询的结果
type TxStatus struct {
	TxID  string
	Level CommitLevel
	// Failed 表示交易已落链但执行失败
	Failed bool
}

// Ledger 是账本连接的窄接口
type Ledger interface {
	// LatestBlockhash 返回最新 blockhash，失败时包装 ErrBlockhashUnavailable
	LatestBlockhash(ctx context.Context) (string, error)
	// Submit 广播已签名交易，返回交易签名
	Submit(ctx context.Context, tx types.Transaction) (string, error)
	// Confirm 轮询直到交易达到 level 级别确认或 ctx 超时
	Confirm(ctx context.Context, txID string, level CommitLevel) (TxStatus, error)
}

type RPCLedger struct {
	client       *client.Client
	pollInterval time.Duration
}

func NewRPCLedger(endpoint string) *RPCLedger {
	return &RPCLedger{
		client:       client.NewClient(endpoint),
		pollInterval: 2 * time.Second,
	}
}

func (l *RPCLedger) LatestBlockhash(ctx context.Context) (string, error) {
	resp, err := l.client.GetLatestBlockhash(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBlockhashUnavailable, err)
	}
	if resp.Blockhash == "" {
		return "", fmt.Errorf("%w: empty blockhash in response", ErrBlockhashUnavailable)
	}
	return resp.Blockhash, nil
}

func (l *RPCLedger) Submit(ctx context.Context, tx types.Transaction) (string, error) {
	sig, err := l.client.SendTransaction(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}
	return sig, nil
}

func (l *RPCLedger) Confirm(ctx context.Context, txID string, level CommitLevel) (TxStatus, error) {
	if level.rank() == 0 {
		return TxStatus{}, fmt.Errorf("unknown commit level %q", level)
	}

	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		status, err := l.client.GetSignatureStatus(ctx, txID)
		if err != nil {
			return TxStatus{}, fmt.Errorf("get signature status: %w", err)
		}
		if status != nil && status.ConfirmationStatus != nil {
			reached := commitFromRPC(*status.ConfirmationStatus)
			if reached.rank() >= level.rank() {
				return TxStatus{
					TxID:   txID,
					Level:  reached,
					Failed: status.Err != nil,
				}, nil
			}
		}

		select {
		case <-ctx.Done():
			return TxStatus{}, fmt.Errorf("confirm %s at %s: %w", txID, level, ctx.Err())
		case <-ticker.C:
		}
	}
}

func commitFromRPC(c rpc.Commitment) CommitLevel {
	switch c {
	case rpc.CommitmentProcessed:
		return CommitProcessed
	case rpc.CommitmentConfirmed:
		return CommitConfirmed
	case rpc.CommitmentFinalized:
		return CommitFinalized
	default:
		return ""
	}
}
