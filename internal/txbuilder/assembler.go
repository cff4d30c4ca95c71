// Package txbuilder 将编码完成的指令负载组装为部分签名的交易信封。
//
// 每次组装都会为新记录生成一次性身份密钥对并用其私钥签名；
// 钱包（fee payer）的签名位留空，由外部签名方补齐后广播。
// 账户列表的顺序与读写/签名标志是链上程序的硬性契约，见各 kind 的账户表。
package txbuilder

import (
	"context"
	"errors"
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	sdktypes "github.com/blocto/solana-go-sdk/types"

	"dao-client-sol/internal/chain"
	"dao-client-sol/internal/program"
	"dao-client-sol/internal/types"
)

// ErrWalletNotConnected 表示调用方未提供钱包身份，未发起任何 I/O 即返回
var ErrWalletNotConnected = errors.New("wallet not connected")

// Config 部署相关的不可变常量，注入而非全局状态，便于对测试网/备用部署组装
type Config struct {
	ProgramID    types.Pubkey
	FeeRecipient types.Pubkey
}

type Assembler struct {
	cfg    Config
	ledger chain.Ledger
	keygen KeyGenerator
}

func NewAssembler(cfg Config, ledger chain.Ledger, keygen KeyGenerator) *Assembler {
	if keygen == nil {
		keygen = NewKeyGenerator(nil)
	}
	return &Assembler{cfg: cfg, ledger: ledger, keygen: keygen}
}

// BuildResult 组装产物：部分签名的交易及其序列化信封，外加新生成的身份。
// 身份的私钥一次性使用，调用方决定是否留存；公钥即新记录的链上标识。
type BuildResult struct {
	Kind       program.Kind
	Tx         sdktypes.Transaction
	Envelope   []byte
	NewAccount sdktypes.Account
}

// Build 校验 → 生成身份 → 组装账户表 → 取 blockhash → 部分签名。
// 校验失败发生在密钥生成之前；blockhash 失败发生在其之后，调用方丢弃身份重试即可。
func (a *Assembler) Build(ctx context.Context, wallet string, ins program.Instruction) (*BuildResult, error) {
	if wallet == "" {
		return nil, ErrWalletNotConnected
	}
	walletKey, err := types.TryPubkeyFromBase58(wallet)
	if err != nil {
		return nil, fmt.Errorf("%w: wallet %q", program.ErrInvalidIdentifier, wallet)
	}

	var parentKey types.Pubkey
	hasParent := ins.Kind != program.KindCreateDao
	if hasParent {
		if parentKey, err = program.ParseParent(ins.Parent); err != nil {
			return nil, err
		}
	}

	// 校验全部通过后才消耗密钥材料
	newAcct, err := a.keygen.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate record identity: %w", err)
	}

	metas := a.accountMetas(walletKey.ToSDK(), newAcct.PublicKey, parentKey.ToSDK(), hasParent)

	blockhash, err := a.ledger.LatestBlockhash(ctx)
	if err != nil {
		return nil, err
	}

	msg := sdktypes.NewMessage(sdktypes.NewMessageParam{
		FeePayer:        walletKey.ToSDK(),
		RecentBlockhash: blockhash,
		Instructions: []sdktypes.Instruction{{
			ProgramID: a.cfg.ProgramID.ToSDK(),
			Accounts:  metas,
			Data:      ins.Data,
		}},
	})

	// 只用新身份签名，钱包签名位保持为零等待外部补签
	tx, err := sdktypes.NewTransaction(sdktypes.NewTransactionParam{
		Message: msg,
		Signers: []sdktypes.Account{newAcct},
	})
	if err != nil {
		return nil, fmt.Errorf("partial sign: %w", err)
	}

	envelope, err := tx.Serialize()
	if err != nil {
		return nil, fmt.Errorf("serialize transaction: %w", err)
	}

	return &BuildResult{
		Kind:       ins.Kind,
		Tx:         tx,
		Envelope:   envelope,
		NewAccount: newAcct,
	}, nil
}

// accountMetas 按指令种类返回固定账户表：
//
//	CreateDao:  [payer(s,w), new(s,w), system, fee(w)]
//	其余四类:   [payer(s,w), new(s,w), parent, system, fee(w)]
func (a *Assembler) accountMetas(payer, newKey, parent common.PublicKey, hasParent bool) []sdktypes.AccountMeta {
	metas := []sdktypes.AccountMeta{
		{PubKey: payer, IsSigner: true, IsWritable: true},
		{PubKey: newKey, IsSigner: true, IsWritable: true},
	}
	if hasParent {
		metas = append(metas, sdktypes.AccountMeta{PubKey: parent})
	}
	metas = append(metas,
		sdktypes.AccountMeta{PubKey: common.SystemProgramID},
		sdktypes.AccountMeta{PubKey: a.cfg.FeeRecipient.ToSDK(), IsWritable: true},
	)
	return metas
}
