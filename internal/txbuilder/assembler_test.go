package txbuilder

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"testing"

	"github.com/blocto/solana-go-sdk/common"
	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dao-client-sol/internal/chain"
	"dao-client-sol/internal/program"
	"dao-client-sol/internal/types"
)

const (
	testProgramID = "HpmNRpo1CgZmrjVadgDz1xZNBsqFEryxnqc86HWs4QK7"
	testFeeAddr   = "BAGek78CDYQ8phuDqNk7sQzD7LdJeKkb7jD4y2AyR3tJ"
	testWallet    = "3oi7bCYXnkuyZ5UnUc7JRUJMe69jnVMcpggHN3RjZLDE"
	testParent    = "4DP78EoepLKZo7KVfexcDEkFcPJM1yyNZvUmteicsiKV"
	testBlockhash = "6Q47JSFqVDgid4DiGjsUAyQFiSfmRPuYiS3LZNhMkS1F"
)

type fakeLedger struct {
	blockhash string
	err       error
}

func (f *fakeLedger) LatestBlockhash(ctx context.Context) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.blockhash, nil
}

func (f *fakeLedger) Submit(ctx context.Context, tx sdktypes.Transaction) (string, error) {
	return "", nil
}

func (f *fakeLedger) Confirm(ctx context.Context, txID string, level chain.CommitLevel) (chain.TxStatus, error) {
	return chain.TxStatus{}, nil
}

// countingReader 统计被消耗的熵字节数，用于验证校验失败时不浪费密钥材料
type countingReader struct {
	data []byte
	read int
}

func (r *countingReader) Read(p []byte) (int, error) {
	n := copy(p, r.data[r.read:])
	r.read += n
	return n, nil
}

func newTestAssembler(ledger chain.Ledger, entropy *countingReader) *Assembler {
	return NewAssembler(Config{
		ProgramID:    types.PubkeyFromBase58(testProgramID),
		FeeRecipient: types.PubkeyFromBase58(testFeeAddr),
	}, ledger, NewKeyGenerator(entropy))
}

func seededEntropy() *countingReader {
	return &countingReader{data: bytes.Repeat([]byte{0x42}, 64)}
}

func TestBuildRejectsMissingWallet(t *testing.T) {
	entropy := seededEntropy()
	a := newTestAssembler(&fakeLedger{blockhash: testBlockhash}, entropy)

	ins, err := program.BuildVote(program.VoteArgs{Vote: program.VoteFor, ProposalID: testParent})
	require.NoError(t, err)

	_, err = a.Build(context.Background(), "", ins)
	assert.ErrorIs(t, err, ErrWalletNotConnected)
	// 校验失败发生在密钥生成之前
	assert.Zero(t, entropy.read)
}

func TestBuildRejectsMalformedParent(t *testing.T) {
	entropy := seededEntropy()
	a := newTestAssembler(&fakeLedger{blockhash: testBlockhash}, entropy)

	ins := program.Instruction{Kind: program.KindVote, Data: []byte{0x02}, Parent: "!!not-base58!!"}
	_, err := a.Build(context.Background(), testWallet, ins)
	assert.ErrorIs(t, err, program.ErrInvalidIdentifier)
	assert.Zero(t, entropy.read)
}

func TestBuildBlockhashFailureAfterKeygen(t *testing.T) {
	entropy := seededEntropy()
	a := newTestAssembler(&fakeLedger{err: chain.ErrBlockhashUnavailable}, entropy)

	ins, err := program.BuildVote(program.VoteArgs{Vote: program.VoteFor, ProposalID: testParent})
	require.NoError(t, err)

	_, err = a.Build(context.Background(), testWallet, ins)
	assert.ErrorIs(t, err, chain.ErrBlockhashUnavailable)
	// 身份已生成，调用方丢弃并重试即可
	assert.Equal(t, 32, entropy.read)
}

func TestBuildVoteEnvelope(t *testing.T) {
	entropy := seededEntropy()
	a := newTestAssembler(&fakeLedger{blockhash: testBlockhash}, entropy)

	ins, err := program.BuildVote(program.VoteArgs{Vote: program.VoteFor, ProposalID: testParent})
	require.NoError(t, err)

	res, err := a.Build(context.Background(), testWallet, ins)
	require.NoError(t, err)

	// 需要两个签名：钱包（fee payer）与新身份
	msg := res.Tx.Message
	assert.Equal(t, uint8(2), msg.Header.NumRequireSignatures)
	require.Len(t, res.Tx.Signatures, 2)

	// 新身份的签名在位且可验证
	msgBytes, err := msg.Serialize()
	require.NoError(t, err)
	pub := ed25519.PublicKey(res.NewAccount.PublicKey.Bytes())
	assert.True(t, ed25519.Verify(pub, msgBytes, res.Tx.Signatures[1]))

	// 钱包签名位保持为零等待外部补签
	assert.Equal(t, make([]byte, 64), []byte(res.Tx.Signatures[0]))

	// 指令账户表顺序: payer, new, parent, system, fee
	require.Len(t, msg.Instructions, 1)
	compiled := msg.Instructions[0]
	var keys []common.PublicKey
	for _, idx := range compiled.Accounts {
		keys = append(keys, msg.Accounts[idx])
	}
	want := []common.PublicKey{
		common.PublicKeyFromString(testWallet),
		res.NewAccount.PublicKey,
		common.PublicKeyFromString(testParent),
		common.SystemProgramID,
		common.PublicKeyFromString(testFeeAddr),
	}
	assert.Equal(t, want, keys)
	assert.Equal(t, common.PublicKeyFromString(testProgramID), msg.Accounts[compiled.ProgramIDIndex])
	assert.Equal(t, ins.Data, compiled.Data)
}

// CreateDao 没有父实体引用，账户表为 4 项
func TestBuildCreateDaoAccountTable(t *testing.T) {
	a := newTestAssembler(&fakeLedger{blockhash: testBlockhash}, seededEntropy())

	ins, err := program.BuildCreateDao(program.CreateDaoArgs{Name: "dao", UnitPriceCents: 10000})
	require.NoError(t, err)

	res, err := a.Build(context.Background(), testWallet, ins)
	require.NoError(t, err)

	compiled := res.Tx.Message.Instructions[0]
	assert.Len(t, compiled.Accounts, 4)
}

// 相同种子与 blockhash 下组装结果字节一致
func TestBuildDeterministicWithSeededKeygen(t *testing.T) {
	ins, err := program.BuildVote(program.VoteArgs{Vote: program.VoteAgainst, ProposalID: testParent})
	require.NoError(t, err)

	build := func() []byte {
		a := newTestAssembler(&fakeLedger{blockhash: testBlockhash}, seededEntropy())
		res, err := a.Build(context.Background(), testWallet, ins)
		require.NoError(t, err)
		return res.Envelope
	}
	assert.Equal(t, build(), build())
}
