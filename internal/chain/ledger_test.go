package chain

import (
	"testing"

	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/stretchr/testify/assert"
)

func TestCommitLevelRank(t *testing.T) {
	assert.Less(t, CommitProcessed.rank(), CommitConfirmed.rank())
	assert.Less(t, CommitConfirmed.rank(), CommitFinalized.rank())

	// 未知级别不参与比较
	assert.Zero(t, CommitLevel("bogus").rank())
}

func TestCommitFromRPC(t *testing.T) {
	assert.Equal(t, CommitProcessed, commitFromRPC(rpc.CommitmentProcessed))
	assert.Equal(t, CommitConfirmed, commitFromRPC(rpc.CommitmentConfirmed))
	assert.Equal(t, CommitFinalized, commitFromRPC(rpc.CommitmentFinalized))
}
