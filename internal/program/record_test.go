package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dao-client-sol/internal/codec"
	"dao-client-sol/internal/types"
)

// 回读侧：从手工构造的账户字节中解出投票记录
func TestDecodeVoteRecord(t *testing.T) {
	voter := types.PubkeyFromBase58("3oi7bCYXnkuyZ5UnUc7JRUJMe69jnVMcpggHN3RjZLDE")

	buf := append([]byte{}, voter[:]...)
	var err error
	buf, err = codec.AppendString(buf, "against")
	require.NoError(t, err)
	buf, err = codec.AppendString(buf, "4DP78EoepLKZo7KVfexcDEkFcPJM1yyNZvUmteicsiKV")
	require.NoError(t, err)

	rec, err := DecodeVoteRecord(buf)
	require.NoError(t, err)
	assert.Equal(t, voter, rec.Voter)
	assert.Equal(t, "against", rec.Vote)
	assert.Equal(t, "4DP78EoepLKZo7KVfexcDEkFcPJM1yyNZvUmteicsiKV", rec.ProposalID)
}

func TestDecodeProposalRecordTruncated(t *testing.T) {
	_, err := DecodeProposalRecord([]byte{0x01, 0x02})
	assert.Error(t, err)
}
