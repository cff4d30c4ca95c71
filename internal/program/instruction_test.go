package program

import (
	"testing"

	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tag 是封闭的版本化枚举，数值一旦发布不可变更
func TestKindTagsStable(t *testing.T) {
	assert.Equal(t, uint8(0), KindCreateDao.Tag())
	assert.Equal(t, uint8(1), KindCreateProposal.Tag())
	assert.Equal(t, uint8(2), KindVote.Tag())
	assert.Equal(t, uint8(3), KindFeatured.Tag())
	assert.Equal(t, uint8(4), KindModules.Tag())
}

// Vote("for", "ABC") 的精确字节布局：tag + 两个长度前缀字符串，共 15 字节
func TestBuildVoteExactBytes(t *testing.T) {
	ins, err := BuildVote(VoteArgs{Vote: "for", ProposalID: "ABC"})
	require.NoError(t, err)

	want := []byte{
		0x02,
		0x03, 0x00, 0x00, 0x00, 'f', 'o', 'r',
		0x03, 0x00, 0x00, 0x00, 'A', 'B', 'C',
	}
	assert.Equal(t, want, ins.Data)
	assert.Len(t, ins.Data, 15)
	assert.Equal(t, KindVote, ins.Kind)
	assert.Equal(t, "ABC", ins.Parent)
}

func TestBuildVoteRejectsOpenSet(t *testing.T) {
	ins, err := BuildVote(VoteArgs{Vote: "maybe", ProposalID: "ABC"})
	assert.ErrorIs(t, err, ErrValidation)
	// 失败时零字节输出
	assert.Nil(t, ins.Data)

	_, err = BuildVote(VoteArgs{Vote: "for", ProposalID: ""})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBuildModulesRejectsOpenSet(t *testing.T) {
	ins, err := BuildModules(ModulesArgs{DaoID: "abc", ModuleType: "XYZ", UnitPriceCents: 10000})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, ins.Data)

	for _, mt := range []string{ModulePod, ModulePol} {
		ins, err := BuildModules(ModulesArgs{DaoID: "abc", ModuleType: mt, UnitPriceCents: 10000})
		require.NoError(t, err)
		assert.Equal(t, uint8(4), ins.Data[0])
	}
}

// 负载去掉 tag 后必须能被链上程序的 borsh 结构原样解出（字段顺序即线上契约）
func TestBuildCreateProposalMatchesBorsh(t *testing.T) {
	args := CreateProposalArgs{
		Name:        "raise quorum",
		Description: "从 10% 提到 20%",
		DaoID:       "4DP78EoepLKZo7KVfexcDEkFcPJM1yyNZvUmteicsiKV",
		PodID:       "",
		StartTime:   1700000000,
		EndTime:     1700604800,
	}
	ins, err := BuildCreateProposal(args)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), ins.Data[0])
	assert.Equal(t, args.DaoID, ins.Parent)

	var decoded struct {
		Name        string
		Description string
		DaoID       string
		PodID       string
		StartTime   int64
		EndTime     int64
	}
	require.NoError(t, borsh.Deserialize(&decoded, ins.Data[1:]))
	assert.Equal(t, args.Name, decoded.Name)
	assert.Equal(t, args.Description, decoded.Description)
	assert.Equal(t, args.DaoID, decoded.DaoID)
	assert.Equal(t, args.PodID, decoded.PodID)
	assert.Equal(t, args.StartTime, decoded.StartTime)
	assert.Equal(t, args.EndTime, decoded.EndTime)
}

func TestBuildCreateDaoFieldOrder(t *testing.T) {
	args := CreateDaoArgs{
		Name:           "builders dao",
		Description:    "desc",
		Discord:        "https://discord.gg/x",
		Twitter:        "@builders",
		Telegram:       "t.me/builders",
		Instagram:      "",
		TikTok:         "",
		Website:        "https://builders.example",
		Treasury:       "treasury-addr",
		Profile:        "ipfs://profile",
		TokenAddress:   "token-addr",
		UnitPriceCents: 10000,
	}
	ins, err := BuildCreateDao(args)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), ins.Data[0])
	assert.Empty(t, ins.Parent)

	var decoded struct {
		Name          string
		Description   string
		DiscordServer string
		Twitter       string
		Telegram      string
		Instagram     string
		TikTok        string
		Website       string
		Treasury      string
		Profile       string
		TokenAddress  string
		SolPriceUSD   uint64
	}
	require.NoError(t, borsh.Deserialize(&decoded, ins.Data[1:]))
	assert.Equal(t, args.Name, decoded.Name)
	assert.Equal(t, args.Twitter, decoded.Twitter)
	assert.Equal(t, args.TokenAddress, decoded.TokenAddress)
	assert.Equal(t, args.UnitPriceCents, decoded.SolPriceUSD)
}

func TestBuildFeatured(t *testing.T) {
	ins, err := BuildFeatured(FeaturedArgs{DaoID: "abc", UnitPriceCents: 5000})
	require.NoError(t, err)
	// tag + (4+3) 字符串 + 8 字节单价
	assert.Len(t, ins.Data, 1+4+3+8)
	assert.Equal(t, uint8(3), ins.Data[0])

	_, err = BuildFeatured(FeaturedArgs{DaoID: ""})
	assert.ErrorIs(t, err, ErrValidation)
}

// 相同输入永远产生相同字节序列
func TestBuildDeterministic(t *testing.T) {
	a, err := BuildVote(VoteArgs{Vote: VoteAgainst, ProposalID: "XYZ"})
	require.NoError(t, err)
	b, err := BuildVote(VoteArgs{Vote: VoteAgainst, ProposalID: "XYZ"})
	require.NoError(t, err)
	assert.Equal(t, a.Data, b.Data)
}

func TestParseParent(t *testing.T) {
	_, err := ParseParent("not-base58-!!")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	p, err := ParseParent("4DP78EoepLKZo7KVfexcDEkFcPJM1yyNZvUmteicsiKV")
	require.NoError(t, err)
	assert.Equal(t, "4DP78EoepLKZo7KVfexcDEkFcPJM1yyNZvUmteicsiKV", p.String())
}
