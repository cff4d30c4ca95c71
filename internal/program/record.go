package program

import (
	"fmt"

	"github.com/near/borsh-go"

	"dao-client-sol/internal/types"
)

// 链上账户数据的回读侧：borsh 布局与程序存储结构一致（authority 在前，字段按序在后）。
// 前端展示 DAO / 提案 / 投票状态时从这里解码。

type DaoRecord struct {
	Authority     types.Pubkey
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
}

type ProposalRecord struct {
	Authority   types.Pubkey
	Name        string
	Description string
	DaoID       string
	PodID       string
	StartTime   int64
	EndTime     int64
}

type VoteRecord struct {
	Voter      types.Pubkey
	Vote       string
	ProposalID string
}

type FeaturedRecord struct {
	Authority types.Pubkey
	DaoID     string
}

type ModuleRecord struct {
	Authority  types.Pubkey
	DaoID      string
	ModuleType string
}

func DecodeDaoRecord(data []byte) (*DaoRecord, error) {
	var r DaoRecord
	if err := borsh.Deserialize(&r, data); err != nil {
		return nil, fmt.Errorf("decode dao record: %w", err)
	}
	return &r, nil
}

func DecodeProposalRecord(data []byte) (*ProposalRecord, error) {
	var r ProposalRecord
	if err := borsh.Deserialize(&r, data); err != nil {
		return nil, fmt.Errorf("decode proposal record: %w", err)
	}
	return &r, nil
}

func DecodeVoteRecord(data []byte) (*VoteRecord, error) {
	var r VoteRecord
	if err := borsh.Deserialize(&r, data); err != nil {
		return nil, fmt.Errorf("decode vote record: %w", err)
	}
	return &r, nil
}

func DecodeFeaturedRecord(data []byte) (*FeaturedRecord, error) {
	var r FeaturedRecord
	if err := borsh.Deserialize(&r, data); err != nil {
		return nil, fmt.Errorf("decode featured record: %w", err)
	}
	return &r, nil
}

func DecodeModuleRecord(data []byte) (*ModuleRecord, error) {
	var r ModuleRecord
	if err := borsh.Deserialize(&r, data); err != nil {
		return nil, fmt.Errorf("decode module record: %w", err)
	}
	return &r, nil
}
