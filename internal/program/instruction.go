// Package program 定义 DAO 链上程序的指令构建器：输入校验 + 字节精确编码。
//
// 负载布局 = 1 字节指令 tag + 按声明顺序编码的字段，与链上 borsh 枚举反序列化对齐。
// tag 是封闭的版本化枚举：新增指令只能追加新值，绝不复用或重排已有值。
//
// 协议版本说明：本仓库对齐的部署中 DAO 记录包含 token_address 字段，
// Featured 指令不携带 days 时长字段；另一个观测到的变体与此不兼容，不做合并。
package program

import (
	"errors"
	"fmt"

	"dao-client-sol/internal/codec"
	"dao-client-sol/internal/types"
)

// ErrValidation 表示字段校验失败（封闭集合外的取值、缺失的父实体引用等），
// 在任何编码发生之前返回，绝不产生部分负载。
var ErrValidation = errors.New("instruction validation failed")

// Kind 标识指令种类，数值即负载首字节的 tag
type Kind uint8

const (
	KindCreateDao      Kind = 0
	KindCreateProposal Kind = 1
	KindVote           Kind = 2
	KindFeatured       Kind = 3
	KindModules        Kind = 4
)

func (k Kind) Tag() uint8 { return uint8(k) }

func (k Kind) String() string {
	switch k {
	case KindCreateDao:
		return "create_dao"
	case KindCreateProposal:
		return "create_proposal"
	case KindVote:
		return "vote"
	case KindFeatured:
		return "featured"
	case KindModules:
		return "modules"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Paid 表示该指令是否携带单价并触发协议费转账
func (k Kind) Paid() bool {
	return k == KindCreateDao || k == KindFeatured || k == KindModules
}

// 投票取值的封闭集合，编码前校验，链上程序做同样检查
const (
	VoteFor     = "for"
	VoteAgainst = "against"
)

// 模块类型的封闭集合
const (
	ModulePod = "POD"
	ModulePol = "POL"
)

// Instruction 是构建器的产物：种类、编码完成的负载、以及父实体引用（无父实体时为空）。
// 组装器用 Kind 选择账户表，用 Parent 填充父实体账户。
type Instruction struct {
	Kind   Kind
	Data   []byte
	Parent string
}

// CreateDaoArgs 字段顺序即线上编码顺序
type CreateDaoArgs struct {
	Name           string
	Description    string
	Discord        string
	Twitter        string
	Telegram       string
	Instagram      string
	TikTok         string
	Website        string
	Treasury       string
	Profile        string
	TokenAddress   string
	UnitPriceCents uint64
}

// BuildCreateDao 编码 CreateDao 指令（tag 0）
func BuildCreateDao(a CreateDaoArgs) (Instruction, error) {
	if a.Name == "" {
		return Instruction{}, fmt.Errorf("dao name is empty: %w", ErrValidation)
	}

	buf := codec.AppendU8(nil, KindCreateDao.Tag())
	var err error
	for _, s := range []string{
		a.Name, a.Description, a.Discord, a.Twitter, a.Telegram,
		a.Instagram, a.TikTok, a.Website, a.Treasury, a.Profile, a.TokenAddress,
	} {
		if buf, err = codec.AppendString(buf, s); err != nil {
			return Instruction{}, err
		}
	}
	buf = codec.AppendU64(buf, a.UnitPriceCents)

	return Instruction{Kind: KindCreateDao, Data: buf}, nil
}

// CreateProposalArgs 时间为 Unix 秒级时间戳；PodID 允许为空
type CreateProposalArgs struct {
	Name        string
	Description string
	DaoID       string
	PodID       string
	StartTime   int64
	EndTime     int64
}

// BuildCreateProposal 编码 CreateProposal 指令（tag 1）。
// 时间先后关系由链上程序裁决，这里只要求 DAO 引用非空。
func BuildCreateProposal(a CreateProposalArgs) (Instruction, error) {
	if a.Name == "" {
		return Instruction{}, fmt.Errorf("proposal name is empty: %w", ErrValidation)
	}
	if a.DaoID == "" {
		return Instruction{}, fmt.Errorf("proposal dao_id is empty: %w", ErrValidation)
	}

	buf := codec.AppendU8(nil, KindCreateProposal.Tag())
	var err error
	for _, s := range []string{a.Name, a.Description, a.DaoID, a.PodID} {
		if buf, err = codec.AppendString(buf, s); err != nil {
			return Instruction{}, err
		}
	}
	buf = codec.AppendI64(buf, a.StartTime)
	buf = codec.AppendI64(buf, a.EndTime)

	return Instruction{Kind: KindCreateProposal, Data: buf, Parent: a.DaoID}, nil
}

// VoteArgs Vote 取值必须属于 {for, against}
type VoteArgs struct {
	Vote       string
	ProposalID string
}

// BuildVote 编码 Vote 指令（tag 2）
func BuildVote(a VoteArgs) (Instruction, error) {
	if a.Vote != VoteFor && a.Vote != VoteAgainst {
		return Instruction{}, fmt.Errorf("vote value %q not in {%q, %q}: %w",
			a.Vote, VoteFor, VoteAgainst, ErrValidation)
	}
	if a.ProposalID == "" {
		return Instruction{}, fmt.Errorf("vote proposal_id is empty: %w", ErrValidation)
	}

	buf := codec.AppendU8(nil, KindVote.Tag())
	var err error
	for _, s := range []string{a.Vote, a.ProposalID} {
		if buf, err = codec.AppendString(buf, s); err != nil {
			return Instruction{}, err
		}
	}

	return Instruction{Kind: KindVote, Data: buf, Parent: a.ProposalID}, nil
}

// FeaturedArgs 推荐位购买
type FeaturedArgs struct {
	DaoID          string
	UnitPriceCents uint64
}

// BuildFeatured 编码 Featured 指令（tag 3）
func BuildFeatured(a FeaturedArgs) (Instruction, error) {
	if a.DaoID == "" {
		return Instruction{}, fmt.Errorf("featured dao_id is empty: %w", ErrValidation)
	}

	buf := codec.AppendU8(nil, KindFeatured.Tag())
	buf, err := codec.AppendString(buf, a.DaoID)
	if err != nil {
		return Instruction{}, err
	}
	buf = codec.AppendU64(buf, a.UnitPriceCents)

	return Instruction{Kind: KindFeatured, Data: buf, Parent: a.DaoID}, nil
}

// ModulesArgs 模块类型必须属于 {POD, POL}
type ModulesArgs struct {
	DaoID          string
	ModuleType     string
	UnitPriceCents uint64
}

// BuildModules 编码 Modules 指令（tag 4）
func BuildModules(a ModulesArgs) (Instruction, error) {
	if a.DaoID == "" {
		return Instruction{}, fmt.Errorf("modules dao_id is empty: %w", ErrValidation)
	}
	if a.ModuleType != ModulePod && a.ModuleType != ModulePol {
		return Instruction{}, fmt.Errorf("module type %q not in {%q, %q}: %w",
			a.ModuleType, ModulePod, ModulePol, ErrValidation)
	}

	buf := codec.AppendU8(nil, KindModules.Tag())
	buf, err := codec.AppendString(buf, a.DaoID)
	if err != nil {
		return Instruction{}, err
	}
	if buf, err = codec.AppendString(buf, a.ModuleType); err != nil {
		return Instruction{}, err
	}
	buf = codec.AppendU64(buf, a.UnitPriceCents)

	return Instruction{Kind: KindModules, Data: buf, Parent: a.DaoID}, nil
}

// ParseParent 将父实体引用解析为 Pubkey，失败时返回 ErrInvalidIdentifier
func ParseParent(s string) (types.Pubkey, error) {
	p, err := types.TryPubkeyFromBase58(s)
	if err != nil {
		return types.Pubkey{}, fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)
	}
	return p, nil
}

// ErrInvalidIdentifier 表示父实体引用不是合法的 base58 公钥
var ErrInvalidIdentifier = errors.New("invalid entity identifier")
