package handler

// 请求体中 unit_price_cents 为可选覆盖价：传入则完全绕过价格源（确定性测试与复现场景）。

type CreateDaoReq struct {
	Wallet         string  `json:"wallet"`
	Name           string  `json:"name"`
	Description    string  `json:"description,optional"`
	Discord        string  `json:"discord,optional"`
	Twitter        string  `json:"twitter,optional"`
	Telegram       string  `json:"telegram,optional"`
	Instagram      string  `json:"instagram,optional"`
	TikTok         string  `json:"tiktok,optional"`
	Website        string  `json:"website,optional"`
	Treasury       string  `json:"treasury,optional"`
	Profile        string  `json:"profile,optional"`
	TokenAddress   string  `json:"token_address,optional"`
	UnitPriceCents *uint64 `json:"unit_price_cents,optional"`
}

type CreateProposalReq struct {
	Wallet      string `json:"wallet"`
	Name        string `json:"name"`
	Description string `json:"description,optional"`
	DaoID       string `json:"dao_id"`
	PodID       string `json:"pod_id,optional"`
	StartTime   int64  `json:"start_time"`
	EndTime     int64  `json:"end_time"`
}

type VoteReq struct {
	Wallet     string `json:"wallet"`
	Vote       string `json:"vote"`
	ProposalID string `json:"proposal_id"`
}

type FeaturedReq struct {
	Wallet         string  `json:"wallet"`
	DaoID          string  `json:"dao_id"`
	UnitPriceCents *uint64 `json:"unit_price_cents,optional"`
}

type ModulesReq struct {
	Wallet         string  `json:"wallet"`
	DaoID          string  `json:"dao_id"`
	ModuleType     string  `json:"module_type"`
	UnitPriceCents *uint64 `json:"unit_price_cents,optional"`
}

// BuildResp 组装结果：base64 信封交由前端钱包补签后回传 /v1/submit。
// fee_lamports 是调用方需要随指令支付的协议费（非付费指令为 0）。
type BuildResp struct {
	Kind           string `json:"kind"`
	PublicID       string `json:"public_id"`
	Envelope       string `json:"envelope"`
	UnitPriceCents uint64 `json:"unit_price_cents,omitempty"`
	FeeLamports    uint64 `json:"fee_lamports,omitempty"`
}

type SubmitReq struct {
	Envelope string `json:"envelope"`
	Kind     string `json:"kind,optional"`
	PublicID string `json:"public_id,optional"`
	Level    string `json:"level,optional"` // processed / confirmed / finalized，默认 confirmed
}

type SubmitResp struct {
	TxID   string `json:"tx_id"`
	Level  string `json:"level"`
	Failed bool   `json:"failed"`
}

type PriceResp struct {
	UnitPriceCents uint64 `json:"unit_price_cents"`
	FetchedAt      int64  `json:"fetched_at,omitempty"`
	Cached         bool   `json:"cached"`
}
