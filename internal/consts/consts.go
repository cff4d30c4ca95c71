package consts

// CreateDaoFeeUSD 表示付费指令（CreateDao / Featured / Modules）的统一美元费用目标
const CreateDaoFeeUSD uint64 = 20

// SOL 价格（美分）允许的合法区间，链上程序使用同样的边界校验
const (
	MinUnitPriceCents uint64 = 100       // $1.00
	MaxUnitPriceCents uint64 = 1_000_000 // $10,000.00
)

// LamportsPerSOL SOL 的最小单位换算（9 位小数）
const LamportsPerSOL uint64 = 1_000_000_000
