// Package fee 提供付费指令共享的法币→lamports 换算。
// 所有付费指令（CreateDao / Featured / Modules）必须走同一个函数，避免各处公式漂移。
package fee

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"dao-client-sol/internal/codec"
	"dao-client-sol/internal/consts"
)

// ErrUnitPriceOutOfRange 表示 SOL 单价（美分）超出链上程序接受的区间
var ErrUnitPriceOutOfRange = errors.New("unit price out of range")

// LamportsForUSD 计算 targetUSD 美元对应的 lamports 数量。
// unitPriceCents 为 1 SOL 的美分价格（如 10000 表示 $100.00）。
// 结果向上取整：客户端只可能多付，绝不因取整少付而被链上拒绝。
func LamportsForUSD(targetUSD, unitPriceCents uint64) (uint64, error) {
	if unitPriceCents < consts.MinUnitPriceCents || unitPriceCents > consts.MaxUnitPriceCents {
		return 0, fmt.Errorf("unit price %d cents not in [%d, %d]: %w",
			unitPriceCents, consts.MinUnitPriceCents, consts.MaxUnitPriceCents, ErrUnitPriceOutOfRange)
	}
	if targetUSD > math.MaxUint64/100 {
		return 0, fmt.Errorf("fee target %d USD: %w", targetUSD, codec.ErrEncodingOverflow)
	}

	// targetUSD * 100(美分) * 1e9(lamports) / unitPriceCents，中间积用 128 位避免溢出
	hi, lo := bits.Mul64(targetUSD*100, consts.LamportsPerSOL)
	if hi >= unitPriceCents {
		// 商超出 64 位
		return 0, fmt.Errorf("fee for %d USD at %d cents: %w", targetUSD, unitPriceCents, codec.ErrEncodingOverflow)
	}
	quo, rem := bits.Div64(hi, lo, unitPriceCents)
	if rem != 0 {
		if quo == math.MaxUint64 {
			return 0, fmt.Errorf("fee for %d USD at %d cents: %w", targetUSD, unitPriceCents, codec.ErrEncodingOverflow)
		}
		quo++
	}
	return quo, nil
}
