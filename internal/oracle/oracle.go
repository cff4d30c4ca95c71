// Package oracle 对接外部 SOL/USD 价格源，输出整数美分单价。
// 适配器自身不做重试与缓存：失败统一折叠为 ErrPriceUnavailable，由调用方决定重试或直接传入覆盖价。
package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"dao-client-sol/internal/consts"
)

// ErrPriceUnavailable 表示上游价格源失败（网络错误、响应格式不符、价格越界）
var ErrPriceUnavailable = errors.New("unit price unavailable")

// PriceSource 是价格获取的窄接口，便于测试注入固定价
type PriceSource interface {
	// UnitPriceCents 返回 1 SOL 的美分价格
	UnitPriceCents(ctx context.Context) (uint64, error)
}

type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient 创建价格源客户端。endpoint 形如
// https://api.coingecko.com/api/v3/simple/price?ids=solana&vs_currencies=usd
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// 上游响应形如 {"solana": {"usd": 178.42}}
type priceResponse struct {
	Solana struct {
		USD *float64 `json:"usd"`
	} `json:"solana"`
}

// UnitPriceCents 发起一次 HTTP GET 并将美元价取整为美分。
// 任何一步失败都包装 ErrPriceUnavailable 返回，绝不重试。
func (c *Client) UnitPriceCents(ctx context.Context) (uint64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: build request: %v", ErrPriceUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPriceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: upstream status %d", ErrPriceUnavailable, resp.StatusCode)
	}

	var body priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("%w: decode response: %v", ErrPriceUnavailable, err)
	}
	if body.Solana.USD == nil {
		return 0, fmt.Errorf("%w: price field missing", ErrPriceUnavailable)
	}

	usd := *body.Solana.USD
	if usd <= 0 || math.IsNaN(usd) || math.IsInf(usd, 0) {
		return 0, fmt.Errorf("%w: bad price %v", ErrPriceUnavailable, usd)
	}

	cents := uint64(math.Round(usd * 100))
	// 链上程序拒绝区间外的单价，提前失败避免组装注定被拒的交易
	if cents < consts.MinUnitPriceCents || cents > consts.MaxUnitPriceCents {
		return 0, fmt.Errorf("%w: %d cents out of range [%d, %d]",
			ErrPriceUnavailable, cents, consts.MinUnitPriceCents, consts.MaxUnitPriceCents)
	}
	return cents, nil
}
