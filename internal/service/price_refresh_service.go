package service

import (
	"context"
	"time"

	"dao-client-sol/internal/cache"
	"dao-client-sol/internal/oracle"
	"dao-client-sol/pkg/logger"
)

// PriceRefreshService 周期性从价格源拉取 SOL 单价写入缓存。
// REST 入口优先用缓存价；刷新失败只影响时效，构建方仍可传显式覆盖价。
type PriceRefreshService struct {
	priceCache *cache.PriceCache
	source     oracle.PriceSource
	interval   time.Duration
	stopChan   chan struct{}
}

func NewPriceRefreshService(source oracle.PriceSource, priceCache *cache.PriceCache, interval time.Duration) *PriceRefreshService {
	s := &PriceRefreshService{
		priceCache: priceCache,
		source:     source,
		interval:   interval,
		stopChan:   make(chan struct{}),
	}

	// 初始化同步，失败仅告警：服务照常启动，首个定时周期会再试
	const retryCount = 2
	for i := 0; i <= retryCount; i++ {
		if err := s.update(); err != nil {
			logger.Warnf("[PriceRefreshService] 第 %d 次初始同步失败: %v", i+1, err)
			time.Sleep(2 * time.Second)
			continue
		}
		logger.Infof("[PriceRefreshService] 初始价格同步成功: %s", priceCache)
		break
	}
	return s
}

func (s *PriceRefreshService) Start() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.update(); err != nil {
				logger.Warnf("[PriceRefreshService] 周期性价格更新失败: %v", err)
			}
		case <-s.stopChan:
			return
		}
	}
}

func (s *PriceRefreshService) Stop() {
	close(s.stopChan)
}

func (s *PriceRefreshService) update() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cents, err := s.source.UnitPriceCents(ctx)
	if err != nil {
		return err
	}
	s.priceCache.Set(ctx, cents)
	return nil
}
